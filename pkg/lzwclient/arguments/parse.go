package arguments

import (
	"strconv"
	"strings"
)

var boolExpectedValues = []string{
	"true",
	"false",
	"yes",
	"no",
	"1",
	"0",
}

func parseBool(hasValue bool, value string, out *bool, flagName string) error {
	v := true
	if hasValue {
		switch value {
		case "0", "false", "no":
			v = false
		case "1", "true", "yes":
			v = true
		default:
			return FlagInvalidEnumValueError{
				Flag:           flagName,
				Value:          value,
				ExpectedValues: boolExpectedValues,
			}
		}
	}
	*out = v
	return nil
}

func parseInt(value string, minimum int, out *int, flagName string) error {
	v, err := strconv.Atoi(value)
	if err != nil || v < minimum {
		return FlagInvalidIntegerValueError{
			Flag:    flagName,
			Value:   value,
			Minimum: minimum,
		}
	}
	*out = v
	return nil
}

// Parse command line arguments. Flags may be placed both before and
// after the name of the command. Flags of the form "--name=value" and
// "--name value" are both accepted, while boolean flags may also be
// negated by using the "--noname" form. Any arguments following "--"
// are not interpreted as flags.
func Parse(args []string) (Command, error) {
	var commonFlags CommonFlags
	commonFlags.Reset()

	var positional []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if !strings.HasPrefix(arg, "--") {
			positional = append(positional, arg)
			continue
		}

		name, value, hasValue := strings.Cut(arg[2:], "=")
		flagName := "--" + name
		takeValue := func() error {
			if !hasValue {
				if i+1 >= len(args) {
					return FlagMissingValueError{Flag: flagName}
				}
				i++
				value = args[i]
			}
			return nil
		}

		switch name {
		case "color":
			if err := takeValue(); err != nil {
				return nil, err
			}
			switch value {
			case "yes":
				commonFlags.Color = Color_Yes
			case "no":
				commonFlags.Color = Color_No
			case "auto":
				commonFlags.Color = Color_Auto
			default:
				return nil, FlagInvalidEnumValueError{
					Flag:           flagName,
					Value:          value,
					ExpectedValues: colorExpectedValues,
				}
			}
		case "jobs":
			if err := takeValue(); err != nil {
				return nil, err
			}
			if err := parseInt(value, 0, &commonFlags.Jobs, flagName); err != nil {
				return nil, err
			}
		case "max_decompressed_size_bytes":
			if err := takeValue(); err != nil {
				return nil, err
			}
			if err := parseInt(value, 1, &commonFlags.MaximumDecompressedSizeBytes, flagName); err != nil {
				return nil, err
			}
		case "metrics_output":
			if err := takeValue(); err != nil {
				return nil, err
			}
			commonFlags.MetricsOutput = value
		case "overwrite":
			if err := parseBool(hasValue, value, &commonFlags.Overwrite, flagName); err != nil {
				return nil, err
			}
		case "nooverwrite":
			if hasValue {
				return nil, FlagUnexpectedValueError{Flag: flagName}
			}
			commonFlags.Overwrite = false
		default:
			return nil, FlagNotRecognizedError{Flag: flagName}
		}
	}

	if len(positional) == 0 {
		return &HelpCommand{CommonFlags: commonFlags}, nil
	}
	commandName, commandArgs := positional[0], positional[1:]
	switch commandName {
	case "compress", "decompress":
		if len(commandArgs) != 2 {
			return nil, CommandArgumentCountError{
				Command:  commandName,
				Expected: "an input and an output file",
			}
		}
		if commandName == "compress" {
			return &CompressCommand{
				CommonFlags: commonFlags,
				Input:       commandArgs[0],
				Output:      commandArgs[1],
			}, nil
		}
		return &DecompressCommand{
			CommonFlags: commonFlags,
			Input:       commandArgs[0],
			Output:      commandArgs[1],
		}, nil
	case "auto":
		if len(commandArgs) == 0 {
			return nil, CommandArgumentCountError{
				Command:  commandName,
				Expected: "one or more files",
			}
		}
		return &AutoCommand{
			CommonFlags: commonFlags,
			Files:       commandArgs,
		}, nil
	case "help":
		if len(commandArgs) > 0 {
			return nil, CommandDoesNotTakeArgumentsError{Command: commandName}
		}
		return &HelpCommand{CommonFlags: commonFlags}, nil
	case "version":
		if len(commandArgs) > 0 {
			return nil, CommandDoesNotTakeArgumentsError{Command: commandName}
		}
		return &VersionCommand{CommonFlags: commonFlags}, nil
	default:
		return nil, CommandNotRecognizedError{Command: commandName}
	}
}
