package arguments

import (
	"fmt"
	"strings"
)

type CommandNotRecognizedError struct {
	Command string
}

func (e CommandNotRecognizedError) Error() string {
	return fmt.Sprintf("command %#v not recognized", e.Command)
}

type CommandDoesNotTakeArgumentsError struct {
	Command string
}

func (e CommandDoesNotTakeArgumentsError) Error() string {
	return fmt.Sprintf("command %#v does not take arguments", e.Command)
}

type CommandArgumentCountError struct {
	Command  string
	Expected string
}

func (e CommandArgumentCountError) Error() string {
	return fmt.Sprintf("command %#v expects %s", e.Command, e.Expected)
}

type FlagNotRecognizedError struct {
	Flag string
}

func (e FlagNotRecognizedError) Error() string {
	return fmt.Sprintf("flag %s not recognized", e.Flag)
}

type FlagMissingValueError struct {
	Flag string
}

func (e FlagMissingValueError) Error() string {
	return fmt.Sprintf("flag %s expects a value", e.Flag)
}

type FlagUnexpectedValueError struct {
	Flag string
}

func (e FlagUnexpectedValueError) Error() string {
	return fmt.Sprintf("flag %s does not take a value", e.Flag)
}

type FlagInvalidEnumValueError struct {
	Flag           string
	Value          string
	ExpectedValues []string
}

func (e FlagInvalidEnumValueError) Error() string {
	var sb strings.Builder
	sb.WriteString("flag ")
	sb.WriteString(e.Flag)
	sb.WriteString(" only accepts ")
	for i, expectedValue := range e.ExpectedValues {
		fmt.Fprintf(&sb, "%#v", expectedValue)
		switch i {
		default:
			sb.WriteString(", ")
		case len(e.ExpectedValues) - 2:
			sb.WriteString(" or ")
		case len(e.ExpectedValues) - 1:
		}
	}
	sb.WriteString(", not ")
	fmt.Fprintf(&sb, "%#v", e.Value)
	return sb.String()
}

type FlagInvalidIntegerValueError struct {
	Flag    string
	Value   string
	Minimum int
}

func (e FlagInvalidIntegerValueError) Error() string {
	return fmt.Sprintf("flag %s expects an integer of at least %d, not %#v", e.Flag, e.Minimum, e.Value)
}

type EnvironmentVariableInvalidError struct {
	Variable string
	Err      error
}

func (e EnvironmentVariableInvalidError) Error() string {
	return fmt.Sprintf("environment variable %s: %s", e.Variable, e.Err)
}

func (e EnvironmentVariableInvalidError) Unwrap() error {
	return e.Err
}
