package arguments

import (
	"github.com/kballard/go-shellquote"
)

// FlagsEnvironmentVariable is the name of the environment variable
// that may contain flags that are applied to every invocation.
const FlagsEnvironmentVariable = "LZW_FLAGS"

// PrependFlagsFromEnvironment splits the value of FlagsEnvironmentVariable
// using the quoting rules of the Bourne shell, and places the resulting
// words in front of the arguments provided on the command line. This
// causes flags on the command line to take precedence.
func PrependFlagsFromEnvironment(lookupEnv func(string) (string, bool), args []string) ([]string, error) {
	value, ok := lookupEnv(FlagsEnvironmentVariable)
	if !ok {
		return args, nil
	}
	words, err := shellquote.Split(value)
	if err != nil {
		return nil, EnvironmentVariableInvalidError{
			Variable: FlagsEnvironmentVariable,
			Err:      err,
		}
	}
	return append(words, args...), nil
}
