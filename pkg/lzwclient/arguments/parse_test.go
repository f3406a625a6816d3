package arguments_test

import (
	"testing"

	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	defaultFlags := arguments.CommonFlags{
		Color:                        arguments.Color_Auto,
		MaximumDecompressedSizeBytes: arguments.DefaultMaximumDecompressedSizeBytes,
		Overwrite:                    true,
	}

	t.Run("NoArguments", func(t *testing.T) {
		command, err := arguments.Parse(nil)
		require.NoError(t, err)
		require.Equal(t, &arguments.HelpCommand{
			CommonFlags: defaultFlags,
		}, command)
	})

	t.Run("Compress", func(t *testing.T) {
		command, err := arguments.Parse([]string{"compress", "foo.txt", "foo.txt.lzw"})
		require.NoError(t, err)
		require.Equal(t, &arguments.CompressCommand{
			CommonFlags: defaultFlags,
			Input:       "foo.txt",
			Output:      "foo.txt.lzw",
		}, command)
	})

	t.Run("DecompressWithFlags", func(t *testing.T) {
		// Flags may be placed both before and after the
		// command name.
		command, err := arguments.Parse([]string{
			"--color=no",
			"decompress",
			"--max_decompressed_size_bytes", "1000",
			"--nooverwrite",
			"foo.txt.lzw",
			"--metrics_output=/tmp/metrics.prom",
			"foo.txt",
		})
		require.NoError(t, err)
		require.Equal(t, &arguments.DecompressCommand{
			CommonFlags: arguments.CommonFlags{
				Color:                        arguments.Color_No,
				MaximumDecompressedSizeBytes: 1000,
				MetricsOutput:                "/tmp/metrics.prom",
				Overwrite:                    false,
			},
			Input:  "foo.txt.lzw",
			Output: "foo.txt",
		}, command)
	})

	t.Run("Auto", func(t *testing.T) {
		// Arguments following "--" should not be interpreted
		// as flags.
		command, err := arguments.Parse([]string{"--jobs=4", "--color", "yes", "auto", "a.txt", "--", "--b.txt.lzw"})
		require.NoError(t, err)
		require.Equal(t, &arguments.AutoCommand{
			CommonFlags: arguments.CommonFlags{
				Color:                        arguments.Color_Yes,
				Jobs:                         4,
				MaximumDecompressedSizeBytes: arguments.DefaultMaximumDecompressedSizeBytes,
				Overwrite:                    true,
			},
			Files: []string{"a.txt", "--b.txt.lzw"},
		}, command)
	})

	t.Run("OverwriteBool", func(t *testing.T) {
		command, err := arguments.Parse([]string{"--nooverwrite", "--overwrite=yes", "version"})
		require.NoError(t, err)
		require.Equal(t, &arguments.VersionCommand{
			CommonFlags: defaultFlags,
		}, command)
	})

	t.Run("CommandNotRecognized", func(t *testing.T) {
		_, err := arguments.Parse([]string{"explode"})
		require.Equal(t, arguments.CommandNotRecognizedError{Command: "explode"}, err)
		require.EqualError(t, err, "command \"explode\" not recognized")
	})

	t.Run("CommandArgumentCount", func(t *testing.T) {
		_, err := arguments.Parse([]string{"compress", "foo.txt"})
		require.EqualError(t, err, "command \"compress\" expects an input and an output file")

		_, err = arguments.Parse([]string{"auto"})
		require.EqualError(t, err, "command \"auto\" expects one or more files")
	})

	t.Run("CommandDoesNotTakeArguments", func(t *testing.T) {
		_, err := arguments.Parse([]string{"version", "foo"})
		require.Equal(t, arguments.CommandDoesNotTakeArgumentsError{Command: "version"}, err)
	})

	t.Run("FlagNotRecognized", func(t *testing.T) {
		_, err := arguments.Parse([]string{"--level=9", "compress", "a", "b"})
		require.EqualError(t, err, "flag --level not recognized")
	})

	t.Run("FlagMissingValue", func(t *testing.T) {
		_, err := arguments.Parse([]string{"help", "--jobs"})
		require.Equal(t, arguments.FlagMissingValueError{Flag: "--jobs"}, err)
	})

	t.Run("FlagUnexpectedValue", func(t *testing.T) {
		_, err := arguments.Parse([]string{"--nooverwrite=yes"})
		require.EqualError(t, err, "flag --nooverwrite does not take a value")
	})

	t.Run("FlagInvalidEnumValue", func(t *testing.T) {
		_, err := arguments.Parse([]string{"--color=sometimes"})
		require.EqualError(t, err, "flag --color only accepts \"yes\", \"no\" or \"auto\", not \"sometimes\"")

		_, err = arguments.Parse([]string{"--overwrite=maybe"})
		require.EqualError(t, err, "flag --overwrite only accepts \"true\", \"false\", \"yes\", \"no\", \"1\" or \"0\", not \"maybe\"")
	})

	t.Run("FlagInvalidIntegerValue", func(t *testing.T) {
		_, err := arguments.Parse([]string{"--jobs=-1"})
		require.EqualError(t, err, "flag --jobs expects an integer of at least 0, not \"-1\"")

		_, err = arguments.Parse([]string{"--max_decompressed_size_bytes=lots"})
		require.EqualError(t, err, "flag --max_decompressed_size_bytes expects an integer of at least 1, not \"lots\"")
	})
}
