package help

import (
	"fmt"
	"io"

	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands"
)

// DoHelp prints a summary of the commands and flags that are supported.
func DoHelp(w io.Writer) {
	fmt.Fprintf(w, `Usage: lzw [flags] <command> [arguments]

Commands:
  compress <input> <output>    Compress a single file.
  decompress <input> <output>  Decompress a single file.
  auto <file>...               Decompress files ending with %[1]s into a
                               file without the extension, and compress
                               all other files into <file>%[1]s.
  help                         Print this message.
  version                      Print the version of this tool.

Flags:
  --color=yes|no|auto                   Use colors and animations.
  --jobs=<n>                            Number of files processed by
                                        "auto" concurrently. Defaults to
                                        the number of CPUs.
  --max_decompressed_size_bytes=<n>     Reject compressed files that
                                        expand beyond this size.
                                        Defaults to %[2]d.
  --metrics_output=<path>               Write Prometheus metrics to a
                                        file upon completion.
  --[no]overwrite                       Replace existing output files.

Flags may also be provided through the %[3]s environment variable.
`,
		commands.CompressedFileExtension,
		arguments.DefaultMaximumDecompressedSizeBytes,
		arguments.FlagsEnvironmentVariable)
}
