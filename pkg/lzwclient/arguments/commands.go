package arguments

// Color selects whether output written to the terminal is styled.
type Color int

const (
	Color_Auto Color = iota
	Color_Yes
	Color_No
)

var colorExpectedValues = []string{
	"yes",
	"no",
	"auto",
}

// DefaultMaximumDecompressedSizeBytes is the default value of
// --max_decompressed_size_bytes.
const DefaultMaximumDecompressedSizeBytes = 1 << 30

// CommonFlags that are accepted by all commands.
type CommonFlags struct {
	// --color: whether to use colors and animations.
	Color Color
	// --jobs: number of files to process concurrently. Zero means
	// that the number of CPUs is used.
	Jobs int
	// --max_decompressed_size_bytes: upper bound on the size of
	// decompressed files, protecting against corrupted input.
	MaximumDecompressedSizeBytes int
	// --metrics_output: path of a file to which Prometheus metrics
	// are written upon completion.
	MetricsOutput string
	// --[no]overwrite: whether existing output files may be
	// replaced.
	Overwrite bool
}

// Reset the flags to their default values.
func (f *CommonFlags) Reset() {
	*f = CommonFlags{
		Color:                        Color_Auto,
		MaximumDecompressedSizeBytes: DefaultMaximumDecompressedSizeBytes,
		Overwrite:                    true,
	}
}

// Command that was provided on the command line, together with its
// flags and arguments.
type Command interface {
	GetCommonFlags() *CommonFlags
}

// CompressCommand is returned for "lzw compress <input> <output>".
type CompressCommand struct {
	CommonFlags CommonFlags
	Input       string
	Output      string
}

func (c *CompressCommand) GetCommonFlags() *CommonFlags { return &c.CommonFlags }

// DecompressCommand is returned for "lzw decompress <input> <output>".
type DecompressCommand struct {
	CommonFlags CommonFlags
	Input       string
	Output      string
}

func (c *DecompressCommand) GetCommonFlags() *CommonFlags { return &c.CommonFlags }

// AutoCommand is returned for "lzw auto <file>...". Files having the
// ".lzw" extension are decompressed, while all other files are
// compressed.
type AutoCommand struct {
	CommonFlags CommonFlags
	Files       []string
}

func (c *AutoCommand) GetCommonFlags() *CommonFlags { return &c.CommonFlags }

// HelpCommand is returned for "lzw help", or if no command is
// provided.
type HelpCommand struct {
	CommonFlags CommonFlags
}

func (c *HelpCommand) GetCommonFlags() *CommonFlags { return &c.CommonFlags }

// VersionCommand is returned for "lzw version".
type VersionCommand struct {
	CommonFlags CommonFlags
}

func (c *VersionCommand) GetCommonFlags() *CommonFlags { return &c.CommonFlags }
