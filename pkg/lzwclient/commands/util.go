package commands

import (
	"os"
	"path/filepath"

	"github.com/buildbarn/bb-lzw/pkg/encoding"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/uuid"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// CompressedFileExtension is appended to the names of files that are
// compressed by the "auto" command.
const CompressedFileExtension = ".lzw"

var sizePrinter = message.NewPrinter(language.English)

// FileTransformer reads a file in its entirety, encodes or decodes it,
// and writes the results to another file.
type FileTransformer struct {
	BinaryEncoder encoding.BinaryEncoder
	Overwrite     bool
	UUIDGenerator func() (uuid.UUID, error)
}

// TransformationResult contains the sizes of the input and output of a
// transformation, used to report the compression ratio.
type TransformationResult struct {
	InputSizeBytes  int
	OutputSizeBytes int
}

// CompressFile compresses the contents of one file into another.
func (ft *FileTransformer) CompressFile(input, output string) (TransformationResult, error) {
	return ft.transformFile(input, output, ft.BinaryEncoder.EncodeBinary)
}

// DecompressFile decompresses the contents of one file into another.
func (ft *FileTransformer) DecompressFile(input, output string) (TransformationResult, error) {
	return ft.transformFile(input, output, ft.BinaryEncoder.DecodeBinary)
}

func (ft *FileTransformer) transformFile(input, output string, transform func([]byte) ([]byte, error)) (TransformationResult, error) {
	in, err := os.ReadFile(input)
	if err != nil {
		return TransformationResult{}, util.StatusWrapf(err, "Failed to read %#v", input)
	}
	out, err := transform(in)
	if err != nil {
		return TransformationResult{}, util.StatusWrapf(err, "Failed to process %#v", input)
	}
	if err := ft.writeFileAtomically(output, out); err != nil {
		return TransformationResult{}, util.StatusWrapf(err, "Failed to write %#v", output)
	}
	return TransformationResult{
		InputSizeBytes:  len(in),
		OutputSizeBytes: len(out),
	}, nil
}

// writeFileAtomically writes data to a temporary file that is placed
// in the same directory as the output file, and moves it into place
// after it has been written in full. This ensures that the output file
// never contains partial results.
func (ft *FileTransformer) writeFileAtomically(output string, data []byte) error {
	temporaryID, err := ft.UUIDGenerator()
	if err != nil {
		return util.StatusWrap(err, "Failed to generate temporary file name")
	}
	temporaryPath := filepath.Join(
		filepath.Dir(output),
		"."+filepath.Base(output)+"."+temporaryID.String()+".tmp")
	// Also removes partially written files if writing fails.
	defer os.Remove(temporaryPath)
	if err := os.WriteFile(temporaryPath, data, 0o666); err != nil {
		return err
	}

	if ft.Overwrite {
		return os.Rename(temporaryPath, output)
	}
	// Creating a hard link fails if the output file already exists,
	// which prevents races against other processes.
	if err := os.Link(temporaryPath, output); err != nil {
		if os.IsExist(err) {
			return status.Error(codes.AlreadyExists, "Output file already exists, and overwriting is disabled")
		}
		return err
	}
	return nil
}

// FormatCompressionReport returns a human readable description of the
// effectiveness of compression (e.g., "1,000 bytes -> 500 bytes
// (50.00% reduction)").
func FormatCompressionReport(result TransformationResult) string {
	reduction := 0.0
	if result.InputSizeBytes > 0 {
		reduction = (1 - float64(result.OutputSizeBytes)/float64(result.InputSizeBytes)) * 100
	}
	return sizePrinter.Sprintf(
		"%d bytes -> %d bytes (%.2f%% reduction)",
		result.InputSizeBytes,
		result.OutputSizeBytes,
		reduction,
	)
}

// FormatDecompressionReport returns a human readable description of
// the sizes of the input and output of decompression.
func FormatDecompressionReport(result TransformationResult) string {
	return sizePrinter.Sprintf(
		"%d bytes -> %d bytes",
		result.InputSizeBytes,
		result.OutputSizeBytes,
	)
}
