package decompress

import (
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/logging"
)

// DoDecompress implements "lzw decompress <input> <output>".
func DoDecompress(args *arguments.DecompressCommand, logger logging.Logger, fileTransformer *commands.FileTransformer) error {
	spinner := logger.StartSpinner("Decompressing...")
	result, err := fileTransformer.DecompressFile(args.Input, args.Output)
	spinner.Stop()
	if err != nil {
		return err
	}
	logger.Successf("Done!    %s", commands.FormatDecompressionReport(result))
	return nil
}
