package compress

import (
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/logging"
)

// DoCompress implements "lzw compress <input> <output>".
func DoCompress(args *arguments.CompressCommand, logger logging.Logger, fileTransformer *commands.FileTransformer) error {
	spinner := logger.StartSpinner("Compressing...")
	result, err := fileTransformer.CompressFile(args.Input, args.Output)
	spinner.Stop()
	if err != nil {
		return err
	}
	logger.Successf("Done!    %s", commands.FormatCompressionReport(result))
	return nil
}
