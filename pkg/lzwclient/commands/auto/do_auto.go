package auto

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/logging"
	"github.com/buildbarn/bb-storage/pkg/util"

	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// DoAuto implements "lzw auto <file>...". Files whose names end with
// the ".lzw" extension are decompressed into a file having the same
// name without the extension. All other files are compressed into a
// file having the extension appended. Files are processed concurrently,
// and a failure to process one file does not prevent others from being
// processed.
func DoAuto(ctx context.Context, args *arguments.AutoCommand, logger logging.Logger, fileTransformer *commands.FileTransformer) error {
	jobs := args.CommonFlags.Jobs
	if jobs == 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	spinner := logger.StartSpinner(fmt.Sprintf("Processing %d file(s)...", len(args.Files)))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	var failures atomic.Int64
	for _, file := range args.Files {
		group.Go(func() error {
			if err := util.StatusFromContext(groupCtx); err != nil {
				return err
			}
			if output, ok := strings.CutSuffix(file, commands.CompressedFileExtension); ok && filepath.Base(file) != commands.CompressedFileExtension {
				result, err := fileTransformer.DecompressFile(file, output)
				if err != nil {
					logger.Error(err)
					failures.Add(1)
					return nil
				}
				logger.Successf("%s    %s", output, commands.FormatDecompressionReport(result))
			} else {
				output := file + commands.CompressedFileExtension
				result, err := fileTransformer.CompressFile(file, output)
				if err != nil {
					logger.Error(err)
					failures.Add(1)
					return nil
				}
				logger.Successf("%s    %s", output, commands.FormatCompressionReport(result))
			}
			return nil
		})
	}
	err := group.Wait()
	spinner.Stop()
	if err != nil {
		return err
	}
	if n := failures.Load(); n > 0 {
		return status.Errorf(codes.Unknown, "Failed to process %d of %d file(s)", n, len(args.Files))
	}
	return nil
}
