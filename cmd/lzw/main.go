package main

import (
	"context"
	"os"

	"github.com/buildbarn/bb-lzw/pkg/encoding"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/arguments"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands/auto"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands/compress"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands/decompress"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands/help"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/commands/version"
	"github.com/buildbarn/bb-lzw/pkg/lzwclient/logging"
	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/program"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// lzw: compress and decompress files using LZW with fixed 16-bit codes.
//
// Usage:
//
//	lzw [flags] compress <input> <output>
//	lzw [flags] decompress <input> <output>
//	lzw [flags] auto <file>...
func main() {
	program.RunMain(func(ctx context.Context, siblingsGroup, dependenciesGroup program.Group) error {
		args, err := arguments.PrependFlagsFromEnvironment(os.LookupEnv, os.Args[1:])
		if err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
		command, err := arguments.Parse(args)
		if err != nil {
			return status.Errorf(codes.InvalidArgument, "%s (run \"lzw help\" for usage)", err)
		}
		commonFlags := command.GetCommonFlags()
		logger := logging.NewLoggerFromFlags(commonFlags)

		binaryEncoder, err := encoding.NewBinaryEncoderFromConfiguration(
			[]encoding.Configuration{{
				Metrics: &encoding.MetricsConfiguration{
					Name: "lzw",
					Backend: []encoding.Configuration{{
						LZWCompressing: &encoding.LZWCompressingConfiguration{},
					}},
				},
			}},
			commonFlags.MaximumDecompressedSizeBytes,
			clock.SystemClock)
		if err != nil {
			return util.StatusWrap(err, "Failed to create binary encoder")
		}
		fileTransformer := &commands.FileTransformer{
			BinaryEncoder: binaryEncoder,
			Overwrite:     commonFlags.Overwrite,
			UUIDGenerator: uuid.NewRandom,
		}

		switch cmd := command.(type) {
		case *arguments.AutoCommand:
			err = auto.DoAuto(ctx, cmd, logger, fileTransformer)
		case *arguments.CompressCommand:
			err = compress.DoCompress(cmd, logger, fileTransformer)
		case *arguments.DecompressCommand:
			err = decompress.DoDecompress(cmd, logger, fileTransformer)
		case *arguments.HelpCommand:
			help.DoHelp(os.Stdout)
		case *arguments.VersionCommand:
			version.DoVersion(os.Stdout)
		default:
			panic("unknown command type")
		}

		// Metrics are also written if the command failed, so that
		// the failure is reflected in them.
		if path := commonFlags.MetricsOutput; path != "" {
			if metricsErr := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); metricsErr != nil && err == nil {
				err = util.StatusWrapf(metricsErr, "Failed to write metrics to %#v", path)
			}
		}
		return err
	})
}
