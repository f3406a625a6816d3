package encoding

import (
	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// Configuration of a single step in a chain of BinaryEncoders. Exactly
// one of the fields must be set.
type Configuration struct {
	// Compress data using LZW with fixed 16-bit codes.
	LZWCompressing *LZWCompressingConfiguration

	// Collect Prometheus metrics for a nested chain of encoders.
	Metrics *MetricsConfiguration
}

// LZWCompressingConfiguration holds the options of
// NewLZWCompressingBinaryEncoder(). It has no fields, as the maximum
// decoded size is shared by all steps in the chain.
type LZWCompressingConfiguration struct{}

// MetricsConfiguration holds the options of NewMetricsBinaryEncoder().
type MetricsConfiguration struct {
	// Value of the "name" label of the metrics.
	Name string
	// Encoders whose operations should be measured.
	Backend []Configuration
}

// NewBinaryEncoderFromConfiguration creates a chain of BinaryEncoders
// that behaves according to a list of configuration messages.
func NewBinaryEncoderFromConfiguration(configurations []Configuration, maximumDecodedSizeBytes int, clock clock.Clock) (BinaryEncoder, error) {
	encoders := make([]BinaryEncoder, 0, len(configurations))
	for i, configuration := range configurations {
		switch {
		case configuration.LZWCompressing != nil:
			encoders = append(
				encoders,
				NewLZWCompressingBinaryEncoder(maximumDecodedSizeBytes),
			)
		case configuration.Metrics != nil:
			backend, err := NewBinaryEncoderFromConfiguration(configuration.Metrics.Backend, maximumDecodedSizeBytes, clock)
			if err != nil {
				return nil, util.StatusWrapf(err, "Backend of metrics encoder %#v", configuration.Metrics.Name)
			}
			encoders = append(
				encoders,
				NewMetricsBinaryEncoder(backend, clock, configuration.Metrics.Name),
			)
		default:
			return nil, status.Errorf(codes.InvalidArgument, "No encoder provided for step %d", i)
		}
	}
	return NewChainedBinaryEncoder(encoders), nil
}
