package encoding

import (
	"sync"

	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	binaryEncoderPrometheusMetrics sync.Once

	binaryEncoderOperationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "lzw",
			Name:      "binary_encoder_operations_total",
			Help:      "Number of times data was encoded or decoded, and the outcome.",
		},
		[]string{"name", "operation", "grpc_code"})
	binaryEncoderBytesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "lzw",
			Name:      "binary_encoder_bytes_total",
			Help:      "Number of bytes provided to and returned by successful encoding and decoding operations.",
		},
		[]string{"name", "operation", "direction"})
	binaryEncoderOperationsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "lzw",
			Name:      "binary_encoder_operations_duration_seconds",
			Help:      "Amount of time spent encoding or decoding data, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-6, 7, 2),
		},
		[]string{"name", "operation"})
)

type binaryEncoderOperationMetrics struct {
	bytesIn         prometheus.Counter
	bytesOut        prometheus.Counter
	durationSeconds prometheus.Observer
	name            string
	operation       string
}

func newBinaryEncoderOperationMetrics(name, operation string) binaryEncoderOperationMetrics {
	return binaryEncoderOperationMetrics{
		bytesIn:         binaryEncoderBytesTotal.WithLabelValues(name, operation, "in"),
		bytesOut:        binaryEncoderBytesTotal.WithLabelValues(name, operation, "out"),
		durationSeconds: binaryEncoderOperationsDurationSeconds.WithLabelValues(name, operation),
		name:            name,
		operation:       operation,
	}
}

type metricsBinaryEncoder struct {
	base   BinaryEncoder
	clock  clock.Clock
	encode binaryEncoderOperationMetrics
	decode binaryEncoderOperationMetrics
}

// NewMetricsBinaryEncoder creates a decorator for BinaryEncoder that
// exposes Prometheus metrics on the number of operations performed,
// the amount of data processed and the time it took.
func NewMetricsBinaryEncoder(base BinaryEncoder, clock clock.Clock, name string) BinaryEncoder {
	binaryEncoderPrometheusMetrics.Do(func() {
		prometheus.MustRegister(binaryEncoderOperationsTotal)
		prometheus.MustRegister(binaryEncoderBytesTotal)
		prometheus.MustRegister(binaryEncoderOperationsDurationSeconds)
	})

	return &metricsBinaryEncoder{
		base:   base,
		clock:  clock,
		encode: newBinaryEncoderOperationMetrics(name, "encode"),
		decode: newBinaryEncoderOperationMetrics(name, "decode"),
	}
}

func (be *metricsBinaryEncoder) observe(metrics *binaryEncoderOperationMetrics, in []byte, operation func([]byte) ([]byte, error)) ([]byte, error) {
	timeStart := be.clock.Now()
	out, err := operation(in)
	metrics.durationSeconds.Observe(be.clock.Now().Sub(timeStart).Seconds())
	binaryEncoderOperationsTotal.WithLabelValues(metrics.name, metrics.operation, status.Code(err).String()).Inc()
	if err != nil {
		return nil, err
	}
	metrics.bytesIn.Add(float64(len(in)))
	metrics.bytesOut.Add(float64(len(out)))
	return out, nil
}

func (be *metricsBinaryEncoder) EncodeBinary(in []byte) ([]byte, error) {
	return be.observe(&be.encode, in, be.base.EncodeBinary)
}

func (be *metricsBinaryEncoder) DecodeBinary(in []byte) ([]byte, error) {
	return be.observe(&be.decode, in, be.base.DecodeBinary)
}
