package fixedlzw

import (
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// BadCodeError is returned by Decompress() if the compressed input
// contains a code that is neither present in the dictionary, nor the
// code that is about to be assigned. This means that the input was not
// produced by Compress(), or that it got corrupted.
type BadCodeError struct {
	// The offending code.
	Code uint16
	// Position of the offending code in the input, counted in codes
	// as opposed to bytes.
	Index int
	// The code that would have been assigned next at the time the
	// offending code was read.
	NextCode int
}

func (e *BadCodeError) Error() string {
	return fmt.Sprintf("Input contains unexpected code %d at index %d, while the next code to be assigned is %d", e.Code, e.Index, e.NextCode)
}

// GRPCStatus converts the error to a gRPC status, so that it can be
// handled like any other error reported for malformed input.
func (e *BadCodeError) GRPCStatus() *status.Status {
	return status.New(codes.InvalidArgument, e.Error())
}
