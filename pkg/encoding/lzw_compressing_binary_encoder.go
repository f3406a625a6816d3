package encoding

import (
	"github.com/buildbarn/bb-lzw/pkg/compress/fixedlzw"
)

type lzwCompressingBinaryEncoder struct {
	maximumDecodedSizeBytes int
}

// NewLZWCompressingBinaryEncoder creates a BinaryEncoder that encodes
// data by compressing it using LZW with fixed 16-bit codes. Decoding
// fails if the decompressed data exceeds a given size.
func NewLZWCompressingBinaryEncoder(maximumDecodedSizeBytes int) BinaryEncoder {
	return &lzwCompressingBinaryEncoder{
		maximumDecodedSizeBytes: maximumDecodedSizeBytes,
	}
}

func (be *lzwCompressingBinaryEncoder) EncodeBinary(in []byte) ([]byte, error) {
	return fixedlzw.Compress(in)
}

func (be *lzwCompressingBinaryEncoder) DecodeBinary(in []byte) ([]byte, error) {
	return fixedlzw.DecompressWithLimit(in, be.maximumDecodedSizeBytes)
}
