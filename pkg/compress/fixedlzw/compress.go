package fixedlzw

import (
	"encoding/binary"
)

const (
	// CodeSizeBytes is the number of bytes used to store a single
	// code in the compressed output. Codes are stored in big endian
	// byte order.
	CodeSizeBytes = 2

	// MaximumCode is the ceiling of the code space. The dictionary
	// stops growing once the next code to be assigned reaches this
	// value, meaning that this code is never emitted.
	MaximumCode = 1<<(8*CodeSizeBytes) - 1

	// literalCodes is the number of codes that are reserved for
	// individual bytes. These are present in the dictionary before
	// any input is processed.
	literalCodes = 256
)

// Compress data using the Lempel-Ziv-Welch (LZW) algorithm, emitting
// every code as a 16-bit big endian integer.
//
// Unlike the variants used by GIF, PDF and TIFF, codes are not bit
// packed and there are no clear or end-of-information codes. Once all
// 65535 codes are in use, the dictionary is frozen and compression
// continues using the existing entries. The output carries no header,
// so it can only be decompressed by Decompress() or an implementation
// that makes the same assumptions.
//
// An error is never returned. It is part of the signature so that
// this function can be used interchangeably with other codecs.
func Compress(uncompressed []byte) ([]byte, error) {
	if len(uncompressed) == 0 {
		return []byte{}, nil
	}

	// Dictionary that maps the code of the current prefix and the
	// next symbol to the code of the next prefix. The key has the
	// following format:
	//
	// - Bits 8 to 23: Code of the current prefix.
	// - Bits 0 to 7: Next symbol.
	//
	// Because every prefix of a dictionary entry is an entry as
	// well, this is equivalent to keying the dictionary by the full
	// byte sequence. Literal codes are implied, so only learned
	// sequences are stored.
	learnedCodes := len(uncompressed) - 1
	if learnedCodes > MaximumCode-literalCodes {
		learnedCodes = MaximumCode - literalCodes
	}
	dictionary := make(map[uint32]uint16, learnedCodes)
	nextCode := uint32(literalCodes)

	// In the worst case every byte of input yields a separate code.
	compressed := make([]byte, 0, len(uncompressed)*CodeSizeBytes)
	currentCode := uint16(uncompressed[0])
	for _, nextSymbol := range uncompressed[1:] {
		// Attempt to extend the current match by one symbol.
		lookupKey := uint32(currentCode)<<8 | uint32(nextSymbol)
		if code, ok := dictionary[lookupKey]; ok {
			currentCode = code
			continue
		}

		// The match cannot be extended any further. Emit the
		// code of the longest match and learn the extended
		// sequence, as long as the code space permits.
		compressed = binary.BigEndian.AppendUint16(compressed, currentCode)
		if nextCode < MaximumCode {
			dictionary[lookupKey] = uint16(nextCode)
			nextCode++
		}
		currentCode = uint16(nextSymbol)
	}
	return binary.BigEndian.AppendUint16(compressed, currentCode), nil
}
