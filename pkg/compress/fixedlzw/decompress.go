package fixedlzw

import (
	"encoding/binary"
	"math"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// dictionaryEntry describes a sequence that was learned while
// decompressing. Every learned sequence is a contiguous part of the
// decompressed output, so it suffices to store its location.
type dictionaryEntry struct {
	offset int
	length int
}

// Decompress data that was compressed using Compress().
//
// The decompressor rebuilds the dictionary in lockstep with the
// compressor. Any code that is not in the dictionary, and is also not
// the code that the compressor would have assigned last, causes
// decompression to fail with a *BadCodeError.
func Decompress(compressed []byte) ([]byte, error) {
	return DecompressWithLimit(compressed, math.MaxInt)
}

// DecompressWithLimit is identical to Decompress(), except that it
// fails as soon as the decompressed output would exceed a given size.
// This permits processing untrusted input without running out of
// memory.
func DecompressWithLimit(compressed []byte, maximumSizeBytes int) ([]byte, error) {
	if len(compressed) == 0 {
		// Empty input decompresses to empty output.
		return []byte{}, nil
	}
	if len(compressed)%CodeSizeBytes != 0 {
		return nil, status.Errorf(
			codes.InvalidArgument,
			"Compressed input is %d bytes in size, which is not a multiple of the code size of %d bytes",
			len(compressed),
			CodeSizeBytes,
		)
	}
	codeCount := len(compressed) / CodeSizeBytes
	if maximumSizeBytes < codeCount {
		// Each code yields at least one byte of output.
		return nil, status.Errorf(
			codes.InvalidArgument,
			"Compressed input contains %d codes, which exceeds the permitted maximum decompressed size of %d bytes",
			codeCount,
			maximumSizeBytes,
		)
	}

	// The first code can only refer to a literal, as no sequences
	// have been learned at this point.
	firstCode := binary.BigEndian.Uint16(compressed)
	if firstCode >= literalCodes {
		return nil, &BadCodeError{
			Code:     firstCode,
			Index:    0,
			NextCode: literalCodes,
		}
	}
	decompressed := make([]byte, 0, len(compressed))
	decompressed = append(decompressed, byte(firstCode))
	previous := dictionaryEntry{offset: 0, length: 1}

	learnedCodes := codeCount - 1
	if learnedCodes > MaximumCode-literalCodes {
		learnedCodes = MaximumCode - literalCodes
	}
	dictionary := make([]dictionaryEntry, 0, learnedCodes)
	nextCode := literalCodes

	for i := 1; i < codeCount; i++ {
		currentCode := binary.BigEndian.Uint16(compressed[i*CodeSizeBytes:])
		current := dictionaryEntry{offset: len(decompressed)}
		var learned dictionaryEntry
		switch {
		case currentCode < literalCodes:
			current.length = 1
		case int(currentCode) < nextCode:
			learned = dictionary[currentCode-literalCodes]
			current.length = learned.length
		case int(currentCode) == nextCode && nextCode < MaximumCode:
			// The compressor emitted the code of the
			// sequence it learned most recently, which we
			// haven't learned yet. That sequence must be
			// the previous one, followed by its own first
			// symbol.
			current.length = previous.length + 1
		default:
			return nil, &BadCodeError{
				Code:     currentCode,
				Index:    i,
				NextCode: nextCode,
			}
		}
		if current.length > maximumSizeBytes-len(decompressed) {
			return nil, status.Errorf(
				codes.InvalidArgument,
				"Decompressed output exceeds the permitted maximum of %d bytes, with %d of %d codes processed",
				maximumSizeBytes,
				i,
				codeCount,
			)
		}

		switch {
		case currentCode < literalCodes:
			decompressed = append(decompressed, byte(currentCode))
		case learned.length > 0:
			decompressed = append(decompressed, decompressed[learned.offset:learned.offset+learned.length]...)
		default:
			decompressed = append(decompressed, decompressed[previous.offset:previous.offset+previous.length]...)
			decompressed = append(decompressed, decompressed[previous.offset])
		}

		// The previous sequence followed by the first symbol of
		// the current one is the sequence the compressor
		// learned when emitting the previous code. As both are
		// adjacent in the output, it can be referenced in place.
		if nextCode < MaximumCode {
			dictionary = append(dictionary, dictionaryEntry{
				offset: previous.offset,
				length: previous.length + 1,
			})
			nextCode++
		}
		previous = current
	}
	return decompressed, nil
}
