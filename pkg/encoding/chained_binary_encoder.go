package encoding

type chainedBinaryEncoder struct {
	encoders []BinaryEncoder
}

// NewChainedBinaryEncoder creates a BinaryEncoder that applies multiple
// encoding steps in sequence. It can be used to, for example, collect
// metrics both before and after compression.
func NewChainedBinaryEncoder(encoders []BinaryEncoder) BinaryEncoder {
	if len(encoders) == 1 {
		return encoders[0]
	}
	return &chainedBinaryEncoder{
		encoders: encoders,
	}
}

func (be *chainedBinaryEncoder) EncodeBinary(in []byte) ([]byte, error) {
	for _, encoder := range be.encoders {
		var err error
		in, err = encoder.EncodeBinary(in)
		if err != nil {
			return nil, err
		}
	}
	return in, nil
}

func (be *chainedBinaryEncoder) DecodeBinary(in []byte) ([]byte, error) {
	// Undo the encoding steps in reverse order.
	for i := len(be.encoders) - 1; i >= 0; i-- {
		var err error
		in, err = be.encoders[i].DecodeBinary(in)
		if err != nil {
			return nil, err
		}
	}
	return in, nil
}
