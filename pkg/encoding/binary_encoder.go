package encoding

// BinaryEncoder can be used to encode binary data. Examples of encoding
// steps include compression and the collection of metrics. These
// encoding steps must be reversible.
//
// Many applications give a special meaning to empty data (e.g., an
// empty file). Because of that, implementations of BinaryEncoder should
// ensure that empty data remains empty when encoded.
type BinaryEncoder interface {
	EncodeBinary(in []byte) ([]byte, error)
	DecodeBinary(in []byte) ([]byte, error)
}
