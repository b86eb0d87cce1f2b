package compress

// NoOpCodec returns its input unchanged; it exists as a zero-overhead
// baseline for comparing the other algorithms against.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

func (NoOpCodec) Compress(data []byte) ([]byte, error)   { return data, nil }
func (NoOpCodec) Decompress(data []byte) ([]byte, error) { return data, nil }
