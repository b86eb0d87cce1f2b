package compress

import "fmt"

// Compressor compresses a byte slice, typically an already-encoded
// HeadPack message.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

// Algorithm identifies a compression algorithm.
type Algorithm int

const (
	None Algorithm = iota
	Zstd
	S2
	LZ4
)

func (a Algorithm) String() string {
	switch a {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	case S2:
		return "s2"
	case LZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// New returns the Codec for the given algorithm.
func New(a Algorithm) (Codec, error) {
	switch a {
	case None:
		return NoOpCodec{}, nil
	case Zstd:
		return ZstdCodec{}, nil
	case S2:
		return S2Codec{}, nil
	case LZ4:
		return LZ4Codec{}, nil
	default:
		return nil, fmt.Errorf("compress: unknown algorithm %d", a)
	}
}

// All lists every algorithm New accepts, in a stable order convenient for
// benchmark comparisons.
func All() []Algorithm { return []Algorithm{None, Zstd, S2, LZ4} }
