package codec

import (
	"github.com/xcodian/headpack/bitio"
	"github.com/xcodian/headpack/userdefined"
	"github.com/xcodian/headpack/value"
)

// EncodeOption configures Encode.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	registry *userdefined.Registry
}

// WithRegistry supplies the out-of-band UserDefined registry Encode should
// validate extension payloads against. Without one, every UserDefined
// value in the tree must carry a zero-length payload.
func WithRegistry(reg *userdefined.Registry) EncodeOption {
	return func(c *encodeConfig) { c.registry = reg }
}

// Encode serializes root into a HeadPack message: a classes section, a
// lengths section, and a payload section, concatenated in that order.
//
// root must be a Map or a List; HeadPack has no encoding for a bare scalar
// at the top level.
func Encode(root value.Value, opts ...EncodeOption) ([]byte, error) {
	cfg := encodeConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	flat, err := flatten(root, cfg.registry)
	if err != nil {
		return nil, err
	}

	var (
		classes []uint8
		lengths []uint64
		payload []byte
	)

	for _, rec := range flat.records {
		if rec.encodeClass {
			classes = append(classes, uint8(rec.class))
		}

		lengths = append(lengths, rec.lengthField)
		payload = append(payload, rec.payload...)
	}

	out := bitio.EncodeClasses(classes, flat.isRootMap)
	out = append(out, bitio.EncodeLengths(lengths)...)
	out = append(out, payload...)

	return out, nil
}
