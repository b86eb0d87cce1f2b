// Package headpack provides a self-describing binary serialization format
// for values shaped like JSON: maps, lists, strings, bytes, and a family
// of numeric and scalar types.
//
// A HeadPack message separates a value tree into three sections written
// back to back: a classes section (one 2-bit tag per value, packed four
// to a byte), a lengths section (each length split into 3-bit atoms, two
// packed per byte), and a payload section (every value's raw bytes,
// concatenated in depth-first order). Splitting type tags from lengths
// from data lets small, repetitive structures (many similarly-shaped map
// entries) compress away almost all of their own bookkeeping, and lets a
// decoder walk the whole message without backtracking.
//
// # Basic usage
//
//	root := value.Map([]value.Entry{
//	    {Key: "id", Value: value.SInt(1186275104)},
//	    {Key: "name", Value: value.String("AYUMI")},
//	})
//
//	encoded, err := headpack.Encode(root)
//	if err != nil {
//	    return err
//	}
//
//	decoded, err := headpack.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//
// Application code that already speaks JSON can skip building a value
// tree by hand and go through the jsonbridge package instead:
//
//	v, err := jsonbridge.ToValue(jsonBytes)
//	encoded, err := headpack.Encode(v)
//
// # Package structure
//
// This package is a thin façade over codec, which does the actual
// flattening, section assembly, and parsing. value defines the in-memory
// tree; int128 and varint implement the integer codec; bitio implements
// the classes/lengths bit-packing; userdefined is the out-of-band registry
// for the UserDefined extension space; jsonbridge converts to and from
// encoding/json; compress offers general-purpose compression for an
// already-encoded message. Per-call options (a UserDefined registry,
// relaxed UTF-8 validation) are defined in codec and passed through
// Encode and Decode here.
package headpack

import (
	"github.com/xcodian/headpack/codec"
	"github.com/xcodian/headpack/value"
)

// Encode serializes root into a HeadPack message. root must be a
// value.Map or a value.List; HeadPack has no top-level encoding for a
// bare scalar.
func Encode(root value.Value, opts ...codec.EncodeOption) ([]byte, error) {
	return codec.Encode(root, opts...)
}

// Decode parses a HeadPack message back into a value tree.
func Decode(buf []byte, opts ...codec.Option) (value.Value, error) {
	return codec.Decode(buf, opts...)
}
