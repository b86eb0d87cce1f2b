// Package codec implements the HeadPack wire format: the depth-first
// flattening of a value tree into classes/lengths/payload sections (Encode)
// and the inverse reconstruction (Decode).
package codec

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/xcodian/headpack/errs"
	"github.com/xcodian/headpack/userdefined"
	"github.com/xcodian/headpack/value"
	"github.com/xcodian/headpack/varint"
)

// Fixed class length-field discriminators, per the wire format's Fixed
// sub-type table. Values 0..=16 are SInt, 17..=32 are UInt (offset by 16);
// both ranges are handled arithmetically rather than as named constants.
const (
	discrFloat32      = 33
	discrFloat64      = 34
	discrNull         = 35
	discrBoolFalse    = 36
	discrBoolTrue     = 37
	discrTimestamp32  = 38
	discrUserDefinedLo = 39
	discrUserDefinedHi = 255

	sintMax = 16 // inclusive upper bound of the SInt discriminator range
	uintMax = 32 // inclusive upper bound of the UInt discriminator range
)

// record is one flattened node: a class, the length-field value destined
// for the lengths section, and (for leaves) the raw payload bytes. Map-key
// string records set encodeClass=false so the classes section omits them.
type record struct {
	class       value.Class
	encodeClass bool
	lengthField uint64
	payload     []byte
}

// flattenResult is the output of flattening a root value: the full record
// sequence (including map keys) and whether the root is a map.
type flattenResult struct {
	records   []record
	isRootMap bool
}

// flatten depth-first-flattens root into the wire format's linear record
// sequence, per the format's flatten rules. An empty root map or list
// produces zero records (the reserved empty-collection marker handles it).
func flatten(root value.Value, reg *userdefined.Registry) (flattenResult, error) {
	switch root.Kind {
	case value.KindMap:
		if len(root.Entries) == 0 {
			return flattenResult{isRootMap: true}, nil
		}

		var out []record
		for _, e := range root.Entries {
			out = append(out, keyRecord(e.Key))

			child, err := flattenValue(e.Value, reg)
			if err != nil {
				return flattenResult{}, err
			}

			out = append(out, child...)
		}

		return flattenResult{records: out, isRootMap: true}, nil

	case value.KindList:
		if len(root.Items) == 0 {
			return flattenResult{isRootMap: false}, nil
		}

		out := []record{collectionRecord(len(root.Items), true)}
		for _, item := range root.Items {
			child, err := flattenValue(item, reg)
			if err != nil {
				return flattenResult{}, err
			}

			out = append(out, child...)
		}

		return flattenResult{records: out, isRootMap: false}, nil

	default:
		return flattenResult{}, fmt.Errorf("root must be a map or a list: %w", errs.ErrStructural)
	}
}

// flattenValue flattens a single (possibly nested, possibly scalar) value
// into its record sequence.
func flattenValue(v value.Value, reg *userdefined.Registry) ([]record, error) {
	switch v.Kind {
	case value.KindMap:
		out := []record{collectionRecord(len(v.Entries), false)}
		for _, e := range v.Entries {
			out = append(out, keyRecord(e.Key))

			child, err := flattenValue(e.Value, reg)
			if err != nil {
				return nil, err
			}

			out = append(out, child...)
		}

		return out, nil

	case value.KindList:
		out := []record{collectionRecord(len(v.Items), true)}
		for _, item := range v.Items {
			child, err := flattenValue(item, reg)
			if err != nil {
				return nil, err
			}

			out = append(out, child...)
		}

		return out, nil

	default:
		rec, err := leafRecord(v, reg)
		if err != nil {
			return nil, err
		}

		return []record{rec}, nil
	}
}

func keyRecord(key string) record {
	b := []byte(key)
	return record{
		class:       value.ClassString,
		encodeClass: false,
		lengthField: uint64(len(b)),
		payload:     b,
	}
}

func collectionRecord(count int, isList bool) record {
	lengthField := uint64(count) << 1
	if isList {
		lengthField |= 1
	}

	return record{class: value.ClassCollection, encodeClass: true, lengthField: lengthField}
}

// leafRecord builds the record for a single scalar value, per the Fixed
// sub-type table and the payload encoding rules.
func leafRecord(v value.Value, reg *userdefined.Registry) (record, error) {
	switch v.Kind {
	case value.KindString:
		b := []byte(v.Str)
		return record{class: value.ClassString, encodeClass: true, lengthField: uint64(len(b)), payload: b}, nil

	case value.KindBytes:
		return record{class: value.ClassBytes, encodeClass: true, lengthField: uint64(len(v.BytesData)), payload: v.BytesData}, nil

	case value.KindSInt:
		payload := varint.EncodeSint(v.SIntVal)
		return record{class: value.ClassFixed, encodeClass: true, lengthField: uint64(len(payload)), payload: payload}, nil

	case value.KindUInt:
		payload := varint.EncodeUint(v.UIntVal)
		return record{class: value.ClassFixed, encodeClass: true, lengthField: uint64(len(payload)) + 16, payload: payload}, nil

	case value.KindFloat32:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, math.Float32bits(v.F32))
		return record{class: value.ClassFixed, encodeClass: true, lengthField: discrFloat32, payload: buf}, nil

	case value.KindFloat64:
		buf := make([]byte, 8)
		binary.BigEndian.PutUint64(buf, math.Float64bits(v.F64))
		return record{class: value.ClassFixed, encodeClass: true, lengthField: discrFloat64, payload: buf}, nil

	case value.KindNull:
		return record{class: value.ClassFixed, encodeClass: true, lengthField: discrNull}, nil

	case value.KindBool:
		lf := uint64(discrBoolFalse)
		if v.BoolVal {
			lf = discrBoolTrue
		}

		return record{class: value.ClassFixed, encodeClass: true, lengthField: lf}, nil

	case value.KindTimestamp32:
		buf := make([]byte, 4)
		binary.BigEndian.PutUint32(buf, v.Ts32)
		return record{class: value.ClassFixed, encodeClass: true, lengthField: discrTimestamp32, payload: buf}, nil

	case value.KindUserDefined:
		if v.UserID < discrUserDefinedLo {
			return record{}, fmt.Errorf("user-defined id %d below extension range: %w", v.UserID, errs.ErrInvalidDiscriminator)
		}

		size, registered := reg.Size(v.UserID)
		switch {
		case registered && len(v.BytesData) != size:
			return record{}, fmt.Errorf("user-defined id %d expects %d payload bytes, got %d: %w", v.UserID, size, len(v.BytesData), errs.ErrStructural)
		case !registered && len(v.BytesData) != 0:
			return record{}, fmt.Errorf("user-defined id %d has no registered size, payload must be empty: %w", v.UserID, errs.ErrStructural)
		}

		return record{class: value.ClassFixed, encodeClass: true, lengthField: uint64(v.UserID), payload: v.BytesData}, nil

	default:
		return record{}, fmt.Errorf("unrecognized value kind %d: %w", v.Kind, errs.ErrStructural)
	}
}
