// Package value implements the in-memory representation of a HeadPack value
// tree: the leaf component everything else in the codec builds on.
//
// A Value is immutable once built: trees are constructed whole by the JSON
// bridge or by application code, consumed by the encoder, and produced
// whole by the decoder. There is no shared ownership and no cycles.
package value

import "github.com/xcodian/headpack/int128"

// Kind identifies which of HeadPack's value variants a Value holds.
//
// Kind is deliberately richer than the wire format's 2-bit class: several
// Kinds (SInt, UInt, Float32, Float64, Null, Bool, Timestamp32, UserDefined)
// share the wire-level Fixed class and are distinguished only by their
// length-field discriminator (see the Class method and the codec package's
// Fixed sub-type table).
type Kind uint8

const (
	KindString Kind = iota
	KindBytes
	KindMap
	KindList
	KindSInt
	KindUInt
	KindFloat32
	KindFloat64
	KindNull
	KindBool
	KindTimestamp32
	KindUserDefined
)

// Class is the wire-level 2-bit type tag for a Kind.
type Class uint8

const (
	ClassString     Class = 0
	ClassBytes      Class = 1
	ClassCollection Class = 2
	ClassFixed      Class = 3
)

// Class returns the wire-level class for k.
func (k Kind) Class() Class {
	switch k {
	case KindString:
		return ClassString
	case KindBytes:
		return ClassBytes
	case KindMap, KindList:
		return ClassCollection
	default:
		return ClassFixed
	}
}

// Entry is a single key-value pair in a Map, in insertion order.
type Entry struct {
	Key   string
	Value Value
}

// Value is a single node of a HeadPack value tree.
//
// Only the fields relevant to Kind are populated; the zero value of the
// others is ignored.
type Value struct {
	Kind Kind

	Str       string      // KindString
	BytesData []byte      // KindBytes, KindUserDefined (payload)
	Entries   []Entry     // KindMap
	Items     []Value     // KindList
	SIntVal   int128.Int128  // KindSInt
	UIntVal   int128.Uint128 // KindUInt
	F32       float32     // KindFloat32
	F64       float64     // KindFloat64
	BoolVal   bool        // KindBool
	Ts32      uint32      // KindTimestamp32 (seconds since epoch)
	UserID    uint8       // KindUserDefined, valid range 39..=255
}

// String creates a KindString value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Bytes creates a KindBytes value. The slice is retained, not copied.
func Bytes(b []byte) Value { return Value{Kind: KindBytes, BytesData: b} }

// Map creates a KindMap value from an ordered slice of entries. Keys must
// be unique; the encoder does not enforce this (it is a caller invariant,
// the same as duplicate JSON object keys).
func Map(entries []Entry) Value { return Value{Kind: KindMap, Entries: entries} }

// List creates a KindList value.
func List(items []Value) Value { return Value{Kind: KindList, Items: items} }

// Bool creates a KindBool value.
func Bool(b bool) Value { return Value{Kind: KindBool, BoolVal: b} }

// Null creates a KindNull value.
func Null() Value { return Value{Kind: KindNull} }

// SInt creates a KindSInt value from an int64. Use SIntBig for the full
// 128-bit range.
func SInt(n int64) Value { return Value{Kind: KindSInt, SIntVal: int128.FromInt64(n)} }

// SIntBig creates a KindSInt value spanning the full Int128 range.
func SIntBig(n int128.Int128) Value { return Value{Kind: KindSInt, SIntVal: n} }

// UInt creates a KindUInt value from a uint64. Use UIntBig for the full
// 128-bit range.
func UInt(n uint64) Value { return Value{Kind: KindUInt, UIntVal: int128.FromUint64(n)} }

// UIntBig creates a KindUInt value spanning the full Uint128 range.
func UIntBig(n int128.Uint128) Value { return Value{Kind: KindUInt, UIntVal: n} }

// Float32 creates a KindFloat32 value.
func Float32(f float32) Value { return Value{Kind: KindFloat32, F32: f} }

// Float64 creates a KindFloat64 value.
func Float64(f float64) Value { return Value{Kind: KindFloat64, F64: f} }

// Timestamp32 creates a KindTimestamp32 value from seconds since epoch.
func Timestamp32(seconds uint32) Value {
	return Value{Kind: KindTimestamp32, Ts32: seconds}
}

// UserDefined creates a KindUserDefined value. id must be in 39..=255;
// callers that need the full extension range should validate against the
// userdefined registry before constructing this directly.
func UserDefined(id uint8, data []byte) Value {
	return Value{Kind: KindUserDefined, UserID: id, BytesData: data}
}

// Equal reports whether a and b represent the same value tree. It is used
// by the round-trip tests and by cmd/headpack-bench's round-trip check.
func Equal(a, b Value) bool {
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindString:
		return a.Str == b.Str
	case KindBytes:
		return string(a.BytesData) == string(b.BytesData)
	case KindMap:
		if len(a.Entries) != len(b.Entries) {
			return false
		}
		for i := range a.Entries {
			if a.Entries[i].Key != b.Entries[i].Key || !Equal(a.Entries[i].Value, b.Entries[i].Value) {
				return false
			}
		}
		return true
	case KindList:
		if len(a.Items) != len(b.Items) {
			return false
		}
		for i := range a.Items {
			if !Equal(a.Items[i], b.Items[i]) {
				return false
			}
		}
		return true
	case KindSInt:
		return a.SIntVal == b.SIntVal
	case KindUInt:
		return a.UIntVal == b.UIntVal
	case KindFloat32:
		return a.F32 == b.F32
	case KindFloat64:
		return a.F64 == b.F64
	case KindNull:
		return true
	case KindBool:
		return a.BoolVal == b.BoolVal
	case KindTimestamp32:
		return a.Ts32 == b.Ts32
	case KindUserDefined:
		return a.UserID == b.UserID && string(a.BytesData) == string(b.BytesData)
	default:
		return false
	}
}
