// Package int128 provides fixed-width 128-bit integer arithmetic for the
// handful of operations the HeadPack integer codec needs: big-endian byte
// conversion, a single bit shift, and two's-complement negation.
//
// It intentionally does not wrap math/big. math/big.Int is an
// arbitrary-precision, heap-allocating type; every value here is exactly
// two uint64 words and every operation is a fixed number of instructions,
// which matters on the encode/decode hot path.
package int128

import "encoding/binary"

// Uint128 is an unsigned 128-bit integer stored as two 64-bit words.
type Uint128 struct {
	Hi uint64
	Lo uint64
}

// Int128 is a signed 128-bit integer in two's-complement representation,
// stored with the same bit layout as Uint128. The top bit of Hi is the sign.
type Int128 struct {
	Hi uint64
	Lo uint64
}

// MinInt128 is the smallest representable Int128 value.
var MinInt128 = Int128{Hi: 0x8000000000000000, Lo: 0}

// Zero is the zero-valued Uint128.
var Zero = Uint128{}

// FromUint64 widens a uint64 into a Uint128.
func FromUint64(v uint64) Uint128 {
	return Uint128{Lo: v}
}

// FromInt64 widens an int64 into an Int128, sign-extending into Hi.
func FromInt64(v int64) Int128 {
	hi := uint64(0)
	if v < 0 {
		hi = ^uint64(0)
	}

	return Int128{Hi: hi, Lo: uint64(v)}
}

// IsZero reports whether u is zero.
func (u Uint128) IsZero() bool {
	return u.Hi == 0 && u.Lo == 0
}

// Lsh1 shifts u left by one bit, discarding any bit shifted out of the top.
func (u Uint128) Lsh1() Uint128 {
	return Uint128{
		Hi: (u.Hi << 1) | (u.Lo >> 63),
		Lo: u.Lo << 1,
	}
}

// Rsh1 shifts u right by one bit.
func (u Uint128) Rsh1() Uint128 {
	return Uint128{
		Hi: u.Hi >> 1,
		Lo: (u.Lo >> 1) | (u.Hi << 63),
	}
}

// SetBit0 sets the least significant bit of u.
func (u Uint128) SetBit0() Uint128 {
	u.Lo |= 1
	return u
}

// Bit0 returns the least significant bit of u.
func (u Uint128) Bit0() uint64 {
	return u.Lo & 1
}

// Bytes returns the big-endian 16-byte representation of u with leading
// zero bytes stripped. A zero value encodes as an empty slice.
func (u Uint128) Bytes() []byte {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[0:8], u.Hi)
	binary.BigEndian.PutUint64(buf[8:16], u.Lo)

	i := 0
	for i < len(buf) && buf[i] == 0 {
		i++
	}

	out := make([]byte, len(buf)-i)
	copy(out, buf[i:])

	return out
}

// FromBytes decodes a big-endian byte slice (at most 16 bytes) into a
// Uint128. An empty slice decodes to zero.
func FromBytes(data []byte) Uint128 {
	var buf [16]byte
	if len(data) > 16 {
		data = data[len(data)-16:]
	}
	copy(buf[16-len(data):], data)

	return Uint128{
		Hi: binary.BigEndian.Uint64(buf[0:8]),
		Lo: binary.BigEndian.Uint64(buf[8:16]),
	}
}

// IsNegative reports whether n's sign bit is set.
func (n Int128) IsNegative() bool {
	return n.Hi>>63 == 1
}

// AsUint128 reinterprets n's bit pattern as an unsigned value.
func (n Int128) AsUint128() Uint128 {
	return Uint128{Hi: n.Hi, Lo: n.Lo}
}

// FromUint128 reinterprets u's bit pattern as a signed value.
func FromUint128(u Uint128) Int128 {
	return Int128{Hi: u.Hi, Lo: u.Lo}
}

// Neg returns the two's-complement negation of n. Negating MinInt128
// overflows back to MinInt128, matching fixed-width wraparound semantics.
func (n Int128) Neg() Int128 {
	hi := ^n.Hi
	lo := ^n.Lo + 1
	if lo == 0 { // carry out of the low word
		hi++
	}

	return Int128{Hi: hi, Lo: lo}
}

// Abs returns the magnitude of n as an unsigned value. For MinInt128 this
// yields exactly 1<<127, the correct (non-overflowing) magnitude: two's
// complement negation of MinInt128 reproduces MinInt128's own bit pattern,
// which reinterpreted as unsigned is 1<<127.
func (n Int128) Abs() Uint128 {
	if n.IsNegative() {
		return n.Neg().AsUint128()
	}

	return n.AsUint128()
}

// Cmp compares a and b, returning -1, 0 or 1.
func (a Int128) Cmp(b Int128) int {
	if a.IsNegative() != b.IsNegative() {
		if a.IsNegative() {
			return -1
		}

		return 1
	}

	return a.AsUint128().Cmp(b.AsUint128())
}

// Cmp compares a and b, returning -1, 0 or 1.
func (a Uint128) Cmp(b Uint128) int {
	switch {
	case a.Hi != b.Hi:
		if a.Hi < b.Hi {
			return -1
		}

		return 1
	case a.Lo != b.Lo:
		if a.Lo < b.Lo {
			return -1
		}

		return 1
	default:
		return 0
	}
}
