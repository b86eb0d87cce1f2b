// Package varint implements HeadPack's integer payload codec: big-endian,
// leading-zero-stripped unsigned integers, and a sign-in-low-bit signed
// integer encoding built on top of it.
//
// These routines are the only means of encoding Sint/Uint payload bytes.
// The byte length they produce is the entity's length field in the lengths
// section (offset by 16 for Uint, per the Fixed sub-type table).
package varint

import "github.com/xcodian/headpack/int128"

// EncodeUint returns the big-endian representation of n with leading zero
// bytes stripped. Zero encodes as the empty byte string.
func EncodeUint(n int128.Uint128) []byte {
	return n.Bytes()
}

// DecodeUint decodes a big-endian, possibly-truncated byte string into a
// Uint128. Empty input decodes to zero.
func DecodeUint(data []byte) int128.Uint128 {
	return int128.FromBytes(data)
}

// EncodeSint encodes a signed 128-bit integer as m = (|n| << 1) | sign,
// interpreted as an unsigned 128-bit integer, then delegates to EncodeUint.
//
// The low bit carries the sign (1 for negative). Negating MinInt128
// wraps around in fixed-width arithmetic, which is exactly what produces a
// representable (and round-trippable) encoding for it: see DecodeSint.
func EncodeSint(n int128.Int128) []byte {
	mag := n.Abs().Lsh1()
	if n.IsNegative() {
		mag = mag.SetBit0()
	}

	return EncodeUint(mag)
}

// DecodeSint is the inverse of EncodeSint. It round-trips every Int128
// value, including MinInt128: for MinInt128, EncodeSint produces m=1 (the
// magnitude 1<<127 shifted left by one bit overflows to zero, then the sign
// bit is set), and DecodeSint recognizes the resulting zero magnitude on the
// negative branch as the MinInt128 special case.
func DecodeSint(data []byte) int128.Int128 {
	u := DecodeUint(data)

	negative := u.Bit0() == 1
	mag := u.Rsh1()

	if negative {
		if mag.IsZero() {
			return int128.MinInt128
		}

		return int128.FromUint128(mag).Neg()
	}

	return int128.FromUint128(mag)
}
