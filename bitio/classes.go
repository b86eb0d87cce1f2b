// Package bitio implements the two bit-packed header sections of a HeadPack
// message: the classes section (2-bit class tags, four per byte) and the
// lengths section (3-bit length atoms, two per byte). Both are standalone
// bit-writer/bit-reader utilities rather than being inlined into the codec,
// so the packing rules can be tested in isolation from the value tree.
package bitio

import (
	"fmt"

	"github.com/xcodian/headpack/errs"
)

// emptyMarkerPattern is the reserved classes-section byte pattern for a
// message with zero visible objects: low six bits 0b001100, with bit 6
// (0x40) free to carry is_root_map and bit 7 always zero.
const emptyMarkerPattern = 0b0000_1100

const emptyMarkerMask = 0b1011_1111

// EncodeClasses packs the visible-object class sequence and the
// is_root_map flag into the classes section bytes.
//
// classes must already have map-key string records filtered out — the
// classes section never carries them (spec: map keys' class is implicit).
func EncodeClasses(classes []uint8, isRootMap bool) []byte {
	rootBit := uint8(0)
	if isRootMap {
		rootBit = 1
	}

	if len(classes) == 0 {
		return []byte{emptyMarkerPattern | (rootBit << 6)}
	}

	var out []byte

	if len(classes) == 1 {
		flags := rootBit // cnt=0
		out = append(out, joinClasses(flags, classes[0], 0, 0))
		return out
	}

	// cnt=1 (V>=2): flags = (cnt<<1)|is_root_map
	flags := (uint8(1) << 1) | rootBit
	rest := classes[2:]
	k := continuationFor(len(rest))
	out = append(out, joinClasses(flags, classes[0], classes[1], k))

	for len(rest) > 0 {
		n := len(rest)
		if n > 3 {
			n = 3
		}

		var a, b, c uint8
		if n >= 1 {
			a = rest[0]
		}
		if n >= 2 {
			b = rest[1]
		}
		if n >= 3 {
			c = rest[2]
		}

		remaining := rest[n:]
		nextK := continuationFor(len(remaining))
		out = append(out, joinClasses(a, b, c, nextK))
		rest = remaining
	}

	return out
}

// continuationFor returns the continuation value (clamped to 3) describing
// how many more classes remain to be packed.
func continuationFor(remaining int) uint8 {
	if remaining >= 3 {
		return 3
	}

	return uint8(remaining) //nolint:gosec
}

func joinClasses(a, b, c, d uint8) byte {
	return (a&0b11)<<6 | (b&0b11)<<4 | (c&0b11)<<2 | (d & 0b11)
}

func splitClasses(b byte) (v0, v1, v2, v3 uint8) {
	return (b >> 6) & 0b11, (b >> 4) & 0b11, (b >> 2) & 0b11, b & 0b11
}

// DecodeClasses reads the classes section from data, returning the visible
// class sequence, the is_root_map flag, and the number of bytes consumed.
func DecodeClasses(data []byte) (classes []uint8, isRootMap bool, consumed int, err error) {
	if len(data) == 0 {
		return nil, false, 0, fmt.Errorf("classes section: %w", errs.ErrTruncatedInput)
	}

	first := data[0]
	if first&emptyMarkerMask == emptyMarkerPattern {
		return nil, (first>>6)&1 == 1, 1, nil
	}

	flags, c0, c1, k := splitClasses(first)
	isRootMap = flags&1 == 1
	cnt := (flags >> 1) & 1

	if cnt == 0 {
		return []uint8{c0}, isRootMap, 1, nil
	}

	classes = []uint8{c0, c1}
	consumed = 1
	next := k

	for next > 0 {
		if consumed >= len(data) {
			return nil, false, 0, fmt.Errorf("classes section: %w", errs.ErrTruncatedInput)
		}

		a, b, c, k2 := splitClasses(data[consumed])
		consumed++

		classes = append(classes, a)
		if next >= 2 {
			classes = append(classes, b)
		}

		if next == 3 {
			classes = append(classes, c)
			next = k2
		} else {
			break
		}
	}

	return classes, isRootMap, consumed, nil
}
