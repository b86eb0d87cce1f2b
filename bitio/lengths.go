package bitio

import (
	"fmt"

	"github.com/xcodian/headpack/errs"
)

// atomsForLength returns the 3-bit atoms that encode n, big-endian, most
// significant atom first. Zero uses exactly one atom.
func atomsForLength(n uint64) []uint8 {
	if n == 0 {
		return []uint8{0}
	}

	bitsNeeded := bitLen(n)
	atomCount := (bitsNeeded + 2) / 3

	atoms := make([]uint8, atomCount)
	for i := atomCount - 1; i >= 0; i-- {
		atoms[i] = uint8(n & 0b111) //nolint:gosec
		n >>= 3
	}

	return atoms
}

func bitLen(n uint64) int {
	bits := 0
	for n > 0 {
		bits++
		n >>= 1
	}

	return bits
}

// EncodeLengths packs one length value per object (in full flattened
// sequence order, including map keys) into the lengths section bytes.
//
// Each length becomes a run of 3-bit atoms with a continuation bit (1 for
// every atom but the last of that value, which is 0); atoms are then paired
// two per byte, high nibble first, with a zero low nibble if the total atom
// count is odd.
func EncodeLengths(lengths []uint64) []byte {
	var nibbles []uint8

	for _, length := range lengths {
		atoms := atomsForLength(length)
		for i, atom := range atoms {
			cont := uint8(1)
			if i == len(atoms)-1 {
				cont = 0
			}

			nibbles = append(nibbles, (atom<<1)|cont)
		}
	}

	out := make([]byte, 0, (len(nibbles)+1)/2)
	for i := 0; i < len(nibbles); i += 2 {
		b := nibbles[i] << 4
		if i+1 < len(nibbles) {
			b |= nibbles[i+1]
		}

		out = append(out, b)
	}

	return out
}

// LengthReader decodes lengths one at a time from the lengths section,
// refilling its internal nibble queue a byte at a time.
type LengthReader struct {
	data   []byte
	pos    int
	queue  []uint8
	queuei int
}

// NewLengthReader creates a reader over the lengths section bytes starting
// at data[0].
func NewLengthReader(data []byte) *LengthReader {
	return &LengthReader{data: data}
}

// Consumed returns the number of bytes read from the underlying section so
// far.
func (r *LengthReader) Consumed() int {
	return r.pos
}

func (r *LengthReader) nextNibble() (uint8, error) {
	if r.queuei >= len(r.queue) {
		if r.pos >= len(r.data) {
			return 0, fmt.Errorf("lengths section: %w", errs.ErrTruncatedInput)
		}

		b := r.data[r.pos]
		r.pos++
		r.queue = []uint8{b >> 4, b & 0x0F}
		r.queuei = 0
	}

	n := r.queue[r.queuei]
	r.queuei++

	return n, nil
}

// Next reads the next complete length value.
func (r *LengthReader) Next() (uint64, error) {
	var length uint64

	for {
		nibble, err := r.nextNibble()
		if err != nil {
			return 0, err
		}

		atom := uint64(nibble >> 1)
		cont := nibble & 1

		length = (length << 3) | atom

		if cont == 0 {
			return length, nil
		}
	}
}
