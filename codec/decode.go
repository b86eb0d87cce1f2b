package codec

import (
	"encoding/binary"
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/xcodian/headpack/bitio"
	"github.com/xcodian/headpack/errs"
	"github.com/xcodian/headpack/userdefined"
	"github.com/xcodian/headpack/value"
	"github.com/xcodian/headpack/varint"
)

// Option configures Decode.
type Option func(*decodeConfig)

type decodeConfig struct {
	strictUTF8 bool
	registry   *userdefined.Registry
}

// WithStrictUTF8 controls whether String payload bytes are validated as
// UTF-8. It defaults to true; passing false accepts arbitrary bytes and
// reinterprets them as a Go string verbatim, matching the permissive mode
// original_source documents for legacy producers that emit Latin-1 text.
func WithStrictUTF8(strict bool) Option {
	return func(c *decodeConfig) { c.strictUTF8 = strict }
}

// WithExtensionRegistry supplies the out-of-band UserDefined registry
// Decode should consult to learn each extension id's payload size. Without
// one, every UserDefined record decodes to an empty payload.
func WithExtensionRegistry(reg *userdefined.Registry) Option {
	return func(c *decodeConfig) { c.registry = reg }
}

// flatItem is one structurally-resolved node: its wire class and
// length-field value, recovered from the classes and lengths sections
// before any payload byte has been read.
type flatItem struct {
	class  value.Class
	length uint64
}

// Decode parses a HeadPack message back into a value tree.
//
// Decoding proceeds in two passes over the three wire sections, mirroring
// Encode's own two halves: parseStructure walks the classes and lengths
// sections together to recover the full pre-order node sequence (classes
// and lengths interleave with collection recursion; payload does not, so
// its start offset is unknown until this pass completes). buildRoot then
// walks that resolved sequence a second time, now slicing the payload
// section in the same order to materialize actual values.
func Decode(buf []byte, opts ...Option) (value.Value, error) {
	cfg := decodeConfig{strictUTF8: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes, isRootMap, consumed, err := bitio.DecodeClasses(buf)
	if err != nil {
		return value.Value{}, err
	}

	lengthReader := bitio.NewLengthReader(buf[consumed:])

	items, err := parseStructure(classes, isRootMap, lengthReader)
	if err != nil {
		return value.Value{}, err
	}

	payloadStart := consumed + lengthReader.Consumed()
	if payloadStart > len(buf) {
		return value.Value{}, fmt.Errorf("lengths section overruns buffer: %w", errs.ErrTruncatedInput)
	}

	return buildRoot(items, isRootMap, buf[payloadStart:], cfg)
}

// structParser walks the classes and lengths sections together, expanding
// each Collection record into its children as it goes.
type structParser struct {
	classes  []uint8
	classIdx int
	lengths  *bitio.LengthReader
}

func (p *structParser) nextClass() (value.Class, error) {
	if p.classIdx >= len(p.classes) {
		return 0, fmt.Errorf("classes section exhausted: %w", errs.ErrStructural)
	}

	c := p.classes[p.classIdx]
	p.classIdx++
	return value.Class(c), nil
}

func (p *structParser) walkNode(out *[]flatItem) error {
	class, err := p.nextClass()
	if err != nil {
		return err
	}

	length, err := p.lengths.Next()
	if err != nil {
		return fmt.Errorf("lengths section: %w", err)
	}

	*out = append(*out, flatItem{class: class, length: length})
	return p.walkChildren(class, length, out)
}

func (p *structParser) walkChildren(class value.Class, length uint64, out *[]flatItem) error {
	if class != value.ClassCollection {
		return nil
	}

	isList := length&1 == 1
	count := length >> 1

	if isList {
		for i := uint64(0); i < count; i++ {
			if err := p.walkNode(out); err != nil {
				return err
			}
		}
		return nil
	}

	for i := uint64(0); i < count; i++ {
		keyLen, err := p.lengths.Next()
		if err != nil {
			return fmt.Errorf("lengths section: %w", err)
		}

		*out = append(*out, flatItem{class: value.ClassString, length: keyLen})

		if err := p.walkNode(out); err != nil {
			return err
		}
	}

	return nil
}

// parseStructure resolves the full flat node sequence for a message. A
// root map has no collection marker of its own (see flatten), so its
// pairs are read directly until the classes section is exhausted; a
// non-empty root list starts with its own Collection record, consistent
// with how flatten emits it.
func parseStructure(classes []uint8, isRootMap bool, lengths *bitio.LengthReader) ([]flatItem, error) {
	p := &structParser{classes: classes, lengths: lengths}

	var out []flatItem

	if isRootMap {
		for p.classIdx < len(classes) {
			keyLen, err := p.lengths.Next()
			if err != nil {
				return nil, fmt.Errorf("lengths section: %w", err)
			}

			out = append(out, flatItem{class: value.ClassString, length: keyLen})

			if err := p.walkNode(&out); err != nil {
				return nil, err
			}
		}

		return out, nil
	}

	if len(classes) == 0 {
		return nil, nil
	}

	if err := p.walkNode(&out); err != nil {
		return nil, err
	}

	if p.classIdx != len(classes) {
		return nil, fmt.Errorf("trailing classes after root list: %w", errs.ErrStructural)
	}

	return out, nil
}

// valueBuilder walks a resolved flat node sequence a second time,
// consuming payload bytes in step to materialize a value tree.
type valueBuilder struct {
	items    []flatItem
	idx      int
	payload  []byte
	pos      int
	registry *userdefined.Registry
	strict   bool
}

func buildRoot(items []flatItem, isRootMap bool, payload []byte, cfg decodeConfig) (value.Value, error) {
	b := &valueBuilder{items: items, payload: payload, registry: cfg.registry, strict: cfg.strictUTF8}

	if isRootMap {
		var entries []value.Entry

		for b.idx < len(items) {
			keyItem := items[b.idx]
			b.idx++

			keyBytes, err := b.takePayload(keyItem.length)
			if err != nil {
				return value.Value{}, err
			}

			key, err := b.decodeString(keyBytes)
			if err != nil {
				return value.Value{}, err
			}

			v, err := b.buildNode()
			if err != nil {
				return value.Value{}, err
			}

			entries = append(entries, value.Entry{Key: key, Value: v})
		}

		return value.Map(entries), nil
	}

	if len(items) == 0 {
		return value.List(nil), nil
	}

	root, err := b.buildNode()
	if err != nil {
		return value.Value{}, err
	}

	if root.Kind != value.KindList {
		return value.Value{}, fmt.Errorf("root list marker was not a list: %w", errs.ErrStructural)
	}

	return root, nil
}

func (b *valueBuilder) takePayload(n uint64) ([]byte, error) {
	if uint64(len(b.payload)-b.pos) < n {
		return nil, fmt.Errorf("payload section: %w", errs.ErrTruncatedInput)
	}

	out := b.payload[b.pos : b.pos+int(n)]
	b.pos += int(n)
	return out, nil
}

func (b *valueBuilder) decodeString(raw []byte) (string, error) {
	if b.strict && !utf8.Valid(raw) {
		return "", fmt.Errorf("string payload: %w", errs.ErrInvalidUTF8)
	}

	return string(raw), nil
}

func (b *valueBuilder) buildNode() (value.Value, error) {
	item := b.items[b.idx]
	b.idx++
	return b.buildFrom(item.class, item.length)
}

func (b *valueBuilder) buildFrom(class value.Class, length uint64) (value.Value, error) {
	switch class {
	case value.ClassString:
		raw, err := b.takePayload(length)
		if err != nil {
			return value.Value{}, err
		}

		s, err := b.decodeString(raw)
		if err != nil {
			return value.Value{}, err
		}

		return value.String(s), nil

	case value.ClassBytes:
		raw, err := b.takePayload(length)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bytes(append([]byte(nil), raw...)), nil

	case value.ClassCollection:
		return b.buildCollection(length)

	case value.ClassFixed:
		return b.buildFixed(length)

	default:
		return value.Value{}, fmt.Errorf("class %d: %w", class, errs.ErrInvalidDiscriminator)
	}
}

func (b *valueBuilder) buildCollection(length uint64) (value.Value, error) {
	isList := length&1 == 1
	count := length >> 1

	if isList {
		items := make([]value.Value, 0, count)

		for i := uint64(0); i < count; i++ {
			v, err := b.buildNode()
			if err != nil {
				return value.Value{}, err
			}

			items = append(items, v)
		}

		return value.List(items), nil
	}

	entries := make([]value.Entry, 0, count)

	for i := uint64(0); i < count; i++ {
		keyItem := b.items[b.idx]
		b.idx++

		keyBytes, err := b.takePayload(keyItem.length)
		if err != nil {
			return value.Value{}, err
		}

		key, err := b.decodeString(keyBytes)
		if err != nil {
			return value.Value{}, err
		}

		v, err := b.buildNode()
		if err != nil {
			return value.Value{}, err
		}

		entries = append(entries, value.Entry{Key: key, Value: v})
	}

	return value.Map(entries), nil
}

func (b *valueBuilder) buildFixed(length uint64) (value.Value, error) {
	switch {
	case length <= sintMax:
		raw, err := b.takePayload(length)
		if err != nil {
			return value.Value{}, err
		}

		return value.SIntBig(varint.DecodeSint(raw)), nil

	case length <= uintMax:
		raw, err := b.takePayload(length - 16)
		if err != nil {
			return value.Value{}, err
		}

		return value.UIntBig(varint.DecodeUint(raw)), nil

	case length == discrFloat32:
		raw, err := b.takePayload(4)
		if err != nil {
			return value.Value{}, err
		}

		return value.Float32(math.Float32frombits(binary.BigEndian.Uint32(raw))), nil

	case length == discrFloat64:
		raw, err := b.takePayload(8)
		if err != nil {
			return value.Value{}, err
		}

		return value.Float64(math.Float64frombits(binary.BigEndian.Uint64(raw))), nil

	case length == discrNull:
		return value.Null(), nil

	case length == discrBoolFalse:
		return value.Bool(false), nil

	case length == discrBoolTrue:
		return value.Bool(true), nil

	case length == discrTimestamp32:
		raw, err := b.takePayload(4)
		if err != nil {
			return value.Value{}, err
		}

		return value.Timestamp32(binary.BigEndian.Uint32(raw)), nil

	case length >= discrUserDefinedLo && length <= discrUserDefinedHi:
		id := uint8(length)
		size, _ := b.registry.Size(id)

		raw, err := b.takePayload(uint64(size))
		if err != nil {
			return value.Value{}, err
		}

		return value.UserDefined(id, append([]byte(nil), raw...)), nil

	default:
		return value.Value{}, fmt.Errorf("fixed length discriminator %d out of range: %w", length, errs.ErrInvalidDiscriminator)
	}
}
