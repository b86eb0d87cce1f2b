// Package jsonbridge converts between encoding/json's generic representation
// and a HeadPack value tree, grounded on original_source's Object::from_json.
//
// The two representations are not isomorphic: JSON has one number type,
// HeadPack has four (SInt, UInt, Float32, Float64), and HeadPack's Bytes,
// Timestamp32 and UserDefined values have no native JSON slot at all.
// ToValue picks the narrowest faithful HeadPack representation for each
// JSON number, and FromValue renders Bytes/UserDefined payloads as base64
// strings since JSON has nothing else to put them in.
package jsonbridge

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"math/big"
	"sort"
	"strconv"

	"github.com/xcodian/headpack/errs"
	"github.com/xcodian/headpack/int128"
	"github.com/xcodian/headpack/value"
)

// ToValue parses JSON bytes into a value tree. Numbers are classified in
// the same order original_source's from_json does: an exact int64 becomes
// SInt, an exact uint64 outside the int64 range becomes UInt, an integer
// literal outside both ranges becomes a String holding its decimal text,
// and anything else is decoded as a float, choosing Float32 over Float64
// when the round trip through float32 is exact.
//
// Each JSON object becomes a Map whose entries are sorted by key; the key
// order of the JSON source is not kept.
func ToValue(data []byte) (value.Value, error) {
	var raw any

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := dec.Decode(&raw); err != nil {
		return value.Value{}, fmt.Errorf("jsonbridge: %w", err)
	}

	return fromAny(raw)
}

func fromAny(raw any) (value.Value, error) {
	switch v := raw.(type) {
	case nil:
		return value.Null(), nil
	case bool:
		return value.Bool(v), nil
	case json.Number:
		return numberToValue(v)
	case string:
		return value.String(v), nil
	case []any:
		items := make([]value.Value, 0, len(v))
		for _, e := range v {
			item, err := fromAny(e)
			if err != nil {
				return value.Value{}, err
			}
			items = append(items, item)
		}
		return value.List(items), nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		entries := make([]value.Entry, 0, len(v))
		for _, key := range keys {
			val := v[key]
			child, err := fromAny(val)
			if err != nil {
				return value.Value{}, err
			}
			entries = append(entries, value.Entry{Key: key, Value: child})
		}
		return value.Map(entries), nil
	default:
		return value.Value{}, fmt.Errorf("jsonbridge: unsupported JSON value type %T: %w", raw, errs.ErrStructural)
	}
}

func numberToValue(n json.Number) (value.Value, error) {
	if i, err := n.Int64(); err == nil {
		return value.SInt(i), nil
	}

	if bi, ok := new(big.Int).SetString(string(n), 10); ok {
		if bi.Sign() >= 0 && bi.BitLen() <= 64 {
			return value.UInt(bi.Uint64()), nil
		}

		// A pure integer literal that doesn't fit either i64 or u64: carry
		// it through as decimal text rather than losing precision to float64.
		return value.String(string(n)), nil
	}

	f, err := n.Float64()
	if err != nil {
		return value.Value{}, fmt.Errorf("jsonbridge: number %q: %w", n, err)
	}

	if f32 := float32(f); float64(f32) == f {
		return value.Float32(f32), nil
	}

	return value.Float64(f), nil
}

// FromValue renders a value tree back into JSON bytes. Bytes and
// UserDefined payloads have no JSON-native representation and are
// base64-encoded, matching the convention documented for the JSON bridge.
func FromValue(v value.Value) ([]byte, error) {
	generic, err := toAny(v)
	if err != nil {
		return nil, err
	}

	return json.Marshal(generic)
}

func toAny(v value.Value) (any, error) {
	switch v.Kind {
	case value.KindNull:
		return nil, nil
	case value.KindBool:
		return v.BoolVal, nil
	case value.KindString:
		return v.Str, nil
	case value.KindBytes:
		return base64.StdEncoding.EncodeToString(v.BytesData), nil
	case value.KindUserDefined:
		return base64.StdEncoding.EncodeToString(v.BytesData), nil
	case value.KindSInt:
		return sintJSON(v.SIntVal), nil
	case value.KindUInt:
		return uintJSON(v.UIntVal), nil
	case value.KindFloat32:
		return float64(v.F32), nil
	case value.KindFloat64:
		return v.F64, nil
	case value.KindTimestamp32:
		return v.Ts32, nil
	case value.KindList:
		out := make([]any, 0, len(v.Items))
		for _, item := range v.Items {
			child, err := toAny(item)
			if err != nil {
				return nil, err
			}
			out = append(out, child)
		}
		return out, nil
	case value.KindMap:
		out := make(map[string]any, len(v.Entries))
		for _, e := range v.Entries {
			child, err := toAny(e.Value)
			if err != nil {
				return nil, err
			}
			out[e.Key] = child
		}
		return out, nil
	default:
		return nil, fmt.Errorf("jsonbridge: unrecognized value kind %d: %w", v.Kind, errs.ErrStructural)
	}
}

// sintJSON renders n as a bare JSON number when it fits an int64 (the
// common case), falling back to a quoted decimal string once it doesn't —
// the same convention big-integer libraries use for values a JSON number
// can't carry without precision loss.
func sintJSON(n int128.Int128) any {
	s := int128SintString(n)
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return json.Number(s)
	}
	return s
}

func uintJSON(n int128.Uint128) any {
	s := int128UintString(n)
	if _, err := strconv.ParseUint(s, 10, 64); err == nil {
		return json.Number(s)
	}
	return s
}

func int128SintString(n int128.Int128) string {
	if n.IsNegative() {
		return "-" + int128UintString(n.Abs())
	}
	return int128UintString(n.AsUint128())
}

func int128UintString(u int128.Uint128) string {
	if u.IsZero() {
		return "0"
	}

	bi := new(big.Int).SetBytes(u.Bytes())
	return bi.String()
}
