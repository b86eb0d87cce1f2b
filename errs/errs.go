// Package errs defines the sentinel errors returned by HeadPack's codec,
// one per error kind named in the format's error handling design. Callers
// can match a specific kind with errors.Is; call sites wrap these with
// fmt.Errorf("...: %w", ...) to add context, the same way
// arloliu-mebo/section wraps errs.ErrInvalidHeaderFlags.
package errs

import "errors"

var (
	// ErrStructural covers a non-map/non-list root, a non-string map key, or
	// a collection whose declared count exceeds the records actually
	// available to satisfy it.
	ErrStructural = errors.New("headpack: structural error")

	// ErrTruncatedInput is returned when the underlying buffer is exhausted
	// while reading the classes section, the lengths section, or a payload.
	ErrTruncatedInput = errors.New("headpack: truncated input")

	// ErrInvalidDiscriminator is returned when a Fixed-class length value
	// is above 255, when a UserDefined id below 39 is encoded or registered,
	// or when a class tag is not one of the four classes. UserDefined ids in
	// 39..=255 that are not registered are not rejected: they encode and
	// decode with an empty payload.
	ErrInvalidDiscriminator = errors.New("headpack: invalid fixed-class discriminator")

	// ErrInvalidNumericLength is returned when a Float32/Float64/Timestamp32
	// record's declared length doesn't match its fixed payload size.
	ErrInvalidNumericLength = errors.New("headpack: invalid numeric payload length")

	// ErrInvalidUTF8 is returned in strict mode when a String payload is not
	// valid UTF-8.
	ErrInvalidUTF8 = errors.New("headpack: invalid utf-8 string payload")
)
