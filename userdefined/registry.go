// Package userdefined provides an out-of-band registry for the HeadPack
// UserDefined extension space (discriminator ids 39..=255).
//
// The wire format's length field for a UserDefined record holds only the
// id; it leaves no room for an independent payload byte count. Both ends
// of a connection must therefore agree, out of band, on how many payload
// bytes each id carries. Registry is that agreement: it maps an id to a
// fixed payload size and a human-readable name, and a name hash (via
// xxhash) that two independently-built registries can compare cheaply to
// catch a skewed extension schema before it corrupts a decode.
package userdefined

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/xcodian/headpack/errs"
)

const (
	minID = 39
	maxID = 255
)

type entry struct {
	name     string
	size     int
	nameHash uint64
}

// Registry maps UserDefined ids to their out-of-band payload shape.
//
// A nil *Registry is valid and behaves as an empty registry: every id is
// unregistered, so every UserDefined value must carry a zero-length
// payload (see the codec package's leafRecord). This lets Encode/Decode
// callers omit a registry entirely when their message has no extension
// values, the same way mebo callers can skip a column's optional flags.
type Registry struct {
	entries map[uint8]entry
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[uint8]entry)}
}

// Register associates id with a fixed payload size in bytes and a name
// used for diagnostics and cross-registry hash comparison. It returns an
// error if id is outside the extension range or already registered.
func (r *Registry) Register(id uint8, name string, size int) error {
	if id < minID {
		return fmt.Errorf("user-defined id %d below extension range [%d, %d]: %w", id, minID, maxID, errs.ErrInvalidDiscriminator)
	}

	if size < 0 {
		return fmt.Errorf("user-defined id %d: negative size %d: %w", id, size, errs.ErrStructural)
	}

	if _, exists := r.entries[id]; exists {
		return fmt.Errorf("user-defined id %d already registered: %w", id, errs.ErrStructural)
	}

	r.entries[id] = entry{name: name, size: size, nameHash: xxhash.Sum64String(name)}
	return nil
}

// Size reports the registered payload size for id, and whether id is
// registered at all.
func (r *Registry) Size(id uint8) (int, bool) {
	if r == nil {
		return 0, false
	}

	e, ok := r.entries[id]
	return e.size, ok
}

// Name reports the registered name for id, and whether id is registered.
func (r *Registry) Name(id uint8) (string, bool) {
	if r == nil {
		return "", false
	}

	e, ok := r.entries[id]
	return e.name, ok
}

// NameHash reports the xxhash of the registered name for id, letting two
// independently-built registries compare their schema for id without
// transmitting the name itself.
func (r *Registry) NameHash(id uint8) (uint64, bool) {
	if r == nil {
		return 0, false
	}

	e, ok := r.entries[id]
	return e.nameHash, ok
}
