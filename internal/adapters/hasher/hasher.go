// Package hasher fingerprints build orders with XXHash.
package hasher

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/boot/internal/core/domain"
	"go.trai.ch/boot/internal/core/ports"
)

var _ ports.Fingerprinter = (*Hasher)(nil)

// Hasher computes fingerprints of build orders.
type Hasher struct{}

// New creates a new Hasher.
func New() *Hasher {
	return &Hasher{}
}

// Fingerprint hashes every component of order with its designated constructor, field
// injections and hooks. Equal manifests resolving to the same order share a fingerprint.
func (h *Hasher) Fingerprint(order domain.BuildOrder) string {
	hasher := xxhash.New()
	for _, d := range order {
		hashComponent(d, hasher)
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}

func hashComponent(d *domain.ComponentDescriptor, hasher *xxhash.Digest) {
	writeString(hasher, d.ID.String())

	if ctor, err := d.Designated(); err == nil {
		writeString(hasher, ctor.Name)
		for _, p := range ctor.Params {
			writeString(hasher, p.String())
		}
	}
	_, _ = hasher.Write([]byte{0}) // Section separator

	for _, f := range d.Fields {
		writeString(hasher, f.Field)
		writeString(hasher, f.Dependency.String())
	}
	_, _ = hasher.Write([]byte{0})

	var buf [8]byte
	for _, hook := range d.SortedHooks() {
		writeString(hasher, hook.Method)
		binary.LittleEndian.PutUint64(buf[:], uint64(int64(hook.Priority))) //nolint:gosec // bit pattern only
		_, _ = hasher.Write(buf[:])
		if hook.Async {
			_, _ = hasher.Write([]byte{1})
		} else {
			_, _ = hasher.Write([]byte{0})
		}
	}
	_, _ = hasher.Write([]byte{0xff}) // Component separator
}

func writeString(hasher *xxhash.Digest, s string) {
	_, _ = hasher.WriteString(s)
	_, _ = hasher.Write([]byte{0})
}
