package fs

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Hasher computes content digests.
type Hasher struct {
	walker *Walker
}

// NewHasher creates a new Hasher.
func NewHasher(walker *Walker) *Hasher {
	return &Hasher{walker: walker}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// ComputeTreeHash digests the relative paths and contents of every file under root.
func (h *Hasher) ComputeTreeHash(root string) (string, error) {
	hasher := xxhash.New()

	for entry, err := range h.walker.Walk(root) {
		if err != nil {
			return "", zerr.With(zerr.Wrap(err, "failed to walk tree"), "path", root)
		}
		if entry.Dir {
			continue
		}

		_, _ = hasher.WriteString(entry.Rel)
		_, _ = hasher.Write([]byte{0})

		sum, err := h.ComputeFileHash(entry.Path)
		if err != nil {
			return "", err
		}
		if err := binary.Write(hasher, binary.LittleEndian, sum); err != nil {
			return "", zerr.Wrap(err, "failed to write hash to digest")
		}
	}

	return fmt.Sprintf("%016x", hasher.Sum64()), nil
}

// ComputeKey digests a sequence of strings into a short stable key.
func ComputeKey(parts ...string) string {
	hasher := xxhash.New()
	for _, p := range parts {
		_, _ = hasher.WriteString(p)
		_, _ = hasher.Write([]byte{0})
	}
	return fmt.Sprintf("%016x", hasher.Sum64())
}
