package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/zerr"
)

// Verifier checks that an on-disk layout is complete.
type Verifier struct{}

// NewVerifier creates a new Verifier.
func NewVerifier() *Verifier {
	return &Verifier{}
}

// VerifyPaths reports whether every relative path exists under root.
func (v *Verifier) VerifyPaths(root string, paths []string) (bool, error) {
	for _, rel := range paths {
		p := filepath.Join(root, rel)
		if _, err := os.Stat(p); err != nil {
			if os.IsNotExist(err) {
				return false, nil
			}
			return false, zerr.With(zerr.Wrap(err, "failed to stat path"), "path", p)
		}
	}
	return true, nil
}
