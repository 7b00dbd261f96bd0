package plan

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Resolver allocates unique destination paths within one planning pass.
// A destination is taken when an earlier entry already claimed it or when
// something exists at that path on disk.
type Resolver struct {
	claimed map[string]struct{}
	exists  func(string) bool
}

// NewResolver returns a resolver that probes the real filesystem.
func NewResolver() *Resolver {
	return NewResolverWithExists(func(path string) bool {
		_, err := os.Lstat(path)
		return err == nil
	})
}

// NewResolverWithExists allows injecting the existence probe (used in tests).
func NewResolverWithExists(exists func(string) bool) *Resolver {
	return &Resolver{claimed: make(map[string]struct{}), exists: exists}
}

// Resolve returns the final destination for dest, appending the lowest free
// numeric disambiguator before the extension when the path is taken:
// name.ext, name (1).ext, name (2).ext, and so on. The second return value
// reports whether a disambiguator was needed. The returned path is claimed
// for the remainder of the pass.
func (r *Resolver) Resolve(dest string) (string, bool) {
	if !r.taken(dest) {
		r.claimed[dest] = struct{}{}
		return dest, false
	}

	dir := filepath.Dir(dest)
	ext := filepath.Ext(dest)
	stem := strings.TrimSuffix(filepath.Base(dest), ext)
	for n := 1; ; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		if r.taken(candidate) {
			continue
		}
		r.claimed[candidate] = struct{}{}
		return candidate, true
	}
}

func (r *Resolver) taken(path string) bool {
	if _, ok := r.claimed[path]; ok {
		return true
	}
	return r.exists(path)
}
