// Package guard validates that a target directory is eligible for a
// destructive organize pass. The checks are advisory safety against
// accidental damage to well-known system locations, not a security
// sandbox.
package guard

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"tidy/internal/services"
)

// wellKnownSubdirs are the user-directory names refused relative to the
// home directory, alongside their configured equivalents.
var wellKnownSubdirs = []string{"Downloads", "Documents", "Desktop"}

// Guard holds the resolved denylist for a run.
type Guard struct {
	home     string
	denylist []string
}

// New builds a guard using the current user's home directory plus any
// configured denylist additions.
func New(extra ...string) (*Guard, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "guard", "resolve home", "cannot determine home directory", err)
	}
	return NewWithHome(home, extra...), nil
}

// NewWithHome builds a guard rooted at an explicit home directory. Used by
// tests and by callers that already resolved the home path.
func NewWithHome(home string, extra ...string) *Guard {
	denylist := make([]string, 0, len(wellKnownSubdirs)+len(extra))
	for _, name := range wellKnownSubdirs {
		denylist = append(denylist, filepath.Join(home, name))
	}
	for _, path := range extra {
		if trimmed := strings.TrimSpace(path); trimmed != "" {
			denylist = append(denylist, filepath.Clean(trimmed))
		}
	}
	return &Guard{home: filepath.Clean(home), denylist: denylist}
}

// Validate canonicalizes dir and checks it against the denylist. It returns
// the canonical path on success. Every rejection carries the ErrRejected
// marker and is fatal for the whole operation.
func (g *Guard) Validate(dir string) (string, error) {
	if strings.TrimSpace(dir) == "" {
		return "", services.Wrap(services.ErrRejected, "guard", "validate", "empty target path", nil)
	}

	absolute, err := filepath.Abs(dir)
	if err != nil {
		return "", services.Wrap(services.ErrRejected, "guard", "resolve path", dir, err)
	}
	// Symlinks are resolved before comparison so a denylisted directory
	// cannot be reached through an alias.
	canonical, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		if os.IsNotExist(err) {
			return "", services.Wrap(services.ErrRejected, "guard", "validate", "target directory does not exist", nil)
		}
		return "", services.Wrap(services.ErrRejected, "guard", "resolve symlinks", dir, err)
	}

	info, err := os.Stat(canonical)
	if err != nil {
		return "", services.Wrap(services.ErrRejected, "guard", "stat target", dir, err)
	}
	if !info.IsDir() {
		return "", services.Wrap(services.ErrRejected, "guard", "validate", "target is not a directory", nil)
	}

	if isFilesystemRoot(canonical) {
		return "", services.Wrap(services.ErrRejected, "guard", "validate", "refusing to organize a filesystem root", nil)
	}
	if canonical == g.home {
		return "", services.Wrap(services.ErrRejected, "guard", "validate", "refusing to organize the home directory root", nil)
	}
	for _, protected := range g.denylist {
		switch {
		case canonical == protected, isAncestor(protected, canonical):
			return "", services.Wrap(services.ErrRejected, "guard", "validate", "target is a protected directory: "+protected, nil)
		case isAncestor(canonical, protected):
			return "", services.Wrap(services.ErrRejected, "guard", "validate", "target contains a protected directory: "+protected, nil)
		}
	}

	if err := unix.Access(canonical, unix.W_OK); err != nil {
		return "", services.Wrap(services.ErrRejected, "guard", "validate", "target directory is not writable", err)
	}

	return canonical, nil
}

func isFilesystemRoot(path string) bool {
	return path == filepath.Dir(path)
}

// isAncestor reports whether child sits strictly below parent.
func isAncestor(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	if err != nil {
		return false
	}
	return rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
