// Package scan enumerates the top level of a target directory into
// immutable file snapshots. Subdirectories are never traversed; the engine
// organizes a single directory level by design.
package scan

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"tidy/internal/classify"
	"tidy/internal/services"
)

// FileEntry is an immutable snapshot of one regular file at scan time.
type FileEntry struct {
	Path       string    `json:"path"`
	Name       string    `json:"name"`
	Ext        string    `json:"ext"`
	Size       int64     `json:"size"`
	ModTime    time.Time `json:"mod_time"`
	Executable bool      `json:"executable"`
}

// Options controls scan behavior.
type Options struct {
	// IncludeHidden includes dot-prefixed files in the scan.
	IncludeHidden bool
}

// Scan lists the regular files directly under dir in lexicographic order.
// Directories, symlinks, and other non-regular entries are ignored. A file
// that vanishes between listing and stat is silently dropped; the mover
// handles later races per entry.
func Scan(dir string, opts Options) ([]FileEntry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, services.Wrap(services.ErrPlanning, "scan", "list directory", "cannot enumerate target directory", err)
	}

	entries := make([]FileEntry, 0, len(dirEntries))
	for _, dirEntry := range dirEntries {
		if !dirEntry.Type().IsRegular() {
			continue
		}
		name := dirEntry.Name()
		if !opts.IncludeHidden && strings.HasPrefix(name, ".") {
			continue
		}
		info, err := dirEntry.Info()
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, services.Wrap(services.ErrPlanning, "scan", "stat file", name, err)
		}
		entries = append(entries, FileEntry{
			Path:       filepath.Join(dir, name),
			Name:       name,
			Ext:        classify.NormalizeExt(filepath.Ext(name)),
			Size:       info.Size(),
			ModTime:    info.ModTime(),
			Executable: info.Mode().Perm()&0o111 != 0,
		})
	}
	return entries, nil
}
