package plan

import (
	"path/filepath"

	"tidy/internal/classify"
	"tidy/internal/scan"
)

// Build computes the move plan for the scanned entries. Each file is
// classified, assigned dir/<Category>/<name>, and routed through resolver
// so destinations stay unique and never overwrite pre-existing files.
//
// Re-running Build over an already organized directory yields an empty
// plan: scanning is non-recursive, so files previously filed into category
// subfolders are not seen again.
func Build(dir string, entries []scan.FileEntry, table *classify.Table, resolver *Resolver) *Plan {
	if resolver == nil {
		resolver = NewResolver()
	}
	planEntries := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		category := table.Classify(entry.Ext, entry.Executable)
		wanted := filepath.Join(dir, category.Folder(), entry.Name)
		destination, resolved := resolver.Resolve(wanted)
		planEntries = append(planEntries, Entry{
			Source:            entry,
			Destination:       destination,
			Category:          category,
			CollisionResolved: resolved,
		})
	}
	return &Plan{TargetDir: dir, Entries: planEntries}
}
