package classify

import (
	"fmt"
	"strings"
)

// defaultExtensions is the static classification table. Extensions are
// stored lowercased with their leading dot.
var defaultExtensions = map[Category][]string{
	CategoryDocuments: {
		".doc", ".docx", ".rtf", ".odt",
		".xls", ".xlsx", ".csv", ".ods",
		".ppt", ".pptx", ".odp",
		".pdf",
		".txt", ".md", ".log",
	},
	CategoryMedia: {
		".jpg", ".jpeg", ".png", ".gif", ".bmp", ".tiff", ".svg", ".webp",
		".mp4", ".avi", ".mkv", ".mov", ".wmv", ".flv", ".webm",
		".mp3", ".wav", ".flac", ".aac", ".ogg", ".wma",
	},
	CategoryArchives: {
		".zip", ".rar", ".7z", ".tar", ".gz",
	},
	CategoryCode: {
		".py", ".js", ".html", ".css", ".java", ".cpp", ".c", ".php", ".go",
	},
	CategoryExecutables: {
		".exe", ".msi", ".bat", ".cmd", ".sh", ".run", ".deb", ".rpm", ".appimage",
	},
}

// Table resolves extensions to categories. The zero value is not usable;
// construct with DefaultTable or NewTable.
type Table struct {
	byExt map[string]Category
}

// DefaultTable returns the built-in classification table.
func DefaultTable() *Table {
	table := &Table{byExt: make(map[string]Category, 64)}
	for category, extensions := range defaultExtensions {
		for _, ext := range extensions {
			table.byExt[ext] = category
		}
	}
	return table
}

// NewTable builds a table from the defaults plus per-extension overrides.
// Override keys are extensions (with or without the leading dot), values are
// category names in any casing. An override may remap a known extension or
// register a new one.
func NewTable(overrides map[string]string) (*Table, error) {
	table := DefaultTable()
	for key, value := range overrides {
		ext := NormalizeExt(key)
		if ext == "" {
			return nil, fmt.Errorf("category override: empty extension")
		}
		category, err := ParseCategory(value)
		if err != nil {
			return nil, fmt.Errorf("category override %q: %w", key, err)
		}
		table.byExt[ext] = category
	}
	return table, nil
}

// Classify returns the category for the given extension. The executable bit
// wins over the extension table so that a chmod +x script lands in
// Executables regardless of its suffix.
func (t *Table) Classify(ext string, executable bool) Category {
	if executable {
		return CategoryExecutables
	}
	if category, ok := t.byExt[NormalizeExt(ext)]; ok {
		return category
	}
	return CategoryOther
}

// NormalizeExt lowercases an extension and ensures a leading dot.
// The empty string stays empty.
func NormalizeExt(ext string) string {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext == "" || ext == "." {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
