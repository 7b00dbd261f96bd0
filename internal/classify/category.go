package classify

import (
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Category is one of the fixed file-type buckets. The category name doubles
// as the destination folder name under the target directory.
type Category string

const (
	CategoryDocuments   Category = "Documents"
	CategoryMedia       Category = "Media"
	CategoryArchives    Category = "Archives"
	CategoryCode        Category = "Code"
	CategoryExecutables Category = "Executables"
	CategoryOther       Category = "Other"
)

// Categories returns every category in stable display order.
func Categories() []Category {
	return []Category{
		CategoryDocuments,
		CategoryMedia,
		CategoryArchives,
		CategoryCode,
		CategoryExecutables,
		CategoryOther,
	}
}

// Folder returns the destination folder name for the category.
func (c Category) Folder() string {
	return string(c)
}

var titleCaser = cases.Title(language.English)

// ParseCategory resolves a user-supplied category name, accepting any
// casing. Used for config override values.
func ParseCategory(name string) (Category, error) {
	normalized := Category(titleCaser.String(name))
	for _, category := range Categories() {
		if normalized == category {
			return category, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", name)
}
