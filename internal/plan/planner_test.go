package plan_test

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/classify"
	"tidy/internal/plan"
	"tidy/internal/scan"
	"tidy/internal/testsupport"
)

func buildPlan(t *testing.T, dir string) *plan.Plan {
	t.Helper()
	entries, err := scan.Scan(dir, scan.Options{})
	if err != nil {
		t.Fatalf("Scan: %v", err)
	}
	return plan.Build(dir, entries, classify.DefaultTable(), nil)
}

func TestBuildAssignsCategoryDestinations(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "report.pdf"), "r")
	testsupport.WriteFile(t, filepath.Join(dir, "photo.jpg"), "p")
	testsupport.WriteFile(t, filepath.Join(dir, "app.py"), "a")

	p := buildPlan(t, dir)
	if len(p.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(p.Entries))
	}

	want := map[string]string{
		"report.pdf": filepath.Join(dir, "Documents", "report.pdf"),
		"photo.jpg":  filepath.Join(dir, "Media", "photo.jpg"),
		"app.py":     filepath.Join(dir, "Code", "app.py"),
	}
	for _, entry := range p.Entries {
		if entry.Destination != want[entry.Source.Name] {
			t.Errorf("%s -> %s, want %s", entry.Source.Name, entry.Destination, want[entry.Source.Name])
		}
		if entry.CollisionResolved {
			t.Errorf("%s unexpectedly marked as collision", entry.Source.Name)
		}
	}
}

func TestBuildResolvesAgainstExistingDestination(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "notes.txt"), "new")
	testsupport.WriteFile(t, filepath.Join(dir, "Documents", "notes.txt"), "old")

	p := buildPlan(t, dir)
	if len(p.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(p.Entries))
	}
	entry := p.Entries[0]
	if entry.Destination != filepath.Join(dir, "Documents", "notes (1).txt") {
		t.Fatalf("destination = %q", entry.Destination)
	}
	if !entry.CollisionResolved {
		t.Fatal("expected collision flag")
	}
}

func TestBuildDestinationsArePairwiseDistinct(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "LICENSE"), "a")
	testsupport.WriteFile(t, filepath.Join(dir, "NOTICE"), "b")
	testsupport.WriteFile(t, filepath.Join(dir, "README"), "c")

	p := buildPlan(t, dir)
	seen := make(map[string]bool)
	for _, entry := range p.Entries {
		if seen[entry.Destination] {
			t.Fatalf("duplicate destination %q", entry.Destination)
		}
		seen[entry.Destination] = true
	}
}

func TestBuildIgnoresCategorySubfolders(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "Documents"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	testsupport.WriteFile(t, filepath.Join(dir, "Documents", "filed.pdf"), "f")

	p := buildPlan(t, dir)
	if !p.IsEmpty() {
		t.Fatalf("expected empty plan, got %+v", p.Entries)
	}
}

func TestBuildCategoryCounts(t *testing.T) {
	dir := t.TempDir()
	testsupport.WriteFile(t, filepath.Join(dir, "a.pdf"), "1")
	testsupport.WriteFile(t, filepath.Join(dir, "b.txt"), "2")
	testsupport.WriteFile(t, filepath.Join(dir, "c.jpg"), "3")
	testsupport.WriteFile(t, filepath.Join(dir, "d"), "4")

	counts := buildPlan(t, dir).CategoryCounts()
	if counts[classify.CategoryDocuments] != 2 {
		t.Fatalf("documents = %d", counts[classify.CategoryDocuments])
	}
	if counts[classify.CategoryMedia] != 1 {
		t.Fatalf("media = %d", counts[classify.CategoryMedia])
	}
	if counts[classify.CategoryOther] != 1 {
		t.Fatalf("other = %d", counts[classify.CategoryOther])
	}
}
