package plan_test

import (
	"path/filepath"
	"testing"

	"tidy/internal/plan"
	"tidy/internal/testsupport"
)

func TestResolveReturnsFreePathUnchanged(t *testing.T) {
	resolver := plan.NewResolverWithExists(func(string) bool { return false })
	dest, resolved := resolver.Resolve("/target/Documents/notes.txt")
	if dest != "/target/Documents/notes.txt" || resolved {
		t.Fatalf("got %q resolved=%v", dest, resolved)
	}
}

func TestResolveAppendsDisambiguator(t *testing.T) {
	onDisk := map[string]bool{"/target/Documents/notes.txt": true}
	resolver := plan.NewResolverWithExists(func(path string) bool { return onDisk[path] })

	dest, resolved := resolver.Resolve("/target/Documents/notes.txt")
	if dest != "/target/Documents/notes (1).txt" || !resolved {
		t.Fatalf("got %q resolved=%v", dest, resolved)
	}
}

func TestResolvePicksLowestFreeSlot(t *testing.T) {
	onDisk := map[string]bool{
		"/target/Media/pic.jpg":     true,
		"/target/Media/pic (1).jpg": true,
	}
	resolver := plan.NewResolverWithExists(func(path string) bool { return onDisk[path] })

	dest, _ := resolver.Resolve("/target/Media/pic.jpg")
	if dest != "/target/Media/pic (2).jpg" {
		t.Fatalf("got %q", dest)
	}
}

func TestResolveTracksClaimsWithinPass(t *testing.T) {
	resolver := plan.NewResolverWithExists(func(string) bool { return false })

	first, _ := resolver.Resolve("/target/Other/data")
	second, resolved := resolver.Resolve("/target/Other/data")
	third, _ := resolver.Resolve("/target/Other/data")

	if first != "/target/Other/data" {
		t.Fatalf("first = %q", first)
	}
	if second != "/target/Other/data (1)" || !resolved {
		t.Fatalf("second = %q resolved=%v", second, resolved)
	}
	if third != "/target/Other/data (2)" {
		t.Fatalf("third = %q", third)
	}
}

func TestResolveHandlesExtensionlessNames(t *testing.T) {
	onDisk := map[string]bool{"/target/Other/README": true}
	resolver := plan.NewResolverWithExists(func(path string) bool { return onDisk[path] })

	dest, _ := resolver.Resolve("/target/Other/README")
	if dest != "/target/Other/README (1)" {
		t.Fatalf("got %q", dest)
	}
}

func TestNewResolverProbesDisk(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "file.txt")
	testsupport.WriteFile(t, existing, "x")

	resolver := plan.NewResolver()
	dest, resolved := resolver.Resolve(existing)
	if dest != filepath.Join(dir, "file (1).txt") || !resolved {
		t.Fatalf("got %q resolved=%v", dest, resolved)
	}
}
