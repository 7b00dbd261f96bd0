package services_test

import (
	"errors"
	"testing"

	"tidy/internal/services"
)

func TestWrapTagsMarker(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrPlanning, "planner", "list directory", "enumeration failed", base)
	if !errors.Is(err, services.ErrPlanning) {
		t.Fatalf("expected planning marker, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped base error, got %v", err)
	}
	want := "planning error: planner: list directory: enumeration failed: boom"
	if err.Error() != want {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

func TestWrapDefaultsToTransient(t *testing.T) {
	err := services.Wrap(nil, "mover", "", "", nil)
	if !errors.Is(err, services.ErrTransient) {
		t.Fatalf("expected transient marker, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	if !services.IsFatal(services.Wrap(services.ErrRejected, "guard", "validate", "protected path", nil)) {
		t.Fatal("rejection should be fatal")
	}
	if services.IsFatal(services.Wrap(services.ErrTransient, "mover", "rename", "permission denied", nil)) {
		t.Fatal("transient entry failure should not be fatal")
	}
}
