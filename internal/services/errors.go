package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrRejected marks pre-flight safety rejections: the target directory
	// is protected, missing, not a directory, or not writable. Nothing has
	// been scanned or moved when this is returned.
	ErrRejected = errors.New("target rejected")
	// ErrPlanning marks enumeration or plan-construction failures that
	// abort the run before any move is attempted.
	ErrPlanning      = errors.New("planning error")
	ErrValidation    = errors.New("validation error")
	ErrConfiguration = errors.New("configuration error")
	ErrTransient     = errors.New("transient failure")
)

// Wrap builds an error message that includes component context while tagging
// it with the provided marker for later classification. The marker should be
// one of the exported sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if marker == nil {
		marker = ErrTransient
	}
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether err should abort the whole operation rather than
// be recorded as a per-entry outcome.
func IsFatal(err error) bool {
	return errors.Is(err, ErrRejected) || errors.Is(err, ErrPlanning) || errors.Is(err, ErrConfiguration)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "service failure"
	}
	return strings.Join(parts, ": ")
}
