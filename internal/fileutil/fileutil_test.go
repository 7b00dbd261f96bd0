package fileutil_test

import (
	"os"
	"path/filepath"
	"testing"

	"tidy/internal/fileutil"
	"tidy/internal/testsupport"
)

func TestMoveFileRenames(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	testsupport.WriteFile(t, src, "payload")

	if err := fileutil.MoveFile(src, dst); err != nil {
		t.Fatalf("MoveFile: %v", err)
	}
	if _, err := os.Stat(src); !os.IsNotExist(err) {
		t.Fatalf("source still present, err=%v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected content %q", data)
	}
}

func TestMoveFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := fileutil.MoveFile(filepath.Join(dir, "nope"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestCopyFileVerified(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.bin")
	dst := filepath.Join(dir, "dst.bin")
	testsupport.WriteFile(t, src, "0123456789")

	if err := fileutil.CopyFileVerified(src, dst); err != nil {
		t.Fatalf("CopyFileVerified: %v", err)
	}
	srcData, _ := os.ReadFile(src)
	dstData, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read dst: %v", err)
	}
	if string(srcData) != string(dstData) {
		t.Fatal("content mismatch after copy")
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := fileutil.CopyFileVerified(filepath.Join(dir, "nope"), filepath.Join(dir, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}

func TestIsCrossDevice(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a")
	testsupport.WriteFile(t, src, "x")
	err := os.Rename(src, filepath.Join(dir, "missing", "b"))
	if err == nil {
		t.Fatal("expected rename failure")
	}
	if fileutil.IsCrossDevice(err) {
		t.Fatalf("plain rename failure misclassified as cross-device: %v", err)
	}
}
