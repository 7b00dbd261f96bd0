package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tidy/internal/testsupport"
)

func writeTestConfig(t *testing.T, base string) string {
	t.Helper()
	path := filepath.Join(base, "config.toml")
	content := `
[paths]
log_dir = "` + filepath.Join(base, "logs") + `"

[logging]
level = "error"
`
	testsupport.WriteFile(t, path, content)
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestOrganizeCommandMovesFiles(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	target := filepath.Join(base, "inbox")
	testsupport.WriteFile(t, filepath.Join(target, "report.pdf"), "r")
	testsupport.WriteFile(t, filepath.Join(target, "photo.jpg"), "p")

	out, err := runCommand(t, "--config", configPath, "organize", target)
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Moved 2 of 2 files") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(target, "Documents", "report.pdf")); err != nil {
		t.Fatalf("file not organized: %v", err)
	}
}

func TestOrganizeCommandDryRunLeavesFiles(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	target := filepath.Join(base, "inbox")
	testsupport.WriteFile(t, filepath.Join(target, "song.mp3"), "s")

	out, err := runCommand(t, "--config", configPath, "organize", "--dry-run", target)
	if err != nil {
		t.Fatalf("organize --dry-run: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Would move") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(target, "song.mp3")); err != nil {
		t.Fatalf("dry run moved a file: %v", err)
	}
}

func TestOrganizeCommandJSON(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	target := filepath.Join(base, "inbox")
	testsupport.WriteFile(t, filepath.Join(target, "app.py"), "a")

	out, err := runCommand(t, "--config", configPath, "organize", "--json", target)
	if err != nil {
		t.Fatalf("organize --json: %v\n%s", err, out)
	}
	if !strings.Contains(out, `"moved": 1`) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOrganizeCommandRejectsRoot(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	if _, err := runCommand(t, "--config", configPath, "organize", "/"); err == nil {
		t.Fatal("expected rejection for filesystem root")
	}
}

func TestPlanCommandListsMoves(t *testing.T) {
	base := t.TempDir()
	configPath := writeTestConfig(t, base)

	target := filepath.Join(base, "inbox")
	testsupport.WriteFile(t, filepath.Join(target, "notes.txt"), "n")

	out, err := runCommand(t, "--config", configPath, "plan", target)
	if err != nil {
		t.Fatalf("plan: %v\n%s", err, out)
	}
	if !strings.Contains(out, "notes.txt") || !strings.Contains(out, "Documents") {
		t.Fatalf("unexpected output %q", out)
	}
	if _, err := os.Stat(filepath.Join(target, "notes.txt")); err != nil {
		t.Fatalf("plan must not move files: %v", err)
	}
}

func TestConfigInitWritesSample(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "config.toml")

	out, err := runCommand(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v\n%s", err, out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[organize]") {
		t.Fatal("sample missing organize section")
	}

	if _, err := runCommand(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}
}
