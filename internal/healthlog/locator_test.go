package healthlog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocator_ReadExisting(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "2026-01-15.md"), []byte("## Lunch\n"), 0600); err != nil {
		t.Fatalf("failed to write log: %v", err)
	}

	loc := NewLocator(dir)
	content, ok, err := loc.Read("2026-01-15")
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if !ok {
		t.Fatal("expected log to be found")
	}
	if content != "## Lunch\n" {
		t.Errorf("unexpected content: %q", content)
	}
}

func TestLocator_MissingLogIsNotAnError(t *testing.T) {
	loc := NewLocator(t.TempDir())

	content, ok, err := loc.Read("2026-01-16")
	if err != nil {
		t.Fatalf("expected no error for missing log, got %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing log")
	}
	if content != "" {
		t.Errorf("expected empty content, got %q", content)
	}
}

func TestLocator_Path(t *testing.T) {
	loc := NewLocator("/tmp/logs")
	want := filepath.Join("/tmp/logs", "2026-01-15.md")
	if got := loc.Path("2026-01-15"); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
