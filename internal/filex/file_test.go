package filex

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureConfigDir_CreatesDirectory(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir, err := EnsureConfigDir(".fingate-test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if dir != filepath.Join(home, ".fingate-test") {
		t.Fatalf("unexpected dir: %s", dir)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !info.IsDir() {
		t.Fatalf("expected a directory at %s", dir)
	}
}

func TestEnsureConfigDir_Idempotent(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	first, err := EnsureConfigDir(".fingate-test")
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	second, err := EnsureConfigDir(".fingate-test")
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Fatalf("expected same dir, got %s and %s", first, second)
	}
}
