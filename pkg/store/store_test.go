package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "wheels")

	s, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if info, err := os.Stat(s.Dir()); err != nil || !info.IsDir() {
		t.Errorf("store dir not created: %v", err)
	}
}

func TestInstall_OverwriteIsIdempotent(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	const filename = "foo-1.0-py3-none-any.whl"

	first, err := s.Install([]byte("first payload"), filename)
	if err != nil {
		t.Fatalf("first Install failed: %v", err)
	}

	second, err := s.Install([]byte("second payload"), filename)
	if err != nil {
		t.Fatalf("re-Install failed: %v", err)
	}
	if first.LocalPath != second.LocalPath {
		t.Errorf("paths differ: %q vs %q", first.LocalPath, second.LocalPath)
	}

	data, err := os.ReadFile(second.LocalPath)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "second payload" {
		t.Errorf("stored content = %q, want overwrite", data)
	}

	// Registration stays idempotent too.
	if roots := s.Roots(); len(roots) != 1 {
		t.Errorf("got %d roots, want 1", len(roots))
	}
}

func TestInstall_RegistersRootsInOrder(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	a, _ := s.Install([]byte("a"), "a-1.0-py3-none-any.whl")
	b, _ := s.Install([]byte("b"), "b-2.0-py3-none-any.whl")

	roots := s.Roots()
	if len(roots) != 2 || roots[0] != a.LocalPath || roots[1] != b.LocalPath {
		t.Errorf("roots = %v", roots)
	}
	if !s.Registered(a.LocalPath) {
		t.Error("first root not registered")
	}
	if s.Registered(filepath.Join(s.Dir(), "never-installed.whl")) {
		t.Error("unknown path reported as registered")
	}
}

func TestInstall_RejectsUnsafeFilenames(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	for _, filename := range []string{"", "../escape.whl", "dir/file.whl"} {
		if _, err := s.Install([]byte("x"), filename); err == nil {
			t.Errorf("Install(%q) succeeded, want error", filename)
		}
	}
	if roots := s.Roots(); len(roots) != 0 {
		t.Errorf("rejected installs registered roots: %v", roots)
	}
}

func TestListAndOpen(t *testing.T) {
	s, err := New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	s.Install([]byte("payload-b"), "b-1.0-py3-none-any.whl")
	s.Install([]byte("payload-a"), "a-1.0-py3-none-any.whl")

	names, err := s.List()
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(names) != 2 || names[0] != "a-1.0-py3-none-any.whl" {
		t.Errorf("names = %v", names)
	}

	data, err := s.Open("a-1.0-py3-none-any.whl")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if string(data) != "payload-a" {
		t.Errorf("content = %q", data)
	}

	if _, err := s.Open("missing.whl"); err == nil {
		t.Error("expected error for missing artifact")
	}
}
