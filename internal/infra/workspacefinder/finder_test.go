package workspacefinder

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

func TestFindRoot_FindsWorkspaceFromNestedDir(t *testing.T) {
	tmp := t.TempDir()
	root := filepath.Join(tmp, "ws")
	nested := filepath.Join(root, "a", "b", "c")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	// Create kolovorot.yaml at root
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("kolovorot:\n  metrics:\n    enabled: true\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	f := NewFinder()
	got, err := f.FindRoot(nested)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	if got != root {
		t.Fatalf("expected root=%s, got=%s", root, got)
	}
}

func TestFindRoot_NotFound(t *testing.T) {
	tmp := t.TempDir()
	_ = os.MkdirAll(filepath.Join(tmp, "a", "b"), 0o755)

	f := NewFinder()
	_, err := f.FindRoot(filepath.Join(tmp, "a", "b"))
	if err == nil {
		t.Fatalf("expected error")
	}

	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got: %v", err)
	}
}

func TestFindRoot_EmptyStartDir(t *testing.T) {
	_, err := NewFinder().FindRoot("")
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got: %v", err)
	}
}

func TestFindRoot_AcceptsFilePath(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ConfigFileName), []byte("kolovorot: {}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	file := filepath.Join(root, "notes.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	got, err := NewFinder().FindRoot(file)
	if err != nil {
		t.Fatalf("FindRoot returned error: %v", err)
	}
	want, _ := filepath.Abs(root)
	if got != want {
		t.Fatalf("expected root=%s, got=%s", want, got)
	}
}
