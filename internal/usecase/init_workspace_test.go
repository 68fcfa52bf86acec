package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/kolovorot/internal/infra/fsworkspace"
	"github.com/aalvaropc/kolovorot/internal/infra/workspacefinder"
)

func TestInitWorkspace_ProducesLoadableConfig(t *testing.T) {
	root := t.TempDir()

	if err := NewInitWorkspace(fsworkspace.NewInitializer()).Execute(root, false); err != nil {
		t.Fatalf("Execute error: %v", err)
	}

	for _, p := range []string{"corpus", "data/curated.csv", workspacefinder.ConfigFileName} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Paths.CuratedCSV != "data/curated.csv" || cfg.Paths.OutDir != "out" {
		t.Fatalf("unexpected paths %+v", cfg.Paths)
	}
	if cfg.Extract.WindowBefore != 300 || cfg.Extract.WindowAfter != 800 {
		t.Fatalf("unexpected windows %+v", cfg.Extract)
	}
}
