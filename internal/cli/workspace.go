package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/infra/bucketstore"
	"github.com/aalvaropc/kolovorot/internal/infra/config"
	"github.com/aalvaropc/kolovorot/internal/infra/logger"
	"github.com/aalvaropc/kolovorot/internal/infra/runmetrics"
	"github.com/aalvaropc/kolovorot/internal/infra/workspacefinder"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

type workspaceCtx struct {
	root string
	cfg  domain.Config
	lex  domain.Lexicon

	buckets  *bucketstore.JSONStore
	recorder ports.RunRecorder
}

// workspaceDeps are the adapters loadWorkspace resolves a workspace with.
type workspaceDeps struct {
	locator  ports.WorkspaceLocator
	lexicons ports.LexiconLoader
}

func defaultWorkspaceDeps() workspaceDeps {
	return workspaceDeps{
		locator:  workspacefinder.NewFinder(),
		lexicons: config.NewLexiconLoader(),
	}
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	return loadWorkspaceWith(workspaceFlag, defaultWorkspaceDeps())
}

func loadWorkspaceWith(workspaceFlag string, deps workspaceDeps) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag, deps.locator)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	ws := &workspaceCtx{root: root, cfg: cfg}

	ws.lex, err = deps.lexicons.LoadLexicon(ws.path(cfg.Paths.Lexicon))
	if err != nil {
		return nil, err
	}

	ws.buckets = bucketstore.NewJSONStore(root, cfg, bucketstore.WithIndex(true))

	ws.recorder = runmetrics.Discard{}
	if cfg.Metrics.Enabled {
		ws.recorder = runmetrics.New(ws.path(cfg.Paths.OutDir))
	}

	logger.L().Debug("workspace.loaded", "root", root, "lexicon", cfg.Paths.Lexicon)
	return ws, nil
}

// path resolves a configured path against the workspace root. Empty stays empty.
func (ws *workspaceCtx) path(p string) string {
	p = strings.TrimSpace(p)
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(ws.root, p)
}

func (ws *workspaceCtx) calendarPath() string {
	return filepath.Join(ws.path(ws.cfg.Paths.OutDir), "calendar.csv")
}

func resolveWorkspaceRoot(workspaceFlag string, locator ports.WorkspaceLocator) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `kolovorot init`): %w", wd, err)
	}
	return root, nil
}

// resolveArg resolves a user-supplied file path relative to the working
// directory, falling back to def when arg is empty.
func resolveArg(arg, def string) (string, error) {
	in := strings.TrimSpace(arg)
	if in == "" {
		return def, nil
	}
	abs, err := filepath.Abs(in)
	if err != nil {
		return "", fmt.Errorf("invalid path %q: %w", in, err)
	}
	return abs, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
