// Package htmlcorpus reads an unpacked e-book directory, or the .epub
// archive itself, as a sequence of plain-text documents.
package htmlcorpus

import (
	"archive/zip"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/ports"
)

var defaultExtensions = []string{".html", ".xhtml", ".htm"}

// Source serves documents from root. Document ids are slash-separated
// paths relative to root (or archive entry names for .epub files).
type Source struct {
	root      string
	exts      map[string]bool
	extractor ports.TextExtractor

	mu      sync.Mutex
	archive *zip.ReadCloser
	entries map[string]*zip.File
}

type Option func(*Source)

// WithExtensions replaces the accepted file extensions.
func WithExtensions(exts []string) Option {
	return func(s *Source) {
		if len(exts) == 0 {
			return
		}
		s.exts = extSet(exts)
	}
}

// WithExtractor is useful for tests.
func WithExtractor(x ports.TextExtractor) Option {
	return func(s *Source) { s.extractor = x }
}

func New(root string, opts ...Option) *Source {
	s := &Source{
		root:      filepath.Clean(root),
		exts:      extSet(defaultExtensions),
		extractor: HTMLText{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.CorpusSource = (*Source)(nil)

// List returns matching document ids in lexical order.
func (s *Source) List(ctx context.Context) ([]string, error) {
	info, err := os.Stat(s.root)
	if err != nil {
		return nil, &domain.OpError{
			Op:   "htmlcorpus.list",
			Kind: domain.KindNotFound,
			Path: s.root,
			Err:  err,
		}
	}

	if !info.IsDir() {
		if !strings.EqualFold(filepath.Ext(s.root), ".epub") {
			return nil, &domain.OpError{
				Op:   "htmlcorpus.list",
				Kind: domain.KindInvalidInput,
				Path: s.root,
				Err:  errors.New("corpus must be a directory or an .epub file"),
			}
		}
		return s.listArchive()
	}

	var ids []string
	err = filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if cerr := ctx.Err(); cerr != nil {
			return cerr
		}
		if d.IsDir() || !s.accepts(p) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		ids = append(ids, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, &domain.OpError{
			Op:   "htmlcorpus.walk",
			Kind: domain.KindExecution,
			Path: s.root,
			Err:  err,
		}
	}

	sort.Strings(ids)
	return ids, nil
}

// Load reads one document and converts it to plain text.
func (s *Source) Load(ctx context.Context, id string) (domain.Document, error) {
	if err := ctx.Err(); err != nil {
		return domain.Document{}, err
	}

	rc, where, err := s.open(id)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "htmlcorpus.open",
			Kind: domain.KindNotFound,
			Path: where,
			Err:  err,
		}
	}
	defer rc.Close()

	text, err := s.extractor.PlainText(rc)
	if err != nil {
		return domain.Document{}, &domain.OpError{
			Op:   "htmlcorpus.parse",
			Kind: domain.KindInvalidInput,
			Path: where,
			Err:  err,
		}
	}

	return domain.Document{ID: id, Text: text}, nil
}

// Close releases the archive handle, if any.
func (s *Source) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.archive == nil {
		return nil
	}
	err := s.archive.Close()
	s.archive = nil
	s.entries = nil
	return err
}

func (s *Source) open(id string) (io.ReadCloser, string, error) {
	s.mu.Lock()
	entries := s.entries
	s.mu.Unlock()

	if entries == nil {
		p := filepath.Join(s.root, filepath.FromSlash(id))
		f, err := os.Open(p)
		return f, p, err
	}

	where := s.root + "!" + id
	f, ok := entries[id]
	if !ok {
		return nil, where, fmt.Errorf("archive entry %q: %w", id, domain.ErrNotFound)
	}
	rc, err := f.Open()
	return rc, where, err
}

func (s *Source) listArchive() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.archive == nil {
		zr, err := zip.OpenReader(s.root)
		if err != nil {
			return nil, &domain.OpError{
				Op:   "htmlcorpus.open_archive",
				Kind: domain.KindInvalidInput,
				Path: s.root,
				Err:  err,
			}
		}
		s.archive = zr
		s.entries = map[string]*zip.File{}
		for _, f := range zr.File {
			if f.FileInfo().IsDir() || !s.accepts(f.Name) {
				continue
			}
			s.entries[f.Name] = f
		}
	}

	ids := make([]string, 0, len(s.entries))
	for name := range s.entries {
		ids = append(ids, name)
	}
	sort.Strings(ids)
	return ids, nil
}

func (s *Source) accepts(name string) bool {
	return s.exts[strings.ToLower(path.Ext(filepath.ToSlash(name)))]
}

func extSet(exts []string) map[string]bool {
	out := make(map[string]bool, len(exts))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out[e] = true
	}
	return out
}
