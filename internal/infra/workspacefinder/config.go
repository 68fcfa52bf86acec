package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/aalvaropc/kolovorot/internal/domain"
	"gopkg.in/yaml.v3"
)

// Environment overrides, applied after kolovorot.yaml.
const (
	EnvDBPath    = "KOLOVOROT_DB_PATH"
	EnvCorpusDir = "KOLOVOROT_CORPUS_DIR"
	EnvWorkers   = "KOLOVOROT_WORKERS"
)

// LoadConfig loads kolovorot.yaml from the workspace root, applies defaults
// and then environment overrides.
func LoadConfig(root string) (domain.Config, error) {
	return loadConfig(root, os.LookupEnv)
}

func loadConfig(root string, lookup func(string) (string, bool)) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	// Apply parsed values on top of defaults.
	k := y.Kolovorot
	if k.Paths.CorpusDir != "" {
		cfg.Paths.CorpusDir = k.Paths.CorpusDir
	}
	if k.Paths.CuratedCSV != "" {
		cfg.Paths.CuratedCSV = k.Paths.CuratedCSV
	}
	if k.Paths.OutDir != "" {
		cfg.Paths.OutDir = k.Paths.OutDir
	}
	if k.Paths.DBPath != "" {
		cfg.Paths.DBPath = k.Paths.DBPath
	}
	if k.Paths.Lexicon != "" {
		cfg.Paths.Lexicon = k.Paths.Lexicon
	}

	if k.Extract.WindowBefore != nil {
		cfg.Extract.WindowBefore = *k.Extract.WindowBefore
	}
	if k.Extract.WindowAfter != nil {
		cfg.Extract.WindowAfter = *k.Extract.WindowAfter
	}
	if k.Extract.Workers != nil {
		cfg.Extract.Workers = *k.Extract.Workers
	}
	if len(k.Extract.Extensions) > 0 {
		cfg.Extract.Extensions = normalizeExtensions(k.Extract.Extensions)
	}

	if k.Calendar.Leap != nil {
		cfg.Calendar.Leap = *k.Calendar.Leap
	}
	if k.Calendar.DescriptionLimit != nil {
		cfg.Calendar.DescriptionLimit = *k.Calendar.DescriptionLimit
	}
	if k.Calendar.CuratedRequiresContent != nil {
		cfg.Calendar.CuratedRequiresContent = *k.Calendar.CuratedRequiresContent
	}

	if k.Metrics.Enabled != nil {
		cfg.Metrics.Enabled = *k.Metrics.Enabled
	}

	if err := applyEnv(&cfg, lookup); err != nil {
		return cfg, err
	}

	if cfg.Extract.WindowBefore < 0 || cfg.Extract.WindowAfter < 0 {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("extract windows must not be negative: %w", domain.ErrInvalidConfig),
		}
	}

	return cfg, nil
}

func applyEnv(cfg *domain.Config, lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvDBPath); ok && strings.TrimSpace(v) != "" {
		cfg.Paths.DBPath = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvCorpusDir); ok && strings.TrimSpace(v) != "" {
		cfg.Paths.CorpusDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 {
			return &domain.OpError{
				Op:   "workspacefinder.env",
				Kind: domain.KindInvalidConfig,
				Err:  fmt.Errorf("%s=%q: want a positive integer: %w", EnvWorkers, v, domain.ErrInvalidConfig),
			}
		}
		cfg.Extract.Workers = n
	}
	return nil
}

// normalizeExtensions lowercases and dot-prefixes extension entries.
func normalizeExtensions(in []string) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		out = append(out, e)
	}
	return out
}

type yamlConfig struct {
	Kolovorot struct {
		Paths struct {
			CorpusDir  string `yaml:"corpus_dir"`
			CuratedCSV string `yaml:"curated_csv"`
			OutDir     string `yaml:"out_dir"`
			DBPath     string `yaml:"db_path"`
			Lexicon    string `yaml:"lexicon"`
		} `yaml:"paths"`

		Extract struct {
			WindowBefore *int     `yaml:"window_before"`
			WindowAfter  *int     `yaml:"window_after"`
			Workers      *int     `yaml:"workers"`
			Extensions   []string `yaml:"extensions"`
		} `yaml:"extract"`

		Calendar struct {
			Leap                   *bool `yaml:"leap"`
			DescriptionLimit       *int  `yaml:"description_limit"`
			CuratedRequiresContent *bool `yaml:"curated_requires_content"`
		} `yaml:"calendar"`

		Metrics struct {
			Enabled *bool `yaml:"enabled"`
		} `yaml:"metrics"`
	} `yaml:"kolovorot"`
}
