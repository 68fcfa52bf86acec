package domain

// Config represents the Kolovorot workspace configuration loaded from kolovorot.yaml.
type Config struct {
	Paths    PathsConfig
	Extract  ExtractConfig
	Calendar CalendarConfig
	Metrics  MetricsConfig
}

type PathsConfig struct {
	CorpusDir  string
	CuratedCSV string
	OutDir     string
	DBPath     string
	Lexicon    string // optional; built-in tables when empty
}

type ExtractConfig struct {
	WindowBefore int
	WindowAfter  int
	Workers      int
	Extensions   []string
}

type CalendarConfig struct {
	Leap             bool
	DescriptionLimit int

	// CuratedRequiresContent drops curated rows without a title and with a
	// description of 50 characters or fewer.
	CuratedRequiresContent bool
}

type MetricsConfig struct {
	Enabled bool
}

// DefaultConfig provides sane defaults if kolovorot.yaml is partially missing.
func DefaultConfig() Config {
	return Config{
		Paths: PathsConfig{
			CorpusDir:  "corpus",
			CuratedCSV: "data/curated.csv",
			OutDir:     "out",
			DBPath:     "out/calendar.db",
		},
		Extract: ExtractConfig{
			WindowBefore: 300,
			WindowAfter:  800,
			Workers:      1,
			Extensions:   []string{".html", ".xhtml", ".htm"},
		},
		Calendar: CalendarConfig{
			Leap:             true,
			DescriptionLimit: 1000,
		},
		Metrics: MetricsConfig{Enabled: true},
	}
}
