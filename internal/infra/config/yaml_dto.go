package config

// YAMLLexicon is the on-disk form of a lexicon file. Omitted sections keep
// the built-in tables.
type YAMLLexicon struct {
	Months    []YAMLMonth  `yaml:"months"`
	Pagan     []string     `yaml:"pagan"`
	Christian []string     `yaml:"christian"`
	Seasons   []YAMLSeason `yaml:"seasons"`
}

type YAMLMonth struct {
	Number int    `yaml:"number"`
	Full   string `yaml:"full"`
	Abbrev string `yaml:"abbrev"`
}

type YAMLSeason struct {
	Month       int    `yaml:"month"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}
