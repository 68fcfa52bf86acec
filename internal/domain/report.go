package domain

import "time"

// ExtractReport summarizes one corpus extraction run.
type ExtractReport struct {
	RunID      string
	StartedAt  time.Time
	FinishedAt time.Time
	Documents  int
	Mentions   int
	Records    int
	Dates      int
	Pagan      int
	Skips      SkipCounts
}

// BuildReport summarizes one calendar build.
type BuildReport struct {
	Path        string
	Days        int
	Curated     int
	Extracted   int
	Placeholder int
	Skips       SkipCounts
}

// CalendarStats is a fill summary of a stored calendar.
type CalendarStats struct {
	Total  int
	Filled int
}
