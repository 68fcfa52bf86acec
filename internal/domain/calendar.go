package domain

// CuratedEntry is manually vetted event data for one day.
type CuratedEntry struct {
	Title       string
	Description string
	Traditions  string
	Preparation string
}

// CalendarRow is the final output unit: one per calendar day.
type CalendarRow struct {
	Date        NormalizedDate
	Title       string
	Description string
	Traditions  string
	Preparation string
}

// IsEmpty reports whether every text field is blank.
func (r CalendarRow) IsEmpty() bool {
	return r.Title == "" && r.Description == "" && r.Traditions == "" && r.Preparation == ""
}

// Season is a curation hint for a calendar month.
type Season struct {
	Name        string
	Description string
}

// ResolvedDay is a CalendarRow plus the name of the source that produced it.
// Hint is populated for placeholder days only.
type ResolvedDay struct {
	Row    CalendarRow
	Source string
	Hint   Season
}
