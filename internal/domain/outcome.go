package domain

// SkipReason explains why an item contributed nothing to a run.
type SkipReason string

const (
	SkipUnknownMonth         SkipReason = "unknown_month"
	SkipMalformedMention     SkipReason = "malformed_mention"
	SkipNotLocated           SkipReason = "not_located"
	SkipMalformedCuratedDate SkipReason = "malformed_curated_date"
	SkipEmptyCuratedEntry    SkipReason = "empty_curated_entry"
	SkipUnreadableDocument   SkipReason = "unreadable_document"
)

// Outcome is either an accepted value or a skip reason.
type Outcome[T any] struct {
	Value  T
	Reason SkipReason
}

// Accept wraps a successful value.
func Accept[T any](v T) Outcome[T] {
	return Outcome[T]{Value: v}
}

// Reject returns an outcome carrying only a skip reason.
func Reject[T any](reason SkipReason) Outcome[T] {
	return Outcome[T]{Reason: reason}
}

// OK reports whether the outcome carries a value.
func (o Outcome[T]) OK() bool { return o.Reason == "" }

// Skip records a skipped item for reporting.
type Skip struct {
	Reason SkipReason
	Source string
	Detail string
}

// SkipCounts tallies skips by reason.
type SkipCounts map[SkipReason]int

// Add increments the counter for reason.
func (c SkipCounts) Add(reason SkipReason) {
	c[reason]++
}

// Total returns the sum of all counters.
func (c SkipCounts) Total() int {
	n := 0
	for _, v := range c {
		n += v
	}
	return n
}
