package domain

import "sort"

// Mention is a substring of a document that matched a date pattern.
// Offset is the byte offset of Text within the scanned document.
type Mention struct {
	Text   string
	Offset int
}

// Document is one plain-text unit of the corpus.
type Document struct {
	ID   string
	Text string
}

// Excerpt is the prose window carved around a mention.
type Excerpt struct {
	EventName string
	Context   string
}

// Verdict is the outcome of content classification.
// ChristianExcluded is set when a christian marker forced Pagan to false.
type Verdict struct {
	Pagan             bool
	ChristianExcluded bool
}

// EventRecord is one extracted event. Records are immutable once created.
type EventRecord struct {
	Date                NormalizedDate
	EventName           string
	Context             string
	Source              string
	Offset              int
	IsPagan             bool
	IsChristianExcluded bool
}

// DateEventBucket groups records by date. Per-date order is corpus scan order.
type DateEventBucket map[NormalizedDate][]EventRecord

// Dates returns the bucket keys in lexical order.
func (b DateEventBucket) Dates() []NormalizedDate {
	out := make([]NormalizedDate, 0, len(b))
	for d := range b {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Len returns the total number of records across all dates.
func (b DateEventBucket) Len() int {
	n := 0
	for _, recs := range b {
		n += len(recs)
	}
	return n
}

// PaganCount returns the number of records classified as pagan.
func (b DateEventBucket) PaganCount() int {
	n := 0
	for _, recs := range b {
		for _, r := range recs {
			if r.IsPagan {
				n++
			}
		}
	}
	return n
}
