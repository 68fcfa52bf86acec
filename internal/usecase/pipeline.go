package usecase

import (
	"github.com/aalvaropc/kolovorot/internal/domain"
	"github.com/aalvaropc/kolovorot/internal/usecase/classify"
	"github.com/aalvaropc/kolovorot/internal/usecase/datematch"
	"github.com/aalvaropc/kolovorot/internal/usecase/excerpt"
	"github.com/aalvaropc/kolovorot/internal/usecase/normalize"
)

// Pipeline turns one document into event records. It holds no mutable state
// and is safe for concurrent use.
type Pipeline struct {
	matcher    *datematch.Matcher
	normalizer *normalize.Normalizer
	excerpts   *excerpt.Extractor
	classifier *classify.Classifier
}

func NewPipeline(lex domain.Lexicon, before, after int) *Pipeline {
	return &Pipeline{
		matcher:    datematch.New(lex),
		normalizer: normalize.New(lex),
		excerpts:   excerpt.New(before, after),
		classifier: classify.New(lex),
	}
}

// DocumentResult is the per-document output, in mention order.
type DocumentResult struct {
	Records  []domain.EventRecord
	Mentions int
	Skips    []domain.Skip
}

// Document runs every mention of doc through excerpt, normalize and classify.
func (p *Pipeline) Document(doc domain.Document) DocumentResult {
	var res DocumentResult

	for m := range p.matcher.Mentions(doc.Text) {
		res.Mentions++

		ex := p.excerpts.Extract(doc.Text, m)
		if !ex.OK() {
			res.Skips = append(res.Skips, domain.Skip{Reason: ex.Reason, Source: doc.ID, Detail: m.Text})
			continue
		}

		date := p.normalizer.Normalize(m.Text)
		if !date.OK() {
			res.Skips = append(res.Skips, domain.Skip{Reason: date.Reason, Source: doc.ID, Detail: m.Text})
			continue
		}

		v := p.classifier.Classify(ex.Value.Context)
		res.Records = append(res.Records, domain.EventRecord{
			Date:                date.Value,
			EventName:           ex.Value.EventName,
			Context:             ex.Value.Context,
			Source:              doc.ID,
			Offset:              m.Offset,
			IsPagan:             v.Pagan,
			IsChristianExcluded: v.ChristianExcluded,
		})
	}

	return res
}
