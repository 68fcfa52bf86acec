package ports

import (
	"context"
	"io"

	"github.com/aalvaropc/kolovorot/internal/domain"
)

// CorpusSource enumerates and loads plain-text documents.
type CorpusSource interface {
	// List returns document ids in processing order.
	List(ctx context.Context) ([]string, error)
	Load(ctx context.Context, id string) (domain.Document, error)
}

// TextExtractor turns a markup document into plain text.
type TextExtractor interface {
	PlainText(r io.Reader) (string, error)
}
