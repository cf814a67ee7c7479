package ports

import (
	"context"

	"devfolio/internal/domain"
)

// ContentLoader builds the document store from a content source.
// The returned store is treated as immutable for the session.
type ContentLoader interface {
	Load(ctx context.Context) (*domain.Store, error)
}
