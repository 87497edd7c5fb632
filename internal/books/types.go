// Package books provides book catalog search clients. Clients return
// provider-neutral BookRef values; the service layer never sees raw
// provider payloads.
package books

import (
	"context"
	"errors"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// DefaultLimit caps search results when the request does not set one.
const DefaultLimit = 20

// ErrSuperseded is returned by Session.Search when a newer search began
// before this one finished. Stale results are never returned.
var ErrSuperseded = errors.New("search superseded by a newer request")

// ErrBookNotFound is returned when a provider ID resolves to nothing.
var ErrBookNotFound = errors.New("book not found")

// SearchRequest describes a catalog search.
type SearchRequest struct {
	Query string
	Limit int
}

// limitOrDefault clamps the request limit to a sane positive value.
func (r SearchRequest) limitOrDefault() int {
	if r.Limit <= 0 || r.Limit > DefaultLimit*5 {
		return DefaultLimit
	}
	return r.Limit
}

// Client searches an external (or fixture) book catalog.
type Client interface {
	// Provider identifies which catalog this client fronts.
	Provider() domain.BookProvider

	// SearchBooks returns catalog matches for the request. An empty
	// query returns a browsable slice of the catalog rather than nothing.
	SearchBooks(ctx context.Context, req SearchRequest) ([]domain.BookRef, error)

	// GetBookByID resolves a single book by its provider ID.
	GetBookByID(ctx context.Context, providerID string) (*domain.BookRef, error)
}
