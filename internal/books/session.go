package books

import (
	"context"
	"sync/atomic"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// Session serializes typeahead searches so only the newest request can
// deliver results. Each Search call takes a generation token; if a
// newer call starts before an older one finishes, the older call
// returns ErrSuperseded instead of its (now stale) results.
type Session struct {
	client Client
	gen    atomic.Uint64
}

// NewSession wraps a client with last-request-wins semantics.
func NewSession(client Client) *Session {
	return &Session{client: client}
}

// Search runs the request against the underlying client. Results are
// returned only if no newer Search began in the meantime.
func (s *Session) Search(ctx context.Context, req SearchRequest) ([]domain.BookRef, error) {
	token := s.gen.Add(1)

	results, err := s.client.SearchBooks(ctx, req)

	if s.gen.Load() != token {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Generation returns the current request generation. Useful for tests
// and diagnostics.
func (s *Session) Generation() uint64 {
	return s.gen.Load()
}
