package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/domain"
	domainerrors "github.com/inkshelf/inkshelf-server/internal/errors"
)

// BookService fronts the configured book catalog provider. Typeahead
// suggest requests are grouped into per-caller sessions so only the
// newest in-flight search per session can deliver results.
type BookService struct {
	client books.Client
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*books.Session
}

// NewBookService creates a new book service.
func NewBookService(client books.Client, logger *slog.Logger) *BookService {
	return &BookService{
		client:   client,
		logger:   logger,
		sessions: make(map[string]*books.Session),
	}
}

// Provider reports which catalog backs this service.
func (s *BookService) Provider() domain.BookProvider {
	return s.client.Provider()
}

// Search runs a one-shot catalog search.
func (s *BookService) Search(ctx context.Context, query string, limit int) ([]domain.BookRef, error) {
	results, err := s.client.SearchBooks(ctx, books.SearchRequest{Query: query, Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	return results, nil
}

// GetBook resolves a single book by provider ID.
func (s *BookService) GetBook(ctx context.Context, providerID string) (*domain.BookRef, error) {
	book, err := s.client.GetBookByID(ctx, providerID)
	if errors.Is(err, books.ErrBookNotFound) {
		return nil, domainerrors.NotFoundf("book %q not found", providerID)
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return book, nil
}

// Suggest runs a typeahead search for a session. Within one session the
// newest request wins: a search superseded by a later keystroke returns
// books.ErrSuperseded and its results are discarded.
func (s *BookService) Suggest(ctx context.Context, sessionID, query string, limit int) ([]domain.BookRef, error) {
	session := s.sessionFor(sessionID)

	results, err := session.Search(ctx, books.SearchRequest{Query: query, Limit: limit})
	if errors.Is(err, books.ErrSuperseded) {
		s.logger.Debug("suggest superseded", "session_id", sessionID, "query", query)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("suggest books: %w", err)
	}
	return results, nil
}

func (s *BookService) sessionFor(sessionID string) *books.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[sessionID]
	if !ok {
		session = books.NewSession(s.client)
		s.sessions[sessionID] = session
	}
	return session
}
