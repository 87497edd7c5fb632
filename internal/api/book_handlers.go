package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/domain"
)

func (s *Server) registerBookRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchBooks",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/search",
		Summary:     "Search books",
		Description: "Searches the configured book catalog provider",
		Tags:        []string{"Books"},
	}, s.handleSearchBooks)

	huma.Register(s.api, huma.Operation{
		OperationID: "getBook",
		Method:      http.MethodGet,
		Path:        "/api/v1/books/{providerId}",
		Summary:     "Get book",
		Description: "Resolves a single book by its provider ID",
		Tags:        []string{"Books"},
	}, s.handleGetBook)

	huma.Register(s.api, huma.Operation{
		OperationID: "suggestBooks",
		Method:      http.MethodPost,
		Path:        "/api/v1/books/suggest",
		Summary:     "Suggest books",
		Description: "Typeahead search; within one session only the newest request returns results",
		Tags:        []string{"Books"},
	}, s.handleSuggestBooks)
}

// === DTOs ===

// SearchBooksInput contains parameters for a catalog search.
type SearchBooksInput struct {
	Query string `query:"q" maxLength:"200" doc:"Search query; empty browses the catalog"`
	Limit int    `query:"limit" minimum:"1" maximum:"40" doc:"Max results (default 20)"`
}

// BooksOutput wraps a book result list for Huma.
type BooksOutput struct {
	Body struct {
		Provider string          `json:"provider" doc:"Catalog provider that served the results"`
		Results  []BookRefResult `json:"results"`
	}
}

// GetBookInput identifies a single book.
type GetBookInput struct {
	ProviderID string `path:"providerId" doc:"Provider book ID"`
}

// BookOutput wraps a single book for Huma.
type BookOutput struct {
	Body BookRefResult
}

// SuggestBooksInput is the typeahead request.
type SuggestBooksInput struct {
	Session string `header:"X-Suggest-Session" doc:"Opaque session key; requests sharing a key supersede each other"`
	Body    struct {
		Query string `json:"query" maxLength:"200"`
		Limit int    `json:"limit,omitempty" minimum:"1" maximum:"40"`
	}
}

// SuggestBooksOutput wraps typeahead results for Huma. Superseded
// requests return an empty result set with Superseded set.
type SuggestBooksOutput struct {
	Body struct {
		Superseded bool            `json:"superseded" doc:"True if a newer request in the session replaced this one"`
		Results    []BookRefResult `json:"results"`
	}
}

func bookRefResults(refs []domain.BookRef) []BookRefResult {
	results := make([]BookRefResult, 0, len(refs))
	for _, ref := range refs {
		results = append(results, bookRefResult(ref))
	}
	return results
}

// === Handlers ===

func (s *Server) handleSearchBooks(ctx context.Context, input *SearchBooksInput) (*BooksOutput, error) {
	refs, err := s.services.Book.Search(ctx, input.Query, input.Limit)
	if err != nil {
		return nil, err
	}

	resp := &BooksOutput{}
	resp.Body.Provider = string(s.services.Book.Provider())
	resp.Body.Results = bookRefResults(refs)
	return resp, nil
}

func (s *Server) handleGetBook(ctx context.Context, input *GetBookInput) (*BookOutput, error) {
	book, err := s.services.Book.GetBook(ctx, input.ProviderID)
	if err != nil {
		return nil, err
	}
	return &BookOutput{Body: bookRefResult(*book)}, nil
}

func (s *Server) handleSuggestBooks(ctx context.Context, input *SuggestBooksInput) (*SuggestBooksOutput, error) {
	session := input.Session
	if session == "" {
		session = "default"
	}

	resp := &SuggestBooksOutput{}

	refs, err := s.services.Book.Suggest(ctx, session, input.Body.Query, input.Body.Limit)
	if errors.Is(err, books.ErrSuperseded) {
		resp.Body.Superseded = true
		resp.Body.Results = []BookRefResult{}
		return resp, nil
	}
	if err != nil {
		return nil, err
	}

	resp.Body.Results = bookRefResults(refs)
	return resp, nil
}
