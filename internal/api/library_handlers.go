package api

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	"github.com/inkshelf/inkshelf-server/internal/search"
	"github.com/inkshelf/inkshelf-server/internal/service"
)

func (s *Server) registerLibraryRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "getLibrary",
		Method:      http.MethodGet,
		Path:        "/api/v1/library",
		Summary:     "Get library index",
		Description: "Returns all shelved items grouped into sections by shelf, sections ascending by shelf code, items newest first",
		Tags:        []string{"Library"},
	}, s.handleGetLibrary)

	huma.Register(s.api, huma.Operation{
		OperationID: "listPublicEntries",
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/public",
		Summary:     "List public entries",
		Description: "Returns public entries, newest first",
		Tags:        []string{"Library"},
	}, s.handleListPublicEntries)

	huma.Register(s.api, huma.Operation{
		OperationID: "searchPublicEntries",
		Method:      http.MethodGet,
		Path:        "/api/v1/entries/public/search",
		Summary:     "Search public entries",
		Description: "Full-text search over public entries",
		Tags:        []string{"Library"},
	}, s.handleSearchPublicEntries)

	huma.Register(s.api, huma.Operation{
		OperationID:   "createEntry",
		Method:        http.MethodPost,
		Path:          "/api/v1/entries",
		Summary:       "Create entry",
		Description:   "Files a new written entry on a shelf",
		Tags:          []string{"Library"},
		DefaultStatus: http.StatusCreated,
	}, s.handleCreateEntry)

	huma.Register(s.api, huma.Operation{
		OperationID:   "logBook",
		Method:        http.MethodPost,
		Path:          "/api/v1/booklogs",
		Summary:       "Log book",
		Description:   "Files a book log on a shelf, carrying the provider book reference through unchanged",
		Tags:          []string{"Library"},
		DefaultStatus: http.StatusCreated,
	}, s.handleLogBook)
}

// === DTOs ===

// EntryResult is a written entry as returned by the API.
type EntryResult struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Body       string    `json:"body"`
	ShelfCode  string    `json:"shelf_code"`
	ShelfLabel string    `json:"shelf_label"`
	Visibility string    `json:"visibility" enum:"public,private"`
	AuthorID   string    `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Mood       string    `json:"mood,omitempty"`
	Tags       []string  `json:"tags,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// BookRefResult is a provider book reference.
type BookRefResult struct {
	Provider      string   `json:"provider"`
	ProviderID    string   `json:"provider_id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
	ISBN10        string   `json:"isbn_10,omitempty"`
	ISBN13        string   `json:"isbn_13,omitempty"`
	PublishedDate string   `json:"published_date,omitempty"`
}

// BookLogResult is a logged book as returned by the API.
type BookLogResult struct {
	ID         string        `json:"id"`
	Book       BookRefResult `json:"book"`
	ShelfCode  string        `json:"shelf_code"`
	ShelfLabel string        `json:"shelf_label"`
	Status     string        `json:"status" enum:"want_to_read,reading,read"`
	Notes      string        `json:"notes,omitempty"`
	Review     string        `json:"review,omitempty"`
	Rating     int           `json:"rating,omitempty"`
	Quotes     []string      `json:"quotes,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}

// LibraryItemResult is one shelved item. Exactly one of Entry or
// BookLog is set, matching Kind.
type LibraryItemResult struct {
	Kind    string         `json:"kind" enum:"entry,book"`
	Entry   *EntryResult   `json:"entry,omitempty"`
	BookLog *BookLogResult `json:"book_log,omitempty"`
}

// SectionResult is one shelf section of the library index.
type SectionResult struct {
	Shelf ShelfResult         `json:"shelf"`
	Items []LibraryItemResult `json:"items"`
}

// LibraryOutput wraps the library index for Huma.
type LibraryOutput struct {
	Body struct {
		Sections []SectionResult `json:"sections"`
	}
}

// PublicEntriesOutput wraps the public entry list for Huma.
type PublicEntriesOutput struct {
	Body struct {
		Entries []EntryResult `json:"entries"`
	}
}

// SearchEntriesInput contains parameters for searching public entries.
type SearchEntriesInput struct {
	Query     string `query:"q" maxLength:"200" doc:"Search query; empty browses by recency"`
	ShelfCode string `query:"shelf_code" pattern:"^[0-9]{3}\\.[0-9]{2}$" doc:"Restrict to one shelf"`
	Mood      string `query:"mood" maxLength:"50" doc:"Exact mood filter"`
	Tag       string `query:"tag" maxLength:"50" doc:"Exact tag filter"`
	Limit     int    `query:"limit" minimum:"1" maximum:"100" doc:"Max results (default 20)"`
	Offset    int    `query:"offset" minimum:"0" doc:"Pagination offset"`
}

// SearchEntriesOutput wraps entry search results for Huma.
type SearchEntriesOutput struct {
	Body search.SearchResult
}

// CreateEntryInput is the request body for creating an entry.
type CreateEntryInput struct {
	Body struct {
		Title      string   `json:"title" doc:"Entry title" maxLength:"200"`
		Content    string   `json:"body" doc:"Entry body text"`
		ShelfCode  string   `json:"shelf_code" doc:"Shelf code of the form DDD.DD"`
		Visibility string   `json:"visibility,omitempty" enum:"public,private" doc:"Defaults to private"`
		Mood       string   `json:"mood,omitempty"`
		Tags       []string `json:"tags,omitempty"`
	}
}

// EntryOutput wraps a single entry for Huma.
type EntryOutput struct {
	Body EntryResult
}

// LogBookInput is the request body for logging a book.
type LogBookInput struct {
	Body struct {
		Book      BookRefResult `json:"book" doc:"Book reference from a provider search"`
		ShelfCode string        `json:"shelf_code" doc:"Shelf code of the form DDD.DD"`
		Status    string        `json:"status" enum:"want_to_read,reading,read"`
		Notes     string        `json:"notes,omitempty"`
		Review    string        `json:"review,omitempty"`
		Rating    int           `json:"rating,omitempty" minimum:"1" maximum:"5"`
		Quotes    []string      `json:"quotes,omitempty"`
	}
}

// BookLogOutput wraps a single book log for Huma.
type BookLogOutput struct {
	Body BookLogResult
}

func entryResult(entry *domain.Entry) EntryResult {
	return EntryResult{
		ID:         entry.ID,
		Title:      entry.Title,
		Body:       entry.Body,
		ShelfCode:  entry.ShelfCode,
		ShelfLabel: entry.ShelfLabel,
		Visibility: string(entry.Visibility),
		AuthorID:   entry.AuthorID,
		AuthorName: entry.AuthorName,
		Mood:       entry.Mood,
		Tags:       entry.Tags,
		CreatedAt:  entry.CreatedAt,
		UpdatedAt:  entry.UpdatedAt,
	}
}

func bookRefResult(ref domain.BookRef) BookRefResult {
	return BookRefResult{
		Provider:      string(ref.Provider),
		ProviderID:    ref.ProviderID,
		Title:         ref.Title,
		Authors:       ref.Authors,
		CoverURL:      ref.CoverURL,
		ISBN10:        ref.ISBN10,
		ISBN13:        ref.ISBN13,
		PublishedDate: ref.PublishedDate,
	}
}

func bookLogResult(log *domain.BookLog) BookLogResult {
	return BookLogResult{
		ID:         log.ID,
		Book:       bookRefResult(log.BookRef),
		ShelfCode:  log.ShelfCode,
		ShelfLabel: log.ShelfLabel,
		Status:     string(log.Status),
		Notes:      log.Notes,
		Review:     log.Review,
		Rating:     log.Rating,
		Quotes:     log.Quotes,
		CreatedAt:  log.CreatedAt,
		UpdatedAt:  log.UpdatedAt,
	}
}

func libraryItemResult(item domain.LibraryItem) LibraryItemResult {
	switch v := item.(type) {
	case *domain.Entry:
		entry := entryResult(v)
		return LibraryItemResult{Kind: string(domain.KindEntry), Entry: &entry}
	case *domain.BookLog:
		log := bookLogResult(v)
		return LibraryItemResult{Kind: string(domain.KindBook), BookLog: &log}
	default:
		return LibraryItemResult{Kind: string(item.ItemKind())}
	}
}

// === Handlers ===

func (s *Server) handleGetLibrary(ctx context.Context, _ *struct{}) (*LibraryOutput, error) {
	sections, err := s.services.Library.Sections(ctx)
	if err != nil {
		return nil, err
	}

	resp := &LibraryOutput{}
	resp.Body.Sections = make([]SectionResult, 0, len(sections))
	for _, section := range sections {
		result := SectionResult{
			Shelf: shelfResult(section.Shelf),
			Items: make([]LibraryItemResult, 0, len(section.Items)),
		}
		for _, item := range section.Items {
			result.Items = append(result.Items, libraryItemResult(item))
		}
		resp.Body.Sections = append(resp.Body.Sections, result)
	}
	return resp, nil
}

func (s *Server) handleListPublicEntries(ctx context.Context, _ *struct{}) (*PublicEntriesOutput, error) {
	entries, err := s.services.Library.PublicEntries(ctx)
	if err != nil {
		return nil, err
	}

	resp := &PublicEntriesOutput{}
	resp.Body.Entries = make([]EntryResult, 0, len(entries))
	for _, entry := range entries {
		resp.Body.Entries = append(resp.Body.Entries, entryResult(entry))
	}
	return resp, nil
}

func (s *Server) handleSearchPublicEntries(ctx context.Context, input *SearchEntriesInput) (*SearchEntriesOutput, error) {
	params := search.DefaultSearchParams()
	params.Query = input.Query
	params.ShelfCode = input.ShelfCode
	params.Mood = input.Mood
	params.Tag = input.Tag
	if input.Limit > 0 {
		params.Limit = input.Limit
	}
	params.Offset = input.Offset

	result, err := s.services.Library.SearchPublicEntries(ctx, params)
	if err != nil {
		return nil, err
	}
	return &SearchEntriesOutput{Body: *result}, nil
}

func (s *Server) handleCreateEntry(ctx context.Context, input *CreateEntryInput) (*EntryOutput, error) {
	entry, err := s.services.Library.CreateEntry(ctx, service.CreateEntryInput{
		Title:      input.Body.Title,
		Body:       input.Body.Content,
		ShelfCode:  input.Body.ShelfCode,
		Visibility: input.Body.Visibility,
		Mood:       input.Body.Mood,
		Tags:       input.Body.Tags,
	})
	if err != nil {
		return nil, err
	}
	return &EntryOutput{Body: entryResult(entry)}, nil
}

func (s *Server) handleLogBook(ctx context.Context, input *LogBookInput) (*BookLogOutput, error) {
	bookLog, err := s.services.Library.LogBook(ctx, service.LogBookInput{
		Book: domain.BookRef{
			Provider:      domain.BookProvider(input.Body.Book.Provider),
			ProviderID:    input.Body.Book.ProviderID,
			Title:         input.Body.Book.Title,
			Authors:       input.Body.Book.Authors,
			CoverURL:      input.Body.Book.CoverURL,
			ISBN10:        input.Body.Book.ISBN10,
			ISBN13:        input.Body.Book.ISBN13,
			PublishedDate: input.Body.Book.PublishedDate,
		},
		ShelfCode: input.Body.ShelfCode,
		Status:    input.Body.Status,
		Notes:     input.Body.Notes,
		Review:    input.Body.Review,
		Rating:    input.Body.Rating,
		Quotes:    input.Body.Quotes,
	})
	if err != nil {
		return nil, err
	}
	return &BookLogOutput{Body: bookLogResult(bookLog)}, nil
}
