// Package service orchestrates the domain operations behind the HTTP
// API: library mutations and views, and book catalog search.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	domainerrors "github.com/inkshelf/inkshelf-server/internal/errors"
	"github.com/inkshelf/inkshelf-server/internal/id"
	"github.com/inkshelf/inkshelf-server/internal/library"
	"github.com/inkshelf/inkshelf-server/internal/search"
	"github.com/inkshelf/inkshelf-server/internal/store"
	"github.com/inkshelf/inkshelf-server/internal/taxonomy"
	"github.com/inkshelf/inkshelf-server/internal/validation"
)

// Single-user identity. Everything in the library belongs to this user
// until accounts exist.
const (
	OwnerID    = "user-1"
	AuthorName = "You"
)

// CreateEntryInput describes a new written entry.
type CreateEntryInput struct {
	Title      string   `json:"title" validate:"required,max=200"`
	Body       string   `json:"body" validate:"required"`
	ShelfCode  string   `json:"shelf_code" validate:"required,shelfcode"`
	Visibility string   `json:"visibility" validate:"omitempty,oneof=public private"`
	Mood       string   `json:"mood,omitempty" validate:"omitempty,max=50"`
	Tags       []string `json:"tags,omitempty" validate:"omitempty,max=10,dive,max=50"`
}

// LogBookInput describes a new book log. The BookRef is carried through
// from a prior provider search unchanged.
type LogBookInput struct {
	Book      domain.BookRef `json:"book" validate:"required"`
	ShelfCode string         `json:"shelf_code" validate:"required,shelfcode"`
	Status    string         `json:"status" validate:"required,oneof=want_to_read reading read"`
	Notes     string         `json:"notes,omitempty"`
	Review    string         `json:"review,omitempty"`
	Rating    int            `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Quotes    []string       `json:"quotes,omitempty" validate:"omitempty,max=20"`
}

// LibraryService orchestrates shelf, entry, and book log operations.
// Derived views (sections, public entries) are memoized against the
// store revision so repeated reads between writes cost nothing.
type LibraryService struct {
	store     *store.Store
	index     *search.EntryIndex
	validator *validation.Validator
	logger    *slog.Logger

	mu           sync.Mutex
	memoRev      uint64
	memoSections []library.Section
	memoPublic   []*domain.Entry
}

// NewLibraryService creates a new library service.
func NewLibraryService(st *store.Store, index *search.EntryIndex, validator *validation.Validator, logger *slog.Logger) *LibraryService {
	return &LibraryService{
		store:     st,
		index:     index,
		validator: validator,
		logger:    logger,
	}
}

// Bootstrap prepares the library for serving: seeds the shelf catalog
// when the store is empty and rebuilds the public-entry search index
// from the store.
func (s *LibraryService) Bootstrap(ctx context.Context) error {
	if err := s.store.SeedShelves(ctx, OwnerID); err != nil {
		return fmt.Errorf("seed shelves: %w", err)
	}

	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}

	docs := make([]*search.EntryDocument, 0, len(entries))
	for _, entry := range entries {
		if entry.IsPublic() {
			docs = append(docs, search.DocumentFromEntry(entry))
		}
	}
	if len(docs) > 0 {
		if err := s.index.IndexEntries(docs); err != nil {
			return fmt.Errorf("rebuild entry index: %w", err)
		}
	}

	s.logger.Info("library bootstrapped", "public_entries_indexed", len(docs))
	return nil
}

// CreateEntry validates and persists a new written entry. Public
// entries are also indexed for search.
func (s *LibraryService) CreateEntry(ctx context.Context, input CreateEntryInput) (*domain.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	input.Title = strings.TrimSpace(input.Title)
	input.Body = strings.TrimSpace(input.Body)

	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}

	visibility := domain.Visibility(input.Visibility)
	if visibility == "" {
		visibility = domain.VisibilityPrivate
	}

	entryID, err := id.Generate("entry")
	if err != nil {
		return nil, fmt.Errorf("generate entry ID: %w", err)
	}

	now := time.Now().UTC()
	entry := &domain.Entry{
		ID:         entryID,
		Kind:       domain.KindEntry,
		Title:      input.Title,
		Body:       input.Body,
		ShelfCode:  input.ShelfCode,
		ShelfLabel: s.resolveShelfLabel(ctx, input.ShelfCode),
		Visibility: visibility,
		AuthorID:   OwnerID,
		AuthorName: AuthorName,
		Mood:       strings.TrimSpace(input.Mood),
		Tags:       input.Tags,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateEntry(ctx, entry); err != nil {
		return nil, fmt.Errorf("create entry: %w", err)
	}

	if entry.IsPublic() {
		if err := s.index.IndexEntry(search.DocumentFromEntry(entry)); err != nil {
			// The entry is persisted; a failed index write only degrades
			// search until the next rebuild.
			s.logger.Error("failed to index public entry", "entry_id", entry.ID, "error", err)
		}
	}

	s.logger.Info("entry created",
		"entry_id", entry.ID,
		"shelf_code", entry.ShelfCode,
		"visibility", entry.Visibility,
	)
	return entry, nil
}

// LogBook validates and persists a new book log.
func (s *LibraryService) LogBook(ctx context.Context, input LogBookInput) (*domain.BookLog, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := s.validator.Validate(input); err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Book.Title) == "" {
		return nil, domainerrors.ValidationWithDetails("validation failed",
			map[string]string{"book": "must include a title"})
	}

	logID, err := id.Generate("book")
	if err != nil {
		return nil, fmt.Errorf("generate book log ID: %w", err)
	}

	now := time.Now().UTC()
	bookLog := &domain.BookLog{
		ID:         logID,
		Kind:       domain.KindBook,
		BookRef:    input.Book,
		ShelfCode:  input.ShelfCode,
		ShelfLabel: s.resolveShelfLabel(ctx, input.ShelfCode),
		Status:     domain.ReadingStatus(input.Status),
		Notes:      strings.TrimSpace(input.Notes),
		Review:     strings.TrimSpace(input.Review),
		Rating:     input.Rating,
		Quotes:     input.Quotes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.store.CreateBookLog(ctx, bookLog); err != nil {
		return nil, fmt.Errorf("create book log: %w", err)
	}

	s.logger.Info("book logged",
		"booklog_id", bookLog.ID,
		"shelf_code", bookLog.ShelfCode,
		"status", bookLog.Status,
		"title", bookLog.BookRef.Title,
	)
	return bookLog, nil
}

// Sections returns the library index grouped by shelf, memoized against
// the store revision.
func (s *LibraryService) Sections(ctx context.Context) ([]library.Section, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return s.memoSections, nil
}

// PublicEntries returns the public catalog view, newest first.
func (s *LibraryService) PublicEntries(ctx context.Context) ([]*domain.Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.refreshLocked(ctx); err != nil {
		return nil, err
	}
	return s.memoPublic, nil
}

// refreshLocked rebuilds the memoized views if the store has changed.
// Caller holds s.mu.
func (s *LibraryService) refreshLocked(ctx context.Context) error {
	rev := s.store.Revision()
	if s.memoSections != nil && rev == s.memoRev {
		return nil
	}

	shelves, err := s.store.ListShelves(ctx)
	if err != nil {
		return fmt.Errorf("list shelves: %w", err)
	}
	entries, err := s.store.ListEntries(ctx)
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	logs, err := s.store.ListBookLogs(ctx)
	if err != nil {
		return fmt.Errorf("list book logs: %w", err)
	}

	s.memoSections = library.BuildIndex(library.ShelfMap(shelves), entries, logs, OwnerID)
	s.memoPublic = library.PublicEntries(entries)
	s.memoRev = rev
	return nil
}

// Shelves returns the shelf catalog in canonical code order.
func (s *LibraryService) Shelves(ctx context.Context) ([]*domain.Shelf, error) {
	shelves, err := s.store.ListShelves(ctx)
	if err != nil {
		return nil, fmt.Errorf("list shelves: %w", err)
	}

	slices.SortFunc(shelves, func(a, b *domain.Shelf) int {
		return taxonomy.CompareShelfCodes(a.Code, b.Code)
	})
	return shelves, nil
}

// Aisles returns the static aisle catalog.
func (s *LibraryService) Aisles() []taxonomy.Aisle {
	return taxonomy.Aisles()
}

// SearchPublicEntries runs a full-text search over the public catalog.
func (s *LibraryService) SearchPublicEntries(ctx context.Context, params search.SearchParams) (*search.SearchResult, error) {
	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search public entries: %w", err)
	}
	return result, nil
}

// resolveShelfLabel looks up the shelf label for a code, falling back
// to the custom-shelf placeholder for codes not in the catalog.
func (s *LibraryService) resolveShelfLabel(ctx context.Context, code string) string {
	shelf, err := s.store.GetShelfByCode(ctx, code)
	if err != nil {
		if !errors.Is(err, store.ErrShelfNotFound) {
			s.logger.Warn("shelf lookup failed", "shelf_code", code, "error", err)
		}
		return domain.CustomShelfLabel
	}
	return shelf.Label
}
