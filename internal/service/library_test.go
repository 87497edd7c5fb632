package service

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	domainerrors "github.com/inkshelf/inkshelf-server/internal/errors"
	"github.com/inkshelf/inkshelf-server/internal/search"
	"github.com/inkshelf/inkshelf-server/internal/store"
	"github.com/inkshelf/inkshelf-server/internal/validation"
)

// setupLibraryService creates a library service with a temp database
// and an in-memory search index.
func setupLibraryService(t *testing.T) *LibraryService {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	testStore, err := store.New(filepath.Join(t.TempDir(), "test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = testStore.Close() })

	index, err := search.NewEntryIndex(search.Options{Logger: logger})
	require.NoError(t, err)
	t.Cleanup(func() { _ = index.Close() })

	svc := NewLibraryService(testStore, index, validation.New(), logger)
	require.NoError(t, svc.Bootstrap(context.Background()))
	return svc
}

func TestCreateEntry(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	entry, err := svc.CreateEntry(ctx, CreateEntryInput{
		Title:      "  Moonlit Solitude  ",
		Body:       "A quiet night, the world asleep.",
		ShelfCode:  "820.20",
		Visibility: "public",
	})
	require.NoError(t, err)

	assert.Equal(t, "Moonlit Solitude", entry.Title)
	assert.Equal(t, "820.20", entry.ShelfCode)
	assert.Equal(t, "Grief Poetry", entry.ShelfLabel)
	assert.Equal(t, domain.VisibilityPublic, entry.Visibility)
	assert.Equal(t, OwnerID, entry.AuthorID)
	assert.Equal(t, AuthorName, entry.AuthorName)
	assert.NotEmpty(t, entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
}

func TestCreateEntry_DefaultsToPrivate(t *testing.T) {
	svc := setupLibraryService(t)

	entry, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Title:     "Draft Thoughts",
		Body:      "Not ready to share.",
		ShelfCode: "100.20",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.VisibilityPrivate, entry.Visibility)
}

func TestCreateEntry_InvalidShelfCode(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	tests := []struct {
		name string
		code string
	}{
		{"missing decimal", "82020"},
		{"short head", "82.20"},
		{"letters", "abc.de"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEntry(ctx, CreateEntryInput{
				Title:     "Title",
				Body:      "Body",
				ShelfCode: tt.code,
			})
			require.Error(t, err)

			var domainErr *domainerrors.Error
			require.ErrorAs(t, err, &domainErr)
			assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

			// Nothing was persisted.
			sections, err := svc.Sections(ctx)
			require.NoError(t, err)
			assert.Empty(t, sections)
		})
	}
}

func TestCreateEntry_UnknownCodeGetsCustomShelfLabel(t *testing.T) {
	svc := setupLibraryService(t)

	entry, err := svc.CreateEntry(context.Background(), CreateEntryInput{
		Title:     "Off the Map",
		Body:      "Filed somewhere new.",
		ShelfCode: "412.77",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CustomShelfLabel, entry.ShelfLabel)
}

func TestLogBook(t *testing.T) {
	svc := setupLibraryService(t)

	bookLog, err := svc.LogBook(context.Background(), LogBookInput{
		Book: domain.BookRef{
			Provider:   domain.ProviderMock,
			ProviderID: "vol-001",
			Title:      "The Remains of the Day",
			Authors:    []string{"Kazuo Ishiguro"},
		},
		ShelfCode: "830.20",
		Status:    "read",
		Rating:    5,
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusRead, bookLog.Status)
	assert.Equal(t, "The Remains of the Day", bookLog.BookRef.Title)
	assert.Equal(t, "Thriller Fiction", bookLog.ShelfLabel)
	assert.Equal(t, 5, bookLog.Rating)
}

func TestLogBook_InvalidShelfCode(t *testing.T) {
	svc := setupLibraryService(t)

	_, err := svc.LogBook(context.Background(), LogBookInput{
		Book:      domain.BookRef{Provider: domain.ProviderMock, ProviderID: "vol-001", Title: "Bluets"},
		ShelfCode: "not-a-code",
		Status:    "reading",
	})
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)
}

func TestLogBook_RequiresBookTitle(t *testing.T) {
	svc := setupLibraryService(t)

	_, err := svc.LogBook(context.Background(), LogBookInput{
		Book:      domain.BookRef{Provider: domain.ProviderMock, ProviderID: "vol-001"},
		ShelfCode: "830.20",
		Status:    "reading",
	})
	require.Error(t, err)
}

func TestSections_GroupsAndOrders(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		Title: "First", Body: "Words.", ShelfCode: "820.20",
	})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Second", Body: "More words.", ShelfCode: "820.20",
	})
	require.NoError(t, err)
	_, err = svc.LogBook(ctx, LogBookInput{
		Book:      domain.BookRef{Provider: domain.ProviderMock, ProviderID: "vol-007", Title: "Bluets"},
		ShelfCode: "100.20",
		Status:    "reading",
	})
	require.NoError(t, err)

	sections, err := svc.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, sections, 2)

	// Sections ascend by shelf code.
	assert.Equal(t, "100.20", sections[0].Shelf.Code)
	assert.Equal(t, "820.20", sections[1].Shelf.Code)

	// Items within a section are newest first.
	require.Len(t, sections[1].Items, 2)
	assert.Equal(t, "820.20", sections[1].Items[0].ItemShelfCode())
}

func TestSections_MemoizedUntilWrite(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		Title: "First", Body: "Words.", ShelfCode: "820.20",
	})
	require.NoError(t, err)

	first, err := svc.Sections(ctx)
	require.NoError(t, err)
	second, err := svc.Sections(ctx)
	require.NoError(t, err)

	// Same revision returns the same slice, not a rebuild.
	assert.Same(t, &first[0], &second[0])

	_, err = svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Second", Body: "More.", ShelfCode: "820.20",
	})
	require.NoError(t, err)

	third, err := svc.Sections(ctx)
	require.NoError(t, err)
	require.Len(t, third[0].Items, 2)
}

func TestPublicEntries_FiltersAndSorts(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Private One", Body: "Hidden.", ShelfCode: "820.20", Visibility: "private",
	})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Public One", Body: "Shown.", ShelfCode: "820.20", Visibility: "public",
	})
	require.NoError(t, err)

	public, err := svc.PublicEntries(ctx)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, "Public One", public[0].Title)
}

func TestSearchPublicEntries(t *testing.T) {
	svc := setupLibraryService(t)
	ctx := context.Background()

	_, err := svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Moonlit Solitude", Body: "The world asleep.", ShelfCode: "820.20", Visibility: "public",
	})
	require.NoError(t, err)
	_, err = svc.CreateEntry(ctx, CreateEntryInput{
		Title: "Hidden Draft", Body: "The world asleep.", ShelfCode: "820.20", Visibility: "private",
	})
	require.NoError(t, err)

	params := search.DefaultSearchParams()
	params.Query = "asleep"

	result, err := svc.SearchPublicEntries(ctx, params)
	require.NoError(t, err)
	require.Len(t, result.Hits, 1)
	assert.Equal(t, "Moonlit Solitude", result.Hits[0].Title)
}

func TestShelves_CanonicalOrder(t *testing.T) {
	svc := setupLibraryService(t)

	shelves, err := svc.Shelves(context.Background())
	require.NoError(t, err)
	require.NotEmpty(t, shelves)

	for i := 1; i < len(shelves); i++ {
		assert.LessOrEqual(t, shelves[i-1].Code, shelves[i].Code)
	}
}

func TestAisles(t *testing.T) {
	svc := setupLibraryService(t)

	aisles := svc.Aisles()
	assert.Len(t, aisles, 10)
	assert.Equal(t, "000", aisles[0].Code)
}
