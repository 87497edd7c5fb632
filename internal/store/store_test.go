package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// setupTestStore creates a temporary store for testing.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := New(dbPath, nil)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() { store.Close() })
	return store
}

func testShelf(code, label string) *domain.Shelf {
	now := time.Now().UTC()
	return &domain.Shelf{
		ID:         "shelf_test_" + code,
		Code:       code,
		Label:      label,
		AisleCode:  code[:3],
		OwnerID:    "user-1",
		IsOfficial: false,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestCreateShelf(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	shelf := testShelf("820.20", "Grief Poetry")
	err := store.CreateShelf(ctx, shelf)
	require.NoError(t, err)

	retrieved, err := store.GetShelfByCode(ctx, "820.20")
	require.NoError(t, err)
	assert.Equal(t, shelf.ID, retrieved.ID)
	assert.Equal(t, shelf.Label, retrieved.Label)
	assert.Equal(t, "820", retrieved.AisleCode)
}

func TestCreateShelf_Duplicate(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	shelf := testShelf("820.20", "Grief Poetry")
	require.NoError(t, store.CreateShelf(ctx, shelf))

	err := store.CreateShelf(ctx, testShelf("820.20", "Other Label"))
	assert.ErrorIs(t, err, ErrDuplicateShelf)
}

func TestGetShelfByCode_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetShelfByCode(context.Background(), "999.99")
	assert.ErrorIs(t, err, ErrShelfNotFound)
}

func TestListShelves(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.CreateShelf(ctx, testShelf("820.20", "Grief Poetry")))
	require.NoError(t, store.CreateShelf(ctx, testShelf("830.10", "Short Fiction")))
	require.NoError(t, store.CreateShelf(ctx, testShelf("100.20", "Quiet Growth")))

	shelves, err := store.ListShelves(ctx)
	require.NoError(t, err)
	assert.Len(t, shelves, 3)

	count, err := store.CountShelves(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestCreateAndListEntries(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	entry := &domain.Entry{
		ID:         "entry_001",
		Title:      "Moonlit Solitude",
		Body:       "A quiet night, the world asleep.",
		ShelfCode:  "820.20",
		ShelfLabel: "Grief Poetry",
		Visibility: domain.VisibilityPublic,
		AuthorID:   "user-1",
		AuthorName: "You",
		CreatedAt:  time.Now().UTC(),
		UpdatedAt:  time.Now().UTC(),
	}
	require.NoError(t, store.CreateEntry(ctx, entry))

	retrieved, err := store.GetEntry(ctx, "entry_001")
	require.NoError(t, err)
	assert.Equal(t, entry.Title, retrieved.Title)
	assert.Equal(t, domain.VisibilityPublic, retrieved.Visibility)

	entries, err := store.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestGetEntry_NotFound(t *testing.T) {
	store := setupTestStore(t)

	_, err := store.GetEntry(context.Background(), "entry_missing")
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestCreateAndListBookLogs(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	log := &domain.BookLog{
		ID:         "booklog_001",
		Kind:       domain.KindBook,
		ShelfCode:  "830.20",
		ShelfLabel: "Novels That Marked Me",
		Status:     domain.StatusRead,
		Rating:     5,
		BookRef: domain.BookRef{
			Provider:   domain.ProviderMock,
			ProviderID: "vol-001",
			Title:      "The Remains of the Day",
			Authors:    []string{"Kazuo Ishiguro"},
		},
		CreatedAt: time.Now().UTC(),
		UpdatedAt: time.Now().UTC(),
	}
	require.NoError(t, store.CreateBookLog(ctx, log))

	retrieved, err := store.GetBookLog(ctx, "booklog_001")
	require.NoError(t, err)
	assert.Equal(t, "The Remains of the Day", retrieved.BookRef.Title)
	assert.Equal(t, domain.StatusRead, retrieved.Status)

	logs, err := store.ListBookLogs(ctx)
	require.NoError(t, err)
	assert.Len(t, logs, 1)
}

func TestRevision_BumpsOnWrite(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	before := store.Revision()
	require.NoError(t, store.CreateShelf(ctx, testShelf("820.20", "Grief Poetry")))
	assert.Greater(t, store.Revision(), before)

	// Reads leave the revision unchanged.
	after := store.Revision()
	_, err := store.ListShelves(ctx)
	require.NoError(t, err)
	assert.Equal(t, after, store.Revision())
}

func TestSeedShelves(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SeedShelves(ctx, "user-1"))

	shelves, err := store.ListShelves(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, shelves)

	official := 0
	for _, shelf := range shelves {
		assert.Equal(t, "user-1", shelf.OwnerID)
		if shelf.IsOfficial {
			official++
		}
	}
	assert.Greater(t, official, 0)

	// Seeding again is a no-op.
	count := len(shelves)
	require.NoError(t, store.SeedShelves(ctx, "user-1"))
	again, err := store.ListShelves(ctx)
	require.NoError(t, err)
	assert.Len(t, again, count)
}
