package service

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/books"
	"github.com/inkshelf/inkshelf-server/internal/domain"
	domainerrors "github.com/inkshelf/inkshelf-server/internal/errors"
)

func setupBookService(t *testing.T) *BookService {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	return NewBookService(books.NewMockClient(logger), logger)
}

func TestBookSearch(t *testing.T) {
	svc := setupBookService(t)

	results, err := svc.Search(context.Background(), "ishiguro", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Remains of the Day", results[0].Title)
	assert.Equal(t, domain.ProviderMock, svc.Provider())
}

func TestGetBook(t *testing.T) {
	svc := setupBookService(t)
	ctx := context.Background()

	book, err := svc.GetBook(ctx, "vol-002")
	require.NoError(t, err)
	assert.Equal(t, "Twenty Love Poems and a Song of Despair", book.Title)
}

func TestGetBook_NotFound(t *testing.T) {
	svc := setupBookService(t)

	_, err := svc.GetBook(context.Background(), "vol-999")
	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeNotFound, domainErr.Code)
}

func TestSuggest_PerSessionIsolation(t *testing.T) {
	svc := setupBookService(t)
	ctx := context.Background()

	first, err := svc.Suggest(ctx, "session-a", "neruda", 10)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A different session has its own generation counter.
	second, err := svc.Suggest(ctx, "session-b", "oliver", 10)
	require.NoError(t, err)
	require.Len(t, second, 1)

	// Sequential suggests in one session both succeed.
	third, err := svc.Suggest(ctx, "session-a", "rilke", 10)
	require.NoError(t, err)
	require.Len(t, third, 1)
}
