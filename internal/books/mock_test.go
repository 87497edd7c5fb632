package books

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

func TestMockSearch_TitleSubstring(t *testing.T) {
	client := NewMockClient(nil)

	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "remains"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "The Remains of the Day", results[0].Title)
	assert.Equal(t, domain.ProviderMock, results[0].Provider)
}

func TestMockSearch_AuthorCaseInsensitive(t *testing.T) {
	client := NewMockClient(nil)

	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "NERUDA"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Twenty Love Poems and a Song of Despair", results[0].Title)
}

func TestMockSearch_FoldsDiacritics(t *testing.T) {
	client := NewMockClient(nil)

	// Catalog has "Pema Chödrön"; a plain-ASCII query still matches.
	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "chodron"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "When Things Fall Apart", results[0].Title)
}

func TestMockSearch_ISBN(t *testing.T) {
	client := NewMockClient(nil)

	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "9780375704024"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Norwegian Wood", results[0].Title)
}

func TestMockSearch_EmptyQueryBrowses(t *testing.T) {
	client := NewMockClient(nil)

	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "", Limit: 5})
	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestMockSearch_LimitApplied(t *testing.T) {
	client := NewMockClient(nil)

	// "the" matches several titles; limit caps the result set.
	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "the", Limit: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestMockSearch_NoMatches(t *testing.T) {
	client := NewMockClient(nil)

	results, err := client.SearchBooks(context.Background(), SearchRequest{Query: "zzzzzz"})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestMockGetBookByID(t *testing.T) {
	client := NewMockClient(nil)

	book, err := client.GetBookByID(context.Background(), "vol-009")
	require.NoError(t, err)
	assert.Equal(t, "The Prophet", book.Title)

	_, err = client.GetBookByID(context.Background(), "vol-999")
	assert.ErrorIs(t, err, ErrBookNotFound)
}
