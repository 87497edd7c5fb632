package books

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// gatedClient blocks each search until released, so tests control the
// order in which concurrent searches complete.
type gatedClient struct {
	started chan string
	release chan struct{}
}

func newGatedClient() *gatedClient {
	return &gatedClient{
		started: make(chan string),
		release: make(chan struct{}),
	}
}

func (c *gatedClient) Provider() domain.BookProvider { return domain.ProviderMock }

func (c *gatedClient) SearchBooks(_ context.Context, req SearchRequest) ([]domain.BookRef, error) {
	c.started <- req.Query
	<-c.release
	return []domain.BookRef{{Provider: domain.ProviderMock, Title: req.Query}}, nil
}

func (c *gatedClient) GetBookByID(context.Context, string) (*domain.BookRef, error) {
	return nil, ErrBookNotFound
}

func TestSession_SequentialSearchesSucceed(t *testing.T) {
	session := NewSession(NewMockClient(nil))
	ctx := context.Background()

	first, err := session.Search(ctx, SearchRequest{Query: "remains"})
	require.NoError(t, err)
	assert.Len(t, first, 1)

	second, err := session.Search(ctx, SearchRequest{Query: "neruda"})
	require.NoError(t, err)
	assert.Len(t, second, 1)
	assert.Equal(t, uint64(2), session.Generation())
}

func TestSession_NewerSearchSupersedesOlder(t *testing.T) {
	client := newGatedClient()
	session := NewSession(client)
	ctx := context.Background()

	var wg sync.WaitGroup
	var oldRes, newRes []domain.BookRef
	var oldErr, newErr error

	wg.Add(1)
	go func() {
		defer wg.Done()
		oldRes, oldErr = session.Search(ctx, SearchRequest{Query: "first"})
	}()
	<-client.started

	// A second search begins while the first is still in flight.
	wg.Add(1)
	go func() {
		defer wg.Done()
		newRes, newErr = session.Search(ctx, SearchRequest{Query: "second"})
	}()
	<-client.started

	client.release <- struct{}{}
	client.release <- struct{}{}
	wg.Wait()

	assert.ErrorIs(t, oldErr, ErrSuperseded)
	assert.Nil(t, oldRes)

	require.NoError(t, newErr)
	require.Len(t, newRes, 1)
	assert.Equal(t, "second", newRes[0].Title)
}
