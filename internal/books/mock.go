package books

import (
	"context"
	"log/slog"
	"strings"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// MockClient serves a fixed in-memory catalog. It is the default
// provider so the server works without network access or API keys.
type MockClient struct {
	logger  *slog.Logger
	catalog []domain.BookRef
}

// NewMockClient creates a mock catalog client.
func NewMockClient(logger *slog.Logger) *MockClient {
	return &MockClient{
		logger:  logger,
		catalog: mockCatalog(),
	}
}

// Provider implements Client.
func (c *MockClient) Provider() domain.BookProvider {
	return domain.ProviderMock
}

// SearchBooks implements Client. Matching is a folded substring test
// over title, authors, and ISBNs. An empty query returns the head of
// the catalog so typeahead has something to show before the first
// keystroke.
func (c *MockClient) SearchBooks(_ context.Context, req SearchRequest) ([]domain.BookRef, error) {
	limit := req.limitOrDefault()
	query := fold(strings.TrimSpace(req.Query))

	results := make([]domain.BookRef, 0, limit)
	for _, book := range c.catalog {
		if query != "" && !c.matches(&book, query) {
			continue
		}
		results = append(results, book)
		if len(results) == limit {
			break
		}
	}

	if c.logger != nil {
		c.logger.Debug("mock catalog search", "query", req.Query, "count", len(results))
	}
	return results, nil
}

// GetBookByID implements Client.
func (c *MockClient) GetBookByID(_ context.Context, providerID string) (*domain.BookRef, error) {
	for i := range c.catalog {
		if c.catalog[i].ProviderID == providerID {
			book := c.catalog[i]
			return &book, nil
		}
	}
	return nil, ErrBookNotFound
}

func (c *MockClient) matches(book *domain.BookRef, foldedQuery string) bool {
	if strings.Contains(fold(book.Title), foldedQuery) {
		return true
	}
	for _, author := range book.Authors {
		if strings.Contains(fold(author), foldedQuery) {
			return true
		}
	}
	if book.ISBN10 != "" && strings.Contains(book.ISBN10, foldedQuery) {
		return true
	}
	if book.ISBN13 != "" && strings.Contains(book.ISBN13, foldedQuery) {
		return true
	}
	return false
}

// mockCatalog returns the fixture catalog. Every ref carries the mock
// provider tag so logged books record where they came from.
func mockCatalog() []domain.BookRef {
	refs := []domain.BookRef{
		{
			ProviderID:    "vol-001",
			Title:         "The Remains of the Day",
			Authors:       []string{"Kazuo Ishiguro"},
			ISBN10:        "0571258247",
			ISBN13:        "9780571258246",
			PublishedDate: "1989",
		},
		{
			ProviderID:    "vol-002",
			Title:         "Twenty Love Poems and a Song of Despair",
			Authors:       []string{"Pablo Neruda"},
			ISBN13:        "9780140186482",
			PublishedDate: "1924",
		},
		{
			ProviderID:    "vol-003",
			Title:         "Devotions: The Selected Poems of Mary Oliver",
			Authors:       []string{"Mary Oliver"},
			ISBN13:        "9780399563249",
			PublishedDate: "2017",
		},
		{
			ProviderID:    "vol-004",
			Title:         "When Things Fall Apart",
			Authors:       []string{"Pema Chödrön"},
			ISBN13:        "9781611803433",
			PublishedDate: "1997",
		},
		{
			ProviderID:    "vol-005",
			Title:         "The Year of Magical Thinking",
			Authors:       []string{"Joan Didion"},
			ISBN13:        "9781400078431",
			PublishedDate: "2005",
		},
		{
			ProviderID:    "vol-006",
			Title:         "Letters to a Young Poet",
			Authors:       []string{"Rainer Maria Rilke"},
			ISBN13:        "9780393310399",
			PublishedDate: "1929",
		},
		{
			ProviderID:    "vol-007",
			Title:         "Bluets",
			Authors:       []string{"Maggie Nelson"},
			ISBN13:        "9781933517407",
			PublishedDate: "2009",
		},
		{
			ProviderID:    "vol-008",
			Title:         "Norwegian Wood",
			Authors:       []string{"Haruki Murakami"},
			ISBN13:        "9780375704024",
			PublishedDate: "1987",
		},
		{
			ProviderID:    "vol-009",
			Title:         "The Prophet",
			Authors:       []string{"Kahlil Gibran"},
			ISBN10:        "0394404289",
			ISBN13:        "9780394404288",
			PublishedDate: "1923",
		},
		{
			ProviderID:    "vol-010",
			Title:         "Wild: From Lost to Found on the Pacific Crest Trail",
			Authors:       []string{"Cheryl Strayed"},
			ISBN13:        "9780307476074",
			PublishedDate: "2012",
		},
		{
			ProviderID:    "vol-011",
			Title:         "Milk and Honey",
			Authors:       []string{"Rupi Kaur"},
			ISBN13:        "9781449474256",
			PublishedDate: "2014",
		},
		{
			ProviderID:    "vol-012",
			Title:         "A Grief Observed",
			Authors:       []string{"C. S. Lewis"},
			ISBN13:        "9780060652388",
			PublishedDate: "1961",
		},
	}

	for i := range refs {
		refs[i].Provider = domain.ProviderMock
	}
	return refs
}
