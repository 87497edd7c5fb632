package domain

// BookProvider identifies the external catalog a BookRef came from.
type BookProvider string

// Known book providers.
const (
	ProviderMock        BookProvider = "mock-google-books"
	ProviderGoogleBooks BookProvider = "google-books"
)

// BookRef is a reference to a book in an external catalog. It is the
// provider's record, denormalized into the log at creation time; the
// server never re-fetches it.
type BookRef struct {
	Provider      BookProvider `json:"provider"`
	ProviderID    string       `json:"provider_id"`
	Title         string       `json:"title"`
	Authors       []string     `json:"authors"`
	CoverURL      string       `json:"cover_url,omitempty"`
	ISBN10        string       `json:"isbn10,omitempty"`
	ISBN13        string       `json:"isbn13,omitempty"`
	PublishedDate string       `json:"published_date,omitempty"`
}
