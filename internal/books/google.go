package books

import (
	"context"
	"encoding/json/v2"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	"github.com/inkshelf/inkshelf-server/internal/ratelimit"
)

const volumesBaseURL = "https://www.googleapis.com/books/v1/volumes"

// Rate limiter keys, one bucket per API endpoint.
const (
	limitKeySearch = "volumes.search"
	limitKeyVolume = "volumes.get"
)

// GoogleClient searches the Google Books volumes API.
type GoogleClient struct {
	httpClient  *http.Client
	rateLimiter *ratelimit.Keyed
	logger      *slog.Logger
	apiKey      string
}

// NewGoogleClient creates a Google Books client. The API key is
// optional; unkeyed requests work with lower quota.
func NewGoogleClient(apiKey string, logger *slog.Logger) *GoogleClient {
	return &GoogleClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		// Stay well under the unauthenticated quota.
		rateLimiter: ratelimit.New(1, 5),
		logger:      logger,
		apiKey:      apiKey,
	}
}

// Provider implements Client.
func (c *GoogleClient) Provider() domain.BookProvider {
	return domain.ProviderGoogleBooks
}

// SearchBooks implements Client.
func (c *GoogleClient) SearchBooks(ctx context.Context, req SearchRequest) ([]domain.BookRef, error) {
	if err := c.rateLimiter.Wait(ctx, limitKeySearch); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	query := req.Query
	if query == "" {
		// The volumes API rejects empty queries.
		query = "subject:poetry"
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("maxResults", strconv.Itoa(req.limitOrDefault()))
	params.Set("printType", "books")
	if c.apiKey != "" {
		params.Set("key", c.apiKey)
	}

	searchURL := volumesBaseURL + "?" + params.Encode()

	c.logger.Debug("searching Google Books", "query", query)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search failed: status %d", resp.StatusCode)
	}

	var searchResp volumesResponse
	if err := json.UnmarshalRead(resp.Body, &searchResp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	results := make([]domain.BookRef, 0, len(searchResp.Items))
	for i := range searchResp.Items {
		results = append(results, searchResp.Items[i].toBookRef())
	}

	c.logger.Debug("Google Books search results", "query", query, "count", len(results))
	return results, nil
}

// GetBookByID implements Client.
func (c *GoogleClient) GetBookByID(ctx context.Context, providerID string) (*domain.BookRef, error) {
	if err := c.rateLimiter.Wait(ctx, limitKeyVolume); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	volumeURL := volumesBaseURL + "/" + url.PathEscape(providerID)
	if c.apiKey != "" {
		volumeURL += "?key=" + url.QueryEscape(c.apiKey)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, volumeURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("volume request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrBookNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("volume lookup failed: status %d", resp.StatusCode)
	}

	var vol volume
	if err := json.UnmarshalRead(resp.Body, &vol); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	ref := vol.toBookRef()
	return &ref, nil
}

// Wire types for the volumes API.

type volumesResponse struct {
	TotalItems int      `json:"totalItems"`
	Items      []volume `json:"items"`
}

type volume struct {
	ID         string     `json:"id"`
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title               string               `json:"title"`
	Authors             []string             `json:"authors"`
	PublishedDate       string               `json:"publishedDate"`
	IndustryIdentifiers []industryIdentifier `json:"industryIdentifiers"`
	ImageLinks          imageLinks           `json:"imageLinks"`
}

type industryIdentifier struct {
	Type       string `json:"type"`
	Identifier string `json:"identifier"`
}

type imageLinks struct {
	Thumbnail      string `json:"thumbnail"`
	SmallThumbnail string `json:"smallThumbnail"`
}

func (v *volume) toBookRef() domain.BookRef {
	ref := domain.BookRef{
		Provider:      domain.ProviderGoogleBooks,
		ProviderID:    v.ID,
		Title:         v.VolumeInfo.Title,
		Authors:       v.VolumeInfo.Authors,
		PublishedDate: v.VolumeInfo.PublishedDate,
	}

	for _, ident := range v.VolumeInfo.IndustryIdentifiers {
		switch ident.Type {
		case "ISBN_10":
			ref.ISBN10 = ident.Identifier
		case "ISBN_13":
			ref.ISBN13 = ident.Identifier
		}
	}

	if v.VolumeInfo.ImageLinks.Thumbnail != "" {
		ref.CoverURL = v.VolumeInfo.ImageLinks.Thumbnail
	} else {
		ref.CoverURL = v.VolumeInfo.ImageLinks.SmallThumbnail
	}

	return ref
}
