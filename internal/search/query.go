package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
)

// SearchParams configures an entry search.
type SearchParams struct {
	Query     string // User's search query
	ShelfCode string // Restrict results to one shelf (optional)
	Mood      string // Exact mood filter (optional)
	Tag       string // Exact tag filter (optional)

	Limit  int
	Offset int

	Highlight bool // Include match highlighting
}

// DefaultSearchParams returns sensible defaults.
func DefaultSearchParams() SearchParams {
	return SearchParams{
		Limit:     20,
		Offset:    0,
		Highlight: true,
	}
}

// SearchResult holds the hits for one query.
type SearchResult struct {
	Query  string      `json:"query"`
	Total  uint64      `json:"total"`
	TookMs int64       `json:"took_ms"`
	Hits   []SearchHit `json:"hits"`
}

// SearchHit is a single matching entry.
type SearchHit struct {
	ID         string            `json:"id"`
	Score      float64           `json:"score"`
	Title      string            `json:"title"`
	ShelfCode  string            `json:"shelf_code"`
	ShelfLabel string            `json:"shelf_label,omitempty"`
	AuthorName string            `json:"author_name,omitempty"`
	Mood       string            `json:"mood,omitempty"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// Search executes a search over the public entries.
func (s *EntryIndex) Search(ctx context.Context, params SearchParams) (*SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	searchQuery := buildSearchQuery(params)

	searchRequest := bleve.NewSearchRequestOptions(searchQuery, params.Limit, params.Offset, false)

	if params.Query == "" {
		// Browsing without a query sorts by recency instead of score.
		searchRequest.SortBy([]string{"-created_at"})
	} else {
		searchRequest.SortBy([]string{"-_score"})
	}

	if params.Highlight {
		searchRequest.Highlight = bleve.NewHighlight()
		searchRequest.Highlight.AddField("title")
		searchRequest.Highlight.AddField("body")
	}

	searchRequest.Fields = []string{
		"id", "title", "shelf_code", "shelf_label", "author_name", "mood",
	}

	searchResult, err := s.index.SearchInContext(ctx, searchRequest)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &SearchResult{
		Query:  params.Query,
		Total:  searchResult.Total,
		TookMs: searchResult.Took.Milliseconds(),
		Hits:   make([]SearchHit, 0, len(searchResult.Hits)),
	}

	for _, hit := range searchResult.Hits {
		searchHit := SearchHit{
			ID:    hit.ID,
			Score: hit.Score,
		}

		if t, ok := hit.Fields["title"].(string); ok {
			searchHit.Title = t
		}
		if sc, ok := hit.Fields["shelf_code"].(string); ok {
			searchHit.ShelfCode = sc
		}
		if sl, ok := hit.Fields["shelf_label"].(string); ok {
			searchHit.ShelfLabel = sl
		}
		if an, ok := hit.Fields["author_name"].(string); ok {
			searchHit.AuthorName = an
		}
		if m, ok := hit.Fields["mood"].(string); ok {
			searchHit.Mood = m
		}

		if len(hit.Fragments) > 0 {
			searchHit.Highlights = make(map[string]string)
			for field, fragments := range hit.Fragments {
				if len(fragments) > 0 {
					searchHit.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, searchHit)
	}

	return result, nil
}

// buildSearchQuery constructs the Bleve query from params.
func buildSearchQuery(params SearchParams) query.Query {
	var queries []query.Query

	if params.Query != "" {
		textQueries := []query.Query{}

		// Title match with highest boost.
		titleMatch := bleve.NewMatchQuery(params.Query)
		titleMatch.SetField("title")
		titleMatch.SetBoost(3.0)
		textQueries = append(textQueries, titleMatch)

		// Body match.
		bodyMatch := bleve.NewMatchQuery(params.Query)
		bodyMatch.SetField("body")
		textQueries = append(textQueries, bodyMatch)

		// Shelf label so "grief" surfaces entries on the Grief Poetry shelf.
		labelMatch := bleve.NewMatchQuery(params.Query)
		labelMatch.SetField("shelf_label")
		labelMatch.SetBoost(1.5)
		textQueries = append(textQueries, labelMatch)

		// Fuzzy matching for typo tolerance on title.
		fuzzyQuery := bleve.NewFuzzyQuery(params.Query)
		fuzzyQuery.SetFuzziness(1)
		fuzzyQuery.SetField("title")
		fuzzyQuery.SetBoost(0.8)
		textQueries = append(textQueries, fuzzyQuery)

		// Prefix query for typeahead (minimum 2 chars).
		if len(params.Query) >= 2 {
			prefixQuery := bleve.NewPrefixQuery(strings.ToLower(params.Query))
			prefixQuery.SetField("title")
			prefixQuery.SetBoost(0.5)
			textQueries = append(textQueries, prefixQuery)
		}

		queries = append(queries, bleve.NewDisjunctionQuery(textQueries...))
	}

	if params.ShelfCode != "" {
		tq := bleve.NewTermQuery(params.ShelfCode)
		tq.SetField("shelf_code")
		queries = append(queries, tq)
	}

	if params.Mood != "" {
		mq := bleve.NewTermQuery(params.Mood)
		mq.SetField("mood")
		queries = append(queries, mq)
	}

	if params.Tag != "" {
		tq := bleve.NewTermQuery(params.Tag)
		tq.SetField("tags")
		queries = append(queries, tq)
	}

	if len(queries) == 0 {
		return bleve.NewMatchAllQuery()
	}
	if len(queries) == 1 {
		return queries[0]
	}
	return bleve.NewConjunctionQuery(queries...)
}
