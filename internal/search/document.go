// Package search provides full-text search over public entries using
// Bleve. Only public entries are indexed; private entries never enter
// the index, so visibility is enforced at write time rather than at
// query time.
package search

import (
	"github.com/inkshelf/inkshelf-server/internal/domain"
)

// EntryDocument is the Bleve document for a public entry. Shelf label
// and author name are denormalized in so hits render without a store
// round-trip.
type EntryDocument struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Body       string   `json:"body"`
	ShelfCode  string   `json:"shelf_code"`
	ShelfLabel string   `json:"shelf_label"`
	AuthorName string   `json:"author_name"`
	Mood       string   `json:"mood,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	CreatedAt  int64    `json:"created_at"` // Unix millis
}

// DocumentFromEntry builds the index document for an entry. The caller
// is responsible for only passing public entries.
func DocumentFromEntry(entry *domain.Entry) *EntryDocument {
	return &EntryDocument{
		ID:         entry.ID,
		Title:      entry.Title,
		Body:       entry.Body,
		ShelfCode:  entry.ShelfCode,
		ShelfLabel: entry.ShelfLabel,
		AuthorName: entry.AuthorName,
		Mood:       entry.Mood,
		Tags:       entry.Tags,
		CreatedAt:  entry.CreatedAt.UnixMilli(),
	}
}

// ToMap converts the document to a map with lowercase field names so
// they match the index mapping. Bleve would otherwise index under the
// capitalized Go field names.
func (d *EntryDocument) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"title":      d.Title,
		"body":       d.Body,
		"shelf_code": d.ShelfCode,
		"created_at": d.CreatedAt,
	}

	if d.ShelfLabel != "" {
		m["shelf_label"] = d.ShelfLabel
	}
	if d.AuthorName != "" {
		m["author_name"] = d.AuthorName
	}
	if d.Mood != "" {
		m["mood"] = d.Mood
	}
	if len(d.Tags) > 0 {
		m["tags"] = d.Tags
	}

	return m
}
