// Package library builds the derived views over the flat entry and
// book-log collections: the shelf-grouped library index and the public
// catalog. Everything here is a pure function of its inputs; the service
// layer decides when to recompute.
package library

import (
	"slices"

	"github.com/inkshelf/inkshelf-server/internal/domain"
	"github.com/inkshelf/inkshelf-server/internal/taxonomy"
)

// Section pairs one shelf with the items filed under its code, newest
// first. Shelves with no catalog entry appear as synthesized custom
// shelves.
type Section struct {
	Shelf *domain.Shelf        `json:"shelf"`
	Items []domain.LibraryItem `json:"items"`
}

// BuildIndex groups all entries and book logs by shelf code and orders
// the result for display: sections ascending by shelf code, items within
// a section descending by creation time (ties keep grouping order, which
// preserves input order per variant).
//
// Every input item lands in exactly one section. A code missing from
// shelfByCode gets a placeholder shelf owned by ownerID.
func BuildIndex(shelfByCode map[string]*domain.Shelf, entries []*domain.Entry, logs []*domain.BookLog, ownerID string) []Section {
	grouped := make(map[string][]domain.LibraryItem)
	var codes []string

	appendItem := func(item domain.LibraryItem) {
		code := item.ItemShelfCode()
		if _, seen := grouped[code]; !seen {
			codes = append(codes, code)
		}
		grouped[code] = append(grouped[code], item)
	}

	for _, e := range entries {
		appendItem(e)
	}
	for _, b := range logs {
		appendItem(b)
	}

	slices.SortFunc(codes, taxonomy.CompareShelfCodes)

	sections := make([]Section, 0, len(codes))
	for _, code := range codes {
		shelf, ok := shelfByCode[code]
		if !ok {
			shelf = domain.NewCustomShelf(code, ownerID)
		}

		items := slices.Clone(grouped[code])
		slices.SortStableFunc(items, func(a, b domain.LibraryItem) int {
			// Newest first.
			return b.ItemCreatedAt().Compare(a.ItemCreatedAt())
		})

		sections = append(sections, Section{Shelf: shelf, Items: items})
	}

	return sections
}

// PublicEntries filters entries to the public catalog view, newest
// first. Book logs never appear here.
func PublicEntries(entries []*domain.Entry) []*domain.Entry {
	public := make([]*domain.Entry, 0, len(entries))
	for _, e := range entries {
		if e.IsPublic() {
			public = append(public, e)
		}
	}

	slices.SortStableFunc(public, func(a, b *domain.Entry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})

	return public
}

// ShelfMap indexes a shelf list by code for section resolution.
func ShelfMap(shelves []*domain.Shelf) map[string]*domain.Shelf {
	m := make(map[string]*domain.Shelf, len(shelves))
	for _, s := range shelves {
		m[s.Code] = s
	}
	return m
}
