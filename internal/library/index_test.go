package library

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkshelf/inkshelf-server/internal/domain"
)

var base = time.Date(2026, 2, 5, 18, 0, 0, 0, time.UTC)

func entry(id, code string, vis domain.Visibility, createdAt time.Time) *domain.Entry {
	return &domain.Entry{
		ID:         id,
		Kind:       domain.KindEntry,
		Title:      "Entry " + id,
		Body:       "body",
		ShelfCode:  code,
		ShelfLabel: "Shelf " + code,
		Visibility: vis,
		AuthorID:   "user-1",
		AuthorName: "You",
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func bookLog(id, code string, createdAt time.Time) *domain.BookLog {
	return &domain.BookLog{
		ID:         id,
		Kind:       domain.KindBook,
		ShelfCode:  code,
		ShelfLabel: "Shelf " + code,
		Status:     domain.StatusReading,
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
}

func shelf(code, label string) *domain.Shelf {
	return &domain.Shelf{
		ID:        "s-" + code,
		Code:      code,
		Label:     label,
		AisleCode: code[:3],
		OwnerID:   "user-1",
	}
}

func TestBuildIndex_GroupsEveryItemExactlyOnce(t *testing.T) {
	shelves := ShelfMap([]*domain.Shelf{
		shelf("820.20", "Grief Poetry"),
		shelf("830.20", "Thriller Fiction"),
		shelf("100.20", "Quiet Growth"),
	})
	entries := []*domain.Entry{
		entry("e1", "820.20", domain.VisibilityPublic, base),
		entry("e2", "830.20", domain.VisibilityPrivate, base),
	}
	logs := []*domain.BookLog{
		bookLog("b1", "830.20", base),
		bookLog("b2", "100.20", base),
	}

	sections := BuildIndex(shelves, entries, logs, "user-1")

	seen := map[string]string{}
	for _, sec := range sections {
		for _, item := range sec.Items {
			_, dup := seen[item.ItemID()]
			assert.False(t, dup, "item %s appears twice", item.ItemID())
			seen[item.ItemID()] = sec.Shelf.Code
			assert.Equal(t, sec.Shelf.Code, item.ItemShelfCode())
		}
	}
	assert.Len(t, seen, 4)
}

func TestBuildIndex_SectionsAscendItemsDescend(t *testing.T) {
	shelves := ShelfMap([]*domain.Shelf{
		shelf("820.20", "Grief Poetry"),
		shelf("830.20", "Thriller Fiction"),
		shelf("100.20", "Quiet Growth"),
	})
	entries := []*domain.Entry{
		entry("old", "820.20", domain.VisibilityPublic, base),
		entry("new", "820.20", domain.VisibilityPublic, base.Add(time.Hour)),
	}
	logs := []*domain.BookLog{
		bookLog("b1", "830.20", base),
		bookLog("b2", "100.20", base),
	}

	sections := BuildIndex(shelves, entries, logs, "user-1")

	require.Len(t, sections, 3)
	assert.Equal(t, "100.20", sections[0].Shelf.Code)
	assert.Equal(t, "820.20", sections[1].Shelf.Code)
	assert.Equal(t, "830.20", sections[2].Shelf.Code)

	require.Len(t, sections[1].Items, 2)
	assert.Equal(t, "new", sections[1].Items[0].ItemID())
	assert.Equal(t, "old", sections[1].Items[1].ItemID())
}

func TestBuildIndex_TimestampTiesKeepGroupingOrder(t *testing.T) {
	shelves := ShelfMap([]*domain.Shelf{shelf("820.20", "Grief Poetry")})
	// Same creation instant: entries were appended before logs, so the
	// entry stays first.
	entries := []*domain.Entry{entry("e1", "820.20", domain.VisibilityPublic, base)}
	logs := []*domain.BookLog{bookLog("b1", "820.20", base)}

	sections := BuildIndex(shelves, entries, logs, "user-1")

	require.Len(t, sections, 1)
	require.Len(t, sections[0].Items, 2)
	assert.Equal(t, "e1", sections[0].Items[0].ItemID())
	assert.Equal(t, "b1", sections[0].Items[1].ItemID())
}

func TestBuildIndex_SynthesizesCustomShelfForUnknownCode(t *testing.T) {
	sections := BuildIndex(
		map[string]*domain.Shelf{},
		[]*domain.Entry{entry("e1", "412.77", domain.VisibilityPublic, base)},
		nil,
		"user-1",
	)

	require.Len(t, sections, 1)
	assert.Equal(t, domain.CustomShelfLabel, sections[0].Shelf.Label)
	assert.False(t, sections[0].Shelf.IsOfficial)
	assert.Equal(t, "412", sections[0].Shelf.AisleCode)
	assert.Equal(t, "user-1", sections[0].Shelf.OwnerID)
}

func TestBuildIndex_IsIdempotent(t *testing.T) {
	shelves := ShelfMap([]*domain.Shelf{
		shelf("820.20", "Grief Poetry"),
		shelf("830.20", "Thriller Fiction"),
	})
	entries := []*domain.Entry{
		entry("e1", "820.20", domain.VisibilityPublic, base),
		entry("e2", "830.20", domain.VisibilityPrivate, base.Add(time.Minute)),
	}
	logs := []*domain.BookLog{bookLog("b1", "830.20", base)}

	first := BuildIndex(shelves, entries, logs, "user-1")
	second := BuildIndex(shelves, entries, logs, "user-1")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Shelf.Code, second[i].Shelf.Code)
		require.Equal(t, len(first[i].Items), len(second[i].Items))
		for j := range first[i].Items {
			assert.Equal(t, first[i].Items[j].ItemID(), second[i].Items[j].ItemID())
		}
	}
}

func TestBuildIndex_EmptyInputYieldsEmptyIndex(t *testing.T) {
	assert.Empty(t, BuildIndex(map[string]*domain.Shelf{}, nil, nil, "user-1"))
}

func TestPublicEntries_FiltersPrivateAndSortsNewestFirst(t *testing.T) {
	entries := []*domain.Entry{
		entry("older-public", "820.20", domain.VisibilityPublic, base),
		entry("private", "820.10", domain.VisibilityPrivate, base.Add(2*time.Hour)),
		entry("newer-public", "830.20", domain.VisibilityPublic, base.Add(time.Hour)),
	}

	public := PublicEntries(entries)

	require.Len(t, public, 2)
	assert.Equal(t, "newer-public", public[0].ID)
	assert.Equal(t, "older-public", public[1].ID)
}

func TestPublicEntries_EmptyInput(t *testing.T) {
	assert.Empty(t, PublicEntries(nil))
}
