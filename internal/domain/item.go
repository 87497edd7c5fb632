// Package domain defines the core data model: shelves, written entries,
// and logged books. The types carry no behavior beyond invariant checks;
// grouping, ordering, and mutation logic live in the library and service
// packages.
package domain

import "time"

// ItemKind discriminates the two LibraryItem variants.
type ItemKind string

// Library item kinds.
const (
	KindEntry ItemKind = "entry"
	KindBook  ItemKind = "book"
)

// Visibility controls whether an entry appears in the public catalog.
type Visibility string

// Entry visibilities.
const (
	VisibilityPublic  Visibility = "public"
	VisibilityPrivate Visibility = "private"
)

// ReadingStatus tracks progress through a logged book.
type ReadingStatus string

// Reading statuses.
const (
	StatusWantToRead ReadingStatus = "want_to_read"
	StatusReading    ReadingStatus = "reading"
	StatusRead       ReadingStatus = "read"
)

// LibraryItem is the common shape both variants satisfy: the unit that
// gets shelved and sorted. Consumers group and order items through these
// accessors and switch on Kind only for variant-specific fields.
type LibraryItem interface {
	ItemID() string
	ItemKind() ItemKind
	ItemShelfCode() string
	ItemShelfLabel() string
	ItemCreatedAt() time.Time
}

// Entry is a user-authored written item (poem, reflection, note) filed
// on a shelf. ShelfLabel is denormalized from the shelf catalog at
// creation time so renames never rewrite history.
type Entry struct {
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	ID         string     `json:"id"`
	Kind       ItemKind   `json:"kind"`
	Title      string     `json:"title"`
	Body       string     `json:"body"`
	ShelfCode  string     `json:"shelf_code"`
	ShelfLabel string     `json:"shelf_label"`
	Visibility Visibility `json:"visibility"`
	AuthorID   string     `json:"author_id"`
	AuthorName string     `json:"author_name"`
	Mood       string     `json:"mood,omitempty"`
	Tags       []string   `json:"tags,omitempty"`
}

// ItemID implements LibraryItem.
func (e *Entry) ItemID() string { return e.ID }

// ItemKind implements LibraryItem.
func (e *Entry) ItemKind() ItemKind { return KindEntry }

// ItemShelfCode implements LibraryItem.
func (e *Entry) ItemShelfCode() string { return e.ShelfCode }

// ItemShelfLabel implements LibraryItem.
func (e *Entry) ItemShelfLabel() string { return e.ShelfLabel }

// ItemCreatedAt implements LibraryItem.
func (e *Entry) ItemCreatedAt() time.Time { return e.CreatedAt }

// IsPublic reports whether the entry belongs in the public catalog.
func (e *Entry) IsPublic() bool { return e.Visibility == VisibilityPublic }

// BookLog records a book being tracked or read, filed on a shelf. The
// embedded BookRef is carried through from the search provider unchanged.
type BookLog struct {
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
	ID         string        `json:"id"`
	Kind       ItemKind      `json:"kind"`
	BookRef    BookRef       `json:"book_ref"`
	ShelfCode  string        `json:"shelf_code"`
	ShelfLabel string        `json:"shelf_label"`
	Status     ReadingStatus `json:"reading_status"`
	Notes      string        `json:"notes,omitempty"`
	Review     string        `json:"review,omitempty"`
	Rating     int           `json:"rating,omitempty"`
	Quotes     []string      `json:"quotes,omitempty"`
}

// ItemID implements LibraryItem.
func (b *BookLog) ItemID() string { return b.ID }

// ItemKind implements LibraryItem.
func (b *BookLog) ItemKind() ItemKind { return KindBook }

// ItemShelfCode implements LibraryItem.
func (b *BookLog) ItemShelfCode() string { return b.ShelfCode }

// ItemShelfLabel implements LibraryItem.
func (b *BookLog) ItemShelfLabel() string { return b.ShelfLabel }

// ItemCreatedAt implements LibraryItem.
func (b *BookLog) ItemCreatedAt() time.Time { return b.CreatedAt }
