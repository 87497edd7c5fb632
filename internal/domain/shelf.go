package domain

import (
	"strings"
	"time"

	"github.com/inkshelf/inkshelf-server/internal/taxonomy"
)

// CustomShelfLabel is the display label for shelves synthesized from a
// code that has no entry in the shelf catalog.
const CustomShelfLabel = "Custom Shelf"

// Shelf is a named sub-category within an aisle, keyed by a DDD.DD shelf
// code. Official shelves (tails 00-09) are library-curated; user shelves
// (tails 10-99) belong to the user who created them.
type Shelf struct {
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	ID         string    `json:"id"`
	Code       string    `json:"code"`
	Label      string    `json:"label"`
	AisleCode  string    `json:"aisle_code"` // Always the first three digits of Code
	OwnerID    string    `json:"owner_id"`
	IsOfficial bool      `json:"is_official"`
}

// Validate checks the structural invariants of a shelf.
func (s *Shelf) Validate() bool {
	return taxonomy.IsValidShelfCode(s.Code) &&
		s.AisleCode == taxonomy.AisleCodeOf(s.Code) &&
		s.Label != ""
}

// NewCustomShelf synthesizes a placeholder shelf for a code with no
// catalog entry. Items filed under an unknown code still get a section
// in the library index; this shelf backs that section.
func NewCustomShelf(code, ownerID string) *Shelf {
	return &Shelf{
		ID:         "dynamic-" + strings.ReplaceAll(code, ".", "-"),
		Code:       code,
		Label:      CustomShelfLabel,
		AisleCode:  taxonomy.AisleCodeOf(code),
		OwnerID:    ownerID,
		IsOfficial: false,
	}
}
