package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/inkshelf/inkshelf-server/internal/errors"
)

type createEntryForm struct {
	Title     string `json:"title" validate:"required,max=200"`
	Body      string `json:"body" validate:"required"`
	ShelfCode string `json:"shelf_code" validate:"required,shelfcode"`
}

func TestValidate_Passes(t *testing.T) {
	v := New()

	err := v.Validate(createEntryForm{
		Title:     "Moonlit Solitude",
		Body:      "A quiet night, the world asleep.",
		ShelfCode: "820.20",
	})

	assert.NoError(t, err)
}

func TestValidate_ShelfCodeTag(t *testing.T) {
	v := New()

	err := v.Validate(createEntryForm{
		Title:     "Moonlit Solitude",
		Body:      "A quiet night.",
		ShelfCode: "bad-code",
	})

	require.Error(t, err)

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domainerrors.CodeValidation, domainErr.Code)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "shelf_code")
	assert.Equal(t, "must be a shelf code of the form DDD.DD", details["shelf_code"])
}

func TestValidate_UsesJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(createEntryForm{ShelfCode: "820.20"})

	var domainErr *domainerrors.Error
	require.ErrorAs(t, err, &domainErr)

	details, ok := domainErr.Details.(map[string]string)
	require.True(t, ok)
	assert.Contains(t, details, "title")
	assert.Contains(t, details, "body")
	assert.Equal(t, "is required", details["title"])
}
