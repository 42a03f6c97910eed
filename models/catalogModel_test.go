package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Premium Cotton Panjabi", "premium-cotton-panjabi"},
		{"  Leading & trailing  ", "leading-trailing"},
		{"UPPER case MIXED", "upper-case-mixed"},
		{"100% Original!", "100-original"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Slugify(tc.in), "input %q", tc.in)
	}
}

func TestCategoryBeforeSaveFillsSlug(t *testing.T) {
	category := Category{Name: "Men's Fashion"}
	require.NoError(t, category.BeforeSave(nil))
	assert.Equal(t, "men-s-fashion", category.Slug)

	category = Category{Name: "Ignored", Slug: "custom-slug"}
	require.NoError(t, category.BeforeSave(nil))
	assert.Equal(t, "custom-slug", category.Slug)
}

func TestBrandBeforeSaveFillsSlug(t *testing.T) {
	brand := Brand{Name: "Buyolex Basics"}
	require.NoError(t, brand.BeforeSave(nil))
	assert.Equal(t, "buyolex-basics", brand.Slug)
}

func TestProductBeforeSaveSlugCarriesUUIDSuffix(t *testing.T) {
	product := Product{Title: "Premium Cotton Panjabi"}
	require.NoError(t, product.BeforeSave(nil))

	require.NotEmpty(t, product.UUID)
	assert.Equal(t, "premium-cotton-panjabi-"+product.UUID[:8], product.Slug)
}

func TestProductBeforeSaveTruncatesLongTitles(t *testing.T) {
	product := Product{Title: strings.Repeat("nokshi katha ", 30)}
	require.NoError(t, product.BeforeSave(nil))

	// 200 slug characters plus the hyphen and eight UUID characters.
	assert.Len(t, product.Slug, 209)
}
