package repository

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"

	"familymarket/internal/domain/entity"
)

func TestParseListingSort(t *testing.T) {
	tests := []struct {
		key   string
		field string
		order firestore.Direction
	}{
		{"", "fechaCreacion", firestore.Desc},
		{"fechaCreacion_asc", "fechaCreacion", firestore.Asc},
		{"titulo_asc", "titulo", firestore.Asc},
		{"titulo_desc", "titulo", firestore.Desc},
		{"vistas_desc", "vistas", firestore.Desc},
		{"precio_asc", "fechaCreacion", firestore.Asc},
	}

	for _, tt := range tests {
		field, order := parseListingSort(tt.key)
		assert.Equal(t, tt.field, field, "key %q", tt.key)
		assert.Equal(t, tt.order, order, "key %q", tt.key)
	}
}

func TestSortListingsOrdersByField(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	listings := []*entity.Listing{
		{ID: "a", Title: "Zapatero", Views: 5, CreatedAt: base},
		{ID: "b", Title: "albañil", Views: 40, CreatedAt: base.Add(time.Hour)},
		{ID: "c", Title: "Mozo", Views: 12, CreatedAt: base.Add(2 * time.Hour)},
	}

	sortListings(listings, "titulo_asc")
	assert.Equal(t, []string{"b", "c", "a"}, listingIDs(listings))

	sortListings(listings, "vistas_desc")
	assert.Equal(t, []string{"b", "c", "a"}, listingIDs(listings))

	sortListings(listings, "")
	assert.Equal(t, []string{"c", "b", "a"}, listingIDs(listings))
}

func TestSortListingsFloatsActiveFeatured(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	future := time.Now().Add(time.Hour)
	past := time.Now().Add(-time.Hour)

	listings := []*entity.Listing{
		{ID: "plain", CreatedAt: base.Add(2 * time.Hour)},
		{ID: "lapsed", Featured: true, FeaturedUntil: &past, CreatedAt: base.Add(time.Hour)},
		{ID: "promoted", Featured: true, FeaturedUntil: &future, CreatedAt: base},
	}

	sortListings(listings, "")
	assert.Equal(t, []string{"promoted", "plain", "lapsed"}, listingIDs(listings))
}

func TestSortListingsKeepsTieOrderDescending(t *testing.T) {
	when := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	listings := []*entity.Listing{
		{ID: "first", Title: "Mozo", Views: 7, CreatedAt: when},
		{ID: "second", Title: "Mozo", Views: 7, CreatedAt: when},
		{ID: "third", Title: "Mozo", Views: 7, CreatedAt: when},
	}

	// Fully tied keys must keep their input order in both directions.
	for _, key := range []string{"fechaCreacion_desc", "titulo_desc", "vistas_desc", "fechaCreacion_asc"} {
		sortListings(listings, key)
		assert.Equal(t, []string{"first", "second", "third"}, listingIDs(listings), "sort %q", key)
	}
}

func listingIDs(listings []*entity.Listing) []string {
	ids := make([]string, len(listings))
	for i, l := range listings {
		ids[i] = l.ID
	}
	return ids
}
