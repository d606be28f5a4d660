package services

import (
	"database/sql"
	"testing"
	"time"

	"psc-server/models"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nullStr(s string) sql.NullString { return sql.NullString{String: s, Valid: true} }
func nullF(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }
func nullI(v int64) sql.NullInt64     { return sql.NullInt64{Int64: v, Valid: true} }
func nullB(v bool) sql.NullBool       { return sql.NullBool{Bool: v, Valid: true} }
func nullT(v time.Time) sql.NullTime  { return sql.NullTime{Time: v, Valid: true} }

func coerceMinimal(id sql.NullString) (models.Product, bool) {
	return coerceProduct(id, sql.NullString{}, sql.NullString{},
		sql.NullFloat64{}, sql.NullFloat64{},
		sql.NullString{}, sql.NullString{}, sql.NullString{},
		pq.StringArray{}, sql.NullBool{}, pq.StringArray{},
		sql.NullFloat64{}, sql.NullInt64{}, pq.StringArray{},
		sql.NullInt64{}, sql.NullTime{}, sql.NullFloat64{})
}

func TestCoerceProduct(t *testing.T) {
	t.Run("drops records without an id", func(t *testing.T) {
		_, ok := coerceMinimal(sql.NullString{})
		assert.False(t, ok)

		_, ok = coerceMinimal(nullStr("   "))
		assert.False(t, ok)
	})

	t.Run("applies safe defaults to an otherwise empty record", func(t *testing.T) {
		p, ok := coerceMinimal(nullStr("bare-product"))
		require.True(t, ok)

		assert.Equal(t, "bare-product", p.ID)
		assert.Equal(t, "Unnamed product", p.Title)
		assert.Equal(t, models.CategoryJersey, p.Category)
		assert.Equal(t, "Neutral", p.League)
		assert.Equal(t, "Neutral", p.Team)
		assert.Equal(t, models.DefaultJerseySizes, p.Sizes)
		assert.Equal(t, []string{models.DefaultProductImage}, p.Images)
		assert.True(t, p.InStock)
		assert.Zero(t, p.Price)
		assert.Equal(t, time.Now().Format("2006-01-02"), p.ReleaseDate)
	})

	t.Run("unknown category falls back to jersey", func(t *testing.T) {
		p, ok := coerceProduct(nullStr("p1"), nullStr("Ball"), sql.NullString{},
			nullF(25), sql.NullFloat64{},
			nullStr("gadgets"), sql.NullString{}, sql.NullString{},
			pq.StringArray{}, nullB(true), pq.StringArray{},
			sql.NullFloat64{}, sql.NullInt64{}, pq.StringArray{},
			sql.NullInt64{}, sql.NullTime{}, sql.NullFloat64{})
		require.True(t, ok)

		assert.Equal(t, models.CategoryJersey, p.Category)
	})

	t.Run("keeps valid values untouched", func(t *testing.T) {
		released := time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)
		p, ok := coerceProduct(nullStr("p2"), nullStr("Pro Boots"), nullStr("Firm ground"),
			nullF(199.99), nullF(149.99),
			nullStr("boots"), nullStr("Premier League"), nullStr("Chelsea"),
			pq.StringArray{"42", "43"}, nullB(false), pq.StringArray{"/a.jpg"},
			nullF(4.5), nullI(12), pq.StringArray{"Lightweight"},
			nullI(7), nullT(released), nullF(88))
		require.True(t, ok)

		assert.Equal(t, "Pro Boots", p.Title)
		assert.Equal(t, 199.99, p.Price)
		require.NotNil(t, p.DiscountPrice)
		assert.Equal(t, 149.99, *p.DiscountPrice)
		assert.Equal(t, "boots", p.Category)
		assert.Equal(t, []string{"42", "43"}, p.Sizes)
		assert.False(t, p.InStock)
		assert.Equal(t, "2024-08-01", p.ReleaseDate)
		require.NotNil(t, p.Stock)
		assert.Equal(t, 7, *p.Stock)
	})

	t.Run("negative price is zeroed", func(t *testing.T) {
		p, ok := coerceProduct(nullStr("p3"), nullStr("X"), sql.NullString{},
			nullF(-10), sql.NullFloat64{},
			sql.NullString{}, sql.NullString{}, sql.NullString{},
			pq.StringArray{}, sql.NullBool{}, pq.StringArray{},
			sql.NullFloat64{}, sql.NullInt64{}, pq.StringArray{},
			sql.NullInt64{}, sql.NullTime{}, sql.NullFloat64{})
		require.True(t, ok)

		assert.Zero(t, p.Price)
	})
}

func TestStaticCatalog(t *testing.T) {
	catalog := NewStaticCatalogService(fallbackCatalog)

	t.Run("bundles a non-empty product set", func(t *testing.T) {
		assert.NotEmpty(t, catalog.Products())
	})

	t.Run("looks up products by id", func(t *testing.T) {
		p, found := catalog.ByID("chelsea-home-2425")
		require.True(t, found)
		assert.Equal(t, "Chelsea 24/25 Home Jersey", p.Title)

		_, found = catalog.ByID("does-not-exist")
		assert.False(t, found)
	})

	t.Run("price bounds span effective prices", func(t *testing.T) {
		min, max := catalog.PriceBounds()

		assert.Less(t, min, max)
		for _, p := range catalog.Products() {
			price := p.EffectivePrice()
			assert.GreaterOrEqual(t, price, min)
			assert.LessOrEqual(t, price, max)
		}
	})

	t.Run("distinct facets are sorted and deduped", func(t *testing.T) {
		leagues := catalog.DistinctLeagues()

		assert.NotEmpty(t, leagues)
		assert.IsIncreasing(t, leagues)

		seen := map[string]bool{}
		for _, l := range leagues {
			assert.False(t, seen[l], "duplicate league %q", l)
			seen[l] = true
		}
	})

	t.Run("categories come from the fixed vocabulary", func(t *testing.T) {
		for _, c := range catalog.DistinctCategories() {
			assert.True(t, models.IsValidCategory(c), "category %q", c)
		}
	})
}

func TestProductDerivedPricing(t *testing.T) {
	discounted := models.Product{Price: 100, DiscountPrice: floatPtr(75)}
	full := models.Product{Price: 100}

	assert.Equal(t, 75.0, discounted.EffectivePrice())
	assert.Equal(t, 100.0, full.EffectivePrice())

	assert.Equal(t, 25, discounted.DiscountPercentage())
	assert.Zero(t, full.DiscountPercentage())

	// A "discount" at or above list price does not count.
	bogus := models.Product{Price: 100, DiscountPrice: floatPtr(120)}
	assert.Zero(t, bogus.DiscountPercentage())
}
