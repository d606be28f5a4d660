package handlers

import (
	"net/url"
	"testing"

	"psc-server/models"
	"psc-server/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func filterTestCatalog() *services.CatalogService {
	price := func(v float64) *float64 { return &v }

	return services.NewStaticCatalogService([]models.Product{
		{
			ID: "chelsea-home", Title: "Chelsea Home Jersey", Description: "Official home kit",
			Price: 120, Category: "jersey", League: "Premier League", Team: "Chelsea",
			Sizes: []string{"S", "M", "L"}, InStock: true,
			ReleaseDate: "2024-08-01", BestsellerScore: 90,
		},
		{
			ID: "bayern-away", Title: "Bayern Away Jersey", Description: "Away kit",
			Price: 110, DiscountPrice: price(88), Category: "jersey",
			League: "Bundesliga", Team: "Bayern Munich",
			Sizes: []string{"M", "L", "XL"}, InStock: true,
			ReleaseDate: "2024-06-15", BestsellerScore: 70,
		},
		{
			ID: "predator-boots", Title: "Predator Boots", Description: "Firm ground boots",
			Price: 250, DiscountPrice: price(200), Category: "boots",
			League: "Neutral", Team: "Neutral",
			Sizes: []string{"42", "43"}, InStock: true,
			ReleaseDate: "2024-09-10", BestsellerScore: 95,
		},
		{
			ID: "match-ball", Title: "Match Ball", Description: "FIFA quality ball",
			Price: 40, Category: "equipment", League: "Neutral", Team: "Neutral",
			Sizes: []string{"5"}, InStock: true,
			ReleaseDate: "2024-01-20", BestsellerScore: 50,
		},
	})
}

func TestParseFilters(t *testing.T) {
	t.Run("empty query yields defaults", func(t *testing.T) {
		state := ParseFilters(url.Values{}, 40, 250)

		assert.Empty(t, state.Search)
		assert.Equal(t, 40.0, state.PriceMin)
		assert.Equal(t, 250.0, state.PriceMax)
		assert.Empty(t, state.Leagues)
		assert.Equal(t, DefaultSort, state.Sort)
		assert.Equal(t, 1, state.Page)
	})

	t.Run("reads every supported key", func(t *testing.T) {
		values, err := url.ParseQuery("search=jersey&min=50&max=150&leagues=Premier+League,Bundesliga&categories=jersey&teams=Chelsea&sizes=M,L&sort=price-asc&page=2")
		require.NoError(t, err)

		state := ParseFilters(values, 40, 250)

		assert.Equal(t, "jersey", state.Search)
		assert.Equal(t, 50.0, state.PriceMin)
		assert.Equal(t, 150.0, state.PriceMax)
		assert.Equal(t, []string{"Premier League", "Bundesliga"}, state.Leagues)
		assert.Equal(t, []string{"M", "L"}, state.Sizes)
		assert.Equal(t, "price-asc", state.Sort)
		assert.Equal(t, 2, state.Page)
	})

	t.Run("malformed values fall back to defaults", func(t *testing.T) {
		values, err := url.ParseQuery("min=abc&max=NaN&sort=cheapest&page=-3")
		require.NoError(t, err)

		state := ParseFilters(values, 40, 250)

		assert.Equal(t, 40.0, state.PriceMin)
		assert.Equal(t, 250.0, state.PriceMax)
		assert.Equal(t, DefaultSort, state.Sort)
		assert.Equal(t, 1, state.Page)
	})
}

func TestNormalizeFilters(t *testing.T) {
	catalog := filterTestCatalog()

	t.Run("clamps prices into catalog bounds", func(t *testing.T) {
		state := NormalizeFilters(FilterState{PriceMin: -10, PriceMax: 9999, Page: 1}, catalog)

		min, max := catalog.PriceBounds()
		assert.Equal(t, min, state.PriceMin)
		assert.Equal(t, max, state.PriceMax)
	})

	t.Run("inverted range resets to full bounds", func(t *testing.T) {
		// After clamping, min 500 > max 100 collapses the range.
		state := NormalizeFilters(FilterState{PriceMin: 500, PriceMax: 100, Page: 1}, catalog)

		min, max := catalog.PriceBounds()
		assert.Equal(t, min, state.PriceMin)
		assert.Equal(t, max, state.PriceMax)
	})

	t.Run("drops facet values the catalog does not carry", func(t *testing.T) {
		min, max := catalog.PriceBounds()
		state := NormalizeFilters(FilterState{
			PriceMin: min, PriceMax: max, Page: 1,
			Leagues:    []string{"Premier League", "La Liga"},
			Categories: []string{"jersey", "gadgets"},
			Teams:      []string{"Chelsea", "Chelsea"},
		}, catalog)

		assert.Equal(t, []string{"Premier League"}, state.Leagues)
		assert.Equal(t, []string{"jersey"}, state.Categories)
		assert.Equal(t, []string{"Chelsea"}, state.Teams)
	})

	t.Run("page floor is one", func(t *testing.T) {
		state := NormalizeFilters(FilterState{Page: -2}, catalog)
		assert.Equal(t, 1, state.Page)
	})
}

func TestSerializeFilters(t *testing.T) {
	t.Run("defaults serialize to an empty query", func(t *testing.T) {
		state := FilterState{PriceMin: 40, PriceMax: 250, Sort: DefaultSort, Page: 1}

		assert.Empty(t, SerializeFilters(state, 40, 250).Encode())
	})

	t.Run("only non-default keys are emitted", func(t *testing.T) {
		state := FilterState{
			Search:   "jersey",
			PriceMin: 50,
			PriceMax: 250,
			Leagues:  []string{"Bundesliga"},
			Sort:     "price-desc",
			Page:     3,
		}

		values := SerializeFilters(state, 40, 250)
		assert.Equal(t, "jersey", values.Get("search"))
		assert.Equal(t, "50", values.Get("min"))
		assert.False(t, values.Has("max"))
		assert.Equal(t, "Bundesliga", values.Get("leagues"))
		assert.Equal(t, "price-desc", values.Get("sort"))
		assert.Equal(t, "3", values.Get("page"))
	})

	t.Run("round-trip is idempotent after normalization", func(t *testing.T) {
		catalog := filterTestCatalog()
		minBound, maxBound := catalog.PriceBounds()

		raw, err := url.ParseQuery("search=ball&min=45&max=200&categories=equipment&sort=price-asc&page=2")
		require.NoError(t, err)

		first := NormalizeFilters(ParseFilters(raw, minBound, maxBound), catalog)
		encoded := SerializeFilters(first, minBound, maxBound)
		second := NormalizeFilters(ParseFilters(encoded, minBound, maxBound), catalog)

		assert.Equal(t, first, second)
		assert.Equal(t, encoded.Encode(), SerializeFilters(second, minBound, maxBound).Encode())
	})
}

func TestFilterProducts(t *testing.T) {
	catalog := filterTestCatalog()
	products := catalog.Products()
	minBound, maxBound := catalog.PriceBounds()

	base := FilterState{PriceMin: minBound, PriceMax: maxBound}

	t.Run("search matches title, description, team and league", func(t *testing.T) {
		state := base
		state.Search = "bayern"
		require.Len(t, FilterProducts(products, state), 1)

		state.Search = "FIFA quality"
		require.Len(t, FilterProducts(products, state), 1)

		state.Search = "premier"
		require.Len(t, FilterProducts(products, state), 1)

		state.Search = "no-such-thing"
		assert.Empty(t, FilterProducts(products, state))
	})

	t.Run("search is case insensitive", func(t *testing.T) {
		state := base
		state.Search = "CHELSEA"
		assert.Len(t, FilterProducts(products, state), 1)
	})

	t.Run("price filter uses the effective price", func(t *testing.T) {
		state := base
		state.PriceMin = 85
		state.PriceMax = 90

		// Bayern's discount price 88 is in range; its list price 110 is not.
		matched := FilterProducts(products, state)
		require.Len(t, matched, 1)
		assert.Equal(t, "bayern-away", matched[0].ID)
	})

	t.Run("facet filters combine conjunctively", func(t *testing.T) {
		state := base
		state.Categories = []string{"jersey"}
		state.Leagues = []string{"Bundesliga"}

		matched := FilterProducts(products, state)
		require.Len(t, matched, 1)
		assert.Equal(t, "bayern-away", matched[0].ID)
	})

	t.Run("size filter matches any selected size", func(t *testing.T) {
		state := base
		state.Sizes = []string{"XL", "43"}

		matched := FilterProducts(products, state)
		assert.Len(t, matched, 2)
	})
}

func TestSortProducts(t *testing.T) {
	products := filterTestCatalog().Products()

	ids := func(ps []models.Product) []string {
		out := make([]string, len(ps))
		for i, p := range ps {
			out[i] = p.ID
		}
		return out
	}

	t.Run("newest sorts by release date descending", func(t *testing.T) {
		sorted := append([]models.Product(nil), products...)
		SortProducts(sorted, "newest")

		assert.Equal(t, []string{"predator-boots", "chelsea-home", "bayern-away", "match-ball"}, ids(sorted))
	})

	t.Run("price ascending uses effective prices", func(t *testing.T) {
		sorted := append([]models.Product(nil), products...)
		SortProducts(sorted, "price-asc")

		assert.Equal(t, []string{"match-ball", "bayern-away", "chelsea-home", "predator-boots"}, ids(sorted))
	})

	t.Run("bestseller sorts by score descending", func(t *testing.T) {
		sorted := append([]models.Product(nil), products...)
		SortProducts(sorted, "bestseller")

		assert.Equal(t, "predator-boots", sorted[0].ID)
	})

	t.Run("discount-desc ranks deepest discount first", func(t *testing.T) {
		sorted := append([]models.Product(nil), products...)
		SortProducts(sorted, "discount-desc")

		// Bayern saves 20%, boots also 20%; both outrank the undiscounted.
		assert.Zero(t, sorted[2].DiscountPercentage())
		assert.Zero(t, sorted[3].DiscountPercentage())
	})
}
