package handlers

import (
	"math"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"psc-server/models"
	"psc-server/services"

	"github.com/gin-gonic/gin"
)

// ProductsPerPage is the fixed shop page size.
const ProductsPerPage = 12

// DefaultSort is applied when no sort parameter is present.
const DefaultSort = "newest"

var validSortOptions = map[string]bool{
	"newest":        true,
	"price-asc":     true,
	"price-desc":    true,
	"bestseller":    true,
	"discount-desc": true,
}

// FilterState is the canonical set of shop filters. It round-trips
// through the query string so filtered views stay shareable.
type FilterState struct {
	Search     string
	PriceMin   float64
	PriceMax   float64
	Leagues    []string
	Categories []string
	Teams      []string
	Sizes      []string
	Sort       string
	Page       int
}

// ParseFilters reads a raw query string into a filter state. Unknown
// keys are ignored and malformed values fall back to defaults.
func ParseFilters(values url.Values, minBound, maxBound float64) FilterState {
	state := FilterState{
		Search:   strings.TrimSpace(values.Get("search")),
		PriceMin: minBound,
		PriceMax: maxBound,
		Sort:     DefaultSort,
		Page:     1,
	}

	if raw := values.Get("min"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			state.PriceMin = v
		}
	}
	if raw := values.Get("max"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(v) && !math.IsInf(v, 0) {
			state.PriceMax = v
		}
	}

	state.Leagues = splitList(values.Get("leagues"))
	state.Categories = splitList(values.Get("categories"))
	state.Teams = splitList(values.Get("teams"))
	state.Sizes = splitList(values.Get("sizes"))

	if raw := values.Get("sort"); validSortOptions[raw] {
		state.Sort = raw
	}

	if raw := values.Get("page"); raw != "" {
		if p, err := strconv.Atoi(raw); err == nil && p >= 1 {
			state.Page = p
		}
	}

	return state
}

// NormalizeFilters clamps a filter state against the catalog so stale
// or hand-edited query strings cannot select impossible filters.
func NormalizeFilters(state FilterState, catalog *services.CatalogService) FilterState {
	minBound, maxBound := catalog.PriceBounds()

	state.PriceMin = clamp(state.PriceMin, minBound, maxBound)
	state.PriceMax = clamp(state.PriceMax, minBound, maxBound)
	if state.PriceMin > state.PriceMax {
		state.PriceMin = minBound
		state.PriceMax = maxBound
	}

	state.Leagues = intersectSorted(state.Leagues, catalog.DistinctLeagues())
	state.Categories = intersectSorted(state.Categories, catalog.DistinctCategories())
	state.Teams = intersectSorted(state.Teams, catalog.DistinctTeams())
	state.Sizes = dedupeSorted(state.Sizes)

	if !validSortOptions[state.Sort] {
		state.Sort = DefaultSort
	}
	if state.Page < 1 {
		state.Page = 1
	}

	return state
}

// SerializeFilters writes a filter state back to query parameters,
// emitting only keys that differ from their defaults.
func SerializeFilters(state FilterState, minBound, maxBound float64) url.Values {
	values := url.Values{}

	if state.Search != "" {
		values.Set("search", state.Search)
	}
	if state.PriceMin > minBound {
		values.Set("min", strconv.Itoa(int(math.Round(state.PriceMin))))
	}
	if state.PriceMax < maxBound {
		values.Set("max", strconv.Itoa(int(math.Round(state.PriceMax))))
	}
	if len(state.Leagues) > 0 {
		values.Set("leagues", strings.Join(state.Leagues, ","))
	}
	if len(state.Categories) > 0 {
		values.Set("categories", strings.Join(state.Categories, ","))
	}
	if len(state.Teams) > 0 {
		values.Set("teams", strings.Join(state.Teams, ","))
	}
	if len(state.Sizes) > 0 {
		values.Set("sizes", strings.Join(state.Sizes, ","))
	}
	if state.Sort != DefaultSort {
		values.Set("sort", state.Sort)
	}
	if state.Page > 1 {
		values.Set("page", strconv.Itoa(state.Page))
	}

	return values
}

// FilterProducts applies every active filter to the catalog slice.
func FilterProducts(products []models.Product, state FilterState) []models.Product {
	search := strings.ToLower(strings.TrimSpace(state.Search))
	leagues := toSet(state.Leagues)
	categories := toSet(state.Categories)
	teams := toSet(state.Teams)
	sizes := toSet(state.Sizes)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if search != "" {
			haystack := strings.ToLower(p.Title + " " + p.Description + " " + p.Team + " " + p.League)
			if !strings.Contains(haystack, search) {
				continue
			}
		}

		price := p.EffectivePrice()
		if price < state.PriceMin || price > state.PriceMax {
			continue
		}

		if len(leagues) > 0 && !leagues[p.League] {
			continue
		}
		if len(categories) > 0 && !categories[p.Category] {
			continue
		}
		if len(teams) > 0 && !teams[p.Team] {
			continue
		}
		if len(sizes) > 0 && !hasAnySize(p.Sizes, sizes) {
			continue
		}

		filtered = append(filtered, p)
	}

	return filtered
}

// SortProducts orders a filtered slice by the requested sort key.
// Sorting is stable so equal products keep their catalog order.
func SortProducts(products []models.Product, sortKey string) {
	switch sortKey {
	case "price-asc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() < products[j].EffectivePrice()
		})
	case "price-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].EffectivePrice() > products[j].EffectivePrice()
		})
	case "bestseller":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].BestsellerScore > products[j].BestsellerScore
		})
	case "discount-desc":
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].DiscountPercentage() > products[j].DiscountPercentage()
		})
	default: // newest
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].ReleaseDate > products[j].ReleaseDate
		})
	}
}

// SearchProducts serves the public shop listing with filtering,
// sorting and pagination driven entirely by the query string.
func SearchProducts(c *gin.Context) {
	minBound, maxBound := Catalog.PriceBounds()

	state := ParseFilters(c.Request.URL.Query(), minBound, maxBound)
	state = NormalizeFilters(state, Catalog)

	filtered := FilterProducts(Catalog.Products(), state)
	SortProducts(filtered, state.Sort)

	total := len(filtered)
	totalPages := (total + ProductsPerPage - 1) / ProductsPerPage
	if totalPages < 1 {
		totalPages = 1
	}

	// Out-of-range pages are clamped at render time only; the filter
	// state itself keeps the requested page.
	page := state.Page
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * ProductsPerPage
	end := start + ProductsPerPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	c.JSON(http.StatusOK, gin.H{
		"products": filtered[start:end],
		"pagination": gin.H{
			"page":        page,
			"per_page":    ProductsPerPage,
			"total":       total,
			"total_pages": totalPages,
		},
		"filters": gin.H{
			"search":     state.Search,
			"min":        state.PriceMin,
			"max":        state.PriceMax,
			"leagues":    state.Leagues,
			"categories": state.Categories,
			"teams":      state.Teams,
			"sizes":      state.Sizes,
			"sort":       state.Sort,
			"page":       state.Page,
		},
		"facets": gin.H{
			"leagues":    Catalog.DistinctLeagues(),
			"categories": Catalog.DistinctCategories(),
			"teams":      Catalog.DistinctTeams(),
			"price_min":  minBound,
			"price_max":  maxBound,
		},
		"query":   SerializeFilters(state, minBound, maxBound).Encode(),
		"warning": Catalog.Warning(),
	})
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// intersectSorted keeps only values present in the allowed set,
// deduplicated and sorted for a canonical representation.
func intersectSorted(values, allowed []string) []string {
	allowedSet := toSet(allowed)
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if allowedSet[v] && !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func dedupeSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

func toSet(values []string) map[string]bool {
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[v] = true
	}
	return set
}

func hasAnySize(productSizes []string, wanted map[string]bool) bool {
	for _, s := range productSizes {
		if wanted[s] {
			return true
		}
	}
	return false
}
