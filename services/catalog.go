package services

import (
	"database/sql"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"psc-server/database"
	"psc-server/models"

	"github.com/lib/pq"
)

// CatalogWarningFallback is surfaced to clients when the live catalog
// could not be loaded and the bundled one is being served instead.
const CatalogWarningFallback = "Unable to load live inventory. Showing cached catalog instead."

// CatalogService serves the product catalog from the database, falling
// back to the bundled static list when the load fails or returns nothing.
// The catalog is fetched once and kept in memory; Refresh reloads it.
type CatalogService struct {
	db *database.DB

	mu       sync.RWMutex
	products []models.Product
	warning  string
}

func NewCatalogService(db *database.DB) *CatalogService {
	return &CatalogService{db: db}
}

// NewStaticCatalogService builds a catalog backed directly by the given
// products, with no database behind it.
func NewStaticCatalogService(products []models.Product) *CatalogService {
	return &CatalogService{products: products}
}

// Refresh reloads the catalog from the database. On any failure the
// bundled fallback catalog is installed and a warning recorded; the
// error is logged, never returned to callers.
func (s *CatalogService) Refresh() {
	products, err := s.loadFromDatabase()
	if err != nil {
		log.Printf("Failed to load products from database: %v", err)
		s.install(fallbackCatalog, CatalogWarningFallback)
		return
	}
	if len(products) == 0 {
		s.install(fallbackCatalog, "No live products found. Showing cached catalog instead.")
		return
	}
	s.install(products, "")
}

func (s *CatalogService) install(products []models.Product, warning string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.warning = warning
}

func (s *CatalogService) loadFromDatabase() ([]models.Product, error) {
	rows, err := s.db.Query(`
		SELECT id, title, description, price, discount_price, category,
		       league, team, sizes, in_stock, images, rating, review_count,
		       features, stock, release_date, bestseller_score
		FROM products
		ORDER BY release_date DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []models.Product
	for rows.Next() {
		var (
			id, title, description       sql.NullString
			category, league, team       sql.NullString
			price, rating, bestseller    sql.NullFloat64
			discountPrice                sql.NullFloat64
			inStock                      sql.NullBool
			reviewCount, stock           sql.NullInt64
			releaseDate                  sql.NullTime
			sizes, images, features      pq.StringArray
		)

		if err := rows.Scan(&id, &title, &description, &price, &discountPrice,
			&category, &league, &team, &sizes, &inStock, &images,
			&rating, &reviewCount, &features, &stock, &releaseDate,
			&bestseller); err != nil {
			// Malformed row: skip it rather than fail the whole catalog
			log.Printf("Skipping malformed product row: %v", err)
			continue
		}

		product, ok := coerceProduct(id, title, description, price, discountPrice,
			category, league, team, sizes, inStock, images, rating,
			reviewCount, features, stock, releaseDate, bestseller)
		if !ok {
			continue
		}
		products = append(products, product)
	}

	return products, rows.Err()
}

// coerceProduct maps a raw row onto a Product, applying the same safe
// defaults the storefront applies to remote records. Records without an
// id are dropped.
func coerceProduct(
	id, title, description sql.NullString,
	price, discountPrice sql.NullFloat64,
	category, league, team sql.NullString,
	sizes pq.StringArray,
	inStock sql.NullBool,
	images pq.StringArray,
	rating sql.NullFloat64,
	reviewCount sql.NullInt64,
	features pq.StringArray,
	stock sql.NullInt64,
	releaseDate sql.NullTime,
	bestseller sql.NullFloat64,
) (models.Product, bool) {
	if !id.Valid || strings.TrimSpace(id.String) == "" {
		return models.Product{}, false
	}

	p := models.Product{
		ID:          strings.TrimSpace(id.String),
		Title:       "Unnamed product",
		Description: description.String,
		Category:    models.CategoryJersey,
		League:      "Neutral",
		Team:        "Neutral",
	}

	if title.Valid && strings.TrimSpace(title.String) != "" {
		p.Title = title.String
	}
	if price.Valid && price.Float64 >= 0 {
		p.Price = price.Float64
	}
	if discountPrice.Valid {
		v := discountPrice.Float64
		p.DiscountPrice = &v
	}

	if category.Valid {
		c := strings.ToLower(strings.TrimSpace(category.String))
		if models.IsValidCategory(c) {
			p.Category = c
		}
	}
	if league.Valid && strings.TrimSpace(league.String) != "" {
		p.League = league.String
	}
	if team.Valid && strings.TrimSpace(team.String) != "" {
		p.Team = team.String
	}

	p.Sizes = cleanStrings(sizes)
	if len(p.Sizes) == 0 {
		p.Sizes = models.DefaultJerseySizes
	}
	p.Images = cleanStrings(images)
	if len(p.Images) == 0 {
		p.Images = []string{models.DefaultProductImage}
	}
	p.Features = cleanStrings(features)
	if len(p.Features) == 0 {
		p.Features = []string{"High performance sports gear"}
	}

	if inStock.Valid {
		p.InStock = inStock.Bool
	} else {
		p.InStock = true
	}
	if rating.Valid && rating.Float64 >= 0 {
		p.Rating = rating.Float64
	}
	if reviewCount.Valid && reviewCount.Int64 >= 0 {
		p.ReviewCount = int(reviewCount.Int64)
	}
	if stock.Valid {
		v := int(stock.Int64)
		p.Stock = &v
	}
	if releaseDate.Valid {
		p.ReleaseDate = releaseDate.Time.Format("2006-01-02")
	} else {
		p.ReleaseDate = time.Now().Format("2006-01-02")
	}
	if bestseller.Valid {
		p.BestsellerScore = bestseller.Float64
	}

	return p, true
}

func cleanStrings(values []string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

// Products returns a copy of the current catalog.
func (s *CatalogService) Products() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Warning returns the non-blocking catalog warning, if any.
func (s *CatalogService) Warning() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.warning
}

// ByID finds one product by its identifier.
func (s *CatalogService) ByID(id string) (models.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// PriceBounds returns the observed floor and ceiling of effective prices
// across the catalog.
func (s *CatalogService) PriceBounds() (float64, float64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.products) == 0 {
		return 0, 0
	}

	min := s.products[0].EffectivePrice()
	max := min
	for _, p := range s.products[1:] {
		price := p.EffectivePrice()
		if price < min {
			min = price
		}
		if price > max {
			max = price
		}
	}
	return min, max
}

// DistinctLeagues returns the sorted set of leagues present in the catalog.
func (s *CatalogService) DistinctLeagues() []string {
	return s.distinct(func(p models.Product) string { return p.League })
}

// DistinctTeams returns the sorted set of teams present in the catalog.
func (s *CatalogService) DistinctTeams() []string {
	return s.distinct(func(p models.Product) string { return p.Team })
}

// DistinctCategories returns the sorted set of categories present in the
// catalog.
func (s *CatalogService) DistinctCategories() []string {
	return s.distinct(func(p models.Product) string { return p.Category })
}

func (s *CatalogService) distinct(key func(models.Product) string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		k := key(p)
		if k != "" && !seen[k] {
			seen[k] = true
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
