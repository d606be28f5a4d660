package handlers

import (
	"time"

	"psc-server/config"
	"psc-server/database"
	"psc-server/services"

	"github.com/golang-jwt/jwt/v5"
)

// Shared handler state, set once at startup.
var (
	DB        *database.DB
	Catalog   *services.CatalogService
	Carts     *services.CartStore
	Checkouts *services.CheckoutManager
)

// InitializeHandlers wires the handler package to its collaborators.
func InitializeHandlers(db *database.DB, catalog *services.CatalogService, carts *services.CartStore, checkouts *services.CheckoutManager) {
	DB = db
	Catalog = catalog
	Carts = carts
	Checkouts = checkouts
}

// Claims represents the JWT claims
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// generateJWT issues a signed token for the user
func generateJWT(userID, email, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * 24 * time.Hour)), // 15 days
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}
