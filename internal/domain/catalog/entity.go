// internal/domain/catalog/entity.go
package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a catalog product fetched from the remote backend.
// A product is immutable once fetched; a new fetch replaces it wholesale.
type Product struct {
	ID          int64           `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
	IsFavorite  bool            `json:"is_favorite"` // client-local, never persisted remotely
}

// Rating represents the aggregate product rating
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// RemoteCart represents the remote cart resource in its wire shape.
// The backend only tracks product ids and quantities; full product
// details must be re-hydrated through the catalog before pricing.
type RemoteCart struct {
	ID     int64            `json:"id"`
	UserID int64            `json:"user_id"`
	Date   time.Time        `json:"date"`
	Lines  []RemoteCartLine `json:"products"`
}

// RemoteCartLine represents one product/quantity pair in a remote cart
type RemoteCartLine struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}
