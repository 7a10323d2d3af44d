// internal/domain/catalog/gateway.go
package catalog

import (
	"context"
	"errors"
)

// Gateway failure kinds. Implementations wrap these so callers can
// distinguish transport failures from explicit backend rejections
// without depending on the transport package.
var (
	// ErrRemoteUnavailable indicates the backend could not be reached
	// (network error, timeout).
	ErrRemoteUnavailable = errors.New("remote backend unavailable")

	// ErrRemoteRejected indicates the backend answered with a non-2xx
	// status.
	ErrRemoteRejected = errors.New("remote backend rejected request")

	// ErrProductNotFound indicates the requested product does not exist
	// in the remote catalog.
	ErrProductNotFound = errors.New("product not found")
)

// Gateway is the contract the core consumes from the remote
// product/cart backend. All calls are network-bound and must be
// bounded by the implementation with a timeout.
type Gateway interface {
	ListProducts(ctx context.Context) ([]Product, error)
	GetProduct(ctx context.Context, id int64) (Product, error)
	ListCategories(ctx context.Context) ([]string, error)
	ListProductsByCategory(ctx context.Context, category string) ([]Product, error)

	GetCart(ctx context.Context, id int64) (RemoteCart, error)
	ListUserCarts(ctx context.Context, userID int64) ([]RemoteCart, error)
	CreateCart(ctx context.Context, cart RemoteCart) (RemoteCart, error)
	UpdateCart(ctx context.Context, cart RemoteCart) (RemoteCart, error)
	DeleteCart(ctx context.Context, id int64) error
}
