package store

import (
	"context"
	"errors"
)

// Storage keys used by the repositories. Kept identical to the keys the
// mobile app writes so existing stored data remains readable.
const (
	KeyShops           = "shops"
	KeyProducts        = "products"
	KeySales           = "sales"
	KeySalesmen        = "salesmen"
	KeyCurrentShop     = "currentShop"
	KeyOwner           = "user"
	KeyCurrentSalesman = "currentSalesman"
)

// ErrKeyNotFound is returned by Get when no value exists under the key.
var ErrKeyNotFound = errors.New("store: key not found")

// Store is the local persisted key-value mechanism behind all repositories.
// Values are JSON-encoded strings. There are no transactions across keys;
// callers that need multi-key consistency must coordinate it themselves.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Remove(ctx context.Context, key string) error
	Close() error
}
