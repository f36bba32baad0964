package driven

import (
	"context"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// CatalogProvider supplies the product catalog the scoring engine ranks.
// The storefront owns the data; the engine only reads it.
type CatalogProvider interface {
	// Products returns the current catalog snapshot. An empty catalog
	// is a valid result, not an error. Implementations should wrap
	// parse failures in domain.ErrBadCatalog.
	Products(ctx context.Context) ([]domain.Product, error)
}
