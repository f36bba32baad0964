package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// Ensure Catalog implements the interface.
var _ driven.CatalogProvider = (*Catalog)(nil)

// Catalog reads the product catalog from a JSON export on disk. The
// file is re-read on every Products call so an updated export is picked
// up without restarting.
type Catalog struct {
	path string
}

// NewCatalog creates a file-backed catalog provider.
func NewCatalog(path string) *Catalog {
	return &Catalog{path: path}
}

// Products returns the catalog snapshot from the export file.
func (c *Catalog) Products(ctx context.Context) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(c.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %v: %w", c.path, err, domain.ErrBadCatalog)
	}
	products, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", c.path, err)
	}
	logger.Debug("Catalog %s: loaded %d products", c.path, len(products))
	return products, nil
}

// Parse decodes a storefront product export. Accepts either a
// {"products": [...]} document or a bare product array.
func Parse(data []byte) ([]domain.Product, error) {
	var doc struct {
		Products []productJSON `json:"products"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		var bare []productJSON
		if bareErr := json.Unmarshal(data, &bare); bareErr != nil {
			return nil, fmt.Errorf("decode products: %v: %w", err, domain.ErrBadCatalog)
		}
		doc.Products = bare
	}

	products := make([]domain.Product, 0, len(doc.Products))
	for _, p := range doc.Products {
		products = append(products, p.toDomain())
	}
	return products, nil
}

// productJSON mirrors the storefront export shape.
type productJSON struct {
	ID             json.Number   `json:"id"`
	Title          string        `json:"title"`
	Description    string        `json:"description"`
	Vendor         string        `json:"vendor"`
	Price          int64         `json:"price"`
	CompareAtPrice int64         `json:"compare_at_price"`
	Tags           flexibleTags  `json:"tags"`
	Variants       []variantJSON `json:"variants"`
	URL            string        `json:"url"`
	FeaturedImage  string        `json:"featured_image"`
}

type variantJSON struct {
	ID        json.Number `json:"id"`
	Available bool        `json:"available"`
	Price     int64       `json:"price"`
}

func (p productJSON) toDomain() domain.Product {
	variants := make([]domain.Variant, 0, len(p.Variants))
	for _, v := range p.Variants {
		variants = append(variants, domain.Variant{
			ID:        v.ID.String(),
			Available: v.Available,
			Price:     v.Price,
		})
	}
	return domain.Product{
		ID:             p.ID.String(),
		Title:          p.Title,
		Description:    p.Description,
		Vendor:         p.Vendor,
		Price:          p.Price,
		CompareAtPrice: p.CompareAtPrice,
		Tags:           p.Tags,
		Variants:       variants,
		URL:            p.URL,
		FeaturedImage:  p.FeaturedImage,
	}
}

// flexibleTags accepts both a JSON array of tags and the export's
// comma-joined string form.
type flexibleTags []string

func (t *flexibleTags) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*t = list
		return nil
	}
	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return fmt.Errorf("tags must be an array or string: %w", domain.ErrBadCatalog)
	}
	if strings.TrimSpace(joined) == "" {
		*t = nil
		return nil
	}
	parts := strings.Split(joined, ",")
	tags := make([]string, 0, len(parts))
	for _, part := range parts {
		if part = strings.TrimSpace(part); part != "" {
			tags = append(tags, part)
		}
	}
	*t = tags
	return nil
}
