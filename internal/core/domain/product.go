package domain

import "strings"

// Variant is a purchasable variation of a product. The first variant in
// a product's list is the default purchase target for cart hand-off.
type Variant struct {
	// ID is the storefront's variant identifier.
	ID string `json:"id"`

	// Available reports whether the variant can currently be purchased.
	Available bool `json:"available"`

	// Price is the variant price in minor currency units.
	Price int64 `json:"price"`
}

// Product is a read-only catalog snapshot supplied by the storefront at
// scoring time. Optional fields (CompareAtPrice, FeaturedImage, Tags)
// may be absent without affecting correctness.
type Product struct {
	// ID is the storefront's stable product identifier.
	ID string `json:"id"`

	// Title is the display title.
	Title string `json:"title"`

	// Description is the display description. Opaque to scoring.
	Description string `json:"description,omitempty"`

	// Vendor is the brand or supplier name. Opaque to scoring.
	Vendor string `json:"vendor,omitempty"`

	// Price is the product price in minor currency units.
	Price int64 `json:"price"`

	// CompareAtPrice is the pre-discount price in minor currency
	// units, 0 when the product is not discounted.
	CompareAtPrice int64 `json:"compare_at_price,omitempty"`

	// Tags is the storefront tag set. Matching is case-insensitive;
	// scoring lower-cases the set once per call.
	Tags []string `json:"tags,omitempty"`

	// Variants is the ordered variant list.
	Variants []Variant `json:"variants,omitempty"`

	// URL is the product page location. Display only.
	URL string `json:"url,omitempty"`

	// FeaturedImage is the product image location. Display only.
	FeaturedImage string `json:"featured_image,omitempty"`
}

// DefaultVariant returns the first variant and true, or a zero Variant
// and false when the product has none.
func (p Product) DefaultVariant() (Variant, bool) {
	if len(p.Variants) == 0 {
		return Variant{}, false
	}
	return p.Variants[0], true
}

// NormalizedTags returns the product's tags lower-cased and trimmed,
// with empty entries dropped.
func (p Product) NormalizedTags() []string {
	tags := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// ScoredProduct is a product annotated with a computed match score for
// one quiz session. Created fresh on every scoring call and discarded
// after the recommendation list is rendered.
type ScoredProduct struct {
	Product

	// Score is the computed match score, never negative.
	Score int `json:"score"`
}
