package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestProduct_DefaultVariant tests default variant selection
func TestProduct_DefaultVariant(t *testing.T) {
	p := Product{
		ID: "prod-1",
		Variants: []Variant{
			{ID: "var-1", Available: true, Price: 249900},
			{ID: "var-2", Available: false, Price: 289900},
		},
	}

	v, ok := p.DefaultVariant()
	assert.True(t, ok)
	assert.Equal(t, "var-1", v.ID)
}

// TestProduct_DefaultVariant_Empty tests a product without variants
func TestProduct_DefaultVariant_Empty(t *testing.T) {
	p := Product{ID: "prod-1"}

	_, ok := p.DefaultVariant()
	assert.False(t, ok)
}

// TestProduct_NormalizedTags tests tag normalisation
func TestProduct_NormalizedTags(t *testing.T) {
	p := Product{Tags: []string{"Medium", " Side-Sleeper ", "", "PREMIUM"}}

	assert.Equal(t, []string{"medium", "side-sleeper", "premium"}, p.NormalizedTags())
}

// TestProduct_NormalizedTags_NoTags tests a product with an empty tag set
func TestProduct_NormalizedTags_NoTags(t *testing.T) {
	p := Product{ID: "prod-1"}

	assert.Empty(t, p.NormalizedTags())
}

// TestDefaultTagMapping_RequiredCategories tests the shipped vocabulary
func TestDefaultTagMapping_RequiredCategories(t *testing.T) {
	m := DefaultTagMapping()

	assert.Contains(t, m.Firmness[FirmnessSoft], "soft")
	assert.Contains(t, m.Firmness[FirmnessMedium], "medium")
	assert.Contains(t, m.Firmness[FirmnessHard], "hard")
	assert.Contains(t, m.SleepPosition[PositionSide], "side-sleeper")
	assert.Contains(t, m.WeightSupport.Light, "light")
	assert.Contains(t, m.WeightSupport.Heavy, "heavy")
	assert.NotEmpty(t, m.Couples)
	assert.Contains(t, m.Single, "enkelt")
	assert.Contains(t, m.SingleOnly, "twin")
	assert.Contains(t, m.CouplesOnly, "king-only")
}
