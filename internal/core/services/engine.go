package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driving"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// Ensure Engine implements the interface.
var _ driving.Recommender = (*Engine)(nil)

// Rule weights. All contributions are additive; the final score is
// clamped at zero.
const (
	scoreBase          = 20
	scoreFirmness      = 25
	scoreCompromise    = 15
	scorePosition      = 15
	scoreLightSupport  = 10
	scoreHeavySupport  = 15
	scoreCouples       = 20
	scoreSingle        = 10
	scoreQuality       = 5
	scoreComfort       = 5
	penaltySingleOnly  = 30
	penaltyCouplesOnly = 20
)

// Weight thresholds in kilograms. Both comparisons are strict: an
// average of exactly 70 earns no light bonus, exactly 90 no heavy bonus.
const (
	lightAverageBelow = 70.0
	heavyAverageAbove = 90.0
	heavyTotalAbove   = 160.0
)

// Options configures the scoring engine.
type Options struct {
	// TopK is the maximum number of recommendations returned.
	TopK int

	// IncludeZeroScores keeps zero-scored products in the output.
	// Off by default: a product that matches nothing is no
	// recommendation.
	IncludeZeroScores bool

	// SingleBonus awards a small bonus to single-sleeper products when
	// one person takes the quiz.
	SingleBonus bool
}

// DefaultOptions returns the canonical engine configuration.
func DefaultOptions() Options {
	return Options{
		TopK:        6,
		SingleBonus: true,
	}
}

// Engine is the product scoring engine. Given a finished answer set it
// pulls the catalog and tag mapping from the driven ports, scores every
// product, and returns the ranked top matches.
//
// Scoring is deterministic: identical answers, catalog and mapping
// always produce the identical ordered output.
type Engine struct {
	catalog driven.CatalogProvider
	mapping driven.MappingSource
	opts    Options
}

// NewEngine creates a scoring engine.
func NewEngine(catalog driven.CatalogProvider, mapping driven.MappingSource, opts Options) *Engine {
	if opts.TopK <= 0 {
		opts.TopK = DefaultOptions().TopK
	}
	return &Engine{
		catalog: catalog,
		mapping: mapping,
		opts:    opts,
	}
}

// Recommend returns the top matches for the answer set, best first.
func (e *Engine) Recommend(ctx context.Context, answers domain.QuizAnswers) ([]domain.ScoredProduct, error) {
	logger.Section("Recommendation")
	logger.Debug("Session %s: people=%d", answers.SessionID, answers.PeopleCount)

	products, err := e.catalog.Products(ctx)
	if err != nil {
		// A broken catalog must not break the quiz: degrade to an
		// empty recommendation list and leave a diagnostic.
		if errors.Is(err, domain.ErrBadCatalog) {
			logger.Warn("Catalog unusable, returning no recommendations: %v", err)
			return []domain.ScoredProduct{}, nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	logger.Debug("Catalog: %d products", len(products))

	mapping := e.mapping.Mapping()

	scored := make([]domain.ScoredProduct, 0, len(products))
	for _, p := range products {
		score := ScoreProduct(p, answers, mapping, e.opts)
		if score == 0 && !e.opts.IncludeZeroScores {
			continue
		}
		scored = append(scored, domain.ScoredProduct{Product: p, Score: score})
	}

	// Stable sort keeps catalog order between equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > e.opts.TopK {
		scored = scored[:e.opts.TopK]
	}
	logger.Debug("Returning %d recommendations", len(scored))
	return scored, nil
}

// Breakdown itemises one product's score per rule. Total is the
// clamped sum of all contributions minus Penalty.
type Breakdown struct {
	Base      int `json:"base"`
	Firmness  int `json:"firmness"`
	Position  int `json:"position"`
	Support   int `json:"support"`
	Occupancy int `json:"occupancy"`
	TagBonus  int `json:"tag_bonus"`
	Penalty   int `json:"penalty"`
	Total     int `json:"total"`
}

// ScoreProduct computes a product's match score for one answer set.
// Pure and side-effect free.
func ScoreProduct(p domain.Product, answers domain.QuizAnswers, mapping domain.TagMapping, opts Options) int {
	return Explain(p, answers, mapping, opts).Total
}

// Explain computes a product's match score with the per-rule breakdown
// the recommend command's --explain output shows.
func Explain(p domain.Product, answers domain.QuizAnswers, mapping domain.TagMapping, opts Options) Breakdown {
	tags := tagSet(p.NormalizedTags())

	b := Breakdown{
		Base:      scoreBase,
		Firmness:  firmnessScore(tags, answers, mapping),
		Position:  positionScore(tags, answers, mapping),
		Support:   supportScore(tags, answers, mapping),
		Occupancy: occupancyScore(tags, answers, mapping, opts),
		TagBonus:  tagBonus(tags, mapping),
		Penalty:   mismatchPenalty(tags, answers, mapping),
	}

	total := b.Base + b.Firmness + b.Position + b.Support + b.Occupancy + b.TagBonus - b.Penalty
	if total < 0 {
		total = 0
	}
	b.Total = total
	return b
}

// firmnessScore is the dominant factor: +25 per person whose preferred
// firmness maps to a product tag, plus a +15 compromise bonus when a
// couple's diverging preferences are both satisfied.
func firmnessScore(tags map[string]struct{}, answers domain.QuizAnswers, mapping domain.TagMapping) int {
	score := 0

	p1, p1Set := answers.Preferences[domain.Person1]
	if p1Set && intersects(tags, mapping.Firmness[p1]) {
		score += scoreFirmness
	}

	if answers.PeopleCount != 2 {
		return score
	}

	p2, p2Set := answers.Preferences[domain.Person2]
	if !p2Set {
		return score
	}
	if intersects(tags, mapping.Firmness[p2]) {
		score += scoreFirmness
	}
	if p1Set && p1 != p2 &&
		intersects(tags, mapping.Firmness[p1]) && intersects(tags, mapping.Firmness[p2]) {
		score += scoreCompromise
	}
	return score
}

// positionScore awards +15 per person whose sleep position maps to a
// product tag. Person 2 carries the same weight as person 1.
func positionScore(tags map[string]struct{}, answers domain.QuizAnswers, mapping domain.TagMapping) int {
	score := 0
	for _, person := range answers.Persons() {
		pos, ok := answers.SleepPositions[person]
		if ok && intersects(tags, mapping.SleepPosition[pos]) {
			score += scorePosition
		}
	}
	return score
}

// supportScore matches body weight against the light/heavy support tag
// sets. Thresholds are strict.
func supportScore(tags map[string]struct{}, answers domain.QuizAnswers, mapping domain.TagMapping) int {
	score := 0
	avg := answers.AverageWeight()
	total := answers.TotalWeight()

	if avg < lightAverageBelow && intersects(tags, mapping.WeightSupport.Light) {
		score += scoreLightSupport
	}
	if (avg > heavyAverageAbove || (answers.PeopleCount == 2 && total > heavyTotalAbove)) &&
		intersects(tags, mapping.WeightSupport.Heavy) {
		score += scoreHeavySupport
	}
	return score
}

// occupancyScore rewards products sized for the session's sleeper count.
func occupancyScore(tags map[string]struct{}, answers domain.QuizAnswers, mapping domain.TagMapping, opts Options) int {
	if answers.PeopleCount == 2 {
		if intersects(tags, mapping.Couples) {
			return scoreCouples
		}
		return 0
	}
	if opts.SingleBonus && intersects(tags, mapping.Single) {
		return scoreSingle
	}
	return 0
}

// tagBonus awards flat bonuses for premium build and comfort indicators.
func tagBonus(tags map[string]struct{}, mapping domain.TagMapping) int {
	bonus := 0
	if intersects(tags, mapping.Quality) {
		bonus += scoreQuality
	}
	if intersects(tags, mapping.Comfort) {
		bonus += scoreComfort
	}
	return bonus
}

// mismatchPenalty penalises products sized for the wrong sleeper count.
func mismatchPenalty(tags map[string]struct{}, answers domain.QuizAnswers, mapping domain.TagMapping) int {
	if answers.PeopleCount == 2 && intersects(tags, mapping.SingleOnly) {
		return penaltySingleOnly
	}
	if answers.PeopleCount == 1 && intersects(tags, mapping.CouplesOnly) {
		return penaltyCouplesOnly
	}
	return 0
}

// tagSet builds a lookup set from normalised tags.
func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[t] = struct{}{}
	}
	return set
}

// intersects reports whether any candidate tag is present in the
// product's tag set. Candidates are compared case-insensitively.
func intersects(tags map[string]struct{}, candidates []string) bool {
	for _, c := range candidates {
		if _, ok := tags[strings.ToLower(c)]; ok {
			return true
		}
	}
	return false
}
