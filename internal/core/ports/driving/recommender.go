package driving

import (
	"context"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// Recommender scores the product catalog against a finished answer set
// and returns the ranked recommendation list.
type Recommender interface {
	// Recommend returns the top matches, best first. An empty list is
	// a valid result: either the catalog was empty or nothing scored
	// above zero.
	Recommend(ctx context.Context, answers domain.QuizAnswers) ([]domain.ScoredProduct, error)
}
