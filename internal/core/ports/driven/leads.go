package driven

import (
	"context"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// LeadSink receives the lead assembled from a completed quiz. The
// storefront contact form and marketing platforms sit behind this port.
// Submission failures are reported but never fatal to the quiz.
type LeadSink interface {
	// Submit delivers a lead. Implementations honour ctx cancellation.
	Submit(ctx context.Context, lead domain.Lead) error
}

// CartGateway receives the shopper's chosen purchase target. The
// storefront cart API sits behind this port.
type CartGateway interface {
	// Add puts the variant in the shopper's cart.
	Add(ctx context.Context, variantID string) error
}
