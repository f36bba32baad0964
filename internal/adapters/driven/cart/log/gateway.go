// Package log provides a cart gateway that records add-to-cart
// requests to a writer. The real storefront cart API is an external
// collaborator; this adapter stands in for it outside the storefront.
package log

import (
	"context"
	"fmt"
	"io"

	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
)

// Ensure Gateway implements the interface.
var _ driven.CartGateway = (*Gateway)(nil)

// Gateway records cart additions to an io.Writer.
type Gateway struct {
	out io.Writer
}

// NewGateway creates a writer-backed cart gateway.
func NewGateway(out io.Writer) *Gateway {
	return &Gateway{out: out}
}

// Add records the variant addition.
func (g *Gateway) Add(ctx context.Context, variantID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(g.out, "cart add: variant %s, quantity 1\n", variantID); err != nil {
		return fmt.Errorf("record cart add: %w", err)
	}
	return nil
}
