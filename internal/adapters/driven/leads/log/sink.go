// Package log provides a lead sink that records leads to a writer
// instead of a remote platform. Used for local runs and as the default
// when no webhook is configured.
package log

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
)

// Ensure Sink implements the interface.
var _ driven.LeadSink = (*Sink)(nil)

// Sink writes a readable record of each lead to an io.Writer.
type Sink struct {
	mu  sync.Mutex
	out io.Writer
}

// NewSink creates a writer-backed lead sink.
func NewSink(out io.Writer) *Sink {
	return &Sink{out: out}
}

// Submit records the lead.
func (s *Sink) Submit(ctx context.Context, lead domain.Lead) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := fmt.Fprintf(s.out, "lead %s: %s <%s> %s consent=%t\n%s\n",
		lead.SessionID, lead.Contact.Name, lead.Contact.Email,
		lead.Contact.Phone, lead.Contact.MarketingConsent, lead.Summary)
	if err != nil {
		return fmt.Errorf("record lead: %w", err)
	}
	return nil
}
