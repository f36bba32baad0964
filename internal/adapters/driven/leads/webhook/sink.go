// Package webhook provides a lead sink that POSTs completed leads to a
// configurable HTTP endpoint, typically a marketing-automation inbox.
// Requests are rate limited so a burst of quiz completions cannot
// exhaust the receiving platform's quota.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// Ensure Sink implements the interface.
var _ driven.LeadSink = (*Sink)(nil)

// Config holds the webhook sink configuration.
type Config struct {
	// URL is the endpoint leads are POSTed to.
	URL string

	// RequestsPerSecond is the sustained submission rate. Defaults to 1.
	RequestsPerSecond float64

	// BurstSize is the maximum burst size. Defaults to 3.
	BurstSize int

	// Timeout bounds a single submission. Defaults to 10 seconds.
	Timeout time.Duration
}

// Sink submits leads to an HTTP endpoint as JSON.
type Sink struct {
	url     string
	client  *http.Client
	limiter *rate.Limiter
}

// NewSink creates a webhook lead sink.
func NewSink(cfg Config) *Sink {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.BurstSize <= 0 {
		cfg.BurstSize = 3
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Sink{
		url:     cfg.URL,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.BurstSize),
	}
}

// Submit delivers the lead, waiting for rate-limit headroom first.
func (s *Sink) Submit(ctx context.Context, lead domain.Lead) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("lead rate limit: %w", err)
	}

	body, err := json.Marshal(newPayload(lead))
	if err != nil {
		return fmt.Errorf("encode lead: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build lead request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("submit lead: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("submit lead: endpoint returned %s", resp.Status)
	}
	logger.Debug("Lead %s submitted to %s", lead.SessionID, s.url)
	return nil
}

// payload is the wire shape of a submitted lead.
type payload struct {
	SessionID        string           `json:"session_id"`
	FirstName        string           `json:"first_name"`
	LastName         string           `json:"last_name"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	MarketingConsent bool             `json:"marketing_consent"`
	Note             string           `json:"note"`
	Recommended      []recommendation `json:"recommended"`
	CompletedAt      time.Time        `json:"completed_at"`
}

type recommendation struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Price     int64  `json:"price"`
	URL       string `json:"url,omitempty"`
	Image     string `json:"image,omitempty"`
	Score     int    `json:"score"`
	VariantID string `json:"variant_id,omitempty"`
}

func newPayload(lead domain.Lead) payload {
	first, last := splitName(lead.Contact.Name)
	p := payload{
		SessionID:        lead.SessionID,
		FirstName:        first,
		LastName:         last,
		Email:            lead.Contact.Email,
		Phone:            lead.Contact.Phone,
		MarketingConsent: lead.Contact.MarketingConsent,
		Note:             lead.Summary,
		CompletedAt:      lead.CompletedAt,
	}
	for _, r := range lead.Recommended {
		detail := recommendation{
			ID:    r.ID,
			Title: r.Title,
			Price: r.Price,
			URL:   r.URL,
			Image: r.FeaturedImage,
			Score: r.Score,
		}
		if v, ok := r.DefaultVariant(); ok {
			detail.VariantID = v.ID
		}
		p.Recommended = append(p.Recommended, detail)
	}
	return p
}

// splitName divides a full name into first and last the way the
// storefront contact form expects.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
