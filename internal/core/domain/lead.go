package domain

import "time"

// Lead is the contact hand-off assembled once a quiz completes. The
// core builds it; submitting it to the storefront contact form or a
// marketing platform is the caller's concern.
type Lead struct {
	// SessionID is the originating quiz session.
	SessionID string

	// Contact is the shopper's contact details.
	Contact ContactInfo

	// Summary is a free-text digest of all answers, suitable for a
	// contact-form note field.
	Summary string

	// Recommended is the ranked recommendation list the shopper saw.
	Recommended []ScoredProduct

	// CompletedAt is when the quiz finished.
	CompletedAt time.Time
}
