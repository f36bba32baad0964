// Package tui provides the interactive quiz wizard for the terminal.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driven"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Session drives the quiz flow.
	Session driving.QuizSession

	// Recommender scores the catalog against the finished answers.
	Recommender driving.Recommender

	// Leads receives the lead from a completed quiz. Optional; when
	// nil the answers are never submitted anywhere.
	Leads driven.LeadSink

	// Cart receives the chosen variant. Optional; when nil the
	// add-to-cart action is hidden.
	Cart driven.CartGateway
}

// NewPorts creates a Ports aggregate with the required services.
func NewPorts(session driving.QuizSession, recommender driving.Recommender) *Ports {
	return &Ports{
		Session:     session,
		Recommender: recommender,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Session == nil {
		return ErrMissingSession
	}
	if p.Recommender == nil {
		return ErrMissingRecommender
	}
	return nil
}
