package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
	"github.com/nordfuton/quizmatch-cli/internal/core/ports/driving"
	"github.com/nordfuton/quizmatch-cli/internal/logger"
)

// Ensure Session implements the interface.
var _ driving.QuizSession = (*Session)(nil)

// Session is the quiz state machine. It owns one shopper's answers,
// gates step-to-step navigation, and hands a snapshot to the scoring
// engine once the terminal step is reached.
//
// A Session serves a single interaction and is not goroutine-safe.
type Session struct {
	step    domain.Step
	answers domain.QuizAnswers
}

// NewSession creates a session at the initial step with a fresh answer set.
func NewSession() *Session {
	return &Session{
		step:    domain.StepStart,
		answers: domain.NewQuizAnswers(uuid.NewString()),
	}
}

// Step returns the current step.
func (s *Session) Step() domain.Step {
	return s.step
}

// SetPeopleCount records how many people sleep on the futon.
func (s *Session) SetPeopleCount(n int) error {
	if n != 1 && n != 2 {
		return fmt.Errorf("people count %d: %w", n, domain.ErrInvalidInput)
	}
	s.answers.PeopleCount = n
	return nil
}

// SetWeight records a person's body weight in kilograms.
func (s *Session) SetWeight(p domain.Person, kg float64) error {
	if !p.Valid() {
		return fmt.Errorf("%q: %w", p, domain.ErrUnknownPerson)
	}
	if kg < 0 {
		return fmt.Errorf("weight %v kg: %w", kg, domain.ErrInvalidInput)
	}
	s.answers.Weights[p] = kg
	return nil
}

// SetHeight records a person's body height in centimetres.
func (s *Session) SetHeight(p domain.Person, cm float64) error {
	if !p.Valid() {
		return fmt.Errorf("%q: %w", p, domain.ErrUnknownPerson)
	}
	if cm < 0 {
		return fmt.Errorf("height %v cm: %w", cm, domain.ErrInvalidInput)
	}
	s.answers.Heights[p] = cm
	return nil
}

// SetSleepPosition records a person's sleep position.
func (s *Session) SetSleepPosition(p domain.Person, pos domain.SleepPosition) error {
	if !p.Valid() {
		return fmt.Errorf("%q: %w", p, domain.ErrUnknownPerson)
	}
	if !pos.Valid() {
		return fmt.Errorf("sleep position %q: %w", pos, domain.ErrInvalidInput)
	}
	s.answers.SleepPositions[p] = pos
	return nil
}

// SetPreference records a person's firmness preference.
func (s *Session) SetPreference(p domain.Person, pref domain.Firmness) error {
	if !p.Valid() {
		return fmt.Errorf("%q: %w", p, domain.ErrUnknownPerson)
	}
	if !pref.Valid() {
		return fmt.Errorf("preference %q: %w", pref, domain.ErrInvalidInput)
	}
	s.answers.Preferences[p] = pref
	return nil
}

// SetContact replaces the contact details.
func (s *Session) SetContact(c domain.ContactInfo) {
	s.answers.Contact = c
}

// CanAdvance reports whether the current step's answers allow moving
// forward, and if not, which fields block.
func (s *Session) CanAdvance() (bool, []string) {
	missing := s.missingFields()
	return len(missing) == 0, missing
}

// missingFields lists the unanswered fields gating the current step.
func (s *Session) missingFields() []string {
	var missing []string
	switch s.step {
	case domain.StepWeight:
		for _, p := range s.answers.Persons() {
			if s.answers.Weights[p] <= 0 {
				missing = append(missing, fmt.Sprintf("weight (%s)", p))
			}
		}
	case domain.StepSleepPosition:
		for _, p := range s.answers.Persons() {
			if _, ok := s.answers.SleepPositions[p]; !ok {
				missing = append(missing, fmt.Sprintf("sleep position (%s)", p))
			}
		}
	case domain.StepPreference:
		for _, p := range s.answers.Persons() {
			if _, ok := s.answers.Preferences[p]; !ok {
				missing = append(missing, fmt.Sprintf("preference (%s)", p))
			}
		}
	case domain.StepContactInfo:
		missing = s.missingContactFields()
	case domain.StepRecommendation:
		missing = append(missing, "nothing to answer")
	}
	return missing
}

// missingContactFields checks the contact gate. Marketing consent is a
// hard requirement: the quiz cannot complete without it.
func (s *Session) missingContactFields() []string {
	var missing []string
	c := s.answers.Contact
	if !nonBlank(c.Name) {
		missing = append(missing, "name")
	}
	if !nonBlank(c.Email) {
		missing = append(missing, "email")
	}
	if !nonBlank(c.Phone) {
		missing = append(missing, "phone")
	}
	if !c.MarketingConsent {
		missing = append(missing, "marketing consent")
	}
	return missing
}

// Advance moves to the next step when the current one is complete.
func (s *Session) Advance() error {
	if s.step.Terminal() {
		return domain.ErrQuizComplete
	}
	if ok, missing := s.CanAdvance(); !ok {
		logger.Debug("Session %s: advance blocked at %s: %v", s.answers.SessionID, s.step, missing)
		return &domain.ValidationError{Step: s.step, Missing: missing}
	}
	s.step = s.step.Next()
	logger.Debug("Session %s: advanced to %s", s.answers.SessionID, s.step)
	return nil
}

// Retreat moves back one step. A no-op at the initial step.
func (s *Session) Retreat() {
	s.step = s.step.Prev()
}

// Restart resets to the initial step with a fresh answer set and a new
// session ID. Abandoned answers are simply discarded; the core holds no
// external resources.
func (s *Session) Restart() {
	s.step = domain.StepStart
	s.answers = domain.NewQuizAnswers(uuid.NewString())
	logger.Debug("Session restarted as %s", s.answers.SessionID)
}

// Complete reports whether the terminal step has been reached.
func (s *Session) Complete() bool {
	return s.step.Terminal()
}

// Snapshot returns a deep copy of the accumulated answers.
func (s *Session) Snapshot() domain.QuizAnswers {
	return s.answers.Clone()
}

// nonBlank reports whether v contains more than whitespace.
func nonBlank(v string) bool {
	return strings.TrimSpace(v) != ""
}
