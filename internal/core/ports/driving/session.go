package driving

import "github.com/nordfuton/quizmatch-cli/internal/core/domain"

// QuizSession drives one shopper's walk through the quiz. Setters never
// advance the flow; Advance gates each transition on the current step's
// answers. Implementations are not goroutine-safe: one session serves
// one interaction.
type QuizSession interface {
	// Step returns the current step.
	Step() domain.Step

	// SetPeopleCount records how many people sleep on the futon (1 or 2).
	SetPeopleCount(n int) error

	// SetWeight records a person's body weight in kilograms.
	SetWeight(p domain.Person, kg float64) error

	// SetHeight records a person's body height in centimetres.
	// Reference only; never scored.
	SetHeight(p domain.Person, cm float64) error

	// SetSleepPosition records a person's sleep position.
	SetSleepPosition(p domain.Person, pos domain.SleepPosition) error

	// SetPreference records a person's firmness preference.
	SetPreference(p domain.Person, pref domain.Firmness) error

	// SetContact replaces the contact details.
	SetContact(c domain.ContactInfo)

	// CanAdvance reports whether the current step's answers allow
	// moving forward, and if not, which fields are missing.
	CanAdvance() (bool, []string)

	// Advance moves to the next step. Returns a *domain.ValidationError
	// when the current step is incomplete, domain.ErrQuizComplete from
	// the terminal step.
	Advance() error

	// Retreat moves back one step. A no-op at the initial step.
	Retreat()

	// Restart resets to the initial step with a fresh answer set.
	Restart()

	// Complete reports whether the terminal step has been reached.
	Complete() bool

	// Snapshot returns a deep copy of the accumulated answers for
	// hand-off to scoring. Only meaningful once Complete.
	Snapshot() domain.QuizAnswers
}
