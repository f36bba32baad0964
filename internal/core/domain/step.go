package domain

// Step identifies one state of the quiz session.
// The flow is strictly linear: Start through Recommendation, with no
// skipping and no branching.
type Step int

const (
	// StepStart is the initial state. The shopper has not answered
	// anything yet.
	StepStart Step = iota

	// StepPeopleCount asks whether one or two people sleep on the futon.
	StepPeopleCount

	// StepWeight collects body weight (and optional height) per person.
	StepWeight

	// StepSleepPosition collects the sleep position per person.
	StepSleepPosition

	// StepPreference collects the firmness preference per person.
	StepPreference

	// StepContactInfo collects name, email, phone and marketing consent.
	StepContactInfo

	// StepRecommendation is the terminal state. The answer set is
	// complete and ready for scoring.
	StepRecommendation
)

// stepNames indexes display names by Step value.
var stepNames = [...]string{
	"start",
	"people-count",
	"weight",
	"sleep-position",
	"preference",
	"contact-info",
	"recommendation",
}

// String returns the step's stable name.
func (s Step) String() string {
	if s < StepStart || s > StepRecommendation {
		return "unknown"
	}
	return stepNames[s]
}

// Next returns the following step. Recommendation has no successor and
// returns itself.
func (s Step) Next() Step {
	if s >= StepRecommendation {
		return StepRecommendation
	}
	return s + 1
}

// Prev returns the preceding step. Start has no predecessor and
// returns itself.
func (s Step) Prev() Step {
	if s <= StepStart {
		return StepStart
	}
	return s - 1
}

// Terminal reports whether the step ends the quiz flow.
func (s Step) Terminal() bool {
	return s == StepRecommendation
}
