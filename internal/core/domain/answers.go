package domain

import "strings"

// Person identifies one of the up to two sleepers a session collects
// answers for.
type Person string

const (
	// Person1 is the primary sleeper. Always required.
	Person1 Person = "person1"

	// Person2 is the partner. Only relevant when PeopleCount is 2.
	Person2 Person = "person2"
)

// Valid reports whether p is a known person key.
func (p Person) Valid() bool {
	return p == Person1 || p == Person2
}

// SleepPosition is the position a person mainly sleeps in.
// The quiz uses the three-position taxonomy; variants that collapsed
// back and stomach into a single choice are not reproduced.
type SleepPosition string

const (
	PositionSide    SleepPosition = "side"
	PositionBack    SleepPosition = "back"
	PositionStomach SleepPosition = "stomach"
)

// Valid reports whether s is a known sleep position.
func (s SleepPosition) Valid() bool {
	switch s {
	case PositionSide, PositionBack, PositionStomach:
		return true
	}
	return false
}

// Firmness is a shopper's desired mattress hardness.
type Firmness string

const (
	FirmnessSoft   Firmness = "soft"
	FirmnessMedium Firmness = "medium"
	FirmnessHard   Firmness = "hard"
)

// Valid reports whether f is a known firmness preference.
func (f Firmness) Valid() bool {
	switch f {
	case FirmnessSoft, FirmnessMedium, FirmnessHard:
		return true
	}
	return false
}

// ContactInfo holds the shopper's contact details collected on the
// final answer step.
type ContactInfo struct {
	// Name is the shopper's full name.
	Name string

	// Email is the shopper's email address.
	Email string

	// Phone is the shopper's phone number.
	Phone string

	// Comments is an optional free-text remark.
	Comments string

	// MarketingConsent records acceptance of marketing contact.
	// The quiz cannot complete without it.
	MarketingConsent bool
}

// Complete reports whether the required contact fields are filled in.
// Whitespace-only values do not count.
func (c ContactInfo) Complete() bool {
	return strings.TrimSpace(c.Name) != "" &&
		strings.TrimSpace(c.Email) != "" &&
		strings.TrimSpace(c.Phone) != "" &&
		c.MarketingConsent
}

// QuizAnswers accumulates everything a shopper tells the quiz.
// It is owned by a single session; scoring receives a copy.
type QuizAnswers struct {
	// SessionID correlates the answer set with a lead submission.
	SessionID string

	// PeopleCount is 1 or 2. When 1, all Person2 entries are
	// ignored by validation and scoring.
	PeopleCount int

	// Weights holds body weight in kilograms per person. 0 = unset.
	Weights map[Person]float64

	// Heights holds body height in centimetres per person.
	// Reference only; never used by scoring.
	Heights map[Person]float64

	// SleepPositions holds the chosen sleep position per person.
	SleepPositions map[Person]SleepPosition

	// Preferences holds the firmness preference per person.
	Preferences map[Person]Firmness

	// Contact holds the shopper's contact details.
	Contact ContactInfo
}

// NewQuizAnswers returns a fresh answer set with PeopleCount 1 and all
// other values unset.
func NewQuizAnswers(sessionID string) QuizAnswers {
	return QuizAnswers{
		SessionID:      sessionID,
		PeopleCount:    1,
		Weights:        make(map[Person]float64),
		Heights:        make(map[Person]float64),
		SleepPositions: make(map[Person]SleepPosition),
		Preferences:    make(map[Person]Firmness),
	}
}

// Persons returns the persons the current PeopleCount makes relevant.
func (a QuizAnswers) Persons() []Person {
	if a.PeopleCount == 2 {
		return []Person{Person1, Person2}
	}
	return []Person{Person1}
}

// Clone returns a deep copy of the answer set. Mutating the copy never
// affects the original.
func (a QuizAnswers) Clone() QuizAnswers {
	c := a
	c.Weights = make(map[Person]float64, len(a.Weights))
	for k, v := range a.Weights {
		c.Weights[k] = v
	}
	c.Heights = make(map[Person]float64, len(a.Heights))
	for k, v := range a.Heights {
		c.Heights[k] = v
	}
	c.SleepPositions = make(map[Person]SleepPosition, len(a.SleepPositions))
	for k, v := range a.SleepPositions {
		c.SleepPositions[k] = v
	}
	c.Preferences = make(map[Person]Firmness, len(a.Preferences))
	for k, v := range a.Preferences {
		c.Preferences[k] = v
	}
	return c
}

// AverageWeight is the mean body weight across the relevant persons.
// For a single sleeper it is simply person 1's weight.
func (a QuizAnswers) AverageWeight() float64 {
	if a.PeopleCount == 2 {
		return (a.Weights[Person1] + a.Weights[Person2]) / 2
	}
	return a.Weights[Person1]
}

// TotalWeight is the combined body weight across the relevant persons.
func (a QuizAnswers) TotalWeight() float64 {
	if a.PeopleCount == 2 {
		return a.Weights[Person1] + a.Weights[Person2]
	}
	return a.Weights[Person1]
}
