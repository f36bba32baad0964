package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

// BuildLead assembles the contact hand-off from a completed answer set
// and the recommendations the shopper saw. The caller decides where the
// lead goes; the core only guarantees its shape.
func BuildLead(answers domain.QuizAnswers, recommended []domain.ScoredProduct) domain.Lead {
	return domain.Lead{
		SessionID:   answers.SessionID,
		Contact:     answers.Contact,
		Summary:     AnswerSummary(answers),
		Recommended: recommended,
		CompletedAt: time.Now().UTC(),
	}
}

// AnswerSummary renders the free-text digest of all answers carried in
// the contact-form note field. Person 2 lines appear only for couples.
func AnswerSummary(answers domain.QuizAnswers) string {
	var b strings.Builder
	b.WriteString("Futon Quiz Results:\n")
	fmt.Fprintf(&b, "People Count: %d\n", answers.PeopleCount)
	fmt.Fprintf(&b, "Weights: %s\n", perPerson(answers, func(p domain.Person) string {
		return fmt.Sprintf("%gkg", answers.Weights[p])
	}))
	fmt.Fprintf(&b, "Sleep Positions: %s\n", perPerson(answers, func(p domain.Person) string {
		return string(answers.SleepPositions[p])
	}))
	fmt.Fprintf(&b, "Preferences: %s\n", perPerson(answers, func(p domain.Person) string {
		return string(answers.Preferences[p])
	}))
	comments := strings.TrimSpace(answers.Contact.Comments)
	if comments == "" {
		comments = "None"
	}
	fmt.Fprintf(&b, "Comments: %s", comments)
	return b.String()
}

// perPerson renders "Person 1: x" or "Person 1: x, Person 2: y"
// depending on the people count.
func perPerson(answers domain.QuizAnswers, value func(domain.Person) string) string {
	parts := make([]string, 0, 2)
	for i, p := range answers.Persons() {
		parts = append(parts, fmt.Sprintf("Person %d: %s", i+1, value(p)))
	}
	return strings.Join(parts, ", ")
}
