package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

func TestAnswerSummary_SinglePerson(t *testing.T) {
	a := singleAnswers()

	summary := AnswerSummary(a)

	assert.Equal(t, "Futon Quiz Results:\n"+
		"People Count: 1\n"+
		"Weights: Person 1: 65kg\n"+
		"Sleep Positions: Person 1: side\n"+
		"Preferences: Person 1: medium\n"+
		"Comments: None", summary)
}

func TestAnswerSummary_Couple(t *testing.T) {
	a := coupleAnswers()
	a.Contact.Comments = "Allergic to latex"

	summary := AnswerSummary(a)

	assert.Contains(t, summary, "People Count: 2")
	assert.Contains(t, summary, "Weights: Person 1: 75kg, Person 2: 75kg")
	assert.Contains(t, summary, "Sleep Positions: Person 1: side, Person 2: back")
	assert.Contains(t, summary, "Preferences: Person 1: soft, Person 2: hard")
	assert.Contains(t, summary, "Comments: Allergic to latex")
}

func TestBuildLead(t *testing.T) {
	a := singleAnswers()
	a.Contact = domain.ContactInfo{
		Name:             "Mette Jensen",
		Email:            "mette@example.dk",
		Phone:            "+45 12 34 56 78",
		MarketingConsent: true,
	}
	recs := []domain.ScoredProduct{
		{Product: domain.Product{ID: "p1", Title: "Naturmadras"}, Score: 70},
	}

	lead := BuildLead(a, recs)

	assert.Equal(t, a.SessionID, lead.SessionID)
	assert.Equal(t, a.Contact, lead.Contact)
	assert.Equal(t, recs, lead.Recommended)
	require.False(t, lead.CompletedAt.IsZero())
	assert.Contains(t, lead.Summary, "People Count: 1")
}
