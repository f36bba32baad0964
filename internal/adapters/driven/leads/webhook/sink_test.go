package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordfuton/quizmatch-cli/internal/core/domain"
)

func sampleLead() domain.Lead {
	return domain.Lead{
		SessionID: "session-1",
		Contact: domain.ContactInfo{
			Name:             "Mette Møller Jensen",
			Email:            "mette@example.dk",
			Phone:            "+45 12 34 56 78",
			MarketingConsent: true,
		},
		Summary: "Futon Quiz Results:\nPeople Count: 1",
		Recommended: []domain.ScoredProduct{
			{
				Product: domain.Product{
					ID:       "p1",
					Title:    "Naturmadras",
					Price:    249900,
					URL:      "/products/naturmadras",
					Variants: []domain.Variant{{ID: "v1", Available: true, Price: 249900}},
				},
				Score: 70,
			},
		},
		CompletedAt: time.Date(2024, 11, 2, 10, 30, 0, 0, time.UTC),
	}
}

func TestSink_Submit(t *testing.T) {
	var got payload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	sink := NewSink(Config{URL: srv.URL})

	require.NoError(t, sink.Submit(context.Background(), sampleLead()))

	assert.Equal(t, "session-1", got.SessionID)
	assert.Equal(t, "Mette", got.FirstName)
	assert.Equal(t, "Møller Jensen", got.LastName)
	assert.True(t, got.MarketingConsent)
	assert.Contains(t, got.Note, "People Count: 1")
	require.Len(t, got.Recommended, 1)
	assert.Equal(t, "p1", got.Recommended[0].ID)
	assert.Equal(t, 70, got.Recommended[0].Score)
	assert.Equal(t, "v1", got.Recommended[0].VariantID)
}

func TestSink_SubmitRejectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	sink := NewSink(Config{URL: srv.URL})

	err := sink.Submit(context.Background(), sampleLead())

	assert.ErrorContains(t, err, "502")
}

func TestSink_SubmitHonoursContext(t *testing.T) {
	sink := NewSink(Config{URL: "http://127.0.0.1:0", RequestsPerSecond: 0.001, BurstSize: 1})
	// Exhaust the burst so the next call must wait.
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sink.Submit(ctx, sampleLead())

	assert.ErrorIs(t, err, context.Canceled)
}

func TestSplitName(t *testing.T) {
	cases := []struct {
		in, first, last string
	}{
		{"Mette Jensen", "Mette", "Jensen"},
		{"Mette Møller Jensen", "Mette", "Møller Jensen"},
		{"Mette", "Mette", ""},
		{"", "", ""},
	}
	for _, c := range cases {
		first, last := splitName(c.in)
		assert.Equal(t, c.first, first)
		assert.Equal(t, c.last, last)
	}
}
