package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendr/internal/domain/entity"
)

func TestNormalizeLegacySession(t *testing.T) {
	sentAt := time.Now().Add(-time.Hour)

	session := NormalizeLegacySession(LegacySession{
		Name:        "Alex R.",
		LastMessage: "Is this still available for the weekend?",
		SentAt:      sentAt,
	})

	assert.NotEmpty(t, session.ID)
	assert.NotEqual(t, session.ID, session.Counterparty)
	assert.Equal(t, "Alex R.", session.Counterparty)
	assert.Contains(t, session.Avatar, "ui-avatars.com")
	require.Len(t, session.Messages, 1)
	assert.Equal(t, "Is this still available for the weekend?", session.Messages[0].Text)
	assert.Equal(t, entity.SenderThem, session.Messages[0].Sender)
	assert.Equal(t, sentAt, session.LastMessageAt)
}

func TestNormalizeLegacySessionEmptyThread(t *testing.T) {
	session := NormalizeLegacySession(LegacySession{Name: "Priya"})

	assert.Empty(t, session.Messages)
	assert.True(t, session.LastMessageAt.IsZero())
}

func TestSeedFixturesAreCanonical(t *testing.T) {
	listings := SeedListings()
	require.NotEmpty(t, listings)
	seen := map[string]bool{}
	for _, l := range listings {
		assert.False(t, seen[l.ID], "seed listing ids must be unique")
		seen[l.ID] = true
		assert.NotEmpty(t, l.Title)
		assert.NotEmpty(t, l.Price)
		assert.NotEmpty(t, l.Status)
	}

	sessions := SeedChatSessions()
	require.NotEmpty(t, sessions)
	for _, s := range sessions {
		assert.NotEmpty(t, s.ID)
		assert.NotEqual(t, s.ID, s.Counterparty, "session identity must be opaque")
		for _, m := range s.Messages {
			assert.NotEmpty(t, m.ID)
			assert.False(t, m.SentAt.IsZero())
		}
	}
}
