package repository

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendr/internal/domain/entity"
	"lendr/pkg/errors"
)

func newSession(counterparty string) *entity.ChatSession {
	return &entity.ChatSession{
		ID:           uuid.New().String(),
		Counterparty: counterparty,
		Avatar:       entity.DefaultAvatar(counterparty),
		Messages:     []entity.Message{},
		CreatedAt:    time.Now(),
	}
}

func newMessage(text, sender string) *entity.Message {
	return &entity.Message{
		ID:     uuid.New().String(),
		Text:   text,
		Sender: sender,
		SentAt: time.Now(),
	}
}

func TestChatCreateRejectsDuplicateCounterparty(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("Sarah")))

	err := repo.Create(ctx, newSession("Sarah"))
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestChatGetByCounterpartyIsCaseSensitive(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newSession("Sarah")))

	_, err := repo.GetByCounterparty(ctx, "sarah")
	assert.True(t, errors.Is(err, "NOT_FOUND"))

	session, err := repo.GetByCounterparty(ctx, "Sarah")
	require.NoError(t, err)
	assert.Equal(t, "Sarah", session.Counterparty)
}

func TestAppendMessageMovesSessionToHead(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	first := newSession("Sarah")
	second := newSession("Mike")
	require.NoError(t, repo.Create(ctx, first))
	require.NoError(t, repo.Create(ctx, second))

	// Most recent create is at the head, so Sarah is second now.
	sessions, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Mike", sessions[0].Counterparty)

	_, err = repo.AppendMessage(ctx, first.ID, newMessage("Hello", entity.SenderMe))
	require.NoError(t, err)

	sessions, err = repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Sarah", sessions[0].Counterparty)
	assert.Equal(t, "Mike", sessions[1].Counterparty)
}

func TestAppendMessageKeepsInsertionOrderWithinSession(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	session := newSession("Sarah")
	require.NoError(t, repo.Create(ctx, session))

	for _, text := range []string{"one", "two", "three"} {
		_, err := repo.AppendMessage(ctx, session.ID, newMessage(text, entity.SenderMe))
		require.NoError(t, err)
	}

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, stored.Messages, 3)
	assert.Equal(t, "one", stored.Messages[0].Text)
	assert.Equal(t, "two", stored.Messages[1].Text)
	assert.Equal(t, "three", stored.Messages[2].Text)
}

func TestAppendMessageEventKeyIsIdempotent(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	session := newSession("Sarah")
	require.NoError(t, repo.Create(ctx, session))

	msg := newMessage("Payment done", entity.SenderMe)
	msg.EventKey = "payment:listing-1"
	_, err := repo.AppendMessage(ctx, session.ID, msg)
	require.NoError(t, err)

	again := newMessage("Payment done, reworded", entity.SenderMe)
	again.EventKey = "payment:listing-1"
	_, err = repo.AppendMessage(ctx, session.ID, again)
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, stored.Messages, 1)
	assert.Equal(t, "Payment done", stored.Messages[0].Text)
}

func TestUnreadCounterAndMarkRead(t *testing.T) {
	repo := NewMemoryChatRepository(nil)
	ctx := context.Background()

	session := newSession("Sarah")
	require.NoError(t, repo.Create(ctx, session))

	_, err := repo.AppendMessage(ctx, session.ID, newMessage("mine", entity.SenderMe))
	require.NoError(t, err)
	_, err = repo.AppendMessage(ctx, session.ID, newMessage("theirs", entity.SenderThem))
	require.NoError(t, err)
	_, err = repo.AppendMessage(ctx, session.ID, newMessage("theirs again", entity.SenderThem))
	require.NoError(t, err)

	stored, err := repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.Unread)

	require.NoError(t, repo.MarkRead(ctx, session.ID))
	stored, err = repo.GetByID(ctx, session.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, stored.Unread)
}

func TestAppendMessageMissingSession(t *testing.T) {
	repo := NewMemoryChatRepository(nil)

	_, err := repo.AppendMessage(context.Background(), "nope", newMessage("text", entity.SenderMe))
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}
