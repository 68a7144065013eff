package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/internal/infrastructure/ratelimit"
	"lendr/pkg/errors"
	"lendr/pkg/logger"
)

type ChatUseCase struct {
	chatRepo    repository.ChatRepository
	rateLimiter *ratelimit.RateLimiter
}

func NewChatUseCase(chatRepo repository.ChatRepository) *ChatUseCase {
	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	return &ChatUseCase{
		chatRepo:    chatRepo,
		rateLimiter: rateLimiter,
	}
}

type SendMessageInput struct {
	Counterparty string
	Text         string
	Sender       string // "me" or "them"; defaults to "me"
	EventKey     string // set for automated messages that must not repeat
}

// GetOrCreateSession returns the session for a counterparty display
// name, creating it with a generated avatar on first contact. Repeated
// calls with the same name return the same session.
func (uc *ChatUseCase) GetOrCreateSession(ctx context.Context, counterparty string) (*entity.ChatSession, error) {
	if counterparty == "" {
		return nil, errors.BadRequest("Counterparty name is required", nil)
	}

	session, err := uc.chatRepo.GetByCounterparty(ctx, counterparty)
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	session = &entity.ChatSession{
		ID:           uuid.New().String(),
		Counterparty: counterparty,
		Avatar:       entity.DefaultAvatar(counterparty),
		Messages:     []entity.Message{},
		CreatedAt:    time.Now(),
	}
	if err := uc.chatRepo.Create(ctx, session); err != nil {
		// Lost a race with another create for the same name; the
		// existing session wins.
		if errors.Is(err, "CONFLICT") {
			return uc.chatRepo.GetByCounterparty(ctx, counterparty)
		}
		return nil, err
	}

	logger.Info("Created chat session %s for %q", session.ID, counterparty)
	return session, nil
}

func (uc *ChatUseCase) GetSession(ctx context.Context, id string) (*entity.ChatSession, error) {
	return uc.chatRepo.GetByID(ctx, id)
}

// ListSessions returns the inbox, most recently touched first, filtered
// by a search term matched against the counterparty name or the most
// recent message text.
func (uc *ChatUseCase) ListSessions(ctx context.Context, query string) ([]*entity.ChatSession, error) {
	sessions, err := uc.chatRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" {
		return sessions, nil
	}

	needle := strings.ToLower(query)
	filtered := make([]*entity.ChatSession, 0, len(sessions))
	for _, s := range sessions {
		lastText := ""
		if last := s.LastMessage(); last != nil {
			lastText = last.Text
		}
		if strings.Contains(strings.ToLower(s.Counterparty), needle) ||
			strings.Contains(strings.ToLower(lastText), needle) {
			filtered = append(filtered, s)
		}
	}
	return filtered, nil
}

// SendMessage appends a message to the counterparty's session, creating
// the session if needed. The store's change feed notifies subscribers.
func (uc *ChatUseCase) SendMessage(ctx context.Context, input SendMessageInput) (*entity.ChatSession, *entity.Message, error) {
	if strings.TrimSpace(input.Text) == "" {
		return nil, nil, errors.BadRequest("Message text is required", nil)
	}

	sender := input.Sender
	if sender == "" {
		sender = entity.SenderMe
	}
	if sender != entity.SenderMe && sender != entity.SenderThem {
		return nil, nil, errors.BadRequest("Sender must be 'me' or 'them'", nil)
	}

	// Event-keyed messages are automated one-offs the store already
	// deduplicates; they must not fail because the user was chatty.
	if input.EventKey == "" {
		allowed, waitTime := uc.rateLimiter.Allow(input.Counterparty, "send_message")
		if !allowed {
			logger.Warn("Message to %q rate limited, wait %v", input.Counterparty, waitTime)
			return nil, nil, errors.TooManyRequests("Rate limit exceeded. Please wait before sending another message", waitTime)
		}
	}

	session, err := uc.GetOrCreateSession(ctx, input.Counterparty)
	if err != nil {
		return nil, nil, err
	}

	message := &entity.Message{
		ID:       uuid.New().String(),
		Text:     input.Text,
		Sender:   sender,
		SentAt:   time.Now(),
		EventKey: input.EventKey,
	}
	stored, err := uc.chatRepo.AppendMessage(ctx, session.ID, message)
	if err != nil {
		return nil, nil, err
	}

	session, err = uc.chatRepo.GetByID(ctx, session.ID)
	if err != nil {
		return nil, nil, err
	}
	return session, stored, nil
}

// MarkSessionRead clears the unread counter for a session.
func (uc *ChatUseCase) MarkSessionRead(ctx context.Context, sessionID string) error {
	return uc.chatRepo.MarkRead(ctx, sessionID)
}
