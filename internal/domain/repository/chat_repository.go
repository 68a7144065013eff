package repository

import (
	"context"

	"lendr/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, session *entity.ChatSession) error
	GetByID(ctx context.Context, id string) (*entity.ChatSession, error)
	// GetByCounterparty is an exact, case-sensitive lookup by display name.
	GetByCounterparty(ctx context.Context, name string) (*entity.ChatSession, error)
	// List returns sessions most recently touched first.
	List(ctx context.Context) ([]*entity.ChatSession, error)
	// AppendMessage appends to the session's history and moves the
	// session to the head of the list. When the message carries an
	// EventKey already present in the session, the append is skipped
	// and the stored message is returned unchanged.
	AppendMessage(ctx context.Context, sessionID string, message *entity.Message) (*entity.Message, error)
	// MarkRead clears the session's unread counter.
	MarkRead(ctx context.Context, sessionID string) error
	Watch(ctx context.Context) <-chan Event
}
