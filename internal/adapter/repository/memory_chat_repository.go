package repository

import (
	"context"
	"sync"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/pkg/errors"
)

type memoryChatRepository struct {
	mu       sync.RWMutex
	sessions []*entity.ChatSession
	hub      *watchHub
}

var _ repository.ChatRepository = (*memoryChatRepository)(nil)

// NewMemoryChatRepository builds the in-memory session store, seeded with
// the given sessions most-recent first.
func NewMemoryChatRepository(seed []*entity.ChatSession) repository.ChatRepository {
	repo := &memoryChatRepository{
		sessions: make([]*entity.ChatSession, 0, len(seed)),
		hub:      newWatchHub(),
	}
	for _, s := range seed {
		repo.sessions = append(repo.sessions, copySession(s))
	}
	return repo
}

func (r *memoryChatRepository) Create(ctx context.Context, session *entity.ChatSession) error {
	r.mu.Lock()
	for _, existing := range r.sessions {
		if existing.ID == session.ID {
			r.mu.Unlock()
			return errors.Conflict("Session id already exists")
		}
		if existing.Counterparty == session.Counterparty {
			r.mu.Unlock()
			return errors.Conflict("A session for this counterparty already exists")
		}
	}
	r.sessions = append([]*entity.ChatSession{copySession(session)}, r.sessions...)
	r.mu.Unlock()

	r.hub.publish(repository.Event{Entity: repository.EntityChat, Op: repository.OpCreated, ID: session.ID})
	return nil
}

func (r *memoryChatRepository) GetByID(ctx context.Context, id string) (*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.ID == id {
			return copySession(s), nil
		}
	}
	return nil, errors.NotFound("Chat session", nil)
}

func (r *memoryChatRepository) GetByCounterparty(ctx context.Context, name string) (*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, s := range r.sessions {
		if s.Counterparty == name {
			return copySession(s), nil
		}
	}
	return nil, errors.NotFound("Chat session", nil)
}

func (r *memoryChatRepository) List(ctx context.Context) ([]*entity.ChatSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.ChatSession, len(r.sessions))
	for i, s := range r.sessions {
		out[i] = copySession(s)
	}
	return out, nil
}

func (r *memoryChatRepository) AppendMessage(ctx context.Context, sessionID string, message *entity.Message) (*entity.Message, error) {
	r.mu.Lock()
	index := -1
	for i, s := range r.sessions {
		if s.ID == sessionID {
			index = i
			break
		}
	}
	if index == -1 {
		r.mu.Unlock()
		return nil, errors.NotFound("Chat session", nil)
	}

	session := r.sessions[index]

	// Automated messages are idempotent per session, keyed by event tag
	// rather than exact text.
	if message.EventKey != "" {
		for i := range session.Messages {
			if session.Messages[i].EventKey == message.EventKey {
				existing := session.Messages[i]
				r.mu.Unlock()
				return &existing, nil
			}
		}
	}

	stored := *message
	session.Messages = append(session.Messages, stored)
	session.LastMessageAt = stored.SentAt
	if stored.Sender == entity.SenderThem {
		session.Unread++
	}

	// Most recently touched conversation first.
	if index > 0 {
		copy(r.sessions[1:index+1], r.sessions[:index])
		r.sessions[0] = session
	}
	r.mu.Unlock()

	r.hub.publish(repository.Event{Entity: repository.EntityChat, Op: repository.OpMessage, ID: sessionID})
	return &stored, nil
}

func (r *memoryChatRepository) MarkRead(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	found := false
	for _, s := range r.sessions {
		if s.ID == sessionID {
			s.Unread = 0
			found = true
			break
		}
	}
	r.mu.Unlock()

	if !found {
		return errors.NotFound("Chat session", nil)
	}
	r.hub.publish(repository.Event{Entity: repository.EntityChat, Op: repository.OpUpdated, ID: sessionID})
	return nil
}

func (r *memoryChatRepository) Watch(ctx context.Context) <-chan repository.Event {
	return r.hub.subscribe(ctx)
}

func copySession(s *entity.ChatSession) *entity.ChatSession {
	cp := *s
	cp.Messages = append([]entity.Message(nil), s.Messages...)
	return &cp
}
