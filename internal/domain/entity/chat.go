package entity

import (
	"fmt"
	"net/url"
	"time"
)

// ChatSession is one conversation with a counterparty. Identity is the
// opaque ID; Counterparty is a display attribute and may change without
// breaking the thread.
type ChatSession struct {
	ID            string    `json:"id"`
	Counterparty  string    `json:"counterparty"`
	Avatar        string    `json:"avatar"`
	Messages      []Message `json:"messages"`
	Unread        int       `json:"unread"`
	CreatedAt     time.Time `json:"created_at"`
	LastMessageAt time.Time `json:"last_message_at"`
}

// LastMessage returns the most recent message, or nil for an empty thread.
func (s *ChatSession) LastMessage() *Message {
	if len(s.Messages) == 0 {
		return nil
	}
	return &s.Messages[len(s.Messages)-1]
}

// DefaultAvatar builds the generated avatar URL used when a session is
// created without a seeded avatar.
func DefaultAvatar(name string) string {
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&background=random", url.QueryEscape(name))
}
