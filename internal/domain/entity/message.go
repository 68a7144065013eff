package entity

import "time"

const (
	SenderMe   = "me"
	SenderThem = "them"
)

type Message struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	Sender   string    `json:"sender"` // "me" or "them"
	SentAt   time.Time `json:"sent_at"`
	EventKey string    `json:"event_key,omitempty"` // stable tag for automated messages
}
