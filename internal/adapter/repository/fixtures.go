package repository

import (
	"time"

	"github.com/google/uuid"

	"lendr/internal/domain/entity"
)

// Seed data carried over from the mock fixtures the app shipped with.
// The stores start from these and lose everything at process exit.

func SeedListings() []*entity.Listing {
	now := time.Now()
	return []*entity.Listing{
		{
			ID:        uuid.New().String(),
			Title:     "Calculus Textbook",
			Price:     "₹50/day",
			Status:    entity.ListingAvailable,
			Category:  "Books",
			Image:     "https://images.unsplash.com/photo-1544947950-fa07a98d237f?w=600&q=80",
			Lender:    "Sarah",
			Distance:  "200m",
			Rating:    4.8,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Graphing Calculator",
			Price:     "₹20/hr",
			Status:    entity.ListingRented,
			Category:  "Tech",
			Image:     "https://images.unsplash.com/photo-1587145820266-a5951ee1f620?w=600&q=80",
			Lender:    "Mike",
			Distance:  "300m",
			Rating:    4.7,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Yonex Badminton Set",
			Price:     "₹30/hr",
			Status:    entity.ListingAvailable,
			Category:  "Sports",
			Image:     "https://images.unsplash.com/photo-1626224583764-84786c713664?w=600&q=80",
			Lender:    "Rohan",
			Distance:  "1.2km",
			Rating:    4.6,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "Lab Coat (M)",
			Price:     "₹20/d",
			Status:    entity.ListingAvailable,
			Category:  "Lab",
			Image:     "https://images.unsplash.com/photo-1584634731339-252c581abfc5?w=600&q=80",
			Lender:    "Emily",
			Distance:  "800m",
			Rating:    4.9,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "PS5 Controller",
			Price:     "₹80/d",
			Status:    entity.ListingAvailable,
			Category:  "Gaming",
			Image:     "https://images.unsplash.com/photo-1606318801954-d46d46d3360a?w=600&q=80",
			Lender:    "GamerX",
			Rating:    4.7,
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			ID:        uuid.New().String(),
			Title:     "HDMI Cable",
			Price:     "Free",
			Status:    entity.ListingAvailable,
			Category:  "Tech",
			Image:     "https://images.unsplash.com/photo-1558591710-4b4a1ae0f04d?w=600&q=80",
			Lender:    "Mike",
			Distance:  "450m",
			Rating:    4.5,
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
}

// LegacySession is the flat mock-inbox record shape that predates full
// message histories: a single lastMessage string instead of a messages
// array. Fixtures in this shape are normalized once, at load time.
type LegacySession struct {
	Name        string
	Avatar      string
	LastMessage string
	Sender      string
	SentAt      time.Time
}

// NormalizeLegacySession converts a flat legacy record into the canonical
// session shape.
func NormalizeLegacySession(legacy LegacySession) *entity.ChatSession {
	avatar := legacy.Avatar
	if avatar == "" {
		avatar = entity.DefaultAvatar(legacy.Name)
	}
	sender := legacy.Sender
	if sender == "" {
		sender = entity.SenderThem
	}

	session := &entity.ChatSession{
		ID:           uuid.New().String(),
		Counterparty: legacy.Name,
		Avatar:       avatar,
		CreatedAt:    legacy.SentAt,
	}
	if legacy.LastMessage != "" {
		session.Messages = []entity.Message{{
			ID:     uuid.New().String(),
			Text:   legacy.LastMessage,
			Sender: sender,
			SentAt: legacy.SentAt,
		}}
		session.LastMessageAt = legacy.SentAt
	}
	return session
}

func SeedChatSessions() []*entity.ChatSession {
	yesterday := time.Now().Add(-24 * time.Hour)

	sarah := &entity.ChatSession{
		ID:           uuid.New().String(),
		Counterparty: "Sarah Jenkins",
		Avatar:       "https://randomuser.me/api/portraits/women/1.jpg",
		CreatedAt:    yesterday,
		Messages: []entity.Message{
			{
				ID:     uuid.New().String(),
				Text:   "Hi! Is the calculus book still available?",
				Sender: entity.SenderMe,
				SentAt: yesterday,
			},
			{
				ID:     uuid.New().String(),
				Text:   "Yes it is!",
				Sender: entity.SenderThem,
				SentAt: yesterday.Add(5 * time.Minute),
			},
		},
		LastMessageAt: yesterday.Add(5 * time.Minute),
	}

	alex := NormalizeLegacySession(LegacySession{
		Name:        "Alex R.",
		Avatar:      "https://randomuser.me/api/portraits/men/32.jpg",
		LastMessage: "Is this still available for the weekend?",
		SentAt:      yesterday.Add(-2 * time.Hour),
	})

	return []*entity.ChatSession{sarah, alex}
}
