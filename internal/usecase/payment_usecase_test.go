package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lendr/internal/adapter/repository"
	"lendr/internal/domain/entity"
	"lendr/pkg/errors"
)

func newPaymentFixture(listings []*entity.Listing) (*PaymentUseCase, *ChatUseCase) {
	listingRepo := repository.NewMemoryListingRepository(listings)
	chatUC := NewChatUseCase(repository.NewMemoryChatRepository(nil))
	return NewPaymentUseCase(listingRepo, chatUC), chatUC
}

func TestQuotePaymentMath(t *testing.T) {
	paymentUC, _ := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "Drone", Price: "₹100/day", Lender: "Sarah"},
	})

	quote, err := paymentUC.QuotePayment(context.Background(), "l1")
	require.NoError(t, err)

	assert.Equal(t, 100, quote.BasePrice)
	assert.Equal(t, 25, quote.ServiceFee)
	assert.Equal(t, 500, quote.SecurityDeposit)
	assert.Equal(t, 625, quote.Total)
	assert.True(t, strings.HasPrefix(quote.Reference, "PAY-"))
	assert.Len(t, quote.Reference, len("PAY-")+8)
}

func TestQuotePaymentFreeListing(t *testing.T) {
	paymentUC, _ := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "HDMI Cable", Price: "Free", Lender: "Mike"},
	})

	quote, err := paymentUC.QuotePayment(context.Background(), "l1")
	require.NoError(t, err)
	assert.Equal(t, 0, quote.BasePrice)
	assert.Equal(t, 525, quote.Total)
}

func TestQuotePaymentUnknownListing(t *testing.T) {
	paymentUC, _ := newPaymentFixture(nil)

	_, err := paymentUC.QuotePayment(context.Background(), "nope")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestConfirmPaymentInjectsPickupMessage(t *testing.T) {
	paymentUC, chatUC := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "Drone", Price: "₹100/day", Lender: "Sarah"},
	})
	ctx := context.Background()

	receipt, err := paymentUC.ConfirmPayment(ctx, "l1", "upi")
	require.NoError(t, err)
	assert.Equal(t, 625, receipt.Total)
	assert.Equal(t, "upi", receipt.Method)
	assert.Equal(t, "Sarah", receipt.Lender)

	sessions, err := chatUC.ListSessions(ctx, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Sarah", sessions[0].Counterparty)
	require.Len(t, sessions[0].Messages, 1)
	msg := sessions[0].Messages[0]
	assert.Equal(t, entity.SenderMe, msg.Sender)
	assert.Contains(t, msg.Text, "I just completed the payment")
	assert.Contains(t, msg.Text, "Drone")
	assert.Contains(t, msg.Text, "When can I pick it up?")
}

func TestConfirmPaymentTwiceDoesNotDuplicateMessage(t *testing.T) {
	paymentUC, chatUC := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "Drone", Price: "₹100/day", Lender: "Sarah"},
	})
	ctx := context.Background()

	_, err := paymentUC.ConfirmPayment(ctx, "l1", "upi")
	require.NoError(t, err)
	_, err = paymentUC.ConfirmPayment(ctx, "l1", "card")
	require.NoError(t, err)

	sessions, err := chatUC.ListSessions(ctx, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Len(t, sessions[0].Messages, 1)
}

func TestConfirmPaymentUnaffectedByMessageRateLimit(t *testing.T) {
	paymentUC, chatUC := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "Drone", Price: "₹100/day", Lender: "Sarah"},
	})
	ctx := context.Background()

	// Exhaust the send budget for the lender's conversation.
	for i := 0; i < 10; i++ {
		_, _, err := chatUC.SendMessage(ctx, SendMessageInput{Counterparty: "Sarah", Text: "still interested"})
		require.NoError(t, err)
	}
	_, _, err := chatUC.SendMessage(ctx, SendMessageInput{Counterparty: "Sarah", Text: "one more"})
	require.True(t, errors.Is(err, "TOO_MANY_REQUESTS"))

	_, err = paymentUC.ConfirmPayment(ctx, "l1", "upi")
	require.NoError(t, err)

	sessions, err := chatUC.ListSessions(ctx, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.Len(t, sessions[0].Messages, 11)
	assert.Contains(t, sessions[0].Messages[10].Text, "When can I pick it up?")
}

func TestConfirmPaymentFallsBackToVerifiedUser(t *testing.T) {
	paymentUC, chatUC := newPaymentFixture([]*entity.Listing{
		{ID: "l1", Title: "Drone", Price: "₹100/day"},
	})
	ctx := context.Background()

	receipt, err := paymentUC.ConfirmPayment(ctx, "l1", "card")
	require.NoError(t, err)
	assert.Equal(t, "Verified User", receipt.Lender)

	sessions, err := chatUC.ListSessions(ctx, "")
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Verified User", sessions[0].Counterparty)
}
