package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"lendr/internal/domain/entity"
	"lendr/internal/domain/repository"
	"lendr/pkg/logger"
)

// Flat charges applied to every rental, matching the checkout screen.
const (
	serviceFee      = 25
	securityDeposit = 500
)

type PaymentUseCase struct {
	listingRepo repository.ListingRepository
	chatUseCase *ChatUseCase
}

func NewPaymentUseCase(listingRepo repository.ListingRepository, chatUseCase *ChatUseCase) *PaymentUseCase {
	return &PaymentUseCase{
		listingRepo: listingRepo,
		chatUseCase: chatUseCase,
	}
}

type PaymentQuote struct {
	ListingID       string `json:"listing_id"`
	Title           string `json:"title"`
	Lender          string `json:"lender"`
	BasePrice       int    `json:"base_price"`
	ServiceFee      int    `json:"service_fee"`
	SecurityDeposit int    `json:"security_deposit"`
	Total           int    `json:"total"`
	Reference       string `json:"reference"`
}

type PaymentReceipt struct {
	Reference string    `json:"reference"`
	ListingID string    `json:"listing_id"`
	Title     string    `json:"title"`
	Lender    string    `json:"lender"`
	Total     int       `json:"total"`
	Method    string    `json:"method"`
	PaidAt    time.Time `json:"paid_at"`
}

// QuotePayment prices a rental: the listing's base rate plus the flat
// service fee and refundable security deposit.
func (uc *PaymentUseCase) QuotePayment(ctx context.Context, listingID string) (*PaymentQuote, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	base := parsePriceAmount(listing.Price)
	return &PaymentQuote{
		ListingID:       listing.ID,
		Title:           listing.Title,
		Lender:          listing.Lender,
		BasePrice:       base,
		ServiceFee:      serviceFee,
		SecurityDeposit: securityDeposit,
		Total:           base + serviceFee + securityDeposit,
		Reference:       newPaymentReference(),
	}, nil
}

// ConfirmPayment records a simulated successful payment and drops the
// pickup message into the lender's chat. Confirming the same listing
// again does not duplicate the message: the append is keyed by the
// payment event tag.
func (uc *PaymentUseCase) ConfirmPayment(ctx context.Context, listingID, method string) (*PaymentReceipt, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	lender := listing.Lender
	if lender == "" {
		lender = "Verified User"
	}

	autoMsg := fmt.Sprintf("Hi! I just completed the payment for %q. When can I pick it up?", listing.Title)
	_, _, err = uc.chatUseCase.SendMessage(ctx, SendMessageInput{
		Counterparty: lender,
		Text:         autoMsg,
		Sender:       entity.SenderMe,
		EventKey:     "payment:" + listing.ID,
	})
	if err != nil {
		return nil, err
	}

	base := parsePriceAmount(listing.Price)
	receipt := &PaymentReceipt{
		Reference: newPaymentReference(),
		ListingID: listing.ID,
		Title:     listing.Title,
		Lender:    lender,
		Total:     base + serviceFee + securityDeposit,
		Method:    method,
		PaidAt:    time.Now(),
	}

	logger.Info("Payment %s confirmed for listing %s (%s)", receipt.Reference, listing.ID, listing.Title)
	return receipt, nil
}

func newPaymentReference() string {
	return fmt.Sprintf("PAY-%08d", rand.Intn(100000000))
}
