package handler

import (
	"lendr/internal/usecase"
)

var (
	listingHandler *ListingHandler
	chatHandler    *ChatHandler
	paymentHandler *PaymentHandler
)

func Setup(
	listingUseCase *usecase.ListingUseCase,
	chatUseCase *usecase.ChatUseCase,
	paymentUseCase *usecase.PaymentUseCase,
) {
	listingHandler = NewListingHandler(listingUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	paymentHandler = NewPaymentHandler(paymentUseCase)
}

func GetListingHandler() *ListingHandler {
	return listingHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetPaymentHandler() *PaymentHandler {
	return paymentHandler
}
