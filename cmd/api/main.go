package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"lendr/internal/adapter/api"
	"lendr/internal/adapter/api/handler"
	"lendr/internal/adapter/api/router"
	"lendr/internal/adapter/repository"
	"lendr/internal/domain/entity"
	domainrepo "lendr/internal/domain/repository"
	"lendr/internal/infrastructure/websocket"
	"lendr/internal/usecase"
	"lendr/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	var seedListings []*entity.Listing
	var seedChats []*entity.ChatSession
	if cfg.SeedData {
		seedListings = repository.SeedListings()
		seedChats = repository.SeedChatSessions()
	}

	listingRepo := repository.NewMemoryListingRepository(seedListings)
	chatRepo := repository.NewMemoryChatRepository(seedChats)

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	listingUseCase := usecase.NewListingUseCase(listingRepo)
	chatUseCase := usecase.NewChatUseCase(chatRepo)
	paymentUseCase := usecase.NewPaymentUseCase(listingRepo, chatUseCase)

	handler.Setup(listingUseCase, chatUseCase, paymentUseCase)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	router.Setup(e)

	wsHandler := handler.NewWebSocketHandler(wsManager)
	router.SetupWebSocketRouter(e, wsHandler)

	// Bridge store change feeds onto the WebSocket fan-out so connected
	// clients refresh on push instead of re-reading on focus.
	for _, events := range []<-chan domainrepo.Event{listingRepo.Watch(ctx), chatRepo.Watch(ctx)} {
		go func(events <-chan domainrepo.Event) {
			for event := range events {
				payload, err := json.Marshal(event)
				if err != nil {
					continue
				}
				wsManager.Broadcast(payload)
			}
		}(events)
	}

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
