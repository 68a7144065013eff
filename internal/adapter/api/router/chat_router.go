package router

import (
	"github.com/labstack/echo/v4"

	"lendr/internal/adapter/api/handler"
	"lendr/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo) {
	chatHandler := handler.GetChatHandler()

	chats := e.Group("/v1/chats")
	chats.Use(middleware.GeneralRateLimit())
	chats.GET("", chatHandler.ListSessions)
	chats.POST("", chatHandler.OpenChat)
	chats.GET("/:id", chatHandler.GetSession)
	chats.POST("/:id/messages", chatHandler.SendMessage)
	chats.POST("/:id/read", chatHandler.MarkSessionRead)
}
