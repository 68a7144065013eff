package handler

import (
	"github.com/labstack/echo/v4"

	"lendr/internal/usecase"
	"lendr/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

type openChatRequest struct {
	Counterparty string `json:"counterparty" validate:"required"`
}

type sendMessageRequest struct {
	Text   string `json:"text" validate:"required"`
	Sender string `json:"sender" validate:"omitempty,oneof=me them"`
}

// OpenChat returns the session for a counterparty, creating it on first
// contact.
func (h *ChatHandler) OpenChat(c echo.Context) error {
	var req openChatRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.chatUseCase.GetOrCreateSession(c.Request().Context(), req.Counterparty)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, session)
}

func (h *ChatHandler) GetSession(c echo.Context) error {
	session, err := h.chatUseCase.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, session)
}

func (h *ChatHandler) ListSessions(c echo.Context) error {
	sessions, err := h.chatUseCase.ListSessions(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, sessions)
}

func (h *ChatHandler) SendMessage(c echo.Context) error {
	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	session, err := h.chatUseCase.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	_, message, err := h.chatUseCase.SendMessage(c.Request().Context(), usecase.SendMessageInput{
		Counterparty: session.Counterparty,
		Text:         req.Text,
		Sender:       req.Sender,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, message)
}

func (h *ChatHandler) MarkSessionRead(c echo.Context) error {
	if err := h.chatUseCase.MarkSessionRead(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Session marked as read",
	})
}
