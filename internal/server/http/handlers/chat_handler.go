package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/server/http/dto"
)

// ChatHandler turns a user message into a generated reply.
type ChatHandler struct {
	facade ChatFacade
}

// NewChatHandler creates ChatHandler instance.
func NewChatHandler(facade ChatFacade) *ChatHandler {
	return &ChatHandler{facade: facade}
}

// Send handles POST /api/chat. Requires AuthRequired middleware upstream.
func (h *ChatHandler) Send(c *gin.Context) {
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeMessageRequired})
		return
	}

	reply, err := h.facade.Reply(c.Request.Context(), req.Message, req.Context)
	if err != nil {
		if errors.Is(err, domainErrors.ErrEmptyMessage) {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeMessageRequired})
			return
		}
		c.JSON(http.StatusBadGateway, dto.ErrorResponse{Error: dto.ErrCodeGenerationFailed})
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: reply})
}
