package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/server/http/dto"
)

// AuthHandler processes registration, login and logout.
type AuthHandler struct {
	facade AuthFacade
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade) *AuthHandler {
	return &AuthHandler{facade: facade}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeCredentialsRequired})
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeCredentialsRequired})
		case errors.Is(err, domainErrors.ErrAlreadyExists):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeUsernameTaken})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrCodeInternal})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "registered", Token: token, UserID: user.ID})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeCredentialsRequired})
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, domainErrors.ErrMissingCredentials):
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: dto.ErrCodeCredentialsRequired})
		case errors.Is(err, domainErrors.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrCodeInvalidCredentials})
		default:
			c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrCodeInternal})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{Message: "logged_in", Token: token, UserID: user.ID})
}

// Logout handles POST /api/logout. Requires AuthRequired middleware upstream.
func (h *AuthHandler) Logout(c *gin.Context) {
	user := CurrentUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrCodeAuthRequired})
		return
	}

	if err := h.facade.Logout(c.Request.Context(), user.ID); err != nil {
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrCodeInternal})
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logged_out"})
}
