package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/domain/model"
	"github.com/echocare/echocare/internal/server/http/dto"
)

// UserContextKey is a gin context key for the authenticated user.
const UserContextKey = "user"

// TokenAuthenticator resolves a bearer token to a user.
type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired ensures the request carries a valid session token before the
// handler runs. The token comes from the Authorization header, or from a
// `token` field in a JSON body as a fallback.
func AuthRequired(auth TokenAuthenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrCodeAuthRequired})
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if errors.Is(err, domainErrors.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: dto.ErrCodeInvalidToken})
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{Error: dto.ErrCodeInternal})
			return
		}

		c.Set(UserContextKey, user)
		c.Next()
	}
}

func extractToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return tokenFromBody(c)
}

// tokenFromBody reads a `token` field from a JSON body, restoring the body so
// the handler can still bind it.
func tokenFromBody(c *gin.Context) string {
	if c.Request.Body == nil {
		return ""
	}
	if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
		return ""
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		return ""
	}
	c.Request.Body = io.NopCloser(bytes.NewReader(body))

	var payload struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return payload.Token
}
