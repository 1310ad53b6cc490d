package handlers

import (
	"context"

	"github.com/echocare/echocare/internal/domain/model"
	"github.com/echocare/echocare/internal/server/http/middleware"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, username, password string) (*model.User, string, error)
	Login(ctx context.Context, username, password string) (*model.User, string, error)
	Logout(ctx context.Context, userID int64) error
}

// ChatFacade exposes single-turn reply generation.
type ChatFacade interface {
	Reply(ctx context.Context, message, contextText string) (string, error)
}

// EchoFacade aggregates the full set of operations used across handlers.
type EchoFacade interface {
	AuthFacade
	ChatFacade
	middleware.TokenAuthenticator
}
