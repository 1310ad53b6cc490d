package test

import (
	"context"

	"github.com/echocare/echocare/internal/domain/model"
)

// AuthFacadeStub provides controllable behaviour for auth endpoints.
type AuthFacadeStub struct {
	RegisterFn     func(context.Context, string, string) (*model.User, string, error)
	LoginFn        func(context.Context, string, string) (*model.User, string, error)
	LogoutFn       func(context.Context, int64) error
	AuthenticateFn func(context.Context, string) (*model.User, error)
}

// Register delegates to provided function or returns a default user.
func (s AuthFacadeStub) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "token", nil
}

// Login delegates to provided function or returns a default user.
func (s AuthFacadeStub) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	if s.LoginFn != nil {
		return s.LoginFn(ctx, username, password)
	}
	return &model.User{ID: 1, Username: username}, "token", nil
}

// Logout delegates to provided function.
func (s AuthFacadeStub) Logout(ctx context.Context, userID int64) error {
	if s.LogoutFn != nil {
		return s.LogoutFn(ctx, userID)
	}
	return nil
}

// Authenticate delegates to provided function or returns a default user.
func (s AuthFacadeStub) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, token)
	}
	return &model.User{ID: 1, Username: "user", Token: &token}, nil
}

// ChatFacadeStub simulates reply generation.
type ChatFacadeStub struct {
	ReplyFn func(context.Context, string, string) (string, error)
}

// Reply returns configured reply or a fixed response.
func (s ChatFacadeStub) Reply(ctx context.Context, message, contextText string) (string, error) {
	if s.ReplyFn != nil {
		return s.ReplyFn(ctx, message, contextText)
	}
	return "I'm here and listening.", nil
}

// EchoFacadeStub aggregates all facade stubs for router level tests.
type EchoFacadeStub struct {
	AuthFacadeStub
	ChatFacadeStub
}

// CompleterStub returns canned completions for chat use case tests.
type CompleterStub struct {
	CompleteFn func(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error)
	Output     string
	Err        error
}

// Complete delegates to provided function or returns configured output.
func (s CompleterStub) Complete(ctx context.Context, prompt string, maxTokens int, temperature float64) (string, error) {
	if s.CompleteFn != nil {
		return s.CompleteFn(ctx, prompt, maxTokens, temperature)
	}
	if s.Err != nil {
		return "", s.Err
	}
	return s.Output, nil
}
