package app

import (
	"context"

	"github.com/echocare/echocare/internal/domain/model"
	"github.com/echocare/echocare/internal/usecase"
)

// EchoFacade aggregates the auth and chat use cases behind the surface the
// HTTP layer consumes.
type EchoFacade struct {
	auth *usecase.AuthUseCase
	chat *usecase.ChatUseCase
}

// NewEchoFacade constructs EchoFacade.
func NewEchoFacade(auth *usecase.AuthUseCase, chat *usecase.ChatUseCase) *EchoFacade {
	return &EchoFacade{auth: auth, chat: chat}
}

func (f *EchoFacade) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Register(ctx, username, password)
}

func (f *EchoFacade) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	return f.auth.Login(ctx, username, password)
}

func (f *EchoFacade) Logout(ctx context.Context, userID int64) error {
	return f.auth.Logout(ctx, userID)
}

func (f *EchoFacade) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return f.auth.Authenticate(ctx, token)
}

func (f *EchoFacade) Reply(ctx context.Context, message, contextText string) (string, error) {
	return f.chat.Reply(ctx, message, contextText)
}
