package repository

import (
	"context"

	"github.com/echocare/echocare/internal/domain/model"
)

// UserRepository describes persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash, token string) (*model.User, error)
	GetByUsername(ctx context.Context, username string) (*model.User, error)
	GetByToken(ctx context.Context, token string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	UpdateToken(ctx context.Context, userID int64, token *string) error
}
