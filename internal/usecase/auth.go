package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/domain/model"
	"github.com/echocare/echocare/internal/domain/repository"
	pkgAuth "github.com/echocare/echocare/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and session token management. Tokens are
// opaque random values stored on the user row; a user holds at most one live
// token at a time.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens pkgAuth.TokenSource
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, tokens pkgAuth.TokenSource) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a new user and logs it in immediately, returning the
// issued session token.
func (u *AuthUseCase) Register(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrMissingCredentials
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.NewToken()
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, username, hash, token)
	if err != nil {
		return nil, "", err
	}

	return usr, token, nil
}

// Login validates credentials and issues a fresh token, invalidating any
// previously issued one. Unknown username and wrong password are deliberately
// indistinguishable to the caller.
func (u *AuthUseCase) Login(ctx context.Context, username, password string) (*model.User, string, error) {
	username = strings.TrimSpace(username)
	password = strings.TrimSpace(password)
	if username == "" || password == "" {
		return nil, "", domainErrors.ErrMissingCredentials
	}

	usr, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.NewToken()
	if err != nil {
		return nil, "", err
	}

	if err := u.users.UpdateToken(ctx, usr.ID, &token); err != nil {
		return nil, "", err
	}

	usr.Token = &token
	return usr, token, nil
}

// Logout clears the user's session token. The old token value stops
// authenticating as soon as the row is updated.
func (u *AuthUseCase) Logout(ctx context.Context, userID int64) error {
	return u.users.UpdateToken(ctx, userID, nil)
}

// Authenticate resolves a bearer token to the user holding it.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if token == "" {
		return nil, domainErrors.ErrInvalidToken
	}
	usr, err := u.users.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidToken
		}
		return nil, err
	}
	return usr, nil
}

// GetByID fetches user by identifier.
func (u *AuthUseCase) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return u.users.GetByID(ctx, id)
}
