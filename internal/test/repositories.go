package test

import (
	"context"
	"time"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/domain/model"
)

// UserRepositoryStub stores users in-memory for tests.
type UserRepositoryStub struct {
	Users map[string]*model.User
	ByID  map[int64]*model.User
	Next  int64
	Err   error
}

// NewUserRepositoryStub constructs stub repository with initialized maps.
func NewUserRepositoryStub() *UserRepositoryStub {
	return &UserRepositoryStub{
		Users: make(map[string]*model.User),
		ByID:  make(map[int64]*model.User),
		Next:  1,
	}
}

// Create registers user unless already exists or stub has explicit error.
func (s *UserRepositoryStub) Create(ctx context.Context, username, passwordHash, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if _, exists := s.Users[username]; exists {
		return nil, domainErrors.ErrAlreadyExists
	}
	if s.Next == 0 {
		s.Next = 1
	}
	t := token
	user := &model.User{
		ID:           s.Next,
		Username:     username,
		PasswordHash: passwordHash,
		Token:        &t,
		CreatedAt:    time.Now().UTC(),
	}
	s.Next++
	s.Users[username] = user
	s.ByID[user.ID] = user
	return user, nil
}

// GetByUsername fetches user by username or returns not found.
func (s *UserRepositoryStub) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.Users[username]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// GetByToken fetches the user holding the given token.
func (s *UserRepositoryStub) GetByToken(ctx context.Context, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if token == "" {
		return nil, domainErrors.ErrNotFound
	}
	for _, user := range s.Users {
		if user.Token != nil && *user.Token == token {
			return user, nil
		}
	}
	return nil, domainErrors.ErrNotFound
}

// GetByID fetches user by identifier.
func (s *UserRepositoryStub) GetByID(ctx context.Context, id int64) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if user, ok := s.ByID[id]; ok {
		return user, nil
	}
	return nil, domainErrors.ErrNotFound
}

// UpdateToken overwrites the token field for the given user.
func (s *UserRepositoryStub) UpdateToken(ctx context.Context, userID int64, token *string) error {
	if s.Err != nil {
		return s.Err
	}
	user, ok := s.ByID[userID]
	if !ok {
		return domainErrors.ErrNotFound
	}
	user.Token = token
	return nil
}
