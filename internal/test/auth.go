package test

import (
	"context"
	"fmt"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	"github.com/echocare/echocare/internal/domain/model"
)

// HasherStub hashes deterministically unless overridden.
type HasherStub struct {
	HashFn    func(password string) (string, error)
	CompareFn func(hash, password string) error
}

// Hash returns a predictable hash for assertions.
func (s HasherStub) Hash(password string) (string, error) {
	if s.HashFn != nil {
		return s.HashFn(password)
	}
	return "hash:" + password, nil
}

// Compare validates against the predictable hash format.
func (s HasherStub) Compare(hash, password string) error {
	if s.CompareFn != nil {
		return s.CompareFn(hash, password)
	}
	if hash != "hash:"+password {
		return fmt.Errorf("hash mismatch")
	}
	return nil
}

// TokenSourceStub issues sequential tokens unless overridden.
type TokenSourceStub struct {
	NewFn func() (string, error)
	next  *int
}

// NewTokenSourceStub constructs a stub issuing token-1, token-2, ...
func NewTokenSourceStub() *TokenSourceStub {
	n := 0
	return &TokenSourceStub{next: &n}
}

// NewToken returns the next sequential token.
func (s *TokenSourceStub) NewToken() (string, error) {
	if s.NewFn != nil {
		return s.NewFn()
	}
	if s.next == nil {
		n := 0
		s.next = &n
	}
	*s.next++
	return fmt.Sprintf("token-%d", *s.next), nil
}

// TokenAuthenticatorStub resolves tokens for middleware tests.
type TokenAuthenticatorStub struct {
	User *model.User
	Err  error
}

// Authenticate returns the configured user or error.
func (s TokenAuthenticatorStub) Authenticate(ctx context.Context, token string) (*model.User, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	if s.User != nil {
		return s.User, nil
	}
	return nil, domainErrors.ErrInvalidToken
}
