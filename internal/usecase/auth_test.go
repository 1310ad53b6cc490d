package usecase

import (
	"context"
	"fmt"
	"testing"

	domainErrors "github.com/echocare/echocare/internal/domain/errors"
	testhelpers "github.com/echocare/echocare/internal/test"
)

func newAuthUseCase() (*AuthUseCase, *testhelpers.UserRepositoryStub) {
	repo := testhelpers.NewUserRepositoryStub()
	return NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.NewTokenSourceStub()), repo
}

func TestAuthUseCaseRegisterSuccess(t *testing.T) {
	uc, repo := newAuthUseCase()

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "alice", "password")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if user.ID == 0 {
		t.Fatal("expected user to have ID assigned")
	}
	if token != "token-1" {
		t.Fatalf("unexpected token %q", token)
	}

	stored, err := repo.GetByUsername(ctx, "alice")
	if err != nil {
		t.Fatalf("expected user in repository: %v", err)
	}
	if stored.PasswordHash != "hash:password" {
		t.Fatalf("password hash not stored: %v", stored.PasswordHash)
	}
	if stored.Token == nil || *stored.Token != token {
		t.Fatal("expected user to be logged in immediately after register")
	}
}

func TestAuthUseCaseRegisterThenAuthenticate(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	_, token, err := uc.Register(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	user, err := uc.Authenticate(ctx, token)
	if err != nil {
		t.Fatalf("authenticate returned error: %v", err)
	}
	if user.Username != "bob" {
		t.Fatalf("expected username bob, got %q", user.Username)
	}
}

func TestAuthUseCaseRegisterDuplicate(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	_, firstToken, err := uc.Register(ctx, "bob", "secret")
	if err != nil {
		t.Fatalf("unexpected error on first register: %v", err)
	}
	if _, _, err := uc.Register(ctx, "bob", "secret"); err != domainErrors.ErrAlreadyExists {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}

	// first registration's session survives the failed duplicate
	if _, err := uc.Authenticate(ctx, firstToken); err != nil {
		t.Fatalf("expected first token to stay valid: %v", err)
	}
}

func TestAuthUseCaseRegisterValidation(t *testing.T) {
	uc, _ := newAuthUseCase()
	cases := []struct {
		name               string
		username, password string
	}{
		{"empty username", "", "password"},
		{"empty password", "user", ""},
		{"blank username", "   ", "password"},
		{"blank password", "user", "   "},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := uc.Register(context.Background(), tc.username, tc.password); err != domainErrors.ErrMissingCredentials {
				t.Fatalf("expected missing credentials error, got %v", err)
			}
		})
	}
}

func TestAuthUseCaseLoginIssuesFreshToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	_, registerToken, err := uc.Register(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, loginToken, err := uc.Login(ctx, "carol", "123456")
	if err != nil {
		t.Fatalf("login returned error: %v", err)
	}
	if loginToken == registerToken {
		t.Fatal("expected login to issue a fresh token")
	}

	// prior session is invalidated the moment a new token is stored
	if _, err := uc.Authenticate(ctx, registerToken); err != domainErrors.ErrInvalidToken {
		t.Fatalf("expected old token to be invalid, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, loginToken); err != nil {
		t.Fatalf("expected new token to be valid: %v", err)
	}
}

func TestAuthUseCaseLoginUniformFailure(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	if _, _, err := uc.Register(ctx, "dave", "right"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, _, wrongPassword := uc.Login(ctx, "dave", "wrong")
	_, _, unknownUser := uc.Login(ctx, "nobody", "whatever")

	if wrongPassword != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for wrong password, got %v", wrongPassword)
	}
	if unknownUser != domainErrors.ErrInvalidCredentials {
		t.Fatalf("expected invalid credentials for unknown user, got %v", unknownUser)
	}
	if wrongPassword != unknownUser {
		t.Fatal("expected both failure modes to be indistinguishable")
	}
}

func TestAuthUseCaseLoginValidation(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, _, err := uc.Login(context.Background(), "", "pass"); err != domainErrors.ErrMissingCredentials {
		t.Fatalf("expected missing credentials error, got %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "user", ""); err != domainErrors.ErrMissingCredentials {
		t.Fatalf("expected missing credentials error, got %v", err)
	}
}

func TestAuthUseCaseLogoutInvalidatesToken(t *testing.T) {
	uc, _ := newAuthUseCase()

	ctx := context.Background()
	user, token, err := uc.Register(ctx, "erin", "pw")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if err := uc.Logout(ctx, user.ID); err != nil {
		t.Fatalf("logout returned error: %v", err)
	}
	if _, err := uc.Authenticate(ctx, token); err != domainErrors.ErrInvalidToken {
		t.Fatalf("expected invalid token after logout, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateEmptyToken(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, err := uc.Authenticate(context.Background(), ""); err != domainErrors.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseAuthenticateUnknownToken(t *testing.T) {
	uc, _ := newAuthUseCase()
	if _, err := uc.Authenticate(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef"); err != domainErrors.ErrInvalidToken {
		t.Fatalf("expected invalid token error, got %v", err)
	}
}

func TestAuthUseCaseRegisterHasherError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{HashFn: func(string) (string, error) {
		return "", fmt.Errorf("hash error")
	}}, testhelpers.NewTokenSourceStub())
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected hashing error")
	}
}

func TestAuthUseCaseRegisterTokenSourceError(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	tokens := &testhelpers.TokenSourceStub{NewFn: func() (string, error) {
		return "", fmt.Errorf("entropy exhausted")
	}}
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, tokens)
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err == nil {
		t.Fatal("expected token source error")
	}
}

func TestAuthUseCaseRepositoryErrorPropagation(t *testing.T) {
	repo := testhelpers.NewUserRepositoryStub()
	uc := NewAuthUseCase(repo, testhelpers.HasherStub{}, testhelpers.NewTokenSourceStub())
	if _, _, err := uc.Register(context.Background(), "user", "pass"); err != nil {
		t.Fatalf("register returned error: %v", err)
	}

	repo.Err = fmt.Errorf("storage unavailable")
	if _, _, err := uc.Login(context.Background(), "user", "pass"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
	if _, err := uc.Authenticate(context.Background(), "token-1"); err == nil || err.Error() != "storage unavailable" {
		t.Fatalf("expected repository error, got %v", err)
	}
}

func TestAuthUseCaseTrimsCredentials(t *testing.T) {
	uc, repo := newAuthUseCase()
	if _, _, err := uc.Register(context.Background(), "  user  ", "  pass  "); err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	if _, err := repo.GetByUsername(context.Background(), "user"); err != nil {
		t.Fatalf("expected trimmed username to be stored: %v", err)
	}
	if _, _, err := uc.Login(context.Background(), "  user  ", "  pass  "); err != nil {
		t.Fatalf("login returned error: %v", err)
	}
}

func TestAuthUseCaseGetByID(t *testing.T) {
	uc, _ := newAuthUseCase()
	user, _, err := uc.Register(context.Background(), "frank", "pwd")
	if err != nil {
		t.Fatalf("register returned error: %v", err)
	}
	fetched, err := uc.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("get by id returned error: %v", err)
	}
	if fetched.Username != user.Username {
		t.Fatalf("expected username %q, got %q", user.Username, fetched.Username)
	}
}
