package model

import "time"

// User represents a registered EchoCare account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Token        *string
	CreatedAt    time.Time
}

// LoggedIn reports whether the user currently holds an active session token.
func (u *User) LoggedIn() bool {
	return u.Token != nil && *u.Token != ""
}
