package dto

// AuthRequest describes username/password payload.
type AuthRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned by register and login. Field order is the wire
// order.
type AuthResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  int64  `json:"user_id"`
}

// MessageResponse carries a bare status message.
type MessageResponse struct {
	Message string `json:"message"`
}
