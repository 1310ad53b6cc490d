package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageHandler serves the static login and chat pages. The chat page itself is
// not token-gated; only the API layer enforces authentication and the page
// redirects client-side when no token is stored.
type PageHandler struct{}

// NewPageHandler creates PageHandler instance.
func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Root handles GET / with a redirect to the login page.
func (h *PageHandler) Root(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// Login handles GET /login.
func (h *PageHandler) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

// Chat handles GET /chat.
func (h *PageHandler) Chat(c *gin.Context) {
	c.HTML(http.StatusOK, "chat.html", nil)
}
