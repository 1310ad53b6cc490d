package middleware

import "github.com/gin-gonic/gin"

// NoStore disables response caching on every route.
func NoStore() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Cache-Control", "no-store")
		c.Next()
	}
}
