package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/echocare/echocare/internal/server/http/handlers"
	"github.com/echocare/echocare/internal/server/http/middleware"
	"github.com/echocare/echocare/internal/web"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.EchoFacade, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.NoStore())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	engine.SetHTMLTemplate(web.Templates())
	engine.StaticFS("/static", web.Static())

	pageHandler := handlers.NewPageHandler()
	authHandler := handlers.NewAuthHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)

	engine.GET("/", pageHandler.Root)
	engine.GET("/login", pageHandler.Login)
	engine.GET("/chat", pageHandler.Chat)

	api := engine.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)

	protected := api.Group("")
	protected.Use(middleware.AuthRequired(facade))
	protected.POST("/logout", authHandler.Logout)
	protected.POST("/chat", chatHandler.Send)

	return engine
}
