package di

import (
	"go.uber.org/fx"

	"github.com/echocare/echocare/internal/adapter/llm"
	"github.com/echocare/echocare/internal/app"
	"github.com/echocare/echocare/internal/config"
	"github.com/echocare/echocare/internal/logger"
	"github.com/echocare/echocare/internal/pkg/auth"
	"github.com/echocare/echocare/internal/server/http/handlers"
	"github.com/echocare/echocare/internal/server/http/router"
	"github.com/echocare/echocare/internal/storage/sqlite"
	"github.com/echocare/echocare/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		sqlite.Module,
		llm.Module,
		fx.Provide(func(client llm.Client) usecase.TextCompleter { return client }),
		usecase.Module,
		fx.Provide(func(f *app.EchoFacade) handlers.EchoFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
