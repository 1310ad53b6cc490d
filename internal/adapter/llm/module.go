package llm

import (
	"log/slog"

	"go.uber.org/fx"

	"github.com/echocare/echocare/internal/config"
)

// Module exposes the completion client implementation to the fx graph.
var Module = fx.Provide(newClient)

type clientParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newClient(p clientParams) (Client, error) {
	return NewHTTPClient(p.Config.GeneratorAddress, p.Logger)
}
