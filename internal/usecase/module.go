package usecase

import (
	"go.uber.org/fx"

	"github.com/echocare/echocare/internal/config"
)

// Module provides core business use cases to the fx container.
var Module = fx.Options(
	fx.Provide(NewAuthUseCase),
	fx.Provide(newChatUseCase),
)

type chatParams struct {
	fx.In

	Completer TextCompleter
	Config    *config.Config
}

func newChatUseCase(p chatParams) *ChatUseCase {
	timeout := p.Config.GenerateTimeout
	if timeout < 0 {
		timeout = 0
	}
	return NewChatUseCase(p.Completer, timeout)
}
