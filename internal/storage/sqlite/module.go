package sqlite

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/echocare/echocare/internal/config"
	"github.com/echocare/echocare/internal/domain/repository"
)

// Module wires SQLite storage and repository adapters.
var Module = fx.Options(
	fx.Provide(newStorage),
	fx.Provide(func(s *Storage) repository.UserRepository { return s.Users() }),
	fx.Invoke(registerLifecycle),
)

type storageParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

func newStorage(p storageParams) (*Storage, error) {
	return New(p.Config.DatabasePath, p.Logger)
}

func registerLifecycle(lc fx.Lifecycle, storage *Storage) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			storage.Close()
			return nil
		},
	})
}
