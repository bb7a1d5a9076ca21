package setup

import (
	"context"
	"fmt"

	"github.com/itchan-dev/forum/backend/internal/handler"
	"github.com/itchan-dev/forum/backend/internal/service"
	"github.com/itchan-dev/forum/backend/internal/storage/memory"
	"github.com/itchan-dev/forum/backend/internal/storage/pg"
	"github.com/itchan-dev/forum/shared/config"
	"github.com/itchan-dev/forum/shared/domain"
	jwt_internal "github.com/itchan-dev/forum/shared/jwt"
	"github.com/itchan-dev/forum/shared/logger"
	mw "github.com/itchan-dev/forum/shared/middleware"
)

// Storage is what a storage driver must provide to back the forum.
type Storage interface {
	service.ThreadStorage
	service.CommentStorage
	service.ReplyStorage
	handler.HealthChecker
	Cleanup() error
}

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        Storage
	Handler        *handler.Handler
	Jwt            jwt_internal.JwtService
	AuthMiddleware *mw.Auth
}

func newStorage(ctx context.Context, cfg *config.Config) (Storage, error) {
	switch cfg.Public.StorageDriver {
	case config.DriverPostgres:
		storage, err := pg.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return storage, nil
	case config.DriverMemory:
		logger.Log.Warn("using in-memory storage, data is lost on restart")
		storage := memory.New()
		for _, u := range cfg.Public.MemoryUsers {
			storage.AddUser(domain.User{Id: u.Id, Username: u.Username})
		}
		return storage, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Public.StorageDriver)
	}
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(ctx context.Context, cfg *config.Config) (*Dependencies, error) {
	storage, err := newStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	jwt := jwt_internal.New(cfg.JwtKey(), cfg.JwtTTL())

	thread := service.NewThread(storage, storage, storage, cfg.Public)
	comment := service.NewComment(storage, storage)
	reply := service.NewReply(storage, storage)

	h := handler.New(thread, comment, reply, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            jwt,
		AuthMiddleware: mw.NewAuth(jwt),
	}, nil
}
