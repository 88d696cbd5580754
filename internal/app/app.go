package app

import (
	"cardroom_backend/internal/config"
	"cardroom_backend/pkg/logger"
	"context"
	"net/http"
)

type App struct {
	ServiceProvider *ServiceProvider
}

func NewApp() *App {
	return &App{}
}

func (s *App) initServiceProvider() {
	s.ServiceProvider = newServiceProvider()
}

func (s *App) Run() error {
	envErr := config.Load(".env")
	s.initServiceProvider()

	if err := logger.Init(s.ServiceProvider.LogCfg().Level()); err != nil {
		return err
	}
	defer logger.Sync()

	if envErr != nil {
		logger.Warnw("error loading .env file", "error", envErr)
	}

	ctx := context.Background()
	r := s.ServiceProvider.Router(ctx)

	addr := s.ServiceProvider.HTTPCfg().Address()
	logger.Infow("starting server", "address", addr, "storage", s.ServiceProvider.StorageCfg().Driver())
	err := http.ListenAndServe(addr, r)
	if err != nil {
		logger.Errorw("server stopped", "error", err)
	}
	return err
}
