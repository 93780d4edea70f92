package handler

import (
	"github.com/atereshkin/staffdir/internal/config"
	"github.com/atereshkin/staffdir/internal/handler/http"
	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
