package http

import (
	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/service"
	"github.com/atereshkin/staffdir/internal/utils"
)

type Handler struct {
	services *service.Services

	uuidGenerator *utils.UUIDGenerator
	logger        *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:      services,
		uuidGenerator: utils.NewUUIDGenerator(),
		logger:        logger,
	}
}
