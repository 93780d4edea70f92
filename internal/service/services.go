package service

import (
	"github.com/atereshkin/staffdir/internal/config"
	"github.com/atereshkin/staffdir/internal/crypto"
	"github.com/atereshkin/staffdir/internal/logger"
	"github.com/atereshkin/staffdir/internal/store"
)

type Services struct {
	AuthService      AuthService
	DirectoryService DirectoryService
}

func NewServices(repositories *store.Repositories, cfg config.App, logger *logger.Logger) *Services {
	hasher := crypto.NewPasswordHasher(cfg.BcryptCost)

	return &Services{
		AuthService:      NewAuthService(repositories.Users, repositories.Departments, hasher, cfg, logger),
		DirectoryService: NewDirectoryService(repositories, logger),
	}
}
