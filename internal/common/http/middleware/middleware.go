package middleware

import (
	"github.com/atlasledger/go-bank-recon/internal/config"
	"github.com/atlasledger/go-bank-recon/internal/repositories"
)

type AppMiddleware struct {
	conf      config.Config
	cacheRepo repositories.CacheRepository
}

func NewMiddleware(
	conf config.Config,
	cacheRepo repositories.CacheRepository) AppMiddleware {
	return AppMiddleware{
		conf:      conf,
		cacheRepo: cacheRepo,
	}
}
