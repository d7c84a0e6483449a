package service

import (
	"strategy-scanner/config"
	"strategy-scanner/internal/repository"
	"strategy-scanner/pkg/cache"
	"strategy-scanner/pkg/logger"
)

type Service struct {
	ScanService    ScanService
	SessionService SessionService
	EngineProbe    EngineProbe
}

func NewService(
	cfg *config.Config,
	log *logger.Logger,
	repo *repository.Repository,
	inmemoryCache cache.Cache,
) *Service {
	return &Service{
		ScanService:    NewScanService(log, repo.ScanEngineRepo),
		SessionService: NewSessionService(inmemoryCache),
		EngineProbe:    NewEngineProbe(cfg, log, inmemoryCache, repo.ScanEngineRepo),
	}
}
