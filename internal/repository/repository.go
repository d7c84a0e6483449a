package repository

import (
	"strategy-scanner/config"
	"strategy-scanner/pkg/logger"
)

type Repository struct {
	ScanEngineRepo ScanEngineRepository
}

func NewRepository(cfg *config.Config, log *logger.Logger) *Repository {
	return &Repository{
		ScanEngineRepo: NewScanEngineRepository(cfg, log),
	}
}
