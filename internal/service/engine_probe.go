package service

import (
	"context"
	"fmt"
	"time"

	"strategy-scanner/config"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/repository"
	"strategy-scanner/pkg/cache"
	"strategy-scanner/pkg/common"
	"strategy-scanner/pkg/logger"

	"github.com/robfig/cron/v3"
)

// EngineProbe periodically checks that the scan engine answers HTTP and keeps
// the last result for the health endpoint. It never blocks scans.
type EngineProbe interface {
	Start(ctx context.Context) error
	Stop()
	Check(ctx context.Context) dto.EngineHealth
	Status() dto.EngineHealth
}

type engineProbe struct {
	cfg            *config.Config
	log            *logger.Logger
	cache          cache.Cache
	scanEngineRepo repository.ScanEngineRepository
	cron           *cron.Cron
	now            func() time.Time
}

func NewEngineProbe(cfg *config.Config, log *logger.Logger, inmemoryCache cache.Cache, scanEngineRepo repository.ScanEngineRepository) EngineProbe {
	return &engineProbe{
		cfg:            cfg,
		log:            log.Named("engine_probe"),
		cache:          inmemoryCache,
		scanEngineRepo: scanEngineRepo,
		cron:           cron.New(),
		now:            time.Now,
	}
}

// Start schedules the probe on scan_engine.probe_cron and runs it once right
// away. An empty schedule disables the probe.
func (p *engineProbe) Start(ctx context.Context) error {
	schedule := p.cfg.ScanEngine.ProbeCron
	if schedule == "" {
		p.log.Info("Scan engine probe disabled")
		return nil
	}

	if _, err := p.cron.AddFunc(schedule, func() {
		p.Check(ctx)
	}); err != nil {
		return fmt.Errorf("invalid probe schedule %q: %w", schedule, err)
	}

	p.Check(ctx)
	p.cron.Start()
	p.log.Info("Scan engine probe started", logger.StringField("schedule", schedule))
	return nil
}

func (p *engineProbe) Stop() {
	<-p.cron.Stop().Done()
}

func (p *engineProbe) Check(ctx context.Context) dto.EngineHealth {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	health := dto.EngineHealth{Checked: true, Reachable: true, CheckedAt: p.now()}
	if err := p.scanEngineRepo.Probe(ctx); err != nil {
		health.Reachable = false
		health.Error = err.Error()
		p.log.WarnContext(ctx, "Scan engine is not reachable",
			logger.StringField("url", p.cfg.ScanEngine.BaseURL),
			logger.ErrorField(err),
		)
	}

	p.cache.Set(common.KEY_ENGINE_HEALTH, health, cache.NoExpiration)
	return health
}

func (p *engineProbe) Status() dto.EngineHealth {
	health, _ := cache.GetAs[dto.EngineHealth](p.cache, common.KEY_ENGINE_HEALTH)
	return health
}
