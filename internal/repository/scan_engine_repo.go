package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"strategy-scanner/config"
	"strategy-scanner/internal/dto"
	"strategy-scanner/pkg/httpclient"
	"strategy-scanner/pkg/logger"
	"strategy-scanner/pkg/ratelimit"
	"strategy-scanner/pkg/utils"
)

type ScanEngineRepository interface {
	// Forward posts body to the engine unchanged. A non-2xx answer returns
	// both the relay and an *dto.EngineStatusError.
	Forward(ctx context.Context, body []byte) (*dto.EngineRelay, error)
	// Probe reports whether the engine answers HTTP at all.
	Probe(ctx context.Context) error
}

type scanEngineRepository struct {
	cfg          *config.Config
	log          *logger.Logger
	httpClient   httpclient.HTTPClient
	symbolBudget *ratelimit.TokenLimiter
}

func NewScanEngineRepository(cfg *config.Config, log *logger.Logger) ScanEngineRepository {
	return newScanEngineRepository(cfg, log, httpclient.New(log, cfg.ScanEngine.BaseURL, cfg.ScanEngine.Timeout))
}

func newScanEngineRepository(cfg *config.Config, log *logger.Logger, client httpclient.HTTPClient) *scanEngineRepository {
	return &scanEngineRepository{
		cfg:          cfg,
		log:          log,
		httpClient:   client,
		symbolBudget: ratelimit.NewTokenLimiter(cfg.ScanEngine.MaxSymbolsPerMin),
	}
}

func (r *scanEngineRepository) Forward(ctx context.Context, body []byte) (*dto.EngineRelay, error) {
	symbols := countSymbols(body)
	if err := r.symbolBudget.Wait(ctx, symbols); err != nil {
		return nil, fmt.Errorf("waiting for scan engine budget: %w", err)
	}

	r.log.DebugContext(ctx, "Forwarding scan to engine",
		logger.StringField("url", r.cfg.ScanEngine.ScanURL()),
		logger.IntField("symbol_count", symbols),
	)

	resp, err := r.httpClient.Post(ctx, r.cfg.ScanEngine.ScanPath, body, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", dto.ErrEngineUnavailable, err)
	}

	relay := &dto.EngineRelay{
		StatusCode:  resp.StatusCode,
		ContentType: resp.Headers.Get("Content-Type"),
		Body:        resp.Body,
	}

	if !resp.IsSuccess() {
		r.log.ErrorContext(ctx, "Scan engine returned Non-OK status",
			logger.IntField("status_code", resp.StatusCode),
			logger.StringField("body", utils.Truncate(utils.CleanToValidUTF8(string(resp.Body)), 512)),
		)
		return relay, &dto.EngineStatusError{StatusCode: resp.StatusCode, Body: resp.Body}
	}

	return relay, nil
}

func (r *scanEngineRepository) Probe(ctx context.Context) error {
	if _, err := r.httpClient.Get(ctx, "/", nil, nil, nil); err != nil {
		return fmt.Errorf("%w: %v", dto.ErrEngineUnavailable, err)
	}
	return nil
}

// countSymbols peeks at the body for the budget only; the body itself is
// forwarded byte for byte whatever this returns.
func countSymbols(body []byte) int {
	var peek struct {
		Symbols []json.RawMessage `json:"symbols"`
	}
	if err := json.Unmarshal(body, &peek); err != nil || len(peek.Symbols) == 0 {
		return 1
	}
	return len(peek.Symbols)
}
