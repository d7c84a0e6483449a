package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"strategy-scanner/internal/composer"
	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/repository"
	"strategy-scanner/pkg/logger"
	"strategy-scanner/pkg/utils"
)

type ScanService interface {
	// Relay forwards a raw request body and hands back the engine's answer as is.
	Relay(ctx context.Context, body []byte) (*dto.EngineRelay, error)
	// Scan sends a composed request and decodes the result list.
	Scan(ctx context.Context, req dto.ScanRequest) ([]dto.ScanResult, error)
	// Submit runs one scan for a scanner view and records the outcome on it.
	Submit(ctx context.Context, view *composer.Composer) composer.ScanState
}

type scanService struct {
	log            *logger.Logger
	scanEngineRepo repository.ScanEngineRepository
}

func NewScanService(log *logger.Logger, scanEngineRepo repository.ScanEngineRepository) ScanService {
	return &scanService{
		log:            log,
		scanEngineRepo: scanEngineRepo,
	}
}

func (s *scanService) Relay(ctx context.Context, body []byte) (*dto.EngineRelay, error) {
	relay, err := s.scanEngineRepo.Forward(ctx, body)
	if err != nil {
		s.log.ErrorContext(ctx, "Scan relay failed", logger.ErrorField(err))
		return relay, err
	}
	return relay, nil
}

func (s *scanService) Scan(ctx context.Context, req dto.ScanRequest) ([]dto.ScanResult, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode scan request: %w", err)
	}

	relay, err := s.scanEngineRepo.Forward(ctx, body)
	if err != nil {
		return nil, err
	}

	var results []dto.ScanResult
	if err := json.Unmarshal(relay.Body, &results); err != nil {
		s.log.ErrorContext(ctx, "Failed to decode scan results",
			logger.ErrorField(err),
			logger.StringField("body", utils.Truncate(utils.CleanToValidUTF8(string(relay.Body)), 512)),
		)
		return nil, fmt.Errorf("%w: %v", dto.ErrEngineResponse, err)
	}
	return results, nil
}

func (s *scanService) Submit(ctx context.Context, view *composer.Composer) composer.ScanState {
	sub := view.Begin()

	s.log.InfoContext(ctx, "Submitting scan",
		logger.StringField("strategy", sub.Request.StrategyName),
		logger.StringField("market", string(sub.Request.Market)),
		logger.IntField("symbol_count", len(sub.Request.Symbols)),
		logger.IntField("seq", int(sub.Seq)),
	)

	results, err := s.Scan(ctx, sub.Request)
	if err != nil {
		s.log.ErrorContext(ctx, "Scan failed", logger.ErrorField(err))
		if !view.Fail(sub.Seq, FailureReason(err)) {
			s.log.InfoContext(ctx, "Dropped stale scan failure", logger.IntField("seq", int(sub.Seq)))
		}
		return view.State()
	}

	if !view.Complete(sub.Seq, results) {
		s.log.InfoContext(ctx, "Dropped stale scan response", logger.IntField("seq", int(sub.Seq)))
	}
	return view.State()
}

// FailureReason is the text shown to the user when a whole scan failed.
// Callers must not branch on the status code it mentions.
func FailureReason(err error) string {
	var statusErr *dto.EngineStatusError
	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Scan failed: the scan engine answered with status %d.", statusErr.StatusCode)
	case errors.Is(err, dto.ErrEngineUnavailable):
		return "Scan failed: the scan engine could not be reached."
	case errors.Is(err, dto.ErrEngineResponse):
		return "Scan failed: the scan engine sent a response that could not be read."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Scan failed: the request was cancelled before the engine answered."
	default:
		return "Scan failed: " + err.Error()
	}
}
