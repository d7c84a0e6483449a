package service

import (
	"fmt"
	"sync"

	"strategy-scanner/internal/composer"
	"strategy-scanner/pkg/cache"
	"strategy-scanner/pkg/common"
)

// SessionService keeps one scanner view per browser session and strategy.
// Views live in the in-memory cache and expire with it; nothing is persisted.
type SessionService interface {
	View(sessionID, strategyID string) *composer.Composer
	Reset(sessionID, strategyID string)
}

type sessionService struct {
	cache cache.Cache
	mu    sync.Mutex
}

func NewSessionService(inmemoryCache cache.Cache) SessionService {
	return &sessionService{cache: inmemoryCache}
}

// View returns the existing view or mounts a fresh one. The strategy name is
// fixed at mount time from strategyID.
func (s *sessionService) View(sessionID, strategyID string) *composer.Composer {
	key := fmt.Sprintf(common.KEY_SCANNER_SESSION, sessionID, strategyID)

	s.mu.Lock()
	defer s.mu.Unlock()

	view, ok := cache.GetAs[*composer.Composer](s.cache, key)
	if !ok {
		view = composer.New(strategyID)
	}
	// re-set on every access to slide the expiration
	s.cache.Set(key, view, cache.DefaultExpiration)
	return view
}

func (s *sessionService) Reset(sessionID, strategyID string) {
	s.cache.Delete(fmt.Sprintf(common.KEY_SCANNER_SESSION, sessionID, strategyID))
}
