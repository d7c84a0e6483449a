// Package composer holds the scanner view's editable state and turns it
// into a scan request.
package composer

import (
	"strings"
	"sync"

	"strategy-scanner/internal/dto"
	"strategy-scanner/internal/quicklist"
)

// Composer is the state of one scanner view. It is safe for concurrent use;
// several submits from the same view may be in flight at once.
type Composer struct {
	mu           sync.Mutex
	symbols      string
	market       dto.Market
	strategyName string

	state      ScanState
	lastSeq    uint64
	appliedSeq uint64
}

// New starts an empty view for strategyName on the US market.
func New(strategyName string) *Composer {
	return &Composer{
		market:       dto.MarketUS,
		strategyName: strategyName,
	}
}

func (c *Composer) StrategyName() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.strategyName
}

func (c *Composer) Market() dto.Market {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.market
}

func (c *Composer) Symbols() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.symbols
}

// SetMarket switches market and always clears the symbol text: quick-lists
// are per market and a list typed for one market must not ride along.
func (c *Composer) SetMarket(market dto.Market) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.market = market
	c.symbols = ""
}

func (c *Composer) SetSymbols(raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.symbols = raw
}

// ApplyQuickList replaces the symbol text with the current market's
// quick-list, regardless of what was typed before.
func (c *Composer) ApplyQuickList() (dto.QuickList, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	list, ok := quicklist.ForMarket(c.market)
	if !ok {
		return dto.QuickList{}, false
	}
	c.symbols = list.Symbols
	return list, true
}

// Compose builds the request from the current state. It never refuses:
// empty or odd symbols are for the engine to judge.
func (c *Composer) Compose() dto.ScanRequest {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.composeLocked()
}

func (c *Composer) composeLocked() dto.ScanRequest {
	return dto.ScanRequest{
		Symbols:      ParseSymbols(c.symbols),
		Market:       c.market,
		StrategyName: c.strategyName,
	}
}

// ParseSymbols splits on commas and trims each element. Empty tokens are
// kept, so " AAPL , msft ,  " gives ["AAPL" "msft" ""].
func ParseSymbols(raw string) []string {
	parts := strings.Split(raw, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// StrategyFromPath returns the last segment of a route path such as
// "/strategies/moving-average". Anything unparsable yields "".
func StrategyFromPath(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return ""
	}
	return path[strings.LastIndex(path, "/")+1:]
}
