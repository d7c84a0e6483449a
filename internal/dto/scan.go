package dto

import (
	"encoding/json"
)

type Market string

const (
	MarketUS    Market = "US"
	MarketIndia Market = "India"
)

func GetMarketList() []Market {
	return []Market{
		MarketUS,
		MarketIndia,
	}
}

func (m Market) IsValid() bool {
	for _, known := range GetMarketList() {
		if m == known {
			return true
		}
	}
	return false
}

// Label is the human readable market name used by the market selector.
func (m Market) Label() string {
	switch m {
	case MarketUS:
		return "US Stocks"
	case MarketIndia:
		return "Indian Stocks"
	default:
		return string(m)
	}
}

// ScanRequest is what the scanner view submits and the proxy forwards.
// Symbols are kept as typed: no dedup, no case folding.
type ScanRequest struct {
	Symbols      []string `json:"symbols"`
	Market       Market   `json:"market"`
	StrategyName string   `json:"strategyName"`
}

// ScanResult is one row of the engine's answer. When Error is set the
// signal and numeric fields carry no meaning.
type ScanResult struct {
	Symbol        string   `json:"symbol"`
	BuyCondition  bool     `json:"buyCondition"`
	SellCondition bool     `json:"sellCondition"`
	LastPrice     *float64 `json:"lastPrice,omitempty"`
	MA200         *float64 `json:"MA200,omitempty"`
	MA50          *float64 `json:"MA50,omitempty"`
	MA20          *float64 `json:"MA20,omitempty"`
	Volume        *float64 `json:"volume,omitempty"`
	Date          *string  `json:"date,omitempty"`
	Error         *string  `json:"error,omitempty"`
}

func (r ScanResult) HasError() bool {
	return r.Error != nil
}

// UnmarshalJSON accepts both the contract field names and the snake_case
// names the reference scan engine emits (buy_signal, sell_signal, last_price).
func (r *ScanResult) UnmarshalJSON(data []byte) error {
	type contract ScanResult
	var wire struct {
		contract
		BuySignal  *bool    `json:"buy_signal"`
		SellSignal *bool    `json:"sell_signal"`
		LastPriceS *float64 `json:"last_price"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	*r = ScanResult(wire.contract)
	if wire.BuySignal != nil {
		r.BuyCondition = *wire.BuySignal
	}
	if wire.SellSignal != nil {
		r.SellCondition = *wire.SellSignal
	}
	if r.LastPrice == nil {
		r.LastPrice = wire.LastPriceS
	}
	return nil
}
