package quicklist

import (
	"strings"
	"testing"

	"strategy-scanner/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForMarket(t *testing.T) {
	tests := []struct {
		name      string
		market    dto.Market
		wantName  string
		wantCount int
		wantFirst string
		wantLast  string
	}{
		{name: "US", market: dto.MarketUS, wantName: "NASDAQ 100", wantCount: 101, wantFirst: "AAPL", wantLast: "ZS"},
		{name: "India", market: dto.MarketIndia, wantName: "NIFTY 50", wantCount: 50, wantFirst: "ADANIENT", wantLast: "WIPRO"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, ok := ForMarket(tt.market)
			require.True(t, ok)
			assert.Equal(t, tt.wantName, list.Name)
			assert.Equal(t, tt.market, list.Market)

			symbols := strings.Split(list.Symbols, ",")
			assert.Len(t, symbols, tt.wantCount)
			assert.Equal(t, tt.wantFirst, symbols[0])
			assert.Equal(t, tt.wantLast, symbols[len(symbols)-1])
			for _, s := range symbols {
				assert.Equal(t, strings.TrimSpace(s), s, "no padding around %q", s)
				assert.NotEmpty(t, s)
			}
		})
	}
}

func TestForMarket_Deterministic(t *testing.T) {
	for _, m := range dto.GetMarketList() {
		first, _ := ForMarket(m)
		first.Symbols = "tampered"

		second, _ := ForMarket(m)
		assert.Equal(t, Symbols(m), second.Symbols)
		assert.NotEqual(t, "tampered", second.Symbols)
	}
	assert.Equal(t, NASDAQ100, Symbols(dto.MarketUS))
	assert.Equal(t, NIFTY50, Symbols(dto.MarketIndia))
}

func TestForMarket_Unknown(t *testing.T) {
	_, ok := ForMarket("EU")
	assert.False(t, ok)
	assert.Empty(t, Symbols("EU"))
}
