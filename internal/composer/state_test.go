package composer

import (
	"testing"

	"strategy-scanner/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rows(symbols ...string) []dto.ScanResult {
	out := make([]dto.ScanResult, len(symbols))
	for i, s := range symbols {
		out[i] = dto.ScanResult{Symbol: s}
	}
	return out
}

func TestComposer_InitialStateIsIdle(t *testing.T) {
	c := New("moving-average")
	assert.Equal(t, PhaseIdle, c.State().Phase)
	assert.Empty(t, c.State().Results)
}

func TestComposer_BeginMovesToLoading(t *testing.T) {
	c := New("moving-average")
	c.SetSymbols("AAPL")

	sub := c.Begin()

	assert.Equal(t, uint64(1), sub.Seq)
	assert.Equal(t, []string{"AAPL"}, sub.Request.Symbols)
	assert.Equal(t, PhaseLoading, c.State().Phase)
}

func TestComposer_CompleteReplacesResults(t *testing.T) {
	c := New("moving-average")

	first := c.Begin()
	require.True(t, c.Complete(first.Seq, rows("AAPL", "MSFT")))

	second := c.Begin()
	require.True(t, c.Complete(second.Seq, rows("TSLA")))

	state := c.State()
	assert.Equal(t, PhaseSuccess, state.Phase)
	assert.Equal(t, rows("TSLA"), state.Results)
}

func TestComposer_StaleResponseIsDropped(t *testing.T) {
	c := New("moving-average")

	slow := c.Begin()
	fast := c.Begin()

	require.True(t, c.Complete(fast.Seq, rows("NEW")))
	assert.False(t, c.Complete(slow.Seq, rows("OLD")))
	assert.False(t, c.Fail(slow.Seq, "timeout"))

	assert.Equal(t, rows("NEW"), c.State().Results)
}

func TestComposer_OlderResponseFirstIsStillShown(t *testing.T) {
	c := New("moving-average")

	slow := c.Begin()
	fast := c.Begin()

	require.True(t, c.Complete(slow.Seq, rows("OLD")))
	require.True(t, c.Complete(fast.Seq, rows("NEW")))

	assert.Equal(t, rows("NEW"), c.State().Results)
}

func TestComposer_FailIsVisible(t *testing.T) {
	c := New("moving-average")
	ok := c.Begin()
	require.True(t, c.Complete(ok.Seq, rows("AAPL")))

	bad := c.Begin()
	require.True(t, c.Fail(bad.Seq, "scan engine unavailable"))

	state := c.State()
	assert.Equal(t, PhaseFailed, state.Phase)
	assert.Equal(t, "scan engine unavailable", state.Reason)
	assert.Empty(t, state.Results)
}

func TestComposer_CompleteCopiesResults(t *testing.T) {
	c := New("moving-average")
	sub := c.Begin()
	in := rows("AAPL")
	c.Complete(sub.Seq, in)

	in[0].Symbol = "CHANGED"
	assert.Equal(t, "AAPL", c.State().Results[0].Symbol)
}

func TestComposer_Snapshot(t *testing.T) {
	c := New("rb-knoxville")
	c.SetMarket(dto.MarketIndia)
	c.SetSymbols("TCS")

	snap := c.Snapshot()
	assert.Equal(t, "rb-knoxville", snap.StrategyName)
	assert.Equal(t, dto.MarketIndia, snap.Market)
	assert.Equal(t, "TCS", snap.Symbols)
	assert.Equal(t, PhaseIdle, snap.State.Phase)
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "idle", PhaseIdle.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "unknown", Phase(42).String())
}
