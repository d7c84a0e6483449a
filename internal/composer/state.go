package composer

import (
	"strategy-scanner/internal/dto"
)

type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSuccess
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSuccess:
		return "success"
	case PhaseFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ScanState is a tagged variant: Results is only set for PhaseSuccess and
// Reason only for PhaseFailed.
type ScanState struct {
	Phase   Phase
	Results []dto.ScanResult
	Reason  string
}

// Submission ties a composed request to the sequence number its response
// must present when it comes back.
type Submission struct {
	Seq     uint64
	Request dto.ScanRequest
}

// Snapshot is a consistent copy of the view for rendering.
type Snapshot struct {
	StrategyName string
	Market       dto.Market
	Symbols      string
	State        ScanState
}

// Begin composes the request, numbers it and moves the view to loading.
func (c *Composer) Begin() Submission {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lastSeq++
	c.state = ScanState{Phase: PhaseLoading}
	return Submission{Seq: c.lastSeq, Request: c.composeLocked()}
}

// Complete applies results for seq. Responses older than the newest one
// already applied are dropped and false is returned. Results replace the
// previous table wholesale.
func (c *Composer) Complete(seq uint64, results []dto.ScanResult) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.appliedSeq {
		return false
	}
	c.appliedSeq = seq

	copied := make([]dto.ScanResult, len(results))
	copy(copied, results)
	c.state = ScanState{Phase: PhaseSuccess, Results: copied}
	return true
}

// Fail records a whole-request failure for seq, under the same ordering
// rule as Complete.
func (c *Composer) Fail(seq uint64, reason string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq < c.appliedSeq {
		return false
	}
	c.appliedSeq = seq
	c.state = ScanState{Phase: PhaseFailed, Reason: reason}
	return true
}

func (c *Composer) State() ScanState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *Composer) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		StrategyName: c.strategyName,
		Market:       c.market,
		Symbols:      c.symbols,
		State:        c.state,
	}
}
