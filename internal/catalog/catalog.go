// Package catalog lists the strategies the scan engine knows about.
package catalog

import (
	"fmt"

	"strategy-scanner/internal/dto"
)

var strategies = []dto.Strategy{
	{ID: "moving-average", Name: "Moving Average"},
	{ID: "rb-knoxville", Name: "Rb Knoxville"},
}

func List() []dto.Strategy {
	out := make([]dto.Strategy, len(strategies))
	copy(out, strategies)
	return out
}

func Find(id string) (dto.Strategy, error) {
	for _, s := range strategies {
		if s.ID == id {
			return s, nil
		}
	}
	return dto.Strategy{}, fmt.Errorf("%w: %s", dto.ErrStrategyNotFound, id)
}
