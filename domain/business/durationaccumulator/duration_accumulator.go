package durationaccumulator

import (
	"fmt"

	dataErrors "bikeshare/domain/errors"
)

// DurationAccumulator struct that collects the durations of a set of trips.
// + Counter: counts the amount of trips collected
// + TotalDuration: sum of durations in seconds
type DurationAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDuration float64 `json:"total_duration"`
}

func NewDurationAccumulator() *DurationAccumulator {
	return &DurationAccumulator{}
}

func (da *DurationAccumulator) UpdateAccumulator(duration float64) {
	da.Counter += 1
	da.TotalDuration += duration
}

func (da *DurationAccumulator) GetTotalDuration() float64 {
	return da.TotalDuration
}

// GetAverageDuration returns the mean duration. Fails with ErrEmptyInput if nothing was collected
func (da *DurationAccumulator) GetAverageDuration() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("[DurationAccumulator] cannot get average duration, counter is zero: %w", dataErrors.ErrEmptyInput)
	}
	return da.TotalDuration / float64(da.Counter), nil
}
