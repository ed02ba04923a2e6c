package distanceaccumulator

import (
	"fmt"

	dataErrors "bikeshare/domain/errors"
)

// DistanceAccumulator struct that collects the straight line distance of trips
// + Counter: counts the amount of trips whose distance is known
// + TotalDistance: sum of distances in km
type DistanceAccumulator struct {
	Counter       int     `json:"counter"`
	TotalDistance float64 `json:"total_distance"`
}

func NewDistanceAccumulator() *DistanceAccumulator {
	return &DistanceAccumulator{}
}

func (da *DistanceAccumulator) UpdateAccumulator(newDistance float64) {
	da.Counter += 1
	da.TotalDistance += newDistance
}

func (da *DistanceAccumulator) GetAverageDistance() (float64, error) {
	if da.Counter == 0 {
		return 0, fmt.Errorf("[DistanceAccumulator] cannot get average, counter is zero: %w", dataErrors.ErrEmptyInput)
	}
	return da.TotalDistance / float64(da.Counter), nil
}
