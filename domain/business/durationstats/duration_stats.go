package durationstats

import (
	"fmt"
	"math"

	"bikeshare/domain/business/durationaccumulator"
	"bikeshare/domain/entities/trip"
)

const (
	ReportType    = "duration-stats"
	secondsPerDay = 24 * 60 * 60
)

// DurationStats total and mean trip duration
type DurationStats struct {
	TotalTravelTimeSeconds float64 `json:"total_travel_time_seconds"`
	TotalTravelTime        string  `json:"total_travel_time"`
	MeanTravelTimeSeconds  float64 `json:"mean_travel_time_seconds"`
}

func (ds *DurationStats) GetType() string {
	return ReportType
}

// Calculate returns the total duration of the trips, formatted with FormatClock, and their mean
// duration in seconds. Fails with ErrEmptyInput if the collection has no trips, there is no mean of zero trips
func Calculate(trips *trip.Collection) (*DurationStats, error) {
	accumulator := durationaccumulator.NewDurationAccumulator()
	for idx := 0; idx < trips.Len(); idx++ {
		accumulator.UpdateAccumulator(trips.At(idx).Duration)
	}

	mean, err := accumulator.GetAverageDuration()
	if err != nil {
		return nil, fmt.Errorf("[%s] cannot calculate mean travel time: %w", ReportType, err)
	}

	total := accumulator.GetTotalDuration()
	return &DurationStats{
		TotalTravelTimeSeconds: total,
		TotalTravelTime:        FormatClock(total),
		MeanTravelTimeSeconds:  mean,
	}, nil
}

// FormatClock renders an amount of seconds as HH:MM:SS the way a wall clock started at midnight would
// show it: fractions of a second are dropped and the hours wrap every 24 hours, so 90000 seconds
// renders as 01:00:00
func FormatClock(totalSeconds float64) string {
	if totalSeconds < 0 || math.IsNaN(totalSeconds) {
		totalSeconds = 0
	}
	seconds := int64(math.Floor(totalSeconds)) % secondsPerDay
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}
