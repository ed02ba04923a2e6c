package timestats

import (
	"fmt"

	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const ReportType = "time-stats"

// TimeStats most frequent times of travel. Ties are won by the value that appears first in the collection
type TimeStats struct {
	MostCommonMonth          string `json:"most_common_month"`
	MostCommonMonthCount     int    `json:"most_common_month_count"`
	MostCommonDay            string `json:"most_common_day"`
	MostCommonDayCount       int    `json:"most_common_day_count"`
	MostCommonStartHour      int    `json:"most_common_start_hour"`
	MostCommonStartHourCount int    `json:"most_common_start_hour_count"`
}

func (ts *TimeStats) GetType() string {
	return ReportType
}

// Calculate returns the most common start month, day of week and hour. Fails with ErrEmptyInput if
// the collection has no trips
func Calculate(trips *trip.Collection) (*TimeStats, error) {
	if trips.IsEmpty() {
		return nil, fmt.Errorf("[%s] cannot calculate most common times: %w", ReportType, dataErrors.ErrEmptyInput)
	}

	months := modecounter.NewModeCounter[string]()
	days := modecounter.NewModeCounter[string]()
	hours := modecounter.NewModeCounter[int]()
	for idx := 0; idx < trips.Len(); idx++ {
		tripData := trips.At(idx)
		months.Add(tripData.StartMonth())
		days.Add(tripData.StartDay())
		hours.Add(tripData.StartHour())
	}

	stats := &TimeStats{}
	stats.MostCommonMonth, stats.MostCommonMonthCount, _ = months.Mode()
	stats.MostCommonDay, stats.MostCommonDayCount, _ = days.Mode()
	stats.MostCommonStartHour, stats.MostCommonStartHourCount, _ = hours.Mode()
	return stats, nil
}
