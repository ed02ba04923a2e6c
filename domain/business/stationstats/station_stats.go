package stationstats

import (
	"fmt"

	"bikeshare/domain/business/distanceaccumulator"
	"bikeshare/domain/business/modecounter"
	"bikeshare/domain/business/tripcounter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const ReportType = "station-stats"

// StationStats most popular stations and trip.
// The distances are nil when the coordinates of the stations involved are unknown
type StationStats struct {
	MostCommonStartStation       string   `json:"most_common_start_station"`
	MostCommonStartStationCount  int      `json:"most_common_start_station_count"`
	MostCommonEndStation         string   `json:"most_common_end_station"`
	MostCommonEndStationCount    int      `json:"most_common_end_station_count"`
	MostFrequentTripStartStation string   `json:"most_frequent_trip_start_station"`
	MostFrequentTripEndStation   string   `json:"most_frequent_trip_end_station"`
	MostFrequentTripCount        int      `json:"most_frequent_trip_count"`
	MostFrequentTripDistanceKm   *float64 `json:"most_frequent_trip_distance_km,omitempty"`
	MeanTripDistanceKm           *float64 `json:"mean_trip_distance_km,omitempty"`
}

func (ss *StationStats) GetType() string {
	return ReportType
}

// Calculate returns the most common start and end stations and the most frequent trip.
// Stations modes are won by the station that appears first in the collection. Trips with the same
// count are ordered by start and end station name and the first one wins.
// stations can be nil, in that case no distance is calculated
func Calculate(trips *trip.Collection, stations station.Directory) (*StationStats, error) {
	if trips.IsEmpty() {
		return nil, fmt.Errorf("[%s] cannot calculate most popular stations: %w", ReportType, dataErrors.ErrEmptyInput)
	}

	startStations := modecounter.NewModeCounter[string]()
	endStations := modecounter.NewModeCounter[string]()
	tripCounters := make(tripcounter.TripCounters)
	distances := distanceaccumulator.NewDistanceAccumulator()

	for idx := 0; idx < trips.Len(); idx++ {
		tripData := trips.At(idx)
		startStations.Add(tripData.StartStation)
		endStations.Add(tripData.EndStation)
		tripCounters.Count(tripData.StartStation, tripData.EndStation)

		if distance, ok := stations.Distance(tripData.StartStation, tripData.EndStation); ok {
			distances.UpdateAccumulator(distance)
		}
	}

	stats := &StationStats{}
	stats.MostCommonStartStation, stats.MostCommonStartStationCount, _ = startStations.Mode()
	stats.MostCommonEndStation, stats.MostCommonEndStationCount, _ = endStations.Mode()

	mostFrequent := tripCounters.MostFrequent()
	stats.MostFrequentTripStartStation = mostFrequent.StartStation
	stats.MostFrequentTripEndStation = mostFrequent.EndStation
	stats.MostFrequentTripCount = mostFrequent.GetCounter()

	if distance, ok := stations.Distance(mostFrequent.StartStation, mostFrequent.EndStation); ok {
		stats.MostFrequentTripDistanceKm = &distance
	}

	if meanDistance, err := distances.GetAverageDistance(); err == nil {
		stats.MeanTripDistanceKm = &meanDistance
	}

	return stats, nil
}
