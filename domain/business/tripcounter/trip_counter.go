package tripcounter

import (
	"sort"
)

// Key identifies a trip by the stations where it begins and ends
type Key struct {
	StartStation string
	EndStation   string
}

// TripCounter struct that counts the amount of trips between two stations
// + StartStation: name of the station in which the trips begin. Once set, it cannot change
// + EndStation: name of the station in which the trips end. Once set, it cannot change
// + Counter: counts the amount of trips between both stations
type TripCounter struct {
	StartStation string `json:"start_station"`
	EndStation   string `json:"end_station"`
	Counter      int    `json:"counter"`
}

func NewTripCounter(startStation string, endStation string) *TripCounter {
	return &TripCounter{
		StartStation: startStation,
		EndStation:   endStation,
	}
}

func (tc *TripCounter) UpdateCounter() {
	tc.Counter += 1
}

func (tc *TripCounter) GetCounter() int {
	return tc.Counter
}

// TripCounters groups trips by start and end station
type TripCounters map[Key]*TripCounter

func (tcs TripCounters) Count(startStation string, endStation string) {
	key := Key{StartStation: startStation, EndStation: endStation}
	counter, ok := tcs[key]
	if !ok {
		counter = NewTripCounter(startStation, endStation)
		tcs[key] = counter
	}
	counter.UpdateCounter()
}

// SortedByCount returns the counters ordered by start and end station and then stably sorted by
// count in descending order, so counters with the same count keep the station order
func (tcs TripCounters) SortedByCount() []*TripCounter {
	counters := make([]*TripCounter, 0, len(tcs))
	for _, counter := range tcs {
		counters = append(counters, counter)
	}

	sort.Slice(counters, func(i, j int) bool {
		if counters[i].StartStation != counters[j].StartStation {
			return counters[i].StartStation < counters[j].StartStation
		}
		return counters[i].EndStation < counters[j].EndStation
	})
	sort.SliceStable(counters, func(i, j int) bool {
		return counters[i].Counter > counters[j].Counter
	})
	return counters
}

// MostFrequent returns the first counter of SortedByCount, nil if there are no counters
func (tcs TripCounters) MostFrequent() *TripCounter {
	counters := tcs.SortedByCount()
	if len(counters) == 0 {
		return nil
	}
	return counters[0]
}
