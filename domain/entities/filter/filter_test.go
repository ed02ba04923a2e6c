package filter

import (
	"errors"
	"testing"
	"time"

	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

// fixture: january and february trips over several weekdays
func newCollection() *trip.Collection {
	startTimes := []time.Time{
		time.Date(2017, 1, 2, 8, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, 1, 3, 8, 0, 0, 0, time.UTC),  // Tuesday
		time.Date(2017, 2, 6, 8, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, 1, 9, 8, 0, 0, 0, time.UTC),  // Monday
		time.Date(2017, 2, 12, 8, 0, 0, 0, time.UTC), // Sunday
		time.Date(2017, 6, 5, 8, 0, 0, 0, time.UTC),  // Monday
	}
	var trips []*trip.TripData
	for idx, startTime := range startTimes {
		trips = append(trips, trip.NewTripData(idx, startTime, startTime.Add(time.Minute), 60, "A", "B", "Subscriber", nil, nil))
	}
	return trip.NewCollection("chicago", trip.Schema{}, trips)
}

func positions(trips *trip.Collection) []int {
	var result []int
	for idx := 0; idx < trips.Len(); idx++ {
		result = append(result, trips.At(idx).Position)
	}
	return result
}

func equalPositions(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestNewFilterSpec(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		day       string
		want      FilterSpec
		wantError bool
	}{
		{name: "all and all", month: "all", day: "all", want: FilterSpec{Month: "all", Day: "all"}},
		{name: "mixed case is normalized", month: "January", day: " MONDAY ", want: FilterSpec{Month: "january", Day: "monday"}},
		{name: "months after june are rejected", month: "july", day: "all", wantError: true},
		{name: "abbreviations are rejected", month: "all", day: "mon", wantError: true},
		{name: "empty is rejected", month: "", day: "all", wantError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec, err := NewFilterSpec(tt.month, tt.day)
			if tt.wantError {
				if !errors.Is(err, dataErrors.ErrInvalidFilter) {
					t.Errorf("NewFilterSpec() error = %v, want ErrInvalidFilter", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFilterSpec() returned error: %v", err)
			}
			if spec != tt.want {
				t.Errorf("NewFilterSpec() = %+v, want %+v", spec, tt.want)
			}
		})
	}
}

func TestFilterSpec_Apply(t *testing.T) {
	tests := []struct {
		name          string
		spec          FilterSpec
		wantPositions []int
	}{
		{name: "no filter keeps everything in order", spec: NoFilter(), wantPositions: []int{0, 1, 2, 3, 4, 5}},
		{name: "month only", spec: FilterSpec{Month: "january", Day: All}, wantPositions: []int{0, 1, 3}},
		{name: "day only", spec: FilterSpec{Month: All, Day: "monday"}, wantPositions: []int{0, 2, 3, 5}},
		{name: "month and day", spec: FilterSpec{Month: "february", Day: "monday"}, wantPositions: []int{2}},
		{name: "case insensitive", spec: FilterSpec{Month: "FEBRUARY", Day: "Sunday"}, wantPositions: []int{4}},
		{name: "nothing matches", spec: FilterSpec{Month: "march", Day: All}, wantPositions: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trips := newCollection()
			filtered := tt.spec.Apply(trips)

			if got := positions(filtered); !equalPositions(got, tt.wantPositions) {
				t.Errorf("Apply() positions = %v, want %v", got, tt.wantPositions)
			}
			if trips.Len() != 6 {
				t.Errorf("Apply() modified the input collection, len = %v", trips.Len())
			}

			again := tt.spec.Apply(filtered)
			if !equalPositions(positions(again), positions(filtered)) {
				t.Errorf("Apply() is not idempotent: %v then %v", positions(filtered), positions(again))
			}
		})
	}
}

func TestFilterSpec_MonthAndDayIsSubsetOfMonth(t *testing.T) {
	trips := newCollection()
	for _, month := range ValidMonths {
		byMonth := positions(FilterSpec{Month: month, Day: All}.Apply(trips))
		for _, day := range ValidDays {
			byMonthAndDay := positions(FilterSpec{Month: month, Day: day}.Apply(trips))
			if len(byMonthAndDay) > len(byMonth) {
				t.Fatalf("%s/%s returned more trips than %s", month, day, month)
			}
			for _, position := range byMonthAndDay {
				found := false
				for _, monthPosition := range byMonth {
					if monthPosition == position {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s/%s returned trip %d which is not in %s", month, day, position, month)
				}
			}
		}
	}
}
