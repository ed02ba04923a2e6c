package filter

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/utils"
)

// All disables the month or day predicate
const All = "all"

var (
	ValidMonths = []string{"january", "february", "march", "april", "may", "june"}
	ValidDays   = []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}
)

// FilterSpec month and day used to narrow a trip.Collection. Both values are lower case,
// All means no predicate
type FilterSpec struct {
	Month string `json:"month"`
	Day   string `json:"day"`
}

// NewFilterSpec normalizes month and day and checks they are valid values
func NewFilterSpec(month string, day string) (FilterSpec, error) {
	month = normalize(month)
	day = normalize(day)

	if month != All && !utils.ContainsString(month, ValidMonths) {
		return FilterSpec{}, fmt.Errorf("%w: month %q", dataErrors.ErrInvalidFilter, month)
	}

	if day != All && !utils.ContainsString(day, ValidDays) {
		return FilterSpec{}, fmt.Errorf("%w: day %q", dataErrors.ErrInvalidFilter, day)
	}

	return FilterSpec{Month: month, Day: day}, nil
}

// NoFilter returns a FilterSpec that keeps every trip
func NoFilter() FilterSpec {
	return FilterSpec{Month: All, Day: All}
}

func (fs FilterSpec) String() string {
	return fmt.Sprintf("month: %s, day: %s", fs.Month, fs.Day)
}

// Apply returns the trips whose start month and start day match the FilterSpec, in their original order.
// The input collection is not modified
func (fs FilterSpec) Apply(trips *trip.Collection) *trip.Collection {
	month := normalize(fs.Month)
	day := normalize(fs.Day)
	filterMonth := month != "" && month != All
	filterDay := day != "" && day != All

	return trips.Filter(func(tripData *trip.TripData) bool {
		if filterMonth && !strings.EqualFold(tripData.StartMonth(), month) {
			return false
		}
		if filterDay && !strings.EqualFold(tripData.StartDay(), day) {
			return false
		}
		return true
	})
}

func normalize(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}
