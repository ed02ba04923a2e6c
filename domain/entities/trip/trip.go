package trip

import (
	"time"
)

// TripData struct that contains one bicycle rental
// + Position: row number of the trip inside its dataset, 0 based
// + RowID: value of the unnamed id column of the dataset, empty if the dataset has none
// + EndTime: moment in which the trip ends
// + Duration: duration of the trip in seconds
// + StartStation: name of the station in which the trip begins
// + EndStation: name of the station in which the trip ends
// + UserType: Subscriber, Customer, etc.
// + Gender: nil when the dataset does not record it or the row left it empty
// + BirthYear: nil when the dataset does not record it or the row left it empty
//
// The start time and the month, day and hour derived from it are set when the trip is built and
// cannot change afterwards.
type TripData struct {
	Position     int
	RowID        string
	EndTime      time.Time
	Duration     float64
	StartStation string
	EndStation   string
	UserType     string
	Gender       *string
	BirthYear    *int

	startTime  time.Time
	startMonth string
	startDay   string
	startHour  int
}

func NewTripData(
	position int,
	startTime time.Time,
	endTime time.Time,
	duration float64,
	startStation string,
	endStation string,
	userType string,
	gender *string,
	birthYear *int,
) *TripData {
	month, day, hour := DeriveTimeFields(startTime)
	return &TripData{
		Position:     position,
		EndTime:      endTime,
		Duration:     duration,
		StartStation: startStation,
		EndStation:   endStation,
		UserType:     userType,
		Gender:       gender,
		BirthYear:    birthYear,
		startTime:    startTime,
		startMonth:   month,
		startDay:     day,
		startHour:    hour,
	}
}

// DeriveTimeFields returns the full month name, the full weekday name and the hour of the given moment
func DeriveTimeFields(moment time.Time) (string, string, int) {
	return moment.Month().String(), moment.Weekday().String(), moment.Hour()
}

// GetStartTime returns the moment in which the trip begins
func (td *TripData) GetStartTime() time.Time {
	return td.startTime
}

// StartMonth returns the full month name of the start time, e.g. January
func (td *TripData) StartMonth() string {
	return td.startMonth
}

// StartDay returns the full weekday name of the start time, e.g. Monday
func (td *TripData) StartDay() string {
	return td.startDay
}

// StartHour returns the hour of the start time, 0 to 23
func (td *TripData) StartHour() int {
	return td.startHour
}
