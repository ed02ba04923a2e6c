package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
)

const (
	startTimeColumn    = "Start Time"
	endTimeColumn      = "End Time"
	durationColumn     = "Trip Duration"
	startStationColumn = "Start Station"
	endStationColumn   = "End Station"
	userTypeColumn     = "User Type"
	genderColumn       = "Gender"
	birthYearColumn    = "Birth Year"

	stationNameColumn      = "Name"
	stationLatitudeColumn  = "Latitude"
	stationLongitudeColumn = "Longitude"
)

var requiredTripColumns = []string{startTimeColumn, endTimeColumn, durationColumn, startStationColumn, endStationColumn, userTypeColumn}

// PathResolver returns where the files of a city are
type PathResolver interface {
	GetTripsFilepath(city string) (string, error)
	GetStationsFilepath(city string) (string, bool)
}

// Loader builds the trip.Collection of a city from its csv file
type Loader struct {
	paths            PathResolver
	timestampLayouts []string
}

func NewLoader(paths PathResolver, timestampLayouts []string) *Loader {
	return &Loader{
		paths:            paths,
		timestampLayouts: timestampLayouts,
	}
}

func (l *Loader) getLogMessage(city string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: loader][city: %s][method: %s][status: ERROR] %s: %s", city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: loader][city: %s][method: %s][status: OK] %s", city, method, message)
}

// Load reads every trip of the city. Any problem with the file, a missing column or a malformed row,
// returns an error wrapping ErrDataSource; rows are never skipped
func (l *Loader) Load(city string) (*trip.Collection, error) {
	tripsFilepath, err := l.paths.GetTripsFilepath(city)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataSource, err)
	}

	tripsFile, err := os.Open(tripsFilepath)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", "error opening trips file", err))
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataSource, err)
	}

	defer func(tripsFile *os.File) {
		err := tripsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", tripsFilepath, err.Error())
		}
	}(tripsFile)

	trips, err := ParseTrips(city, tripsFile, l.timestampLayouts)
	if err != nil {
		log.Error(l.getLogMessage(city, "Load", fmt.Sprintf("error parsing %s", tripsFilepath), err))
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrDataSource, tripsFilepath, err)
	}

	log.Info(l.getLogMessage(city, "Load", fmt.Sprintf("%v trips loaded from %s", trips.Len(), tripsFilepath), nil))
	return trips, nil
}

// LoadStations reads the coordinates of the stations of the city. Returns a nil Directory if the
// city has no stations file
func (l *Loader) LoadStations(city string) (station.Directory, error) {
	stationsFilepath, ok := l.paths.GetStationsFilepath(city)
	if !ok {
		log.Debug(l.getLogMessage(city, "LoadStations", "no stations file configured", nil))
		return nil, nil
	}

	stationsFile, err := os.Open(stationsFilepath)
	if err != nil {
		log.Error(l.getLogMessage(city, "LoadStations", "error opening stations file", err))
		return nil, fmt.Errorf("%w: %w", dataErrors.ErrDataSource, err)
	}

	defer func(stationsFile *os.File) {
		err := stationsFile.Close()
		if err != nil {
			log.Errorf("error closing %s: %s", stationsFilepath, err.Error())
		}
	}(stationsFile)

	stations, err := ParseStations(city, stationsFile)
	if err != nil {
		log.Error(l.getLogMessage(city, "LoadStations", fmt.Sprintf("error parsing %s", stationsFilepath), err))
		return nil, fmt.Errorf("%w: %s: %w", dataErrors.ErrDataSource, stationsFilepath, err)
	}

	log.Info(l.getLogMessage(city, "LoadStations", fmt.Sprintf("%v stations loaded from %s", len(stations), stationsFilepath), nil))
	return stations, nil
}

// ParseTrips reads a trips csv. The header must have the required columns; Gender and Birth Year are optional
func ParseTrips(city string, reader io.Reader, timestampLayouts []string) (*trip.Collection, error) {
	csvReader := csv.NewReader(reader)
	csvReader.ReuseRecord = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", dataErrors.ErrMissingColumn)
		}
		return nil, err
	}
	columns := indexColumns(header)
	rowIDIdx, hasRowID := unnamedColumn(header)

	for _, column := range requiredTripColumns {
		if _, ok := columns[column]; !ok {
			return nil, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, column)
		}
	}

	genderIdx, hasGender := columns[genderColumn]
	birthYearIdx, hasBirthYear := columns[birthYearColumn]
	schema := trip.Schema{HasGender: hasGender, HasBirthYear: hasBirthYear}

	var trips []*trip.TripData
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := csvReader.FieldPos(0)
		row := rowReader{record: record, columns: columns}

		startTime, err := parseTimestamp(row.get(startTimeColumn), timestampLayouts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, startTimeColumn, err)
		}

		endTime, err := parseTimestamp(row.get(endTimeColumn), timestampLayouts)
		if err != nil {
			return nil, fmt.Errorf("line %d: %s: %w", line, endTimeColumn, err)
		}

		duration, err := parseDuration(row.get(durationColumn))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		var gender *string
		if hasGender {
			gender = optionalString(record[genderIdx])
		}

		var birthYear *int
		if hasBirthYear {
			birthYear, err = parseBirthYear(record[birthYearIdx])
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", line, err)
			}
		}

		tripData := trip.NewTripData(
			len(trips),
			startTime,
			endTime,
			duration,
			row.get(startStationColumn),
			row.get(endStationColumn),
			row.get(userTypeColumn),
			gender,
			birthYear,
		)
		if hasRowID {
			tripData.RowID = strings.TrimSpace(record[rowIDIdx])
		}
		trips = append(trips, tripData)
	}

	return trip.NewCollection(city, schema, trips), nil
}

// ParseStations reads a stations csv with Name, Latitude and Longitude columns
func ParseStations(city string, reader io.Reader) (station.Directory, error) {
	csvReader := csv.NewReader(reader)

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty file", dataErrors.ErrMissingColumn)
		}
		return nil, err
	}
	columns := indexColumns(header)

	for _, column := range []string{stationNameColumn, stationLatitudeColumn, stationLongitudeColumn} {
		if _, ok := columns[column]; !ok {
			return nil, fmt.Errorf("%w: %s", dataErrors.ErrMissingColumn, column)
		}
	}

	stations := make(station.Directory)
	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		line, _ := csvReader.FieldPos(0)
		row := rowReader{record: record, columns: columns}

		latitude, err := strconv.ParseFloat(row.get(stationLatitudeColumn), 64)
		if err != nil || latitude < -90 || latitude > 90 {
			return nil, fmt.Errorf("line %d: %w: latitude %q", line, dataErrors.ErrInvalidCoordinate, row.get(stationLatitudeColumn))
		}

		longitude, err := strconv.ParseFloat(row.get(stationLongitudeColumn), 64)
		if err != nil || longitude < -180 || longitude > 180 {
			return nil, fmt.Errorf("line %d: %w: longitude %q", line, dataErrors.ErrInvalidCoordinate, row.get(stationLongitudeColumn))
		}

		stations.Add(station.NewStationData(city, row.get(stationNameColumn), latitude, longitude))
	}

	return stations, nil
}

type rowReader struct {
	record  []string
	columns map[string]int
}

func (rr rowReader) get(column string) string {
	return strings.TrimSpace(rr.record[rr.columns[column]])
}

func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for idx, column := range header {
		column = strings.TrimSpace(strings.TrimPrefix(column, "\ufeff"))
		if column == "" {
			continue
		}
		columns[column] = idx
	}
	return columns
}

// unnamedColumn returns the index of the first column without a name, the datasets use it for the row id
func unnamedColumn(header []string) (int, bool) {
	for idx, column := range header {
		if strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")) == "" {
			return idx, true
		}
	}
	return 0, false
}

func parseTimestamp(value string, timestampLayouts []string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		timestamp, err := time.Parse(layout, value)
		if err == nil {
			return timestamp, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", dataErrors.ErrInvalidDate, value)
}

func parseDuration(value string) (float64, error) {
	duration, err := strconv.ParseFloat(value, 64)
	if err != nil || duration < 0 || math.IsNaN(duration) || math.IsInf(duration, 0) {
		return 0, fmt.Errorf("%w: %q", dataErrors.ErrInvalidDurationType, value)
	}
	return duration, nil
}

// parseBirthYear accepts integers and integral floats such as 1989.0. Empty values are missing years
func parseBirthYear(value string) (*int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}

	year, err := strconv.ParseFloat(value, 64)
	if err != nil || year != math.Trunc(year) || math.IsInf(year, 0) {
		return nil, fmt.Errorf("%w: %q", dataErrors.ErrInvalidBirthYear, value)
	}

	birthYear := int(year)
	return &birthYear, nil
}

func optionalString(value string) *string {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	return &value
}
