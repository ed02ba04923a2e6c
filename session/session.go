package session

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/communication"
	"bikeshare/display"
	"bikeshare/domain/business/durationstats"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/stationstats"
	"bikeshare/domain/business/timestats"
	"bikeshare/domain/business/userstats"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/station"
	"bikeshare/domain/entities/trip"
	dataErrors "bikeshare/domain/errors"
	"bikeshare/metrics"
)

const (
	loadedStage   = "loaded"
	filteredStage = "filtered"
)

// TripSource gives the trips and station coordinates of a city
type TripSource interface {
	Load(city string) (*trip.Collection, error)
	LoadStations(city string) (station.Directory, error)
}

// Session asks the user for a city and filters, prints the statistics of the matching trips and
// lets the user browse them, until the user does not want to restart
type Session struct {
	source    TripSource
	publisher communication.ReportPublisher
	cities    []string
	pageSize  int
	prompter  *prompter
	out       io.Writer

	// trips of the last loaded city, reused while the user keeps the same city
	city     string
	trips    *trip.Collection
	stations station.Directory
}

func NewSession(source TripSource, publisher communication.ReportPublisher, cities []string, pageSize int, in io.Reader, out io.Writer) *Session {
	return &Session{
		source:    source,
		publisher: publisher,
		cities:    cities,
		pageSize:  pageSize,
		prompter:  newPrompter(in, out),
		out:       out,
	}
}

func (s *Session) getLogMessage(method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[component: session][city: %s][method: %s][status: ERROR] %s: %s", s.city, method, message, err.Error())
	}
	return fmt.Sprintf("[component: session][city: %s][method: %s][status: OK] %s", s.city, method, message)
}

// Run loops until the user does not want to restart or the input is closed
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Hello! Let's explore some US bikeshare data!")

	for {
		city, spec, err := s.getFilters()
		if err != nil {
			return ignoreEOF(err)
		}

		filtered, err := s.RunCycle(city, spec)
		if err == nil {
			err = s.browseRawData(filtered)
			if err != nil {
				return ignoreEOF(err)
			}
		}

		restart, err := s.prompter.askYesNo("\nWould you like to restart? Enter yes or no.\n")
		if err != nil || !restart {
			return ignoreEOF(err)
		}
	}
}

// RunCycle loads the city, applies the filter and prints the four reports. A failure to load the
// dataset is returned; a filter that matches no trips is reported per report and is not an error
func (s *Session) RunCycle(city string, spec filter.FilterSpec) (*trip.Collection, error) {
	queryID := uuid.NewString()

	trips, stations, err := s.load(city)
	if err != nil {
		fmt.Fprintf(s.out, "\nDataset for %s could not be loaded: %s\n%s\n", city, err.Error(), separator)
		return nil, err
	}

	filtered := spec.Apply(trips)
	metrics.SetLoadedTrips(city, filteredStage, filtered.Len())
	log.Info(s.getLogMessage("RunCycle", fmt.Sprintf("[queryID: %s] %v of %v trips match %s", queryID, filtered.Len(), trips.Len(), spec), nil))

	s.runReport(queryID, spec, timestats.ReportType, func() (queryresponse.Report, error) {
		return timestats.Calculate(filtered)
	})
	s.runReport(queryID, spec, stationstats.ReportType, func() (queryresponse.Report, error) {
		return stationstats.Calculate(filtered, stations)
	})
	s.runReport(queryID, spec, durationstats.ReportType, func() (queryresponse.Report, error) {
		return durationstats.Calculate(filtered)
	})
	s.runReport(queryID, spec, userstats.ReportType, func() (queryresponse.Report, error) {
		return userstats.Calculate(filtered)
	})

	return filtered, nil
}

func (s *Session) load(city string) (*trip.Collection, station.Directory, error) {
	if s.trips != nil && s.city == city {
		return s.trips, s.stations, nil
	}

	// drop the previous city before loading the new one
	s.city, s.trips, s.stations = city, nil, nil

	trips, err := s.source.Load(city)
	if err != nil {
		log.Error(s.getLogMessage("load", "error loading trips", err))
		return nil, nil, err
	}

	// trips stay usable without station coordinates
	stations, err := s.source.LoadStations(city)
	if err != nil {
		log.Warn(s.getLogMessage("load", "error loading stations, distances are skipped", err))
		stations = nil
	}

	metrics.SetLoadedTrips(city, loadedStage, trips.Len())
	s.trips, s.stations = trips, stations
	return trips, stations, nil
}

// runReport prints one report built by calculate and publishes it. The report is only used when err is nil
func (s *Session) runReport(queryID string, spec filter.FilterSpec, reportType string, calculate func() (queryresponse.Report, error)) {
	printTitle(s.out, reportType)

	report, elapsed, err := metrics.Timed(reportType, calculate)
	if err != nil {
		if errors.Is(err, dataErrors.ErrEmptyInput) {
			fmt.Fprintf(s.out, "No data matched this filter (%s).\n", spec)
		} else {
			fmt.Fprintf(s.out, "Report could not be calculated: %s\n", err.Error())
		}
		log.Warn(s.getLogMessage("runReport", fmt.Sprintf("[queryID: %s][report: %s] report not available", queryID, reportType), err))
		printElapsed(s.out, elapsed)
		return
	}

	printReport(s.out, report)
	printElapsed(s.out, elapsed)

	response := queryresponse.NewQueryResponse(queryID, s.city, spec.String(), report)
	if err := s.publisher.Publish(response); err != nil {
		log.Error(s.getLogMessage("runReport", fmt.Sprintf("[queryID: %s][report: %s] error publishing report", queryID, reportType), err))
	}
}

func (s *Session) getFilters() (string, filter.FilterSpec, error) {
	city, err := s.prompter.askChoice(fmt.Sprintf("Enter a city (%s): ", strings.Join(s.cities, " / ")), s.cities)
	if err != nil {
		return "", filter.FilterSpec{}, err
	}

	month, err := s.prompter.askChoice("Enter a month (all, january ... june): ", append([]string{filter.All}, filter.ValidMonths...))
	if err != nil {
		return "", filter.FilterSpec{}, err
	}

	day, err := s.prompter.askChoice("Enter a day of the week (all, monday ... sunday): ", append([]string{filter.All}, filter.ValidDays...))
	if err != nil {
		return "", filter.FilterSpec{}, err
	}

	spec, err := filter.NewFilterSpec(month, day)
	if err != nil {
		return "", filter.FilterSpec{}, err
	}

	fmt.Fprintln(s.out, separator)
	return city, spec, nil
}

// browseRawData shows pageSize trips at a time while the user asks for more
func (s *Session) browseRawData(trips *trip.Collection) error {
	showMore, err := s.prompter.askYesNo("\n\nWould you like to see raw data? (yes/no): ")
	if err != nil {
		return err
	}

	offset := 0
	for showMore {
		page := display.NewPage(trips, offset, s.pageSize)
		fmt.Fprintln(s.out)
		if err := page.Render(s.out); err != nil {
			return err
		}

		if !page.HasMore {
			fmt.Fprintln(s.out, "\nNo more trips to show.")
			return nil
		}
		offset = page.Next

		showMore, err = s.prompter.askYesNo("\nContinue? (yes/no): ")
		if err != nil {
			return err
		}
	}
	return nil
}

func ignoreEOF(err error) error {
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}
