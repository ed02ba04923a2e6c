package session

import (
	"fmt"
	"io"
	"strings"
	"time"

	"bikeshare/domain/business/durationstats"
	"bikeshare/domain/business/queryresponse"
	"bikeshare/domain/business/stationstats"
	"bikeshare/domain/business/timestats"
	"bikeshare/domain/business/userstats"
)

var separator = strings.Repeat("-", 40)

var reportTitles = map[string]string{
	timestats.ReportType:     "Calculating The Most Frequent Times of Travel...",
	stationstats.ReportType:  "Calculating The Most Popular Stations and Trip...",
	durationstats.ReportType: "Calculating Trip Duration...",
	userstats.ReportType:     "Calculating User Stats...",
}

func printTitle(out io.Writer, reportType string) {
	fmt.Fprintf(out, "\n%s\n\n", reportTitles[reportType])
}

func printElapsed(out io.Writer, elapsed time.Duration) {
	fmt.Fprintf(out, "\nThis took %v seconds.\n%s\n", elapsed.Seconds(), separator)
}

func printReport(out io.Writer, report queryresponse.Report) {
	switch r := report.(type) {
	case *timestats.TimeStats:
		printTimeStats(out, r)
	case *stationstats.StationStats:
		printStationStats(out, r)
	case *durationstats.DurationStats:
		printDurationStats(out, r)
	case *userstats.UserStats:
		printUserStats(out, r)
	default:
		fmt.Fprintf(out, "%+v\n", report)
	}
}

func printTimeStats(out io.Writer, stats *timestats.TimeStats) {
	fmt.Fprintf(out, "Most common month:\t\t%s (%d trips)\n", stats.MostCommonMonth, stats.MostCommonMonthCount)
	fmt.Fprintf(out, "Most common day of week:\t%s (%d trips)\n", stats.MostCommonDay, stats.MostCommonDayCount)
	fmt.Fprintf(out, "Most common start hour:\t\t%d (%d trips)\n", stats.MostCommonStartHour, stats.MostCommonStartHourCount)
}

func printStationStats(out io.Writer, stats *stationstats.StationStats) {
	fmt.Fprintf(out, "Most common start station:\t%s (%d trips)\n", stats.MostCommonStartStation, stats.MostCommonStartStationCount)
	fmt.Fprintf(out, "Most common end station:\t%s (%d trips)\n", stats.MostCommonEndStation, stats.MostCommonEndStationCount)
	fmt.Fprintf(out, "Most frequent trip:\t\t%s - %s (%d trips)\n", stats.MostFrequentTripStartStation, stats.MostFrequentTripEndStation, stats.MostFrequentTripCount)
	if stats.MostFrequentTripDistanceKm != nil {
		fmt.Fprintf(out, "Most frequent trip distance:\t%.2f km\n", *stats.MostFrequentTripDistanceKm)
	}
	if stats.MeanTripDistanceKm != nil {
		fmt.Fprintf(out, "Mean trip distance:\t\t%.2f km\n", *stats.MeanTripDistanceKm)
	}
}

func printDurationStats(out io.Writer, stats *durationstats.DurationStats) {
	fmt.Fprintf(out, "Total travel time:\t%s\n", stats.TotalTravelTime)
	fmt.Fprintf(out, "Mean travel time:\t%v\n", stats.MeanTravelTimeSeconds)
}

func printUserStats(out io.Writer, stats *userstats.UserStats) {
	for _, userType := range stats.UserTypes {
		fmt.Fprintf(out, "%s:\t%d\n", userType.UserType, userType.Count)
	}

	if gender, err := stats.GetGenderCounts(); err == nil {
		fmt.Fprintf(out, "\nNo. of males:\t%d\n", gender.Male)
		fmt.Fprintf(out, "No. of females:\t%d\n", gender.Female)
	} else {
		fmt.Fprintln(out, "\nNo gender information available.")
	}

	birthYears, err := stats.GetBirthYearStats()
	switch {
	case err != nil:
		fmt.Fprintln(out, "No birth year information available.")
	case birthYears.Count == 0:
		fmt.Fprintln(out, "\nNo birth year recorded for these trips.")
	default:
		fmt.Fprintf(out, "\nEarliest year of birth:\t\t%d\n", birthYears.Earliest)
		fmt.Fprintf(out, "Most recent year of birth:\t%d\n", birthYears.MostRecent)
		fmt.Fprintf(out, "Most frequent year of birth:\t%d\n", birthYears.MostFrequent)
	}
}
