package display

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"bikeshare/domain/entities/trip"
)

const timestampLayout = "2006-01-02 15:04:05"

// Page a window of raw trips ready to be printed
// + Offset: position of the first row inside the collection
// + Next: offset of the following page
// + HasMore: false when this page reaches the end of the collection
type Page struct {
	Offset  int
	Next    int
	HasMore bool
	Schema  trip.Schema
	Rows    [][]string
}

// NewPage returns up to size trips starting at offset. The collection is not modified
func NewPage(trips *trip.Collection, offset int, size int) Page {
	if offset < 0 {
		offset = 0
	}
	window := trips.Slice(offset, offset+size)
	schema := trips.GetSchema()

	rows := make([][]string, 0, window.Len())
	for idx := 0; idx < window.Len(); idx++ {
		rows = append(rows, toRow(window.At(idx), schema))
	}

	next := offset + window.Len()
	return Page{
		Offset:  offset,
		Next:    next,
		HasMore: next < trips.Len(),
		Schema:  schema,
		Rows:    rows,
	}
}

// Header returns the column names of the rows, No. holds the row id of the trip in its file
func (p Page) Header() []string {
	header := []string{"No.", "Start Time", "End Time", "Trip Duration", "Start Station", "End Station", "User Type"}
	if p.Schema.HasGender {
		header = append(header, "Gender")
	}
	if p.Schema.HasBirthYear {
		header = append(header, "Birth Year")
	}
	return header
}

// Render writes the page as an aligned table
func (p Page) Render(writer io.Writer) error {
	tableWriter := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(tableWriter, strings.Join(p.Header(), "\t")); err != nil {
		return err
	}
	for _, row := range p.Rows {
		if _, err := fmt.Fprintln(tableWriter, strings.Join(row, "\t")); err != nil {
			return err
		}
	}
	return tableWriter.Flush()
}

func toRow(tripData *trip.TripData, schema trip.Schema) []string {
	rowID := tripData.RowID
	if rowID == "" {
		rowID = strconv.Itoa(tripData.Position)
	}

	row := []string{
		rowID,
		tripData.GetStartTime().Format(timestampLayout),
		tripData.EndTime.Format(timestampLayout),
		strconv.FormatFloat(tripData.Duration, 'f', -1, 64),
		tripData.StartStation,
		tripData.EndStation,
		tripData.UserType,
	}

	if schema.HasGender {
		gender := "NaN"
		if tripData.Gender != nil {
			gender = *tripData.Gender
		}
		row = append(row, gender)
	}

	if schema.HasBirthYear {
		birthYear := "NaN"
		if tripData.BirthYear != nil {
			birthYear = strconv.Itoa(*tripData.BirthYear)
		}
		row = append(row, birthYear)
	}

	return row
}
