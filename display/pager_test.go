package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"bikeshare/domain/entities/trip"
)

func newCollection(size int, schema trip.Schema) *trip.Collection {
	startTime := time.Date(2017, 1, 2, 8, 0, 0, 0, time.UTC)
	gender := "Female"
	var trips []*trip.TripData
	for idx := 0; idx < size; idx++ {
		trips = append(trips, trip.NewTripData(idx, startTime, startTime.Add(time.Minute), 60.5, "Canal St", "Clark St", "Subscriber", &gender, nil))
	}
	return trip.NewCollection("chicago", schema, trips)
}

func TestNewPage(t *testing.T) {
	trips := newCollection(12, trip.Schema{})

	tests := []struct {
		name        string
		offset      int
		wantRows    int
		wantNext    int
		wantHasMore bool
	}{
		{name: "first page", offset: 0, wantRows: 5, wantNext: 5, wantHasMore: true},
		{name: "second page", offset: 5, wantRows: 5, wantNext: 10, wantHasMore: true},
		{name: "last page is shorter", offset: 10, wantRows: 2, wantNext: 12, wantHasMore: false},
		{name: "past the end", offset: 20, wantRows: 0, wantNext: 20, wantHasMore: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := NewPage(trips, tt.offset, 5)
			if len(page.Rows) != tt.wantRows {
				t.Errorf("rows = %v, want %v", len(page.Rows), tt.wantRows)
			}
			if page.Next != tt.wantNext {
				t.Errorf("Next = %v, want %v", page.Next, tt.wantNext)
			}
			if page.HasMore != tt.wantHasMore {
				t.Errorf("HasMore = %v, want %v", page.HasMore, tt.wantHasMore)
			}
			if tt.wantRows > 0 && page.Rows[0][0] != strings.TrimSpace(page.Rows[0][0]) {
				t.Errorf("unexpected No. column %q", page.Rows[0][0])
			}
		})
	}

	if trips.Len() != 12 {
		t.Errorf("NewPage() modified the collection, len = %v", trips.Len())
	}
}

func TestPage_Render(t *testing.T) {
	page := NewPage(newCollection(2, trip.Schema{HasGender: true, HasBirthYear: true}), 0, 5)

	var buffer bytes.Buffer
	if err := page.Render(&buffer); err != nil {
		t.Fatalf("Render() returned error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("Render() lines = %v, want 3:\n%s", len(lines), buffer.String())
	}
	if !strings.HasPrefix(lines[0], "No.") || !strings.Contains(lines[0], "Birth Year") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "2017-01-02 08:00:00") || !strings.Contains(lines[1], "Female") || !strings.Contains(lines[1], "NaN") {
		t.Errorf("row = %q", lines[1])
	}
	if !strings.Contains(lines[2], "60.5") {
		t.Errorf("row = %q, want the duration", lines[2])
	}
}

func TestPage_RowIDColumn(t *testing.T) {
	startTime := time.Date(2017, 1, 2, 8, 0, 0, 0, time.UTC)
	withID := trip.NewTripData(0, startTime, startTime.Add(time.Minute), 60, "Canal St", "Clark St", "Subscriber", nil, nil)
	withID.RowID = "1423854"
	withoutID := trip.NewTripData(1, startTime, startTime.Add(time.Minute), 60, "Canal St", "Clark St", "Subscriber", nil, nil)

	page := NewPage(trip.NewCollection("chicago", trip.Schema{}, []*trip.TripData{withID, withoutID}), 0, 5)
	if page.Rows[0][0] != "1423854" {
		t.Errorf("No. = %v, want the row id 1423854", page.Rows[0][0])
	}
	if page.Rows[1][0] != "1" {
		t.Errorf("No. = %v, want the position 1 when the dataset has no row id", page.Rows[1][0])
	}
}
