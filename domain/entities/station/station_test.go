package station

import (
	"math"
	"testing"
)

func TestDirectory_Distance(t *testing.T) {
	stations := Directory{}
	stations.Add(NewStationData("new york city", "W 52 St & 11 Ave", 40.767272, -73.993929))
	stations.Add(NewStationData("new york city", "Franklin St & W Broadway", 40.719116, -74.006667))

	tests := []struct {
		name    string
		from    string
		to      string
		wantOK  bool
		wantMin float64
		wantMax float64
	}{
		{name: "known stations", from: "W 52 St & 11 Ave", to: "Franklin St & W Broadway", wantOK: true, wantMin: 5.2, wantMax: 5.6},
		{name: "round trip", from: "W 52 St & 11 Ave", to: "W 52 St & 11 Ave", wantOK: true, wantMin: 0, wantMax: 0},
		{name: "unknown end station", from: "W 52 St & 11 Ave", to: "Broadway & W 60 St", wantOK: false},
		{name: "unknown start station", from: "Broadway & W 60 St", to: "W 52 St & 11 Ave", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			distance, ok := stations.Distance(tt.from, tt.to)
			if ok != tt.wantOK {
				t.Fatalf("Distance() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && (distance < tt.wantMin-1e-9 || distance > tt.wantMax+1e-9 || math.IsNaN(distance)) {
				t.Errorf("Distance() = %v, want between %v and %v", distance, tt.wantMin, tt.wantMax)
			}
		})
	}
}

func TestDirectory_NilDistance(t *testing.T) {
	var stations Directory
	if _, ok := stations.Distance("A", "B"); ok {
		t.Error("a nil Directory should not know any station")
	}
}
