package tripcounter

import "testing"

func TestTripCounters_MostFrequent(t *testing.T) {
	tests := []struct {
		name      string
		trips     [][2]string
		wantStart string
		wantEnd   string
		wantCount int
	}{
		{
			name: "A to B wins with four trips",
			trips: [][2]string{
				{"A", "B"}, {"A", "B"}, {"A", "B"},
				{"B", "A"}, {"B", "A"},
				{"A", "B"},
			},
			wantStart: "A",
			wantEnd:   "B",
			wantCount: 4,
		},
		{
			name: "tie goes to the smallest start station",
			trips: [][2]string{
				{"Wabash", "Clark"}, {"Canal", "Clark"},
				{"Wabash", "Clark"}, {"Canal", "Clark"},
			},
			wantStart: "Canal",
			wantEnd:   "Clark",
			wantCount: 2,
		},
		{
			name: "tie with same start station goes to the smallest end station",
			trips: [][2]string{
				{"Canal", "Wells"}, {"Canal", "Adams"},
			},
			wantStart: "Canal",
			wantEnd:   "Adams",
			wantCount: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counters := make(TripCounters)
			for _, trip := range tt.trips {
				counters.Count(trip[0], trip[1])
			}

			mostFrequent := counters.MostFrequent()
			if mostFrequent == nil {
				t.Fatal("MostFrequent() should not be nil")
			}
			if mostFrequent.StartStation != tt.wantStart || mostFrequent.EndStation != tt.wantEnd {
				t.Errorf("MostFrequent() = %s -> %s, want %s -> %s", mostFrequent.StartStation, mostFrequent.EndStation, tt.wantStart, tt.wantEnd)
			}
			if mostFrequent.GetCounter() != tt.wantCount {
				t.Errorf("MostFrequent() count = %v, want %v", mostFrequent.GetCounter(), tt.wantCount)
			}
		})
	}
}

func TestTripCounters_MostFrequentEmpty(t *testing.T) {
	if (TripCounters{}).MostFrequent() != nil {
		t.Error("MostFrequent() should be nil without trips")
	}
}

func TestTripCounters_CountIsDirectional(t *testing.T) {
	counters := TripCounters{}
	counters.Count("A", "B")
	counters.Count("A", "B")
	counters.Count("B", "A")

	if len(counters) != 2 {
		t.Fatalf("len(counters) = %v, want 2", len(counters))
	}
	if got := counters[Key{StartStation: "A", EndStation: "B"}].GetCounter(); got != 2 {
		t.Errorf("A -> B count = %v, want 2", got)
	}
	if got := counters[Key{StartStation: "B", EndStation: "A"}].GetCounter(); got != 1 {
		t.Errorf("B -> A count = %v, want 1", got)
	}
}
