package modecounter

import "testing"

func TestModeCounter_Mode(t *testing.T) {
	tests := []struct {
		name      string
		values    []string
		wantValue string
		wantCount int
		wantOK    bool
	}{
		{
			name:   "no values",
			values: nil,
			wantOK: false,
		},
		{
			name:      "single value",
			values:    []string{"January"},
			wantValue: "January",
			wantCount: 1,
			wantOK:    true,
		},
		{
			name:      "clear winner",
			values:    []string{"January", "February", "January", "February", "January"},
			wantValue: "January",
			wantCount: 3,
			wantOK:    true,
		},
		{
			name:      "tie goes to the value seen first",
			values:    []string{"March", "February", "February", "March"},
			wantValue: "March",
			wantCount: 2,
			wantOK:    true,
		},
		{
			name:      "tie goes to the value seen first even if another reached the count earlier",
			values:    []string{"5", "3", "3", "5"},
			wantValue: "5",
			wantCount: 2,
			wantOK:    true,
		},
		{
			name:      "tie ignores lexicographic order",
			values:    []string{"Zeta", "Alpha", "Alpha", "Zeta", "Beta"},
			wantValue: "Zeta",
			wantCount: 2,
			wantOK:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			counter := NewModeCounter[string]()
			for _, value := range tt.values {
				counter.Add(value)
			}

			value, count, ok := counter.Mode()
			if ok != tt.wantOK {
				t.Fatalf("Mode() ok = %v, want %v", ok, tt.wantOK)
			}
			if value != tt.wantValue {
				t.Errorf("Mode() value = %v, want %v", value, tt.wantValue)
			}
			if count != tt.wantCount {
				t.Errorf("Mode() count = %v, want %v", count, tt.wantCount)
			}
		})
	}
}

func TestModeCounter_Entries(t *testing.T) {
	counter := NewModeCounter[int]()
	for _, hour := range []int{8, 17, 8, 9, 17, 17, 9} {
		counter.Add(hour)
	}

	entries := counter.Entries()
	want := []Entry[int]{{Value: 17, Count: 3}, {Value: 8, Count: 2}, {Value: 9, Count: 2}}
	if len(entries) != len(want) {
		t.Fatalf("Entries() len = %v, want %v", len(entries), len(want))
	}
	for i := range want {
		if entries[i] != want[i] {
			t.Errorf("Entries()[%d] = %v, want %v", i, entries[i], want[i])
		}
	}
}
