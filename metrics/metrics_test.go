package metrics

import (
	"errors"
	"fmt"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	dataErrors "bikeshare/domain/errors"
)

func TestTimed(t *testing.T) {
	result, elapsed, err := Timed("timed-ok", func() (int, error) {
		return 42, nil
	})
	if err != nil {
		t.Fatalf("Timed() returned error: %v", err)
	}
	if result != 42 {
		t.Errorf("Timed() = %v, want 42", result)
	}
	if elapsed < 0 {
		t.Errorf("elapsed = %v, want a non negative duration", elapsed)
	}
	if count := testutil.CollectAndCount(reportDuration); count == 0 {
		t.Error("reportDuration should have samples")
	}
}

func TestTimed_Error(t *testing.T) {
	_, _, err := Timed("timed-empty", func() (*struct{}, error) {
		return nil, fmt.Errorf("wrapped: %w", dataErrors.ErrEmptyInput)
	})
	if !errors.Is(err, dataErrors.ErrEmptyInput) {
		t.Fatalf("Timed() error = %v, want ErrEmptyInput", err)
	}

	if value := testutil.ToFloat64(reportErrors.WithLabelValues("timed-empty", "empty_input")); value != 1 {
		t.Errorf("report_errors_total = %v, want 1", value)
	}
}

func TestSetLoadedTrips(t *testing.T) {
	SetLoadedTrips("chicago", "filtered", 17)
	if value := testutil.ToFloat64(loadedTrips.WithLabelValues("chicago", "filtered")); value != 17 {
		t.Errorf("loaded_trips = %v, want 17", value)
	}
}
