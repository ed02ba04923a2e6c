package metrics

import (
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	dataErrors "bikeshare/domain/errors"
)

const namespace = "bikeshare"

var (
	reportDuration = prometheus.NewSummaryVec(prometheus.SummaryOpts{
		Namespace: namespace,
		Name:      "report_duration_seconds",
		Help:      "Time spent building each statistics report",
	}, []string{"report"})

	reportErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_errors_total",
		Help:      "Reports that could not be built, by report and error type",
	}, []string{"report", "error_type"})

	loadedTrips = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "loaded_trips",
		Help:      "Trips loaded for a city and left after filtering",
	}, []string{"city", "stage"})
)

func init() {
	prometheus.MustRegister(reportDuration, reportErrors, loadedTrips)
}

// Timed runs calculate and records how long it took. The elapsed time is returned so the caller can show it
func Timed[R any](reportType string, calculate func() (R, error)) (R, time.Duration, error) {
	start := time.Now()
	result, err := calculate()
	elapsed := time.Since(start)

	reportDuration.WithLabelValues(reportType).Observe(elapsed.Seconds())
	if err != nil {
		reportErrors.WithLabelValues(reportType, errorType(err)).Inc()
		log.Debugf("[component: metrics][report: %s][status: ERROR] report failed after %v seconds: %s", reportType, elapsed.Seconds(), err.Error())
		return result, elapsed, err
	}

	log.Debugf("[component: metrics][report: %s][status: OK] report built in %v seconds", reportType, elapsed.Seconds())
	return result, elapsed, nil
}

// SetLoadedTrips records the size of a collection, stage is loaded or filtered
func SetLoadedTrips(city string, stage string, amount int) {
	loadedTrips.WithLabelValues(city, stage).Set(float64(amount))
}

// Serve exposes /metrics on address in background. The returned server must be closed by the caller
func Serve(address string) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	server := &http.Server{
		Addr:              address,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Infof("[component: metrics][address: %s] serving /metrics", address)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Errorf("[component: metrics][address: %s][status: ERROR] metrics server stopped: %s", address, err.Error())
		}
	}()

	return server
}

func errorType(err error) string {
	switch {
	case errors.Is(err, dataErrors.ErrEmptyInput):
		return "empty_input"
	case errors.Is(err, dataErrors.ErrSchemaMissingField):
		return "schema_missing_field"
	default:
		return "other"
	}
}
