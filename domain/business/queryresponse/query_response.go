package queryresponse

import (
	"fmt"
	"strings"

	"bikeshare/domain/entities"
)

const stage = "explorer"

// Report any statistic report built from a trip.Collection
type Report interface {
	GetType() string
}

// QueryResponse wraps a report with the information needed to route it
// + Metadata: city, report type and filter description
// + QueryID: ID of the session cycle that built the report
// + Report: the report itself
type QueryResponse struct {
	Metadata entities.Metadata `json:"metadata"`
	QueryID  string            `json:"query_id"`
	Report   Report            `json:"report"`
}

func NewQueryResponse(queryID string, city string, filterDescription string, report Report) *QueryResponse {
	metadata := entities.NewMetadata(city, report.GetType(), stage, filterDescription)
	return &QueryResponse{
		Metadata: metadata,
		QueryID:  queryID,
		Report:   report,
	}
}

func (qr *QueryResponse) GetMetadata() entities.Metadata {
	return qr.Metadata
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

// GetRoutingKey returns prefix.city.reportType. Spaces in the city are replaced by dashes, e.g. reports.new-york-city.time-stats
func (qr *QueryResponse) GetRoutingKey(prefix string) string {
	city := strings.ReplaceAll(strings.ToLower(qr.Metadata.GetCity()), " ", "-")
	return fmt.Sprintf("%s.%s.%s", prefix, city, qr.Metadata.GetType())
}
