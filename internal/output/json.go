package output

import (
	"encoding/json"

	"github.com/eriiiic/Retirement/internal/domain"
)

// JSONFormatter marshals the full report, snapshots included.
type JSONFormatter struct{}

func (JSONFormatter) Name() string { return "json" }

func (JSONFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	return json.MarshalIndent(report, "", "  ")
}
