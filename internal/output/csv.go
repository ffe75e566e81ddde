package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/eriiiic/Retirement/internal/domain"
)

// CSVFormatter writes one row per projection year.
type CSVFormatter struct{}

func (CSVFormatter) Name() string { return "csv" }

func (CSVFormatter) Format(report *domain.ProjectionReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Year", "Age", "Retired", "Capital", "CapitalExcludingInterest",
		"Contributed", "Withdrawn", "Interest", "NetCashFlow",
		"CumulativeInvested", "CumulativeWithdrawn",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, snap := range report.Result.Snapshots {
		row := []string{
			strconv.Itoa(snap.Year),
			strconv.Itoa(snap.Age),
			strconv.FormatBool(snap.IsRetired),
			snap.Capital.StringFixed(2),
			snap.CapitalExcludingInterest.StringFixed(2),
			snap.ContributionThisYear.StringFixed(2),
			snap.WithdrawalThisYear.StringFixed(2),
			snap.InterestThisYear.StringFixed(2),
			snap.NetCashFlowExcludingInterest.StringFixed(2),
			snap.CumulativeInvested.StringFixed(2),
			snap.CumulativeWithdrawn.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
