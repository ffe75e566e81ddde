package compare

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter writes one comparison row per scenario, base first.
type CSVFormatter struct{}

func (cf *CSVFormatter) Format(compSet *ComparisonSet) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{
		"Scenario", "IsBase", "CapitalAtRetirement", "FinalCapital",
		"TotalWithdrawn", "CapitalLongevityYears",
		"FinalCapitalDiffFromBase", "FinalCapitalPctFromBase", "LongevityDiffFromBase",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	writeRow := func(r *ComparisonResult, isBase bool) error {
		return w.Write([]string{
			r.ScenarioName,
			strconv.FormatBool(isBase),
			r.CapitalAtRetirement.StringFixed(2),
			r.FinalCapital.StringFixed(2),
			r.TotalWithdrawn.StringFixed(2),
			strconv.Itoa(r.CapitalLongevityYears),
			r.FinalCapitalDiffFromBase.StringFixed(2),
			r.FinalCapitalPctFromBase.StringFixed(2),
			strconv.Itoa(r.LongevityDiffFromBase),
		})
	}

	if err := writeRow(compSet.BaseResult, true); err != nil {
		return nil, err
	}
	for i := range compSet.AlternativeResults {
		if err := writeRow(&compSet.AlternativeResults[i], false); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
