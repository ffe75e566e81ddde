package compare

import (
	"encoding/json"
)

// JSONFormatter marshals the comparison set, full reports included.
type JSONFormatter struct{}

func (jf *JSONFormatter) Format(compSet *ComparisonSet) ([]byte, error) {
	return json.MarshalIndent(compSet, "", "  ")
}
