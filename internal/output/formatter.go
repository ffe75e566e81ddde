// Package output renders projection reports in the supported formats.
package output

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
)

// Formatter renders a single projection report to bytes.
type Formatter interface {
	Name() string
	Format(report *domain.ProjectionReport) ([]byte, error)
}

// GetFormatterByName resolves a format name to its formatter.
func GetFormatterByName(name string) (Formatter, error) {
	switch strings.ToLower(name) {
	case "console", "":
		return ConsoleFormatter{}, nil
	case "csv":
		return CSVFormatter{}, nil
	case "json":
		return JSONFormatter{}, nil
	case "pdf":
		return PDFFormatter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: console, csv, json, pdf)", name)
	}
}

// FormatCurrency formats a decimal as currency.
func FormatCurrency(amount decimal.Decimal) string {
	return "$" + groupThousands(amount.StringFixed(2))
}

// FormatPercentage formats a decimal as percentage.
func FormatPercentage(amount decimal.Decimal) string {
	return amount.StringFixed(2) + "%"
}

// groupThousands inserts comma separators into the integer part of a fixed
// decimal string.
func groupThousands(s string) string {
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, c := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	b.WriteString(fracPart)
	return b.String()
}
