package output

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/eriiiic/Retirement/internal/domain"
)

// SortField names a sortable snapshot column.
type SortField string

const (
	SortByYear       SortField = "year"
	SortByAge        SortField = "age"
	SortByCapital    SortField = "capital"
	SortByInterest   SortField = "interest"
	SortByWithdrawal SortField = "withdrawal"
)

// SortSnapshots returns a copy of the snapshots stably sorted by the given
// field. Descending reverses the order; ties keep chronological order.
func SortSnapshots(snapshots []domain.YearlySnapshot, field SortField, descending bool) ([]domain.YearlySnapshot, error) {
	var key func(s *domain.YearlySnapshot) decimal.Decimal
	switch SortField(strings.ToLower(string(field))) {
	case SortByYear, "":
		key = func(s *domain.YearlySnapshot) decimal.Decimal { return decimal.NewFromInt(int64(s.Year)) }
	case SortByAge:
		key = func(s *domain.YearlySnapshot) decimal.Decimal { return decimal.NewFromInt(int64(s.Age)) }
	case SortByCapital:
		key = func(s *domain.YearlySnapshot) decimal.Decimal { return s.Capital }
	case SortByInterest:
		key = func(s *domain.YearlySnapshot) decimal.Decimal { return s.InterestThisYear }
	case SortByWithdrawal:
		key = func(s *domain.YearlySnapshot) decimal.Decimal { return s.WithdrawalThisYear }
	default:
		return nil, fmt.Errorf("unknown sort field: %s", field)
	}

	out := append([]domain.YearlySnapshot(nil), snapshots...)
	sort.SliceStable(out, func(i, j int) bool {
		cmp := key(&out[i]).Cmp(key(&out[j]))
		if descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out, nil
}

// FilterSnapshots returns the snapshots the predicate keeps, preserving
// order.
func FilterSnapshots(snapshots []domain.YearlySnapshot, keep func(*domain.YearlySnapshot) bool) []domain.YearlySnapshot {
	out := make([]domain.YearlySnapshot, 0, len(snapshots))
	for i := range snapshots {
		if keep(&snapshots[i]) {
			out = append(out, snapshots[i])
		}
	}
	return out
}

// RetiredOnly keeps decumulation-phase snapshots.
func RetiredOnly(s *domain.YearlySnapshot) bool { return s.IsRetired }
