package domain

// RetirementSpecKind tags the two interpretations of the raw retirement input.
type RetirementSpecKind int

const (
	RetirementAtAge RetirementSpecKind = iota
	RetirementInYear
)

// RetirementSpec is the classified retirement input: either an age or an
// absolute calendar year.
type RetirementSpec struct {
	Kind  RetirementSpecKind
	Value int
}

// ClassifyRetirementInput applies the best-effort disambiguation rule over a
// single user-entered integer: values of at most two digits are ages, and
// four-digit values are calendar years only when they carry the "20" century
// prefix. Everything else is taken as an absolute year. The rule is
// intentionally imprecise at the edges (three-digit ages, turn-of-century
// years); it mirrors what a user plausibly typed, not a strict validation.
func ClassifyRetirementInput(raw int) RetirementSpec {
	if raw >= 0 && raw <= 99 {
		return RetirementSpec{Kind: RetirementAtAge, Value: raw}
	}
	if raw >= 1000 && raw <= 9999 && (raw < 2000 || raw >= 2100) {
		return RetirementSpec{Kind: RetirementAtAge, Value: raw}
	}
	return RetirementSpec{Kind: RetirementInYear, Value: raw}
}

// ResolveYear converts the spec to a concrete calendar year given the
// subject's current age and the current calendar year.
func (s RetirementSpec) ResolveYear(currentAge, currentYear int) int {
	if s.Kind == RetirementAtAge {
		return currentYear + (s.Value - currentAge)
	}
	return s.Value
}
