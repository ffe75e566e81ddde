// Package annuity implements the closed-form time-value-of-money identities
// used to seed and calibrate the monthly projection loop: future value of a
// principal plus an ordinary annuity, payment that exhausts a present value,
// present value of a payment stream, and inflation compounding.
//
// All rates are fractions (0.07 means 7%) per period. Numeric degeneracies
// (near-zero or negative rates, zero period counts) are resolved here with
// documented fallback formulas; no NaN or infinity ever leaves this package.
// Invalid inputs saturate rather than error: negative period counts clamp to
// zero and rates at or below -100% clamp to just above it.
package annuity

import (
	"math"

	"github.com/shopspring/decimal"
)

var (
	one = decimal.NewFromInt(1)

	// minRate is the saturation floor for per-period rates. A rate of -100%
	// or less has no meaningful compounding interpretation.
	minRate = decimal.NewFromFloat(-0.999999)
)

// sanitizePeriods clamps a negative period count to zero.
func sanitizePeriods(periods int) int {
	if periods < 0 {
		return 0
	}
	return periods
}

// sanitizeRate clamps a per-period rate to the supported domain (> -100%).
func sanitizeRate(rate decimal.Decimal) decimal.Decimal {
	if rate.LessThanOrEqual(minRate) {
		return minRate
	}
	return rate
}

// powInt computes (1+rate)^periods exactly in decimal arithmetic.
func powInt(rate decimal.Decimal, periods int) decimal.Decimal {
	return one.Add(rate).Pow(decimal.NewFromInt(int64(periods)))
}

// MonthlyRate converts a nominal annual rate to the true monthly-equivalent
// rate, (1+annual)^(1/12) - 1. This is deliberately not annual/12: the two
// differ for any non-zero rate and the distinction is load-bearing when
// reconciling monthly simulation against annual closed-form results.
func MonthlyRate(annual decimal.Decimal) decimal.Decimal {
	annual = sanitizeRate(annual)
	if annual.IsZero() {
		return decimal.Zero
	}
	v := math.Pow(one.Add(annual).InexactFloat64(), 1.0/12.0) - 1
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(v)
}

// RealRate derives the inflation-adjusted growth rate from nominal growth
// and inflation via the Fisher relation: (1+g)/(1+i) - 1. The simple
// subtraction g-i is only ever used as a degeneracy check, never to solve.
func RealRate(nominal, inflation decimal.Decimal) decimal.Decimal {
	nominal = sanitizeRate(nominal)
	inflation = sanitizeRate(inflation)
	return one.Add(nominal).Div(one.Add(inflation)).Sub(one)
}

// FutureValue returns the value of a principal growing at periodicRate for
// the given number of periods, plus the future value of an ordinary annuity
// of periodicContribution per period at the same rate. Zero periods returns
// the principal unchanged.
func FutureValue(principal, periodicRate decimal.Decimal, periods int, periodicContribution decimal.Decimal) decimal.Decimal {
	periods = sanitizePeriods(periods)
	periodicRate = sanitizeRate(periodicRate)
	if periods == 0 {
		return principal
	}

	growth := powInt(periodicRate, periods)
	fv := principal.Mul(growth)

	if periodicContribution.IsZero() {
		return fv
	}
	if periodicRate.IsZero() {
		return fv.Add(periodicContribution.Mul(decimal.NewFromInt(int64(periods))))
	}
	annuityFactor := growth.Sub(one).Div(periodicRate)
	return fv.Add(periodicContribution.Mul(annuityFactor))
}

// PaymentForAnnuity solves for the constant per-period payment that exactly
// exhausts presentValue over the given periods at periodicRate. When the
// rate is zero or negative the annuity denominator degenerates, so the
// payment falls back to straight-line division; zero or negative periods
// yield a zero payment.
func PaymentForAnnuity(presentValue, periodicRate decimal.Decimal, periods int) decimal.Decimal {
	periods = sanitizePeriods(periods)
	if periods == 0 {
		return decimal.Zero
	}
	periodicRate = sanitizeRate(periodicRate)
	n := decimal.NewFromInt(int64(periods))

	if periodicRate.LessThanOrEqual(decimal.Zero) {
		return presentValue.Div(n)
	}

	// pmt = PV * r / (1 - (1+r)^-n)
	discount := one.Sub(one.Div(powInt(periodicRate, periods)))
	if discount.IsZero() {
		return presentValue.Div(n)
	}
	return presentValue.Mul(periodicRate).Div(discount)
}

// PresentValueOfAnnuity is the inverse of PaymentForAnnuity: the present
// value required to fund a fixed per-period payment stream. The same
// degenerate fallback applies: non-positive rates value the stream at
// payment times periods.
func PresentValueOfAnnuity(periodicPayment, periodicRate decimal.Decimal, periods int) decimal.Decimal {
	periods = sanitizePeriods(periods)
	if periods == 0 {
		return decimal.Zero
	}
	periodicRate = sanitizeRate(periodicRate)
	n := decimal.NewFromInt(int64(periods))

	if periodicRate.LessThanOrEqual(decimal.Zero) {
		return periodicPayment.Mul(n)
	}

	discount := one.Sub(one.Div(powInt(periodicRate, periods)))
	return periodicPayment.Mul(discount).Div(periodicRate)
}

// Inflate compounds an amount forward by annualInflation over whole years,
// producing its future nominal value.
func Inflate(amount, annualInflation decimal.Decimal, years int) decimal.Decimal {
	years = sanitizePeriods(years)
	if years == 0 {
		return amount
	}
	return amount.Mul(powInt(sanitizeRate(annualInflation), years))
}

// Deflate is the inverse of Inflate: it discounts a future nominal amount
// back to present-value terms.
func Deflate(amount, annualInflation decimal.Decimal, years int) decimal.Decimal {
	years = sanitizePeriods(years)
	if years == 0 {
		return amount
	}
	factor := powInt(sanitizeRate(annualInflation), years)
	if factor.IsZero() {
		return amount
	}
	return amount.Div(factor)
}
