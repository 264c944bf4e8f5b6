package kernel

import (
	"fmt"
	"math"

	"kandypack/internal/pkg/errs"
)

// SpaceEpsilon absorbs floating rounding when comparing space amounts.
// Amounts closer than this are considered equal.
const SpaceEpsilon = 1e-6

// spacePrecision is the number of decimal places space amounts are stored
// with; all constructed amounts are rounded to it.
const spacePrecision = 4

// Space is a value object representing an amount of train cargo space.
// Amounts are non-negative, finite, and rounded to 4 decimal places to stay
// consistent with the stored numeric precision.
//
// Space is immutable: arithmetic methods return new values.
//
// Example usage:
//
//	perUnit, _ := kernel.NewSpace(0.5)
//	required := perUnit.Times(4) // 2.0 space units
type Space struct {
	units float64
}

// NewSpace creates a Space amount from raw units.
// Rejects NaN, infinities, and negative amounts; rounds to 4 decimal places.
func NewSpace(units float64) (Space, error) {
	if math.IsNaN(units) || math.IsInf(units, 0) {
		return Space{}, errs.NewValueIsInvalidErrorWithCause(
			"space",
			fmt.Errorf("%v is not a finite amount", units),
		)
	}

	if units < 0 {
		return Space{}, errs.NewValueIsInvalidErrorWithCause(
			"space",
			fmt.Errorf("%v is negative", units),
		)
	}

	return Space{units: roundSpace(units)}, nil
}

// Units returns the amount in space units.
func (s Space) Units() float64 {
	return s.units
}

// IsZero reports whether the amount is zero within SpaceEpsilon.
func (s Space) IsZero() bool {
	return s.units < SpaceEpsilon
}

// IsEqual reports whether two amounts are equal within SpaceEpsilon.
func (s Space) IsEqual(other Space) bool {
	return math.Abs(s.units-other.units) < SpaceEpsilon
}

// Less reports whether s is strictly smaller than other.
// The comparison absorbs SpaceEpsilon, so amounts within the epsilon of each
// other are not considered smaller.
func (s Space) Less(other Space) bool {
	return s.units+SpaceEpsilon < other.units
}

// Add returns the sum of two amounts.
func (s Space) Add(other Space) Space {
	return Space{units: roundSpace(s.units + other.units)}
}

// Sub returns the difference s - other.
// Differences within SpaceEpsilon of zero are clamped to zero; a genuinely
// negative difference is an error.
func (s Space) Sub(other Space) (Space, error) {
	diff := s.units - other.units
	if diff < 0 {
		if diff > -SpaceEpsilon {
			return Space{}, nil
		}
		return Space{}, errs.NewValueIsInvalidErrorWithCause(
			"space",
			fmt.Errorf("%v - %v is negative", s.units, other.units),
		)
	}

	return Space{units: roundSpace(diff)}, nil
}

// Times returns the amount multiplied by a non-negative quantity.
func (s Space) Times(quantity int) (Space, error) {
	if quantity < 0 {
		return Space{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is negative", quantity),
		)
	}

	return Space{units: roundSpace(s.units * float64(quantity))}, nil
}

// String returns the amount formatted with the stored precision.
func (s Space) String() string {
	return fmt.Sprintf("%.*f", spacePrecision, s.units)
}

func roundSpace(v float64) float64 {
	shift := math.Pow10(spacePrecision)
	return math.Round(v*shift) / shift
}
