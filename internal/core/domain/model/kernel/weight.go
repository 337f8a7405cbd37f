package kernel

import (
	"strings"

	"cargo/internal/pkg/errs"
	"cargo/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrWeightIsNotConstructed is returned when a Weight was not created via a constructor.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError("weight must be created via NewWeight or ParseWeight")

// Weight is a non-negative cargo weight in kilograms. Decimal arithmetic keeps
// values such as "1.5" exact across persistence round-trips.
type Weight struct {
	kg    decimal.Decimal
	guard guard.ConstructorGuard
}

// NewWeight wraps an already numeric value, rejecting negatives.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), 0, "unbounded")
	}
	return Weight{kg: kg, guard: guard.NewConstructorGuard()}, nil
}

// ParseWeight parses user input such as "1500" or "2.5". Non-numeric input is
// a ValueIsInvalid error, negative input a ValueIsOutOfRange error.
func ParseWeight(raw string) (Weight, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Weight{}, errs.NewValueIsRequiredError("weight")
	}

	kg, err := decimal.NewFromString(strings.ReplaceAll(raw, ",", "."))
	if err != nil {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight", err)
	}
	return NewWeight(kg)
}

// Kilograms returns the decimal value.
func (w Weight) Kilograms() decimal.Decimal {
	return w.kg
}

// String returns the plain decimal representation.
func (w Weight) String() string {
	return w.kg.String()
}

// Validate reports whether the weight was built by a constructor.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}
