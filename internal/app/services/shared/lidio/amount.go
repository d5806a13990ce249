package lidio

import (
	"lidio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

// Amount is a monetary value normalized to two decimals, rounded half away from zero.
type Amount struct {
	value decimal.Decimal
}

func NewAmount(value any) (Amount, error) {
	return newAmount("amount", value)
}

func newAmount(field string, value any) (Amount, error) {
	d, ok := toDecimal(value)
	if !ok {
		return Amount{}, exceptions.ErrInvalidFieldType(field, "number", value)
	}
	if d.IsNegative() {
		return Amount{}, exceptions.ErrNegativeAmount(field, d.String())
	}
	return Amount{value: d.Round(2)}, nil
}

func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

func (a Amount) Float64() float64 {
	return a.value.InexactFloat64()
}

func (a Amount) String() string {
	return a.value.StringFixed(2)
}

// MarshalJSON emits the gateway's amount format, a numeric string with exactly two decimals.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}
