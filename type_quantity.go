package holdings

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// notionalPlaces is the number of decimal places kept on a BOT or SLD notional.
const notionalPlaces = 4

// Parsed quantities are bounded: at most maxDigits significant digits and an
// exponent within ±maxExponent. Rounding a value far outside those bounds
// would have to build a power of ten with as many digits as its exponent.
const (
	maxDigits   = 38
	maxExponent = 28
)

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// Quantity is an exact decimal number: a number of units, a price, an asset
// position or a cash balance.
type Quantity struct {
	value decimal.Decimal
}

// Q returns a Quantity from a Go number.
func Q[T float64 | int | int64 | decimal.Decimal](value T) Quantity {
	return Quantity{value: newDecimal(value)}
}

// ParseQuantity parses a decimal literal such as "100", "100.231" or "1e3".
// Surrounding spaces are not accepted, nor are literals with more than 38
// significant digits or an exponent beyond ±28.
func ParseQuantity(s string) (Quantity, error) {
	v, err := decimal.NewFromString(s)
	if err != nil {
		return Quantity{}, err
	}
	if exp := v.Exponent(); exp < -maxExponent || exp > maxExponent {
		return Quantity{}, fmt.Errorf("quantity %q: exponent %d out of range", s, exp)
	}
	if n := v.NumDigits(); n > maxDigits {
		return Quantity{}, fmt.Errorf("quantity %q: %d digits, more than %d", s, n, maxDigits)
	}
	return Quantity{value: v}, nil
}

// MustParseQuantity is like ParseQuantity but panics on error.
func MustParseQuantity(s string) Quantity {
	q, err := ParseQuantity(s)
	if err != nil {
		panic(err.Error())
	}
	return q
}

func (q Quantity) Equal(p Quantity) bool       { return q.value.Equal(p.value) }
func (q Quantity) LessThan(p Quantity) bool    { return q.value.LessThan(p.value) }
func (q Quantity) GreaterThan(p Quantity) bool { return q.value.GreaterThan(p.value) }
func (q Quantity) Add(p Quantity) Quantity     { return Quantity{value: q.value.Add(p.value)} }
func (q Quantity) Sub(p Quantity) Quantity     { return Quantity{value: q.value.Sub(p.value)} }
func (q Quantity) Mul(p Quantity) Quantity     { return Quantity{value: q.value.Mul(p.value)} }
func (q Quantity) Neg() Quantity               { return Quantity{value: q.value.Neg()} }
func (q Quantity) IsNegative() bool            { return q.value.IsNegative() }
func (q Quantity) IsPositive() bool            { return q.value.IsPositive() }
func (q Quantity) IsZero() bool                { return q.value.IsZero() }
func (q Quantity) String() string              { return q.value.String() }

// Decimal returns the underlying decimal value.
func (q Quantity) Decimal() decimal.Decimal { return q.value }

// InexactFloat64 returns the nearest float64, for display only.
func (q Quantity) InexactFloat64() float64 { return q.value.InexactFloat64() }

// round4 rounds q to four decimal places, half away from zero, on its decimal
// representation. round4(round4(x)) == round4(x).
func round4(q Quantity) Quantity {
	return Quantity{value: q.value.Round(notionalPlaces)}
}

// MarshalJSON writes the quantity as a bare JSON number.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return []byte(q.value.String()), nil
}

func (q *Quantity) UnmarshalJSON(decimalBytes []byte) error {
	return q.value.UnmarshalJSON(decimalBytes)
}
