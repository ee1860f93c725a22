package money

import (
	"fmt"
	"math/bits"

	"github.com/shopspring/decimal"
)

// pow10 is a cache of powers of 10, where pow10[x] = 10^x.
var pow10 = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// decimalFromFraction returns numerator/denominator for denominators that are
// positive powers of ten. The pair 0/0 is read as 0/1.
func decimalFromFraction(num, den int64) (decimal.Decimal, error) {
	if num == 0 && den == 0 {
		den = 1
	}
	if den <= 0 {
		return decimal.Decimal{}, fmt.Errorf("%v/%v: %w", num, den, ErrInvalidFraction)
	}
	// 10^n = 2^n * 5^n has exactly n trailing binary zeros.
	scale := bits.TrailingZeros64(uint64(den))
	if scale > MaxScale || pow10[scale] != den {
		return decimal.Decimal{}, fmt.Errorf("%v/%v: denominator is not a power of ten: %w", num, den, ErrInvalidFraction)
	}
	return decimal.New(num, int32(-scale)), nil
}

// NewFromFraction returns an amount of commodity c equal to num/den,
// rounded to the fraction digits of c using rounding half to even.
// See also methods [Money.Numerator], [Money.Denominator].
//
// NewFromFraction returns an error if den is not a positive power of ten.
// The pair 0/0 is read as 0/1.
func NewFromFraction(num, den int64, c Commodity) (Money, error) {
	d, err := decimalFromFraction(num, den)
	if err != nil {
		return Money{}, fmt.Errorf("converting fraction: %w", err)
	}
	return newMoney(c, d), nil
}

// Numerator returns the amount multiplied by 10^[Money.Scale], so that
// the amount equals Numerator / Denominator.
//
// Numerator returns a [*NonExactError] if the result does not fit into int64.
func (m Money) Numerator() (int64, error) {
	scale := m.Scale()
	n := m.Decimal().Shift(int32(scale))
	if !n.IsInteger() || !n.BigInt().IsInt64() {
		return 0, &NonExactError{
			Commodity: m.Commodity().Code(),
			Scale:     scale,
			Amount:    m.Decimal().String(),
		}
	}
	return n.IntPart(), nil
}

// Denominator returns 10^[Money.Scale].
func (m Money) Denominator() int64 {
	return pow10[m.Scale()]
}
