package money

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"unicode/utf8"

	"github.com/OneOfOne/xxhash"
	fixed "github.com/govalues/decimal"
	"github.com/shopspring/decimal"
)

// MaxScale is the maximum number of digits after the decimal point that
// an amount in a commodity with unset fraction digits can have.
const MaxScale = 18

var (
	// ErrCurrencyMismatch is returned by binary operations on amounts
	// denominated in different commodities.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrNonExact is returned when an amount cannot be represented as an
	// exact integer numerator at the scale of its commodity.
	ErrNonExact = errors.New("non-exact numerator")
	// ErrDivisionByZero is returned when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidFraction is returned for numerator/denominator pairs that
	// this package never produces.
	ErrInvalidFraction = errors.New("invalid fraction")
)

// NonExactError describes an amount that cannot be stored as an exact
// numerator/denominator pair.
// It matches [ErrNonExact] when used with [errors.Is].
type NonExactError struct {
	Commodity string // commodity code
	Scale     int    // computed scale
	Amount    string // raw amount
}

func (e *NonExactError) Error() string {
	return fmt.Sprintf("commodity %v with scale %v has amount %v: %v", e.Commodity, e.Scale, e.Amount, ErrNonExact)
}

func (e *NonExactError) Is(target error) bool {
	return target == ErrNonExact
}

// Money type represents an amount of a commodity.
// Its zero value corresponds to "XXX 0", where [XXX] indicates that no
// commodity is involved.
//
// The amount is an arbitrary-precision decimal number, stored with exactly as
// many digits after the decimal point as the commodity defines.
// Money is immutable and safe for concurrent use by multiple goroutines.
//
// [XXX]: https://en.wikipedia.org/wiki/ISO_4217#X_currencies_(funds,_precious_metals,_supranationals,_other)
type Money struct {
	comm   Commodity
	amount decimal.Decimal
}

// scaleOf returns the scale an amount takes in commodity c.
func scaleOf(c Commodity, d decimal.Decimal) int {
	if s := c.FractionDigits(); s >= 0 {
		return s
	}
	return min(max(int(-d.Exponent()), 0), MaxScale)
}

// newMoney normalizes the amount to the scale of the commodity
// using rounding half to even.
func newMoney(c Commodity, d decimal.Decimal) Money {
	return Money{comm: c, amount: d.RoundBank(int32(scaleOf(c, d)))}
}

// New returns an amount of commodity c, rounded to the fraction digits of c
// using [rounding half to even] (banker's rounding).
// See also [Registry.Parse] and [Registry.NewFromFraction].
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func New(amount decimal.Decimal, c Commodity) Money {
	return newMoney(c, amount)
}

// NewFromInt returns an amount of commodity c equal to the integer i.
func NewFromInt(i int64, c Commodity) Money {
	return newMoney(c, decimal.NewFromInt(i))
}

// NewFromFixed converts a fixed-precision decimal to a (possibly rounded) amount
// of commodity c.
// See also method [Money.Fixed].
func NewFromFixed(d fixed.Decimal, c Commodity) Money {
	coef := new(big.Int).SetUint64(d.Coef())
	if d.IsNeg() {
		coef.Neg(coef)
	}
	return newMoney(c, decimal.NewFromBigInt(coef, int32(-d.Scale())))
}

// Copy returns an amount equal to m, normalized to the scale of its commodity.
func Copy(m Money) Money {
	return newMoney(m.Commodity(), m.Decimal())
}

// Commodity returns the commodity of the amount.
func (m Money) Commodity() Commodity {
	return m.comm
}

// Decimal returns the decimal representation of the amount.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// Fixed returns the amount as a fixed-precision decimal.
// Fixed returns an error if the amount has more than [fixed.MaxPrec] digits.
// See also constructor [NewFromFixed].
func (m Money) Fixed() (fixed.Decimal, error) {
	d, err := fixed.Parse(m.PlainString())
	if err != nil {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", m, err)
	}
	if !NewFromFixed(d, m.Commodity()).Equal(m) {
		return fixed.Decimal{}, fmt.Errorf("converting %v: %w", m, ErrNonExact)
	}
	return d, nil
}

// Float64 returns the nearest binary floating-point number.
// This conversion may lose data and is meant for display purposes only.
func (m Money) Float64() float64 {
	return m.Decimal().InexactFloat64()
}

// Scale returns the number of digits after the decimal point.
// It is equal to the fraction digits of the commodity, or, when those are unset,
// to the own scale of the amount.
func (m Money) Scale() int {
	return scaleOf(m.Commodity(), m.Decimal())
}

// WithCommodity returns an amount with the same value denominated in
// commodity c, rounded to its fraction digits.
// No exchange between commodities is performed.
func (m Money) WithCommodity(c Commodity) Money {
	return newMoney(c, m.Decimal())
}

// SameCommodity returns true if amounts are denominated in the same commodity.
func (m Money) SameCommodity(b Money) bool {
	return m.Commodity().Equal(b.Commodity())
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.Decimal().Sign()
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.Decimal().IsNegative()
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.Decimal().IsPositive()
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.Decimal().IsZero()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{comm: m.comm, amount: m.amount.Abs()}
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return Money{comm: m.comm, amount: m.amount.Neg()}
}

// Add returns the sum of amounts m and b.
//
// Add returns an error if amounts are denominated in different commodities.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCommodity(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(m.Commodity(), m.Decimal().Add(b.Decimal())), nil
}

// Sub returns the difference between amounts m and b.
//
// Sub returns an error if amounts are denominated in different commodities.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCommodity(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(m.Commodity(), m.Decimal().Sub(b.Decimal())), nil
}

// Mul returns the (possibly rounded) product of amounts m and b.
//
// Mul returns an error if amounts are denominated in different commodities.
func (m Money) Mul(b Money) (Money, error) {
	c, err := m.mul(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) mul(b Money) (Money, error) {
	if !m.SameCommodity(b) {
		return Money{}, ErrCurrencyMismatch
	}
	return newMoney(m.Commodity(), m.Decimal().Mul(b.Decimal())), nil
}

// Quo returns the quotient of amounts m and b, rounded to the scale of
// the commodity using [rounding half to even] (banker's rounding).
// When the commodity has unset fraction digits, the larger scale of m and b is used,
// so integer amounts give an integer quotient: "XAU 1" / "XAU 3" is "XAU 0",
// while "XAU 1.000000" / "XAU 3" is "XAU 0.333333".
//
// Quo returns an error if:
//   - amounts are denominated in different commodities;
//   - the divisor is 0.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Quo(b Money) (Money, error) {
	c, err := m.quo(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) quo(b Money) (Money, error) {
	if !m.SameCommodity(b) {
		return Money{}, ErrCurrencyMismatch
	}
	if b.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	scale := m.Commodity().FractionDigits()
	if scale < 0 {
		scale = max(m.Scale(), b.Scale())
	}
	return newMoney(m.Commodity(), quoBank(m.Decimal(), b.Decimal(), int32(scale))), nil
}

var two = decimal.NewFromInt(2)

// quoBank returns d / e rounded half to even to the given number of places.
// The divisor must not be zero.
func quoBank(d, e decimal.Decimal, places int32) decimal.Decimal {
	q, r := d.QuoRem(e, places)
	if r.IsZero() {
		return q
	}
	// Compare the remainder with half of the divisor's weight in the last place.
	switch r.Abs().Mul(two).Cmp(e.Abs().Shift(-places)) {
	case -1:
		return q
	case 0:
		if q.Shift(places).BigInt().Bit(0) == 0 {
			return q
		}
	}
	ulp := decimal.New(1, -places)
	if d.Sign()*e.Sign() < 0 {
		return q.Sub(ulp)
	}
	return q.Add(ulp)
}

// MulInt returns the product of amount m and integer factor f.
// The factor is treated as an amount of the same commodity, so MulInt never
// reports a currency mismatch.
func (m Money) MulInt(f int64) Money {
	return m.MulScalar(decimal.NewFromInt(f))
}

// MulScalar returns the (possibly rounded) product of amount m and factor f.
// The factor is first converted to an amount of the same commodity, which
// rounds it to the fraction digits of the commodity.
// Use [Money.MulRate] to multiply by an exact factor.
func (m Money) MulScalar(f decimal.Decimal) Money {
	// Same commodity by construction.
	c, _ := m.mul(newMoney(m.Commodity(), f))
	return c
}

// MulRate returns the product of amount m and the exact factor e, rounded
// to the scale of the commodity using rounding half to even.
// This method is useful for applying tax rates or prices.
func (m Money) MulRate(e decimal.Decimal) Money {
	return newMoney(m.Commodity(), m.Decimal().Mul(e))
}

// QuoInt returns the quotient of amount m and integer divisor i.
// See also method [Money.Quo].
//
// QuoInt returns an error if the divisor is 0.
func (m Money) QuoInt(i int64) (Money, error) {
	return m.QuoScalar(decimal.NewFromInt(i))
}

// QuoScalar returns the quotient of amount m and divisor e.
// The divisor is first converted to an amount of the same commodity, which
// rounds it to the fraction digits of the commodity.
//
// QuoScalar returns an error if the (rounded) divisor is 0.
func (m Money) QuoScalar(e decimal.Decimal) (Money, error) {
	c, err := m.quo(newMoney(m.Commodity(), e))
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

// Split returns a slice of amounts that sum up to the original amount,
// ensuring the parts are as equal as possible.
// If the original amount cannot be divided equally among the specified number
// of parts, the remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	r, err := m.split(parts)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return r, nil
}

func (m Money) split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("number of parts must be positive")
	}
	scale := int32(m.Scale())

	// Quotient and remainder
	quo, rem := m.Decimal().QuoRem(decimal.NewFromInt(int64(parts)), scale)
	ulp := decimal.New(1, -scale)
	if rem.IsNegative() {
		ulp = ulp.Neg()
	}

	res := make([]Money, parts)
	for i := range res {
		part := quo
		// Remainder distribution
		if !rem.IsZero() {
			rem = rem.Sub(ulp)
			part = part.Add(ulp)
		}
		res[i] = newMoney(m.Commodity(), part)
	}
	return res, nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if amounts are denominated in different commodities.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCommodity(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.Decimal().Cmp(b.Decimal()), nil
}

// Min returns the smaller amount.
//
// Min returns an error if amounts are denominated in different commodities.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c <= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger amount.
//
// Max returns an error if amounts are denominated in different commodities.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.Cmp(b); {
	case err != nil:
		return Money{}, err
	case c >= 0:
		return m, nil
	default:
		return b, nil
	}
}

// Equal returns true if amounts have equal values and are denominated in
// the same commodity.
// Equal values in different commodities are not equal.
func (m Money) Equal(b Money) bool {
	return m.SameCommodity(b) && m.Decimal().Equal(b.Decimal())
}

// Hash returns a hash of the amount consistent with [Money.Equal].
func (m Money) Hash() uint64 {
	// Trailing zeros are trimmed by String.
	return xxhash.ChecksumString64(m.Commodity().Code() + " " + m.Decimal().String())
}

// PlainString returns the amount with exactly [Money.Scale] digits after
// the decimal point, a period as the decimal separator and neither the
// commodity symbol nor digit grouping, for example "-1234.50".
// It is the inverse of [Registry.Parse].
func (m Money) PlainString() string {
	return m.Decimal().StringFixed(int32(m.Scale()))
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the amount, for example "USD 32.50".
// See also methods [Money.PlainString], [Money.FormattedString].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Commodity().Code() + " " + m.PlainString()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example     | Description                |
//	| ------ | ----------- | -------------------------- |
//	| %s, %v | USD 5.68    | Commodity and amount       |
//	| %q     | "USD 5.68"  | Quoted commodity and amount|
//	| %f     | 5.68        | Amount                     |
//	| %d     | 568         | Amount in minor units      |
//	| %c     | USD         | Commodity                  |
//
// The '-' format flag can be used with all verbs.
// The '+', ' ', '0' format flags can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// Precisions below the scale of the amount are ignored.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	c, d := m.Commodity(), m.Decimal()

	// Rescaling
	scale := m.Scale()
	switch p, ok := state.Precision(); {
	case verb == 'd' || verb == 'D':
		d, scale = d.Shift(int32(scale)), 0
	case ok && (verb == 'f' || verb == 'F'):
		scale = max(p, scale)
	}

	// Digits
	digits := ""
	if verb != 'c' && verb != 'C' {
		digits = d.Abs().StringFixed(int32(scale))
	}

	// Arithmetic sign
	sign := ""
	switch {
	case verb == 'c' || verb == 'C':
		// skip
	case d.IsNegative():
		sign = "-"
	case state.Flag('+'):
		sign = "+"
	case state.Flag(' '):
		sign = " "
	}

	// Commodity code and delimiter
	curr := ""
	switch verb {
	case 'f', 'F', 'd', 'D':
		// skip
	case 'c', 'C':
		curr = c.Code()
	default:
		curr = c.Code() + " "
	}

	// Quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}

	// Padding
	lspaces, lzeros, tspaces := "", "", ""
	width := utf8.RuneCountInString(quote+curr+sign+digits+quote)
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = strings.Repeat(" ", w-width)
		case state.Flag('0') && verb != 'c' && verb != 'C':
			lzeros = strings.Repeat("0", w-width)
		default:
			lspaces = strings.Repeat(" ", w-width)
		}
	}

	buf := lspaces + quote + curr + sign + lzeros + digits + quote + tspaces

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(buf))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(buf))
		state.Write([]byte(")"))
	}
}
