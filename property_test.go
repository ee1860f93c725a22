package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

var propertyCodes = []string{"USD", "EUR", "JPY", "OMR", "XXX"}

// genMoney draws amounts of commodity code with up to 15 integer digits.
func genMoney(code string) *rapid.Generator[Money] {
	return rapid.Custom(func(t *rapid.T) Money {
		c := testReg.MustLookup(code)
		scale := c.FractionDigits()
		if scale < 0 {
			scale = rapid.IntRange(0, 6).Draw(t, "scale")
		}
		n := rapid.Int64Range(-1e15, 1e15).Draw(t, "n")
		return New(decimal.New(n, int32(-scale)), c)
	})
}

func drawCode(t *rapid.T) string {
	return rapid.SampledFrom(propertyCodes).Draw(t, "code")
}

func TestProperty_ParsePlainString(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		n := rapid.Int64Range(-1e12, 1e12).Draw(t, "n")
		exp := rapid.IntRange(-8, 2).Draw(t, "exp")
		d := decimal.New(n, int32(exp))

		m, err := testReg.Parse(d.StringFixed(int32(max(-exp, 0))), code)
		require.NoError(t, err)
		c := m.Commodity()
		want := d.RoundBank(int32(scaleOf(c, d))).StringFixed(int32(m.Scale()))
		assert.Equal(t, want, m.PlainString())

		again, err := testReg.Parse(m.PlainString(), code)
		require.NoError(t, err)
		assert.True(t, again.Equal(m), "%v reparsed as %v", m, again)
	})
}

func TestProperty_FractionRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		m := genMoney(code).Draw(t, "m")

		num, err := m.Numerator()
		require.NoError(t, err)
		got, err := testReg.NewFromFraction(num, m.Denominator(), m.Commodity().Code())
		require.NoError(t, err)
		assert.True(t, got.Equal(m), "%v restored as %v", m, got)
		assert.Equal(t, m.String(), got.String())
	})
}

func TestProperty_AddCommutativeAssociative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		g := genMoney(code)
		a, b, c := g.Draw(t, "a"), g.Draw(t, "b"), g.Draw(t, "c")

		ab, err := a.Add(b)
		require.NoError(t, err)
		ba, err := b.Add(a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba))

		abc, err := ab.Add(c)
		require.NoError(t, err)
		bc, err := b.Add(c)
		require.NoError(t, err)
		abc2, err := a.Add(bc)
		require.NoError(t, err)
		assert.True(t, abc.Equal(abc2))
	})
}

func TestProperty_MulCommutative(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		g := genMoney(code)
		a, b := g.Draw(t, "a"), g.Draw(t, "b")

		ab, err := a.Mul(b)
		require.NoError(t, err)
		ba, err := b.Mul(a)
		require.NoError(t, err)
		assert.True(t, ab.Equal(ba))
	})
}

func TestProperty_AddSubInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		g := genMoney(code)
		a, b := g.Draw(t, "a"), g.Draw(t, "b")

		sum, err := a.Add(b)
		require.NoError(t, err)
		got, err := sum.Sub(b)
		require.NoError(t, err)
		assert.True(t, got.Equal(a), "%v + %v - %v = %v", a, b, b, got)
	})
}

func TestProperty_CurrencyMismatch(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		codes := rapid.Permutation(propertyCodes).Draw(t, "codes")
		a := genMoney(codes[0]).Draw(t, "a")
		b := genMoney(codes[1]).Draw(t, "b")

		_, err := a.Add(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch, "add")
		_, err = a.Sub(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch, "subtract")
		_, err = a.Mul(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch, "multiply")
		_, err = a.Quo(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch, "divide")
		_, err = a.Cmp(b)
		assert.ErrorIs(t, err, ErrCurrencyMismatch, "compare")
		assert.False(t, a.Equal(b))
	})
}

func TestProperty_QuoMul(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := drawCode(t)
		g := genMoney(code)
		a, b := g.Draw(t, "a"), g.Draw(t, "b")
		if b.IsZero() {
			t.Skip("zero divisor")
		}

		q, err := a.Quo(b)
		require.NoError(t, err)
		got, err := q.Mul(b)
		require.NoError(t, err)

		// Each of the two roundings is at most half a unit in the last place,
		// the first one is scaled by b.
		ulp := decimal.New(1, int32(-q.Scale()))
		limit := b.Decimal().Abs().Add(decimal.NewFromInt(1)).Mul(ulp)
		diff := got.Decimal().Sub(a.Decimal()).Abs()
		assert.True(t, diff.LessThanOrEqual(limit), "%v / %v * %v = %v", a, b, b, got)
	})
}

func TestProperty_NegAbs(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMoney(drawCode(t)).Draw(t, "m")

		assert.True(t, m.Neg().Neg().Equal(m))
		assert.True(t, m.Abs().Equal(m.Neg().Abs()))
		assert.False(t, m.Abs().IsNeg())

		zero, err := m.Add(m.Neg())
		require.NoError(t, err)
		assert.True(t, zero.IsZero())
	})
}

func TestProperty_HashEqual(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMoney(drawCode(t)).Draw(t, "m")
		c := Copy(m)
		assert.True(t, c.Equal(m))
		assert.Equal(t, m.Hash(), c.Hash())
	})
}

func TestProperty_Split(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		m := genMoney(drawCode(t)).Draw(t, "m")
		parts := rapid.IntRange(1, 20).Draw(t, "parts")

		res, err := m.Split(parts)
		require.NoError(t, err)
		require.Len(t, res, parts)
		sum := res[0]
		for _, p := range res[1:] {
			sum, err = sum.Add(p)
			require.NoError(t, err)
		}
		assert.True(t, sum.Equal(m), "sum of %v split into %v parts is %v", m, parts, sum)
	})
}

func TestExamples(t *testing.T) {
	m := testReg.MustParse("32.50", "USD")
	num, err := m.Numerator()
	require.NoError(t, err)
	assert.Equal(t, int64(3250), num)
	assert.Equal(t, int64(100), m.Denominator())

	f, err := testReg.NewFromFraction(3250, 100, "USD")
	require.NoError(t, err)
	assert.Equal(t, "32.50", f.PlainString())

	_, err = testReg.MustParse("10.00", "USD").Add(testReg.MustParse("5.00", "EUR"))
	assert.ErrorIs(t, err, ErrCurrencyMismatch)

	z, err := testReg.Zero("JPY")
	require.NoError(t, err)
	assert.True(t, z.IsZero())
	assert.Equal(t, 0, z.Commodity().FractionDigits())
	assert.Equal(t, 0, z.Scale())

	s := testReg.MustParse("5.00", "USD").FormattedString(language.MustParse("fr-FR"))
	assert.Contains(t, s, "US$")
	assert.NotContains(t, s, " $")
}
