package money

import (
	"bytes"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestNewRegistry(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		r, err := NewRegistry()
		require.NoError(t, err)
		assert.Equal(t, "USD", r.Default().Code())
		assert.Equal(t, language.AmericanEnglish, r.Locale())
		assert.Equal(t, "USD 0.00", r.DefaultZero().String())
		assert.True(t, r.DefaultZero().Equal(r.DefaultZero()))
		assert.Len(t, r.Commodities(), len(iso4217))
	})

	t.Run("options", func(t *testing.T) {
		r, err := NewRegistry(
			WithDefault("jpy"),
			WithLocale(language.German),
			WithCommodities(CommodityDef{Code: "AAPL", Name: "Apple Inc.", FractionDigits: intPtr(4)}),
		)
		require.NoError(t, err)
		assert.Equal(t, "JPY", r.Default().Code())
		assert.Equal(t, language.German, r.Locale())
		assert.Equal(t, "JPY 0", r.DefaultZero().String())
		assert.Equal(t, 0, r.DefaultZero().Scale())
		assert.Len(t, r.Commodities(), len(iso4217)+1)

		got, err := r.Parse("1.23456", "aapl")
		require.NoError(t, err)
		assert.Equal(t, "AAPL 1.2346", got.String())
	})

	t.Run("replace built-in", func(t *testing.T) {
		r, err := NewRegistry(WithCommodities(CommodityDef{Code: "USD", Num: "840", FractionDigits: intPtr(3)}))
		require.NoError(t, err)
		assert.Equal(t, 3, r.MustLookup("840").FractionDigits())
		assert.Equal(t, "USD 0.000", r.DefaultZero().String())
		assert.Equal(t, "USD 1.000", r.MustParse("1.0005", "USD").String())
		assert.Len(t, r.Commodities(), len(iso4217))
	})

	t.Run("logger", func(t *testing.T) {
		var buf bytes.Buffer
		log := zerolog.New(&buf).Level(zerolog.DebugLevel)
		_, err := NewRegistry(
			WithLogger(log),
			WithCommodities(CommodityDef{Code: "AAPL"}),
		)
		require.NoError(t, err)
		assert.Contains(t, buf.String(), `"commodity":"AAPL"`)
		assert.Contains(t, buf.String(), "registry built")
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string][]Option{
			"unknown default":  {WithDefault("ZZZ")},
			"invalid def":      {WithCommodities(CommodityDef{Code: ""})},
			"duplicate code":   {WithCommodities(CommodityDef{Code: "AAPL"}, CommodityDef{Code: "aapl"})},
			"conflicting num":  {WithCommodities(CommodityDef{Code: "AAPL", Num: "840"})},
			"digits too large": {WithCommodities(CommodityDef{Code: "AAPL", FractionDigits: intPtr(19)})},
		}
		for name, opts := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewRegistry(opts...)
				assert.Error(t, err)
			})
		}
	})

	t.Run("all errors", func(t *testing.T) {
		_, err := NewRegistry(WithCommodities(
			CommodityDef{Code: ""},
			CommodityDef{Code: "AAPL", Num: "12a"},
			CommodityDef{Code: "MSFT"},
			CommodityDef{Code: "MSFT"},
		))
		require.Error(t, err)
		var merr *multierror.Error
		require.True(t, errors.As(err, &merr))
		assert.Len(t, merr.Errors, 3)
	})

	t.Run("unknown default", func(t *testing.T) {
		_, err := NewRegistry(WithDefault("ZZZ"))
		assert.ErrorIs(t, err, ErrUnknownCommodity)
	})
}

func TestMustNewRegistry(t *testing.T) {
	assert.NotPanics(t, func() { MustNewRegistry() })
	assert.Panics(t, func() { MustNewRegistry(WithDefault("ZZZ")) })
}

func TestRegistry_Lookup(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code, want string
		}{
			{"USD", "USD"},
			{"usd", "USD"},
			{" Eur ", "EUR"},
			{"840", "USD"},
			{"978", "EUR"},
			{"048", "BHD"},
			{"XXX", "XXX"},
		}
		for _, tt := range tests {
			got, err := testReg.Lookup(tt.code)
			require.NoError(t, err, "Lookup(%q)", tt.code)
			assert.Equal(t, tt.want, got.Code(), "Lookup(%q)", tt.code)
		}
	})

	t.Run("error", func(t *testing.T) {
		for _, code := range []string{"", "ZZZ", "US", "000", "USDX"} {
			_, err := testReg.Lookup(code)
			assert.ErrorIs(t, err, ErrUnknownCommodity, "Lookup(%q)", code)
		}
		assert.Panics(t, func() { testReg.MustLookup("ZZZ") })
	})
}

func TestRegistry_Commodities(t *testing.T) {
	got := testReg.Commodities()
	require.NotEmpty(t, got)
	assert.True(t, slices.IsSortedFunc(got, func(a, b Commodity) int {
		return strings.Compare(a.Code(), b.Code())
	}))
}

func TestRegistry_Zero(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			code, want string
			digits     int
		}{
			{"JPY", "JPY 0", 0},
			{"USD", "USD 0.00", 2},
			{"OMR", "OMR 0.000", 3},
			{"XXX", "XXX 0", -1},
		}
		for _, tt := range tests {
			got, err := testReg.Zero(tt.code)
			require.NoError(t, err, "Zero(%q)", tt.code)
			assert.True(t, got.IsZero())
			assert.Equal(t, tt.want, got.String())
			assert.Equal(t, tt.digits, got.Commodity().FractionDigits())
		}
	})

	t.Run("error", func(t *testing.T) {
		_, err := testReg.Zero("ZZZ")
		assert.ErrorIs(t, err, ErrUnknownCommodity)
	})
}

func TestRegistry_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount, code, want string
		}{
			{"32.5", "USD", "USD 32.50"},
			{"32.50", "usd", "USD 32.50"},
			{"-0.005", "USD", "USD 0.00"},
			{"-0.015", "USD", "USD -0.02"},
			{"3.25e1", "USD", "USD 32.50"},
			{"1000", "JPY", "JPY 1000"},
			{"1000.5", "JPY", "JPY 1000"},
			{"0.5", "EUR", "EUR 0.50"},
		}
		for _, tt := range tests {
			got, err := testReg.Parse(tt.amount, tt.code)
			require.NoError(t, err, "Parse(%q, %q)", tt.amount, tt.code)
			assert.Equal(t, tt.want, got.String(), "Parse(%q, %q)", tt.amount, tt.code)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			amount, code string
		}{
			"empty":        {"", "USD"},
			"letters":      {"abc", "USD"},
			"locale":       {"1.234,50", "USD"},
			"unknown code": {"1", "ZZZ"},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := testReg.Parse(tt.amount, tt.code)
				assert.Error(t, err)
			})
		}
		_, err := testReg.Parse("1", "ZZZ")
		assert.ErrorIs(t, err, ErrUnknownCommodity)
		assert.Panics(t, func() { testReg.MustParse("abc", "USD") })
	})
}

func TestRegistry_Formatting(t *testing.T) {
	r := MustNewRegistry(WithLocale(language.MustParse("de-DE")))
	m := r.MustParse("1234.5", "EUR")
	assert.Equal(t, "1.234,50", r.LocaleString(m))
	assert.Equal(t, "1.234,50\u00a0€", r.FormattedString(m))

	m = testReg.MustParse("1234.5", "USD")
	assert.Equal(t, "1,234.50", testReg.LocaleString(m))
	assert.Equal(t, "$1,234.50", testReg.FormattedString(m))
}
