package money

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// ErrUnknownCommodity is returned when a commodity code is not registered.
var ErrUnknownCommodity = errors.New("unknown commodity")

// DefaultCode is the code of the default commodity of a registry built
// without [WithDefault].
const DefaultCode = "USD"

// Registry holds the commodity table, the default commodity and the default
// locale. Amounts are constructed through a registry so that commodity codes
// are resolved against an explicit table.
//
// A Registry is immutable after [NewRegistry] returns and is safe for
// concurrent use by multiple goroutines.
type Registry struct {
	byCode map[string]Commodity
	byNum  map[string]Commodity
	def    Commodity
	zero   Money
	locale language.Tag
}

type options struct {
	defs   []CommodityDef
	code   string
	locale language.Tag
	log    zerolog.Logger
}

// Option configures a [Registry].
type Option func(*options)

// WithCommodities adds custom commodities to the registry.
// A definition with the code of a built-in currency replaces it.
func WithCommodities(defs ...CommodityDef) Option {
	return func(o *options) {
		o.defs = append(o.defs, defs...)
	}
}

// WithDefault sets the code of the default commodity.
func WithDefault(code string) Option {
	return func(o *options) {
		o.code = code
	}
}

// WithLocale sets the default locale used by [Registry.FormattedString]
// and [Registry.LocaleString].
func WithLocale(tag language.Tag) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// WithLogger sets the logger used while building the registry.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// NewRegistry returns a registry with the built-in ISO 4217 currencies and
// the commodities added by the options.
//
// NewRegistry returns an error if:
//   - a commodity definition is invalid;
//   - two definitions share a code or a numeric code;
//   - the default commodity is not registered.
//
// All definition errors are reported together.
func NewRegistry(opts ...Option) (*Registry, error) {
	o := options{
		code:   DefaultCode,
		locale: language.AmericanEnglish,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	r := Registry{
		byCode: make(map[string]Commodity, len(iso4217)+len(o.defs)),
		byNum:  make(map[string]Commodity, len(iso4217)+len(o.defs)),
		locale: o.locale,
	}
	for _, c := range iso4217 {
		r.byCode[c.code] = c
		if c.num != "" {
			r.byNum[c.num] = c
		}
	}

	var merr *multierror.Error
	custom := make(map[string]struct{}, len(o.defs))
	for _, def := range o.defs {
		if err := def.Validate(); err != nil {
			merr = multierror.Append(merr, fmt.Errorf("commodity %q: %w", def.Code, err))
			continue
		}
		c := def.commodity()
		if _, ok := custom[c.code]; ok {
			merr = multierror.Append(merr, fmt.Errorf("commodity %q: duplicate code", c.code))
			continue
		}
		custom[c.code] = struct{}{}
		if old, ok := r.byCode[c.code]; ok {
			delete(r.byNum, old.num)
			o.log.Debug().Str("commodity", c.code).Msg("built-in commodity replaced")
		}
		if c.num != "" {
			if other, ok := r.byNum[c.num]; ok && other.code != c.code {
				merr = multierror.Append(merr, fmt.Errorf("commodity %q: numeric code %v is used by %v", c.code, c.num, other.code))
				continue
			}
			r.byNum[c.num] = c
		}
		r.byCode[c.code] = c
		o.log.Debug().
			Str("commodity", c.code).
			Int("fraction_digits", c.digits).
			Str("symbol", c.Symbol()).
			Msg("commodity registered")
	}
	if err := merr.ErrorOrNil(); err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}

	def, err := r.Lookup(o.code)
	if err != nil {
		return nil, fmt.Errorf("building registry: default commodity: %w", err)
	}
	r.def = def
	r.zero = newMoney(def, decimal.Zero)
	o.log.Debug().
		Str("default", def.Code()).
		Str("locale", r.locale.String()).
		Int("commodities", len(r.byCode)).
		Msg("registry built")
	return &r, nil
}

// MustNewRegistry is like [NewRegistry] but panics if the registry cannot be built.
// It simplifies safe initialization of global variables holding registries.
func MustNewRegistry(opts ...Option) *Registry {
	r, err := NewRegistry(opts...)
	if err != nil {
		panic(fmt.Sprintf("NewRegistry() failed: %v", err))
	}
	return r
}

// Lookup returns the commodity with the given code.
// The code is case-insensitive and may also be a 3-digit ISO 4217 numeric code.
//
// Lookup returns an error if the commodity is not registered.
func (r *Registry) Lookup(code string) (Commodity, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if c, ok := r.byCode[key]; ok {
		return c, nil
	}
	if c, ok := r.byNum[key]; ok {
		return c, nil
	}
	return Commodity{}, fmt.Errorf("looking up %q: %w", code, ErrUnknownCommodity)
}

// MustLookup is like [Registry.Lookup] but panics if the commodity is not registered.
func (r *Registry) MustLookup(code string) Commodity {
	c, err := r.Lookup(code)
	if err != nil {
		panic(fmt.Sprintf("Lookup(%q) failed: %v", code, err))
	}
	return c
}

// Default returns the default commodity of the registry.
func (r *Registry) Default() Commodity {
	return r.def
}

// Locale returns the default locale of the registry.
func (r *Registry) Locale() language.Tag {
	return r.locale
}

// Commodities returns all registered commodities sorted by code.
func (r *Registry) Commodities() []Commodity {
	res := make([]Commodity, 0, len(r.byCode))
	for _, c := range r.byCode {
		res = append(res, c)
	}
	slices.SortFunc(res, func(a, b Commodity) int {
		return strings.Compare(a.code, b.code)
	})
	return res
}

// DefaultZero returns the zero amount of the default commodity.
// Every call returns the same value.
func (r *Registry) DefaultZero() Money {
	return r.zero
}

// Zero returns the zero amount of the commodity with the given code.
func (r *Registry) Zero(code string) (Money, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Money{}, fmt.Errorf("creating zero: %w", err)
	}
	return newMoney(c, decimal.Zero), nil
}

// Parse converts a decimal string and a commodity code to a (possibly rounded)
// amount. Exponent notation, such as "3.25e1", is accepted.
// See also method [Money.PlainString].
//
// Parse returns an error if:
//   - the string is not a valid decimal number;
//   - the commodity is not registered.
func (r *Registry) Parse(amount, code string) (Money, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount: %w", err)
	}
	return newMoney(c, d), nil
}

// MustParse is like [Registry.Parse] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func (r *Registry) MustParse(amount, code string) Money {
	m, err := r.Parse(amount, code)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", amount, code, err))
	}
	return m
}

// NewFromFraction returns an amount equal to num/den of the commodity with
// the given code. See also function [NewFromFraction].
//
// NewFromFraction returns an error if:
//   - the commodity is not registered;
//   - den is not a positive power of ten.
func (r *Registry) NewFromFraction(num, den int64, code string) (Money, error) {
	c, err := r.Lookup(code)
	if err != nil {
		return Money{}, fmt.Errorf("converting fraction: %w", err)
	}
	return NewFromFraction(num, den, c)
}

// FormattedString is like [Money.FormattedString] with the default locale
// of the registry.
func (r *Registry) FormattedString(m Money) string {
	return m.FormattedString(r.locale)
}

// LocaleString is like [Money.LocaleString] with the default locale
// of the registry.
func (r *Registry) LocaleString(m Money) string {
	return m.LocaleString(r.locale)
}
