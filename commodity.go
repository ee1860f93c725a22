package money

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate go run scripts/commodity/codegen.go

// Commodity represents a currency or any other tradable unit, such as a stock
// or a precious metal.
// The zero value is [XXX], which indicates that no commodity is involved.
//
// Two commodities are equal if their mnemonic codes are equal, see [Commodity.Equal].
// Commodity values are immutable and safe for concurrent use by multiple goroutines.
//
// [XXX]: https://en.wikipedia.org/wiki/ISO_4217#X_currencies_(funds,_precious_metals,_supranationals,_other)
type Commodity struct {
	code   string // mnemonic, ISO 4217 alphabetic code for currencies
	num    string // ISO 4217 numeric code, if any
	name   string
	symbol string
	digits int // number of digits of the minimal unit, -1 if unset
}

// Code returns the mnemonic code of the commodity.
// For currencies this is the [3-letter code] assigned by the ISO 4217 standard.
// The zero value returns "XXX".
//
// [3-letter code]: https://en.wikipedia.org/wiki/ISO_4217#National_currencies
func (c Commodity) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// Num returns the [3-digit code] assigned to the currency by the ISO 4217 standard.
// If the commodity does not have such a code, the method returns an empty string.
//
// [3-digit code]: https://en.wikipedia.org/wiki/ISO_4217#Numeric_codes
func (c Commodity) Num() string {
	return c.num
}

// Name returns the human-readable name of the commodity.
func (c Commodity) Name() string {
	return c.name
}

// Symbol returns the display symbol of the commodity, for example "€".
// If the commodity has no symbol, its code is returned.
func (c Commodity) Symbol() string {
	if c.symbol == "" {
		return c.Code()
	}
	return c.symbol
}

// FractionDigits returns the number of digits after the decimal point
// required for representing the minimal unit of the commodity:
//   - 0 for currencies without minor units, such as the [Japanese Yen];
//   - 2 for the [US Dollar], whose minor unit is 1 cent;
//   - 3 for the [Omani Rial], whose minor unit is 1 baisa.
//
// A negative result means that the number of digits is unset.
// Amounts in such commodities keep their own scale, see [Money.Scale].
//
// [Japanese Yen]: https://en.wikipedia.org/wiki/Japanese_yen
// [US Dollar]: https://en.wikipedia.org/wiki/United_States_dollar
// [Omani Rial]: https://en.wikipedia.org/wiki/Omani_rial
func (c Commodity) FractionDigits() int {
	if c.code == "" {
		return -1
	}
	return c.digits
}

// Equal returns true if commodities have the same mnemonic code.
func (c Commodity) Equal(d Commodity) bool {
	return c.Code() == d.Code()
}

// String implements the [fmt.Stringer] interface and returns the code of
// the commodity.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Commodity) String() string {
	return c.Code()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText always returns the code.
// See also method [Commodity.Code].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Commodity) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description      |
//	| ---------- | ------- | ---------------- |
//	| %c, %s, %v | USD     | Commodity        |
//	| %q         | "USD"   | Quoted commodity |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Commodity) Format(state fmt.State, verb rune) {
	text := c.Code()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}

	// Padding
	if w, ok := state.Width(); ok {
		if pad := w - utf8.RuneCountInString(text); pad > 0 {
			if state.Flag('-') {
				text += strings.Repeat(" ", pad)
			} else {
				text = strings.Repeat(" ", pad) + text
			}
		}
	}

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Commodity="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// CommodityDef declares a commodity to be added to a [Registry].
// Definitions are usually loaded from a configuration file.
//
// When Symbol or FractionDigits are omitted and Code is a known ISO 4217
// currency, they are taken from the Unicode CLDR data.
// Otherwise the symbol defaults to the code and the fraction digits stay unset.
type CommodityDef struct {
	Code           string `yaml:"code" json:"code" validate:"required,printascii,max=32"`
	Num            string `yaml:"num" json:"num" validate:"omitempty,numeric,len=3"`
	Name           string `yaml:"name" json:"name" validate:"max=128"`
	Symbol         string `yaml:"symbol" json:"symbol" validate:"max=16"`
	FractionDigits *int   `yaml:"fractionDigits" json:"fractionDigits" validate:"omitempty,min=-1,max=18"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks the definition against its constraints.
func (def CommodityDef) Validate() error {
	return validate.Struct(def)
}

// commodity converts the definition, completing missing attributes from CLDR.
func (def CommodityDef) commodity() Commodity {
	c := Commodity{
		code:   strings.ToUpper(def.Code),
		num:    def.Num,
		name:   def.Name,
		symbol: def.Symbol,
		digits: -1,
	}
	unit, err := currency.ParseISO(c.code)
	known := err == nil
	switch {
	case def.FractionDigits != nil:
		c.digits = *def.FractionDigits
	case known:
		c.digits, _ = currency.Standard.Rounding(unit)
	}
	if c.symbol == "" && known {
		c.symbol = message.NewPrinter(language.English).Sprint(currency.Symbol(unit))
	}
	return c
}
