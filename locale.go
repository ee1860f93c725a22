package money

import (
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// symbols describes how a locale writes numbers.
type symbols struct {
	digits    [10]string
	group     string
	decimal   string
	minus     string
	primary   int // size of the rightmost digit group, 0 if no grouping
	secondary int // size of the other digit groups
}

var plainSymbols = symbols{
	digits:    [10]string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"},
	group:     ",",
	decimal:   ".",
	minus:     "-",
	primary:   3,
	secondary: 3,
}

var symbolCache sync.Map // BCP 47 tag -> symbols

// numberSymbols returns the number symbols of the locale.
// CLDR data is only reachable through formatting, so the symbols are
// recovered from formatted probe numbers.
func numberSymbols(tag language.Tag) symbols {
	key := tag.String()
	if s, ok := symbolCache.Load(key); ok {
		return s.(symbols)
	}
	s, ok := probeSymbols(message.NewPrinter(tag))
	if !ok {
		s = plainSymbols
	}
	symbolCache.Store(key, s)
	return s
}

func probeSymbols(p *message.Printer) (symbols, bool) {
	var s symbols
	index := make(map[rune]int, 10)
	for i := range s.digits {
		d := strings.TrimSpace(p.Sprint(number.Decimal(i)))
		r, size := utf8.DecodeRuneInString(d)
		if size != len(d) || r == utf8.RuneError {
			return symbols{}, false
		}
		s.digits[i] = d
		index[r] = i
	}

	// Minus sign is whatever precedes the digit.
	one := p.Sprint(number.Decimal(-1))
	minus, _, ok := strings.Cut(one, s.digits[1])
	if !ok || minus == "" {
		return symbols{}, false
	}
	s.minus = minus

	// Digit groups and separators of 1234567890.5
	probe := p.Sprint(number.Decimal(1234567890.5, number.Scale(1)))
	var groups []int
	var seps []string
	digits, sep := 0, ""
	for _, r := range probe {
		if _, ok := index[r]; ok {
			if sep != "" {
				groups = append(groups, digits)
				seps = append(seps, sep)
				digits, sep = 0, ""
			}
			digits++
			continue
		}
		if digits > 0 {
			sep += string(r)
		}
	}
	if digits != 1 || len(seps) == 0 {
		return symbols{}, false
	}
	s.decimal = seps[len(seps)-1]
	if n := len(groups); n > 1 {
		s.group = seps[0]
		s.primary = groups[n-1]
		s.secondary = groups[n-2]
	}
	return s, true
}

// format writes the absolute value of d with exactly scale digits after
// the decimal separator.
func (s symbols) format(d decimal.Decimal, scale int) string {
	plain := d.Abs().StringFixed(int32(scale))
	intPart, fracPart, _ := strings.Cut(plain, ".")

	var b strings.Builder
	n := len(intPart)
	for i, c := range intPart {
		if i > 0 && s.primary > 0 {
			rest := n - i
			switch {
			case rest == s.primary:
				b.WriteString(s.group)
			case rest > s.primary && (rest-s.primary)%s.secondary == 0:
				b.WriteString(s.group)
			}
		}
		b.WriteString(s.digits[c-'0'])
	}
	if fracPart != "" {
		b.WriteString(s.decimal)
		for _, c := range fracPart {
			b.WriteString(s.digits[c-'0'])
		}
	}
	return b.String()
}

// LocaleString returns the amount formatted with the number conventions of
// the locale, without the commodity symbol.
// The amount is always written with 2 digits after the decimal separator,
// rounded half to even like every other rounding in this package, so
// "BHD 1.005" is written as "1.00" and "BHD 1.015" as "1.02".
// See also method [Registry.LocaleString].
func (m Money) LocaleString(tag language.Tag) string {
	d := m.Decimal().RoundBank(2)
	s := numberSymbols(tag)
	text := s.format(d, 2)
	if d.IsNegative() {
		text = s.minus + text
	}
	return text
}

// placement is the position of the currency symbol relative to the number.
type placement int

const (
	symbolBefore      placement = iota // $1.00
	symbolBeforeSpace                  // € 1,00
	symbolAfterSpace                   // 1,00 €
)

// languagePlacement holds the standard currency pattern of CLDR per language.
// Languages not listed write the symbol before the number without a space.
// Together with regionPlacement it approximates CLDR: accounting patterns,
// bidi marks and the patterns of unlisted languages are not reproduced.
var languagePlacement = map[language.Base]placement{}

// regionPlacement overrides languagePlacement for locales whose region
// uses another pattern, keyed by language and region.
var regionPlacement = map[string]placement{
	"de-AT": symbolBeforeSpace,
	"de-CH": symbolBeforeSpace,
	"de-LI": symbolBeforeSpace,
	"it-CH": symbolBeforeSpace,
	"pt-PT": symbolAfterSpace,
}

func init() {
	for _, code := range []string{
		"bg", "cs", "da", "de", "el", "es", "et", "fi", "fr", "hr", "hu",
		"it", "lt", "lv", "nb", "pl", "ro", "ru", "sk", "sl", "sv", "uk",
	} {
		languagePlacement[language.MustParseBase(code)] = symbolAfterSpace
	}
	languagePlacement[language.MustParseBase("nl")] = symbolBeforeSpace
}

var (
	english = language.MustParseBase("en")
	us      = language.MustParseRegion("US")
)

// symbolPlacement returns where the locale writes the currency symbol.
func symbolPlacement(tag language.Tag) placement {
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if p, ok := regionPlacement[base.String()+"-"+region.String()]; ok {
			return p
		}
	}
	return languagePlacement[base]
}

// isUSLocale reports whether the tag is exactly American English.
func isUSLocale(tag language.Tag) bool {
	base, _ := tag.Base()
	region, conf := tag.Region()
	return base == english && region == us && conf == language.Exact
}

// FormattedString returns the amount formatted as a currency amount of
// the locale, for example "$1,234.50" or "1.234,50 €".
// The number of digits after the decimal separator is the scale of the amount.
//
// The US Dollar is written as "US$" in all locales other than American
// English, so it cannot be confused with other dollars.
// See also method [Registry.FormattedString].
func (m Money) FormattedString(tag language.Tag) string {
	c := m.Commodity()
	sym := c.Symbol()
	if c.Code() == "USD" && !isUSLocale(tag) {
		sym = "US$"
	}

	s := numberSymbols(tag)
	text := s.format(m.Decimal(), m.Scale())
	switch symbolPlacement(tag) {
	case symbolAfterSpace:
		text = text + "\u00a0" + sym
	case symbolBeforeSpace:
		text = sym + "\u00a0" + text
	default:
		text = sym + text
	}
	if m.IsNeg() {
		text = s.minus + text
	}
	return text
}
