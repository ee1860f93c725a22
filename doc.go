/*
Package money implements exact monetary values for double-entry bookkeeping.
It combines the arbitrary-precision decimals of the [decimal] package with a
[Commodity] struct describing currencies and other tradable units.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Built-in ISO 4217 currencies and custom commodities, such as stocks
  - Arithmetic and comparison operations that refuse to mix commodities
  - Rounding half to even in accordance with the commodity's fraction digits
  - Exact numerator/denominator projection for ledger storage
  - Locale-aware formatting with currency symbols

# Representation

A [Money] value consists of a [Commodity] and a decimal amount.
The amount is always normalized to the number of fraction digits of the
commodity: 2 for the US Dollar, 0 for the Japanese Yen, 3 for the Omani Rial.
Commodities whose fraction digits are unset keep the own scale of the amount,
up to [MaxScale] digits.

Commodities are resolved through a [Registry], which also holds the default
commodity and the default locale.

# Fractions

Ledgers store amounts as a pair of integers, see [Money.Numerator] and
[Money.Denominator].
The denominator is always 10 raised to the scale of the amount, so
"USD 32.50" is stored as 3250/100.
[NewFromFraction] restores the amount from such a pair.
An amount whose numerator does not fit into int64 is reported with
a [NonExactError].

# Operations

Addition, subtraction, multiplication and division are defined between amounts
of the same commodity and return [ErrCurrencyMismatch] otherwise.
Division rounds half to even at the scale of the commodity.
Scalar variants, such as [Money.MulInt] and [Money.QuoScalar], first convert
the scalar to an amount of the same commodity.

# Formatting

[Money.PlainString] writes the amount with a period as the decimal separator
and is the inverse of [Registry.Parse].
[Money.LocaleString] and [Money.FormattedString] follow the number conventions
of a locale identified by a BCP 47 language tag.

# Errors

Errors are returned for mismatched commodities, division by zero, unknown
commodity codes, invalid fractions and numerators that are not exact.
Functions prefixed with Must panic instead and are meant for initialization
of global variables.
*/
package money
