package money

import (
	"errors"
	"fmt"

	"github.com/go-faster/jx"
)

var errMissingField = errors.New("missing field")

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is written as a string so that no precision is lost,
// for example {"amount":"32.50","commodity":"USD"}.
// See also method [Registry.DecodeJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	var e jx.Encoder
	m.EncodeJSON(&e)
	return e.Bytes(), nil
}

// EncodeJSON writes the amount as a JSON object to the encoder.
func (m Money) EncodeJSON(e *jx.Encoder) {
	e.ObjStart()
	e.FieldStart("amount")
	e.Str(m.PlainString())
	e.FieldStart("commodity")
	e.Str(m.Commodity().Code())
	e.ObjEnd()
}

// DecodeJSON parses a JSON object written by [Money.MarshalJSON].
// The amount may also be a JSON number.
// The commodity is resolved through the registry.
//
// DecodeJSON returns an error if:
//   - the data is not a JSON object with the amount and commodity fields;
//   - the amount is not a valid decimal number;
//   - the commodity is not registered.
func (r *Registry) DecodeJSON(data []byte) (Money, error) {
	m, err := r.decodeJSON(jx.DecodeBytes(data))
	if err != nil {
		return Money{}, fmt.Errorf("decoding json: %w", err)
	}
	return m, nil
}

func (r *Registry) decodeJSON(d *jx.Decoder) (Money, error) {
	var amount, code string
	var hasAmount, hasCode bool
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "amount":
			hasAmount = true
			if d.Next() == jx.Number {
				n, err := d.Num()
				if err != nil {
					return err
				}
				amount = n.String()
				return nil
			}
			s, err := d.Str()
			if err != nil {
				return err
			}
			amount = s
		case "commodity":
			hasCode = true
			s, err := d.Str()
			if err != nil {
				return err
			}
			code = s
		default:
			return d.Skip()
		}
		return nil
	})
	switch {
	case err != nil:
		return Money{}, err
	case !hasAmount:
		return Money{}, fmt.Errorf("amount: %w", errMissingField)
	case !hasCode:
		return Money{}, fmt.Errorf("commodity: %w", errMissingField)
	}
	return r.Parse(amount, code)
}
