package fraction

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"github.com/rs/zerolog"

	"github.com/bookkeep/money"
)

// Value is the storage form of an amount: the exact fraction Num/Denom of
// the commodity with code Commodity.
type Value struct {
	Num       int64  `cbor:"1,keyasint" json:"num"`
	Denom     int64  `cbor:"2,keyasint" json:"denom"`
	Commodity string `cbor:"3,keyasint" json:"commodity"`
}

// Codec converts amounts to and from their storage form.
// Commodity codes are resolved through a registry.
type Codec struct {
	reg          *money.Registry
	log          zerolog.Logger
	encoder      cbor.EncMode
	compressor   *zstd.Encoder
	decompressor *zstd.Decoder
}

// NewCodec creates a new Codec.
func NewCodec(reg *money.Registry, log zerolog.Logger) *Codec {

	// We should never fail here if the options are valid, so use panic to keep
	// the function signature for the codec clean.
	encoder, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	compressor, err := zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic(err)
	}
	decompressor, err := zstd.NewReader(nil)
	if err != nil {
		panic(err)
	}

	c := Codec{
		reg:          reg,
		log:          log.With().Str("component", "fraction_codec").Logger(),
		encoder:      encoder,
		compressor:   compressor,
		decompressor: decompressor,
	}

	return &c
}

// Encode returns the exact fraction of the amount.
// Amounts whose numerator does not fit into int64 are logged and rejected
// with a [money.NonExactError].
func (c *Codec) Encode(m money.Money) (Value, error) {
	num, err := m.Numerator()
	var nerr *money.NonExactError
	if errors.As(err, &nerr) {
		c.log.Error().
			Str("commodity", nerr.Commodity).
			Int("scale", nerr.Scale).
			Str("amount", nerr.Amount).
			Msg("amount has no exact numerator")
	}
	if err != nil {
		return Value{}, fmt.Errorf("could not encode %v: %w", m, err)
	}
	v := Value{
		Num:       num,
		Denom:     m.Denominator(),
		Commodity: m.Commodity().Code(),
	}
	return v, nil
}

// Decode restores the amount from its fraction.
func (c *Codec) Decode(v Value) (money.Money, error) {
	m, err := c.reg.NewFromFraction(v.Num, v.Denom, v.Commodity)
	if err != nil {
		return money.Money{}, fmt.Errorf("could not decode %v/%v %v: %w", v.Num, v.Denom, v.Commodity, err)
	}
	return m, nil
}

// Marshal encodes the amount as canonical CBOR.
func (c *Codec) Marshal(m money.Money) ([]byte, error) {
	v, err := c.Encode(m)
	if err != nil {
		return nil, err
	}
	data, err := c.encoder.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("could not marshal value: %w", err)
	}
	return data, nil
}

// Unmarshal decodes an amount written by [Codec.Marshal].
func (c *Codec) Unmarshal(data []byte) (money.Money, error) {
	var v Value
	err := cbor.Unmarshal(data, &v)
	if err != nil {
		return money.Money{}, fmt.Errorf("could not unmarshal value: %w", err)
	}
	return c.Decode(v)
}

// MarshalBatch encodes the amounts as zstd-compressed canonical CBOR.
func (c *Codec) MarshalBatch(ms []money.Money) ([]byte, error) {
	vals := make([]Value, 0, len(ms))
	for _, m := range ms {
		v, err := c.Encode(m)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	data, err := c.encoder.Marshal(vals)
	if err != nil {
		return nil, fmt.Errorf("could not marshal values: %w", err)
	}
	compressed := c.compressor.EncodeAll(data, nil)
	c.log.Debug().
		Int("amounts", len(vals)).
		Int("size", len(data)).
		Int("compressed", len(compressed)).
		Msg("batch encoded")
	return compressed, nil
}

// UnmarshalBatch decodes amounts written by [Codec.MarshalBatch].
func (c *Codec) UnmarshalBatch(compressed []byte) ([]money.Money, error) {
	data, err := c.decompressor.DecodeAll(compressed, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decompress data: %w", err)
	}
	var vals []Value
	err = cbor.Unmarshal(data, &vals)
	if err != nil {
		return nil, fmt.Errorf("could not unmarshal values: %w", err)
	}
	ms := make([]money.Money, 0, len(vals))
	for _, v := range vals {
		m, err := c.Decode(v)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	return ms, nil
}
