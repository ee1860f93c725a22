package fraction_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fxamacker/cbor/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bookkeep/money"
	"github.com/bookkeep/money/fraction"
)

var reg = money.MustNewRegistry()

func TestCodec_Encode(t *testing.T) {
	codec := fraction.NewCodec(reg, zerolog.Nop())

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			amount, code string
			want         fraction.Value
		}{
			{"32.50", "USD", fraction.Value{Num: 3250, Denom: 100, Commodity: "USD"}},
			{"-0.01", "EUR", fraction.Value{Num: -1, Denom: 100, Commodity: "EUR"}},
			{"1000", "JPY", fraction.Value{Num: 1000, Denom: 1, Commodity: "JPY"}},
			{"1.5", "OMR", fraction.Value{Num: 1500, Denom: 1000, Commodity: "OMR"}},
			{"0", "USD", fraction.Value{Num: 0, Denom: 100, Commodity: "USD"}},
		}
		for _, tt := range tests {
			m := reg.MustParse(tt.amount, tt.code)
			got, err := codec.Encode(m)
			require.NoError(t, err, "Encode(%v)", m)
			assert.Equal(t, tt.want, got, "Encode(%v)", m)

			back, err := codec.Decode(got)
			require.NoError(t, err, "Decode(%+v)", got)
			assert.True(t, back.Equal(m), "Decode(%+v) = %v, want %v", got, back, m)
		}
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		codec := fraction.NewCodec(reg, zerolog.New(&buf))
		m := reg.MustParse("92233720368547758.08", "USD")

		_, err := codec.Encode(m)
		require.ErrorIs(t, err, money.ErrNonExact)
		var nerr *money.NonExactError
		require.True(t, errors.As(err, &nerr))

		logged := buf.String()
		assert.Contains(t, logged, `"level":"error"`)
		assert.Contains(t, logged, `"commodity":"USD"`)
		assert.Contains(t, logged, `"scale":2`)
		assert.Contains(t, logged, `"amount":"92233720368547758.08"`)
	})
}

func TestCodec_Decode(t *testing.T) {
	codec := fraction.NewCodec(reg, zerolog.Nop())

	t.Run("success", func(t *testing.T) {
		tests := []struct {
			v    fraction.Value
			want string
		}{
			{fraction.Value{Num: 3250, Denom: 100, Commodity: "USD"}, "USD 32.50"},
			{fraction.Value{Num: 0, Denom: 0, Commodity: "USD"}, "USD 0.00"},
			{fraction.Value{Num: 325, Denom: 10, Commodity: "usd"}, "USD 32.50"},
			{fraction.Value{Num: 12345, Denom: 1000, Commodity: "USD"}, "USD 12.34"},
		}
		for _, tt := range tests {
			got, err := codec.Decode(tt.v)
			require.NoError(t, err, "Decode(%+v)", tt.v)
			assert.Equal(t, tt.want, got.String(), "Decode(%+v)", tt.v)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			v    fraction.Value
			want error
		}{
			"unknown commodity": {fraction.Value{Num: 1, Denom: 100, Commodity: "ZZZ"}, money.ErrUnknownCommodity},
			"zero denominator":  {fraction.Value{Num: 1, Denom: 0, Commodity: "USD"}, money.ErrInvalidFraction},
			"not power of ten":  {fraction.Value{Num: 1, Denom: 64, Commodity: "USD"}, money.ErrInvalidFraction},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := codec.Decode(tt.v)
				assert.ErrorIs(t, err, tt.want)
			})
		}
	})
}

func TestCodec_Marshal(t *testing.T) {
	codec := fraction.NewCodec(reg, zerolog.Nop())
	m := reg.MustParse("32.50", "USD")

	data, err := codec.Marshal(m)
	require.NoError(t, err)

	// Integer keys keep the encoding compact.
	var raw map[int]any
	require.NoError(t, cbor.Unmarshal(data, &raw))
	assert.Len(t, raw, 3)
	assert.EqualValues(t, 3250, raw[1])
	assert.EqualValues(t, 100, raw[2])
	assert.Equal(t, "USD", raw[3])

	again, err := codec.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, data, again, "canonical encoding")

	got, err := codec.Unmarshal(data)
	require.NoError(t, err)
	assert.True(t, got.Equal(m))

	_, err = codec.Unmarshal([]byte{0xff})
	assert.Error(t, err)

	_, err = codec.Marshal(reg.MustParse("92233720368547758.08", "USD"))
	assert.ErrorIs(t, err, money.ErrNonExact)
}

func TestCodec_MarshalBatch(t *testing.T) {
	codec := fraction.NewCodec(reg, zerolog.Nop())
	ms := []money.Money{
		reg.MustParse("32.50", "USD"),
		reg.MustParse("-12.34", "EUR"),
		reg.MustParse("1000", "JPY"),
		reg.MustParse("0.001", "OMR"),
	}
	for i := 0; i < 100; i++ {
		ms = append(ms, reg.MustParse("0.01", "USD").MulInt(int64(i)))
	}

	data, err := codec.MarshalBatch(ms)
	require.NoError(t, err)

	got, err := codec.UnmarshalBatch(data)
	require.NoError(t, err)
	require.Len(t, got, len(ms))
	for i := range ms {
		assert.True(t, got[i].Equal(ms[i]), "amount %v: got %v, want %v", i, got[i], ms[i])
	}

	empty, err := codec.MarshalBatch(nil)
	require.NoError(t, err)
	got, err = codec.UnmarshalBatch(empty)
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = codec.UnmarshalBatch([]byte("not zstd"))
	assert.Error(t, err)

	_, err = codec.MarshalBatch([]money.Money{reg.MustParse("92233720368547758.08", "USD")})
	assert.ErrorIs(t, err, money.ErrNonExact)
}
