package gaussdbtype_test

import (
	"errors"
	"math"
	"testing"

	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func numericValue(src []byte) gaussdbtype.Value {
	return gaussdbtype.NewValue(src, gaussdbtype.NumericOID)
}

func TestNumericFromInt32(t *testing.T) {
	tests := []struct {
		n        int32
		expected gaussdbtype.Numeric
	}{
		{0, gaussdbtype.Numeric{Sign: gaussdbtype.NumericPositive}},
		{1, gaussdbtype.Numeric{Sign: gaussdbtype.NumericPositive, Digits: []uint16{1}}},
		{-1, gaussdbtype.Numeric{Sign: gaussdbtype.NumericNegative, Digits: []uint16{1}}},
		{10000, gaussdbtype.Numeric{Sign: gaussdbtype.NumericPositive, Weight: 1, Digits: []uint16{1, 0}}},
		{math.MaxInt32, gaussdbtype.Numeric{Sign: gaussdbtype.NumericPositive, Weight: 2, Digits: []uint16{21, 4748, 3647}}},
		{math.MinInt32, gaussdbtype.Numeric{Sign: gaussdbtype.NumericNegative, Weight: 2, Digits: []uint16{21, 4748, 3648}}},
	}

	for _, tt := range tests {
		n := gaussdbtype.NumericFromInt32(tt.n)
		assert.Equal(t, tt.expected, n, "%d", tt.n)

		buf, err := gaussdbtype.EncodeNumeric(nil, n)
		require.NoError(t, err)
		decoded, err := gaussdbtype.DecodeNumeric(numericValue(buf))
		require.NoError(t, err)
		assert.Equal(t, n, decoded, "%d", tt.n)

		i, err := decoded.Int64()
		require.NoError(t, err)
		assert.Equal(t, int64(tt.n), i)
	}
}

func TestNumericFromInt64Extremes(t *testing.T) {
	for _, n := range []int64{math.MinInt64, math.MaxInt64} {
		num := gaussdbtype.NumericFromInt64(n)
		assert.Equal(t, int16(len(num.Digits)-1), num.Weight)

		i, err := num.Int64()
		require.NoError(t, err)
		assert.Equal(t, n, i)
	}
}

func TestNumericZeroWireFormat(t *testing.T) {
	buf, err := gaussdbtype.EncodeNumeric(nil, gaussdbtype.NumericFromInt64(0))
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, buf)
}

func TestNumericNaN(t *testing.T) {
	buf, err := gaussdbtype.EncodeNumeric(nil, gaussdbtype.NumericNaNValue())
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0xc0, 0, 0, 0}, buf)

	n, err := gaussdbtype.DecodeNumeric(numericValue(buf))
	require.NoError(t, err)
	assert.True(t, n.IsNaN())
	assert.False(t, n.IsPositive())
	assert.False(t, n.IsNegative())
	assert.Equal(t, "NaN", n.String())

	f, err := n.Float64()
	require.NoError(t, err)
	assert.True(t, math.IsNaN(f))

	_, err = n.Int64()
	assert.Error(t, err)
}

func TestDecodeNumericErrors(t *testing.T) {
	tests := []struct {
		name string
		src  []byte
		err  error
	}{
		{"short header", []byte{0, 0, 0}, gaussdbtype.ErrTruncatedBuffer},
		{"invalid sign", []byte{0, 0, 0, 0, 0x12, 0x34, 0, 0}, gaussdbtype.ErrInvalidTag},
		{"missing digit", []byte{0, 2, 0, 0, 0, 0, 0, 0, 0, 1}, gaussdbtype.ErrTruncatedBuffer},
		{"digit out of range", []byte{0, 1, 0, 0, 0, 0, 0, 0, 0x27, 0x10}, gaussdbtype.ErrInvalidDigit},
		{"trailing bytes", []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, gaussdbtype.ErrLengthMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := gaussdbtype.DecodeNumeric(numericValue(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "got %v", err)
		})
	}
}

func TestEncodeNumericRejectsInvalidDigit(t *testing.T) {
	_, err := gaussdbtype.EncodeNumeric(nil, gaussdbtype.Numeric{Digits: []uint16{10000}})
	assert.True(t, errors.Is(err, gaussdbtype.ErrInvalidDigit))

	_, err = gaussdbtype.EncodeNumeric(nil, gaussdbtype.Numeric{Sign: 0x1000})
	assert.True(t, errors.Is(err, gaussdbtype.ErrInvalidTag))
}

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		src      string
		expected gaussdbtype.Numeric
		str      string
	}{
		{"0", gaussdbtype.Numeric{}, "0"},
		{"0.00", gaussdbtype.Numeric{Scale: 2}, "0.00"},
		{"123.450", gaussdbtype.Numeric{Scale: 3, Digits: []uint16{123, 4500}}, "123.450"},
		{"-0.0001", gaussdbtype.Numeric{Sign: gaussdbtype.NumericNegative, Weight: -1, Scale: 4, Digits: []uint16{1}}, "-0.0001"},
		{"12345678.9", gaussdbtype.Numeric{Weight: 1, Scale: 1, Digits: []uint16{1234, 5678, 9000}}, "12345678.9"},
		{"1e5", gaussdbtype.Numeric{Weight: 1, Digits: []uint16{10}}, "100000"},
		{"+42", gaussdbtype.Numeric{Digits: []uint16{42}}, "42"},
		{"nan", gaussdbtype.NumericNaNValue(), "NaN"},
	}

	for _, tt := range tests {
		n, err := gaussdbtype.ParseNumeric(tt.src)
		require.NoError(t, err, tt.src)
		assert.Equal(t, tt.expected, n, tt.src)
		assert.Equal(t, tt.str, n.String(), tt.src)
	}
}

func TestParseNumericInvalid(t *testing.T) {
	for _, src := range []string{"", "-", "abc", "1.2.3", "1e", "12a", "1e-9223372036854775808", "1e3000000000", "1e131073"} {
		_, err := gaussdbtype.ParseNumeric(src)
		assert.Error(t, err, src)
	}
}

func TestNumericConversions(t *testing.T) {
	n, err := gaussdbtype.ParseNumeric("-12.5")
	require.NoError(t, err)

	f, err := n.Float64()
	require.NoError(t, err)
	assert.Equal(t, -12.5, f)

	_, err = n.Int64()
	assert.Error(t, err)

	n, err = gaussdbtype.ParseNumeric("99999999999999999999")
	require.NoError(t, err)
	_, err = n.Int64()
	assert.Error(t, err)

	n, err = gaussdbtype.ParseNumeric("700.000")
	require.NoError(t, err)
	i, err := n.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(700), i)
}

func TestNumericDecodeEncodeRoundTrip(t *testing.T) {
	for _, src := range []string{"3.14159", "-98765.4321", "0.000001", "100000000"} {
		n, err := gaussdbtype.ParseNumeric(src)
		require.NoError(t, err)

		buf, err := gaussdbtype.EncodeNumeric(nil, n)
		require.NoError(t, err)
		decoded, err := gaussdbtype.DecodeNumeric(numericValue(buf))
		require.NoError(t, err)
		assert.Equal(t, src, decoded.String())
	}
}
