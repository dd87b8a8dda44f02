// Package numeric converts between the numeric wire format and
// github.com/shopspring/decimal.
package numeric

import (
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FromNumeric converts n to a decimal. decimal.Decimal cannot hold NaN.
func FromNumeric(n gaussdbtype.Numeric) (decimal.Decimal, error) {
	if n.IsNaN() {
		return decimal.Decimal{}, errors.New("cannot convert NaN to decimal.Decimal")
	}
	d, err := decimal.NewFromString(n.String())
	if err != nil {
		return decimal.Decimal{}, errors.Wrapf(err, "cannot convert %s to decimal.Decimal", n)
	}
	return d, nil
}

// ToNumeric converts d to a Numeric keeping its number of fractional digits
// as the scale.
func ToNumeric(d decimal.Decimal) (gaussdbtype.Numeric, error) {
	s := d.String()
	if exp := d.Exponent(); exp < 0 {
		s = d.StringFixed(-exp)
	}
	return gaussdbtype.ParseNumeric(s)
}

// Decode decodes a numeric value into a decimal.
func Decode(v gaussdbtype.Value) (decimal.Decimal, error) {
	n, err := gaussdbtype.DecodeNumeric(v)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return FromNumeric(n)
}

// DecodeNull decodes a numeric value that may be NULL.
func DecodeNull(v gaussdbtype.Value) (decimal.NullDecimal, error) {
	if v.IsNull() {
		return decimal.NullDecimal{}, nil
	}
	d, err := Decode(v)
	if err != nil {
		return decimal.NullDecimal{}, err
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}, nil
}

func Encode(buf []byte, d decimal.Decimal) ([]byte, error) {
	n, err := ToNumeric(d)
	if err != nil {
		return nil, err
	}
	return gaussdbtype.EncodeNumeric(buf, n)
}

// EncodeNull appends d, or returns nil when d is not valid.
func EncodeNull(buf []byte, d decimal.NullDecimal) ([]byte, error) {
	if !d.Valid {
		return nil, nil
	}
	return Encode(buf, d.Decimal)
}
