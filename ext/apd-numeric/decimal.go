// Package numeric converts between the numeric wire format and
// github.com/cockroachdb/apd.
package numeric

import (
	"github.com/cockroachdb/apd"
	"github.com/gaussdb-go/gaussdb/gaussdbtype"
	"github.com/pkg/errors"
)

// FromNumeric converts n to an apd.Decimal. NaN maps to a quiet NaN.
func FromNumeric(n gaussdbtype.Numeric) (*apd.Decimal, error) {
	if n.IsNaN() {
		return &apd.Decimal{Form: apd.NaN}, nil
	}
	d, _, err := apd.NewFromString(n.String())
	if err != nil {
		return nil, errors.Wrapf(err, "cannot convert %s to apd.Decimal", n)
	}
	return d, nil
}

// ToNumeric converts d to a Numeric. Infinities have no numeric form.
func ToNumeric(d *apd.Decimal) (gaussdbtype.Numeric, error) {
	switch d.Form {
	case apd.NaN, apd.NaNSignaling:
		return gaussdbtype.NumericNaNValue(), nil
	case apd.Infinite:
		return gaussdbtype.Numeric{}, errors.New("cannot convert infinite apd.Decimal to numeric")
	}
	return gaussdbtype.ParseNumeric(d.Text('f'))
}

func Decode(v gaussdbtype.Value) (*apd.Decimal, error) {
	n, err := gaussdbtype.DecodeNumeric(v)
	if err != nil {
		return nil, err
	}
	return FromNumeric(n)
}

// DecodeNull decodes a numeric value that may be NULL. NULL decodes to nil.
func DecodeNull(v gaussdbtype.Value) (*apd.Decimal, error) {
	if v.IsNull() {
		return nil, nil
	}
	return Decode(v)
}

// Encode appends d. A nil d returns nil, which callers send as NULL.
func Encode(buf []byte, d *apd.Decimal) ([]byte, error) {
	if d == nil {
		return nil, nil
	}
	n, err := ToNumeric(d)
	if err != nil {
		return nil, err
	}
	return gaussdbtype.EncodeNumeric(buf, n)
}
