package gaussdbtype

import (
	"math"
	"strconv"
	"strings"

	"github.com/gaussdb-go/gaussdb/internal/gaussio"
	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

// Numeric values are stored as 16-bit "digits" with a base of 10,000.
const nbase = 10000

// NumericSign is the sign word of the numeric wire format.
type NumericSign uint16

const (
	NumericPositive NumericSign = 0x0000
	NumericNegative NumericSign = 0x4000
	NumericNaN      NumericSign = 0xC000
)

func (s NumericSign) String() string {
	switch s {
	case NumericPositive:
		return "positive"
	case NumericNegative:
		return "negative"
	case NumericNaN:
		return "NaN"
	default:
		return "invalid(" + strconv.FormatUint(uint64(s), 16) + ")"
	}
}

// Numeric is an arbitrary precision decimal in the server's own
// representation. Digits are base 10,000, most significant first, and Weight
// is the base 10,000 exponent of Digits[0]. Scale is the number of decimal
// digits after the point the value is displayed with. NaN values carry no
// digits.
type Numeric struct {
	Sign   NumericSign
	Weight int16
	Scale  uint16
	Digits []uint16
}

// NumericNaNValue returns the NaN numeric.
func NumericNaNValue() Numeric {
	return Numeric{Sign: NumericNaN}
}

func (n Numeric) IsNaN() bool      { return n.Sign == NumericNaN }
func (n Numeric) IsPositive() bool { return n.Sign == NumericPositive }
func (n Numeric) IsNegative() bool { return n.Sign == NumericNegative }

// NumericFromInt64 converts i to a Numeric with scale 0. Zero is positive with
// no digits.
func NumericFromInt64(i int64) Numeric {
	if i == 0 {
		return Numeric{Sign: NumericPositive}
	}

	sign := NumericPositive
	abs := uint64(i)
	if i < 0 {
		sign = NumericNegative
		abs = uint64(-(i + 1)) + 1
	}

	var digits []uint16
	for abs > 0 {
		digits = append(digits, uint16(abs%nbase))
		abs /= nbase
	}
	for l, r := 0, len(digits)-1; l < r; l, r = l+1, r-1 {
		digits[l], digits[r] = digits[r], digits[l]
	}

	return Numeric{Sign: sign, Weight: int16(len(digits) - 1), Digits: digits}
}

func NumericFromInt32(i int32) Numeric {
	return NumericFromInt64(int64(i))
}

// DecodeNumeric decodes a numeric. Digits outside [0, 9999] are rejected.
func DecodeNumeric(v Value) (Numeric, error) {
	src := v.Bytes()
	if src == nil {
		return Numeric{}, nullError("numeric")
	}

	r := gaussio.NewReader(src)
	ndigits, err := r.Uint16()
	if err != nil {
		return Numeric{}, errors.WithMessage(err, "numeric header")
	}
	weight, err := r.Int16()
	if err != nil {
		return Numeric{}, errors.WithMessage(err, "numeric header")
	}
	sign, err := r.Uint16()
	if err != nil {
		return Numeric{}, errors.WithMessage(err, "numeric header")
	}
	scale, err := r.Uint16()
	if err != nil {
		return Numeric{}, errors.WithMessage(err, "numeric header")
	}

	switch NumericSign(sign) {
	case NumericNaN:
		return Numeric{Sign: NumericNaN}, nil
	case NumericPositive, NumericNegative:
	default:
		return Numeric{}, errors.Wrapf(ErrInvalidTag, "numeric sign %#04x", sign)
	}

	var digits []uint16
	if ndigits > 0 {
		digits = make([]uint16, ndigits)
	}
	for i := range digits {
		d, err := r.Uint16()
		if err != nil {
			return Numeric{}, errors.WithMessagef(err, "numeric digit %d of %d", i, ndigits)
		}
		if d >= nbase {
			return Numeric{}, errors.Wrapf(ErrInvalidDigit, "numeric digit %d is %d", i, d)
		}
		digits[i] = d
	}
	if err := requireConsumed(r, "numeric"); err != nil {
		return Numeric{}, err
	}

	return Numeric{Sign: NumericSign(sign), Weight: weight, Scale: scale, Digits: digits}, nil
}

// EncodeNumeric appends n. NaN is written with no digits, weight 0 and scale 0.
func EncodeNumeric(buf []byte, n Numeric) ([]byte, error) {
	switch n.Sign {
	case NumericNaN:
		buf = pgio.AppendUint16(buf, 0)
		buf = pgio.AppendInt16(buf, 0)
		buf = pgio.AppendUint16(buf, uint16(NumericNaN))
		buf = pgio.AppendUint16(buf, 0)
		return buf, nil
	case NumericPositive, NumericNegative:
	default:
		return nil, errors.Wrapf(ErrInvalidTag, "numeric sign %#04x", uint16(n.Sign))
	}

	if len(n.Digits) > math.MaxUint16 {
		return nil, errors.Errorf("numeric has too many digits: %d", len(n.Digits))
	}

	buf = pgio.AppendUint16(buf, uint16(len(n.Digits)))
	buf = pgio.AppendInt16(buf, n.Weight)
	buf = pgio.AppendUint16(buf, uint16(n.Sign))
	buf = pgio.AppendUint16(buf, n.Scale)
	for i, d := range n.Digits {
		if d >= nbase {
			return nil, errors.Wrapf(ErrInvalidDigit, "numeric digit %d is %d", i, d)
		}
		buf = pgio.AppendUint16(buf, d)
	}

	return buf, nil
}

func (n Numeric) digitAt(i int) uint16 {
	if i < 0 || i >= len(n.Digits) {
		return 0
	}
	return n.Digits[i]
}

// String formats n in plain decimal notation with exactly Scale fractional
// digits, the way the server prints it.
func (n Numeric) String() string {
	if n.Sign == NumericNaN {
		return "NaN"
	}

	var sb strings.Builder
	if n.Sign == NumericNegative {
		sb.WriteByte('-')
	}

	var intPart strings.Builder
	for i := 0; i <= int(n.Weight); i++ {
		limb := strconv.Itoa(int(n.digitAt(i)))
		if i > 0 {
			intPart.WriteString(strings.Repeat("0", 4-len(limb)))
		}
		intPart.WriteString(limb)
	}
	s := strings.TrimLeft(intPart.String(), "0")
	if s == "" {
		s = "0"
	}
	sb.WriteString(s)

	if n.Scale > 0 {
		var frac strings.Builder
		for i := int(n.Weight) + 1; frac.Len() < int(n.Scale); i++ {
			limb := strconv.Itoa(int(n.digitAt(i)))
			frac.WriteString(strings.Repeat("0", 4-len(limb)))
			frac.WriteString(limb)
		}
		sb.WriteByte('.')
		sb.WriteString(frac.String()[:n.Scale])
	}

	return sb.String()
}

// maxNumericExponent is the number of decimal digits spanned by the int16
// weight range.
const maxNumericExponent = 4 * (math.MaxInt16 + 1)

// ParseNumeric parses a decimal string such as "-12.340", "1e-3" or "NaN".
// The scale is the number of fractional digits written.
func ParseNumeric(s string) (Numeric, error) {
	if strings.EqualFold(s, "NaN") {
		return NumericNaNValue(), nil
	}

	orig := s
	sign := NumericPositive
	if s != "" && (s[0] == '-' || s[0] == '+') {
		if s[0] == '-' {
			sign = NumericNegative
		}
		s = s[1:]
	}

	exp := 0
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		e, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return Numeric{}, errors.Errorf("invalid numeric %q", orig)
		}
		if e > maxNumericExponent || e < -maxNumericExponent {
			return Numeric{}, errors.Errorf("numeric exponent out of range %q", orig)
		}
		exp = e
		s = s[:idx]
	}

	intDigits, fracDigits := s, ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intDigits, fracDigits = s[:idx], s[idx+1:]
	}
	if intDigits == "" && fracDigits == "" {
		return Numeric{}, errors.Errorf("invalid numeric %q", orig)
	}
	for _, part := range []string{intDigits, fracDigits} {
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return Numeric{}, errors.Errorf("invalid numeric %q", orig)
			}
		}
	}

	if exp > 0 {
		if exp > len(fracDigits) {
			fracDigits += strings.Repeat("0", exp-len(fracDigits))
		}
		intDigits, fracDigits = intDigits+fracDigits[:exp], fracDigits[exp:]
	} else if exp < 0 {
		shift := -exp
		if shift > len(intDigits) {
			intDigits = strings.Repeat("0", shift-len(intDigits)) + intDigits
		}
		cut := len(intDigits) - shift
		intDigits, fracDigits = intDigits[:cut], intDigits[cut:]+fracDigits
	}

	if len(fracDigits) > math.MaxUint16 {
		return Numeric{}, errors.Errorf("numeric scale out of range %q", orig)
	}
	scale := uint16(len(fracDigits))

	intDigits = strings.TrimLeft(intDigits, "0")
	if pad := len(intDigits) % 4; pad != 0 {
		intDigits = strings.Repeat("0", 4-pad) + intDigits
	}
	if pad := len(fracDigits) % 4; pad != 0 {
		fracDigits += strings.Repeat("0", 4-pad)
	}

	all := intDigits + fracDigits
	digits := make([]uint16, 0, len(all)/4)
	for i := 0; i < len(all); i += 4 {
		d, _ := strconv.Atoi(all[i : i+4])
		digits = append(digits, uint16(d))
	}
	weight := len(intDigits)/4 - 1

	for len(digits) > 0 && digits[0] == 0 {
		digits = digits[1:]
		weight--
	}
	for len(digits) > 0 && digits[len(digits)-1] == 0 {
		digits = digits[:len(digits)-1]
	}

	if len(digits) == 0 {
		return Numeric{Sign: NumericPositive, Scale: scale}, nil
	}
	if weight > math.MaxInt16 || weight < math.MinInt16 {
		return Numeric{}, errors.Errorf("numeric weight out of range %q", orig)
	}

	return Numeric{Sign: sign, Weight: int16(weight), Scale: scale, Digits: digits}, nil
}

// Int64 converts n to an int64. It fails for NaN, for values with a non-zero
// fractional part and for values out of range.
func (n Numeric) Int64() (int64, error) {
	if n.Sign == NumericNaN {
		return 0, errors.New("cannot convert NaN to int64")
	}

	for i := int(n.Weight) + 1; i < len(n.Digits); i++ {
		if i >= 0 && n.Digits[i] != 0 {
			return 0, errors.Errorf("cannot convert %s to int64: has fractional part", n)
		}
	}

	limit := uint64(math.MaxInt64)
	if n.Sign == NumericNegative {
		limit++
	}

	var abs uint64
	for i := 0; i <= int(n.Weight); i++ {
		d := uint64(n.digitAt(i))
		if abs > (limit-d)/nbase {
			return 0, errors.Errorf("%s is out of range for int64", n)
		}
		abs = abs*nbase + d
	}

	if n.Sign == NumericNegative {
		return -int64(abs - 1) - 1, nil
	}
	return int64(abs), nil
}

// Float64 converts n to the nearest float64.
func (n Numeric) Float64() (float64, error) {
	if n.Sign == NumericNaN {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(n.String(), 64)
}
