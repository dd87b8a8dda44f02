package gaussdbtype

import (
	"encoding/binary"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

var ErrMoneyOverflow = errors.New("money overflow")

// Money is an amount in cents. The server stores money as a 64-bit integer
// scaled by the locale's fractional digits; two are assumed here.
type Money int64

func (m Money) Cents() int64 {
	return int64(m)
}

// Add returns m+other or ErrMoneyOverflow.
func (m Money) Add(other Money) (Money, error) {
	if (other > 0 && m > math.MaxInt64-other) || (other < 0 && m < math.MinInt64-other) {
		return 0, errors.Wrapf(ErrMoneyOverflow, "%s + %s", m, other)
	}
	return m + other, nil
}

// Sub returns m-other or ErrMoneyOverflow.
func (m Money) Sub(other Money) (Money, error) {
	if (other < 0 && m > math.MaxInt64+other) || (other > 0 && m < math.MinInt64+other) {
		return 0, errors.Wrapf(ErrMoneyOverflow, "%s - %s", m, other)
	}
	return m - other, nil
}

// String formats m with two fractional digits, e.g. "-12.05".
func (m Money) String() string {
	neg := m < 0
	abs := uint64(m)
	if neg {
		abs = uint64(-(m + 1)) + 1
	}

	s := strconv.FormatUint(abs/100, 10) + "." + strconv.FormatUint(abs%100/10, 10) + strconv.FormatUint(abs%10, 10)
	if neg {
		return "-" + s
	}
	return s
}

// ParseMoney parses a decimal amount such as "12.34", "-$1,000.5" or "7".
// Digits past the cents are rounded half away from zero.
func ParseMoney(s string) (Money, error) {
	orig := s
	s = strings.TrimSpace(s)

	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	} else if strings.HasPrefix(s, "+") {
		s = s[1:]
	}
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, errors.Errorf("invalid money %q", orig)
	}
	if whole == "" {
		whole = "0"
	}

	for _, part := range []string{whole, frac} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, errors.Errorf("invalid money %q", orig)
			}
		}
	}

	dollars, err := strconv.ParseUint(whole, 10, 64)
	if err != nil {
		return 0, errors.Wrapf(ErrMoneyOverflow, "parse %q", orig)
	}

	var cents uint64
	for i := 0; i < 2; i++ {
		cents *= 10
		if i < len(frac) {
			cents += uint64(frac[i] - '0')
		}
	}
	if len(frac) > 2 && frac[2] >= '5' {
		cents++
	}

	if dollars > (math.MaxUint64-cents)/100 {
		return 0, errors.Wrapf(ErrMoneyOverflow, "parse %q", orig)
	}
	total := dollars*100 + cents

	if neg {
		switch {
		case total > uint64(math.MaxInt64)+1:
			return 0, errors.Wrapf(ErrMoneyOverflow, "parse %q", orig)
		case total == uint64(math.MaxInt64)+1:
			return math.MinInt64, nil
		}
		return Money(-int64(total)), nil
	}
	if total > math.MaxInt64 {
		return 0, errors.Wrapf(ErrMoneyOverflow, "parse %q", orig)
	}
	return Money(total), nil
}

func DecodeMoney(v Value) (Money, error) {
	src, err := fixedWidth(v, "money", 8)
	if err != nil {
		return 0, err
	}
	return Money(binary.BigEndian.Uint64(src)), nil
}

func EncodeMoney(buf []byte, m Money) ([]byte, error) {
	return pgio.AppendInt64(buf, int64(m)), nil
}
