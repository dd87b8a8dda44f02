package gaussdbtype

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/jackc/pgio"
	"github.com/pkg/errors"
)

const microsecondsPerSecond = 1000000

// Date, time and timestamp integers count from 2000-01-01 00:00:00.
var epoch = time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)

// Unix seconds of epoch.
const epochUnix = 946684800

// Timestamp is microseconds since 2000-01-01 00:00:00. It is used for both
// timestamp and timestamptz; for timestamptz the instant is in UTC.
type Timestamp struct {
	Microseconds int64
}

const (
	timestampInfinity         = math.MaxInt64
	timestampNegativeInfinity = math.MinInt64
)

func (ts Timestamp) IsInfinite() bool {
	return ts.Microseconds == timestampInfinity || ts.Microseconds == timestampNegativeInfinity
}

// Time converts ts to a time.Time in UTC.
func (ts Timestamp) Time() (time.Time, error) {
	if ts.IsInfinite() {
		return time.Time{}, errors.New("cannot convert infinite timestamp to time.Time")
	}
	sec := ts.Microseconds / microsecondsPerSecond
	usec := ts.Microseconds % microsecondsPerSecond
	if usec < 0 {
		sec--
		usec += microsecondsPerSecond
	}
	return time.Unix(sec+epochUnix, usec*1000).UTC(), nil
}

// TimestampFromTime converts t, truncating to microsecond precision.
func TimestampFromTime(t time.Time) Timestamp {
	micros := t.Unix()*microsecondsPerSecond + int64(t.Nanosecond())/1000
	return Timestamp{Microseconds: micros - epochUnix*microsecondsPerSecond}
}

func DecodeTimestamp(v Value) (Timestamp, error) {
	src, err := fixedWidth(v, "timestamp", 8)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Microseconds: int64(binary.BigEndian.Uint64(src))}, nil
}

func EncodeTimestamp(buf []byte, ts Timestamp) ([]byte, error) {
	return pgio.AppendInt64(buf, ts.Microseconds), nil
}

func DecodeTimestamptz(v Value) (Timestamp, error) {
	src, err := fixedWidth(v, "timestamptz", 8)
	if err != nil {
		return Timestamp{}, err
	}
	return Timestamp{Microseconds: int64(binary.BigEndian.Uint64(src))}, nil
}

func EncodeTimestamptz(buf []byte, ts Timestamp) ([]byte, error) {
	return pgio.AppendInt64(buf, ts.Microseconds), nil
}

// Date is days since 2000-01-01.
type Date struct {
	Days int32
}

const (
	dateInfinity         = math.MaxInt32
	dateNegativeInfinity = math.MinInt32
)

func (d Date) IsInfinite() bool {
	return d.Days == dateInfinity || d.Days == dateNegativeInfinity
}

// Time returns midnight UTC of d.
func (d Date) Time() (time.Time, error) {
	if d.IsInfinite() {
		return time.Time{}, errors.New("cannot convert infinite date to time.Time")
	}
	return epoch.AddDate(0, 0, int(d.Days)), nil
}

// DateFromTime returns the calendar date of t in t's location.
func DateFromTime(t time.Time) Date {
	y, m, day := t.Date()
	midnight := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return Date{Days: int32((midnight.Unix() - epochUnix) / (24 * 60 * 60))}
}

func DecodeDate(v Value) (Date, error) {
	src, err := fixedWidth(v, "date", 4)
	if err != nil {
		return Date{}, err
	}
	return Date{Days: int32(binary.BigEndian.Uint32(src))}, nil
}

func EncodeDate(buf []byte, d Date) ([]byte, error) {
	return pgio.AppendInt32(buf, d.Days), nil
}

// Time is microseconds since midnight, without time zone.
type Time struct {
	Microseconds int64
}

func (t Time) Duration() time.Duration {
	return time.Duration(t.Microseconds) * time.Microsecond
}

func TimeFromDuration(d time.Duration) Time {
	return Time{Microseconds: int64(d / time.Microsecond)}
}

func DecodeTime(v Value) (Time, error) {
	src, err := fixedWidth(v, "time", 8)
	if err != nil {
		return Time{}, err
	}
	return Time{Microseconds: int64(binary.BigEndian.Uint64(src))}, nil
}

func EncodeTime(buf []byte, t Time) ([]byte, error) {
	return pgio.AppendInt64(buf, t.Microseconds), nil
}

// Interval is a span of months, days and microseconds. The three parts are
// kept apart because months and days have no fixed length.
type Interval struct {
	Months       int32
	Days         int32
	Microseconds int64
}

// Duration converts an interval without months or days.
func (iv Interval) Duration() (time.Duration, error) {
	if iv.Months != 0 || iv.Days != 0 {
		return 0, errors.Errorf("interval with months or days cannot be converted to time.Duration")
	}
	return time.Duration(iv.Microseconds) * time.Microsecond, nil
}

func IntervalFromDuration(d time.Duration) Interval {
	return Interval{Microseconds: int64(d / time.Microsecond)}
}

// DecodeInterval reads the wire order: microseconds, days, months.
func DecodeInterval(v Value) (Interval, error) {
	src, err := fixedWidth(v, "interval", 16)
	if err != nil {
		return Interval{}, err
	}
	return Interval{
		Microseconds: int64(binary.BigEndian.Uint64(src)),
		Days:         int32(binary.BigEndian.Uint32(src[8:])),
		Months:       int32(binary.BigEndian.Uint32(src[12:])),
	}, nil
}

func EncodeInterval(buf []byte, iv Interval) ([]byte, error) {
	buf = pgio.AppendInt64(buf, iv.Microseconds)
	buf = pgio.AppendInt32(buf, iv.Days)
	buf = pgio.AppendInt32(buf, iv.Months)
	return buf, nil
}
