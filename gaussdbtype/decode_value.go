package gaussdbtype

import (
	"github.com/pkg/errors"
)

// ErrUnknownOID is returned by DecodeValue for a type it has no decoder for.
var ErrUnknownOID = errors.New("no decoder for type oid")

// DecodeValue decodes v according to its type oid into the Go type the
// package's own decoder for that type returns. NULL decodes to nil. Array
// elements are returned as []any with nil for NULL elements.
func DecodeValue(v Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}

	switch v.OID() {
	case BoolOID:
		return DecodeBool(v)
	case ByteaOID:
		return DecodeBytea(v)
	case QCharOID:
		return DecodeChar(v)
	case NameOID, TextOID, VarcharOID, BPCharOID:
		return DecodeText(v)
	case Int2OID:
		return DecodeInt2(v)
	case Int4OID:
		return DecodeInt4(v)
	case Int8OID:
		return DecodeInt8(v)
	case OIDOID:
		return DecodeOID(v)
	case Float4OID:
		return DecodeFloat4(v)
	case Float8OID:
		return DecodeFloat8(v)
	case NumericOID:
		return DecodeNumeric(v)
	case MoneyOID:
		return DecodeMoney(v)
	case DateOID:
		return DecodeDate(v)
	case TimeOID:
		return DecodeTime(v)
	case TimestampOID:
		return DecodeTimestamp(v)
	case TimestamptzOID:
		return DecodeTimestamptz(v)
	case IntervalOID:
		return DecodeInterval(v)
	case UUIDOID:
		return DecodeUUID(v)
	case JSONOID:
		return DecodeJSON(v)
	case JSONBOID:
		return DecodeJSONB(v)
	case InetOID:
		return DecodeInet(v)
	case CIDROID:
		return DecodeCidr(v)
	case MacaddrOID:
		return DecodeMacaddr(v)
	case Macaddr8OID:
		return DecodeMacaddr8(v)

	case BoolArrayOID:
		return decodeAnyArray(v, DecodeBool)
	case ByteaArrayOID:
		return decodeAnyArray(v, DecodeBytea)
	case QCharArrayOID:
		return decodeAnyArray(v, DecodeChar)
	case NameArrayOID, TextArrayOID, VarcharArrayOID, BPCharArrayOID:
		return decodeAnyArray(v, DecodeText)
	case Int2ArrayOID:
		return decodeAnyArray(v, DecodeInt2)
	case Int4ArrayOID:
		return decodeAnyArray(v, DecodeInt4)
	case Int8ArrayOID:
		return decodeAnyArray(v, DecodeInt8)
	case OIDArrayOID:
		return decodeAnyArray(v, DecodeOID)
	case Float4ArrayOID:
		return decodeAnyArray(v, DecodeFloat4)
	case Float8ArrayOID:
		return decodeAnyArray(v, DecodeFloat8)
	case NumericArrayOID:
		return decodeAnyArray(v, DecodeNumeric)
	case MoneyArrayOID:
		return decodeAnyArray(v, DecodeMoney)
	case DateArrayOID:
		return decodeAnyArray(v, DecodeDate)
	case TimeArrayOID:
		return decodeAnyArray(v, DecodeTime)
	case TimestampArrayOID:
		return decodeAnyArray(v, DecodeTimestamp)
	case TimestamptzArrayOID:
		return decodeAnyArray(v, DecodeTimestamptz)
	case IntervalArrayOID:
		return decodeAnyArray(v, DecodeInterval)
	case UUIDArrayOID:
		return decodeAnyArray(v, DecodeUUID)
	case JSONArrayOID:
		return decodeAnyArray(v, DecodeJSON)
	case JSONBArrayOID:
		return decodeAnyArray(v, DecodeJSONB)
	case InetArrayOID:
		return decodeAnyArray(v, DecodeInet)
	case CIDRArrayOID:
		return decodeAnyArray(v, DecodeCidr)
	case MacaddrArrayOID:
		return decodeAnyArray(v, DecodeMacaddr)
	case Macaddr8ArrayOID:
		return decodeAnyArray(v, DecodeMacaddr8)

	case Int4rangeOID:
		return DecodeRange(v, Int4OID, DecodeInt4)
	case Int8rangeOID:
		return DecodeRange(v, Int8OID, DecodeInt8)
	case NumrangeOID:
		return DecodeRange(v, NumericOID, DecodeNumeric)
	case DaterangeOID:
		return DecodeRange(v, DateOID, DecodeDate)
	case TsrangeOID:
		return DecodeRange(v, TimestampOID, DecodeTimestamp)
	case TstzrangeOID:
		return DecodeRange(v, TimestamptzOID, DecodeTimestamptz)

	case Int4multirangeOID:
		return DecodeMultirange(v, Int4OID, DecodeInt4)
	case Int8multirangeOID:
		return DecodeMultirange(v, Int8OID, DecodeInt8)
	case NummultirangeOID:
		return DecodeMultirange(v, NumericOID, DecodeNumeric)
	case DatemultirangeOID:
		return DecodeMultirange(v, DateOID, DecodeDate)
	case TsmultirangeOID:
		return DecodeMultirange(v, TimestampOID, DecodeTimestamp)
	case TstzmultirangeOID:
		return DecodeMultirange(v, TimestamptzOID, DecodeTimestamptz)
	}

	return nil, errors.Wrapf(ErrUnknownOID, "oid %d", v.OID())
}

func decodeAnyArray[T any](v Value, decode DecodeFunc[T]) ([]any, error) {
	elems, err := DecodeNullableArray(v, decode)
	if err != nil {
		return nil, err
	}

	result := make([]any, len(elems))
	for i, e := range elems {
		if e.Valid {
			result[i] = e.Value
		}
	}
	return result, nil
}
