// Package gaussdbtype converts between Go values and the binary wire format
// GaussDB uses for column values and query parameters.
//
// Decoders take a Value, the raw bytes of one column together with its type
// oid, and return a typed Go value. A NULL Value is rejected with a
// *NullValueError unless the decoder is wrapped with DecodeNullable.
// Encoders follow the append style: they append the binary form to a caller
// supplied buffer and return the extended buffer.
//
//	buf, err := gaussdbtype.EncodeArray(nil, gaussdbtype.Int4OID, []int32{1, 2, 3}, gaussdbtype.EncodeInt4)
//	...
//	ints, err := gaussdbtype.DecodeArray(gaussdbtype.NewValue(buf, gaussdbtype.Int4ArrayOID), gaussdbtype.DecodeInt4)
//
// Only one dimensional arrays are supported. DecodeArray drops NULL elements;
// DecodeNullableArray keeps them.
//
// The package also holds the oids of the built-in types and TypeMetadata, the
// result of resolving a type name to its oids.
package gaussdbtype
