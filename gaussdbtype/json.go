package gaussdbtype

import (
	"encoding/json"

	"github.com/pkg/errors"
)

const jsonbVersion = 1

// DecodeJSON returns a copy of the document in a json value. The document is
// checked to be valid JSON.
func DecodeJSON(v Value) (json.RawMessage, error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError("json")
	}
	return copyJSON(src, "json")
}

// DecodeJSONInto unmarshals a json value into dst.
func DecodeJSONInto(v Value, dst any) error {
	src := v.Bytes()
	if src == nil {
		return nullError("json")
	}
	return errors.Wrap(json.Unmarshal(src, dst), "json")
}

// EncodeJSON appends value marshaled with encoding/json. A json.RawMessage or
// []byte is written as is.
func EncodeJSON(buf []byte, value any) ([]byte, error) {
	switch value := value.(type) {
	case json.RawMessage:
		if !json.Valid(value) {
			return nil, errors.New("json: invalid document")
		}
		return append(buf, value...), nil
	case []byte:
		if !json.Valid(value) {
			return nil, errors.New("json: invalid document")
		}
		return append(buf, value...), nil
	}

	doc, err := json.Marshal(value)
	if err != nil {
		return nil, errors.Wrap(err, "json")
	}
	return append(buf, doc...), nil
}

func jsonbDocument(v Value) ([]byte, error) {
	src := v.Bytes()
	if src == nil {
		return nil, nullError("jsonb")
	}
	if len(src) == 0 {
		return nil, &LengthMismatchError{TypeName: "jsonb", Expected: 1, Actual: 0}
	}
	if src[0] != jsonbVersion {
		return nil, errors.Wrapf(ErrInvalidTag, "unknown jsonb version number %d", src[0])
	}
	return src[1:], nil
}

// DecodeJSONB returns a copy of the document in a jsonb value.
func DecodeJSONB(v Value) (json.RawMessage, error) {
	doc, err := jsonbDocument(v)
	if err != nil {
		return nil, err
	}
	return copyJSON(doc, "jsonb")
}

func DecodeJSONBInto(v Value, dst any) error {
	doc, err := jsonbDocument(v)
	if err != nil {
		return err
	}
	return errors.Wrap(json.Unmarshal(doc, dst), "jsonb")
}

// EncodeJSONB appends the jsonb version byte followed by the document.
func EncodeJSONB(buf []byte, value any) ([]byte, error) {
	return EncodeJSON(append(buf, jsonbVersion), value)
}

func copyJSON(src []byte, typeName string) (json.RawMessage, error) {
	if !json.Valid(src) {
		return nil, errors.Errorf("%s: invalid document", typeName)
	}
	doc := make(json.RawMessage, len(src))
	copy(doc, src)
	return doc, nil
}
