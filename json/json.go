// Package json provides a JSON codec implementation.
//
// Objects are read token by token so member order and duplicate keys
// survive into the document model.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/zoobzio/outbreak"
)

// jsonCodec implements outbreak.Codec for JSON.
type jsonCodec struct {
	comments bool
}

// New returns a JSON codec.
func New() outbreak.Codec {
	return &jsonCodec{}
}

// NewJSONC returns a codec that accepts JSON with comments and trailing
// commas on input. Output is plain JSON.
func NewJSONC() outbreak.Codec {
	return &jsonCodec{comments: true}
}

// ContentType returns the MIME type for JSON.
func (c *jsonCodec) ContentType() string {
	if c.comments {
		return "application/jsonc"
	}
	return "application/json"
}

// Marshal encodes a document as JSON.
func (c *jsonCodec) Marshal(doc any) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes JSON data into a document.
func (c *jsonCodec) Unmarshal(data []byte) (any, error) {
	if c.comments {
		data = jsonc.ToJSON(data)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	doc, err := readValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("json: trailing data after document")
	}
	return doc, nil
}

func readValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return readObject(dec)
		case '[':
			return readArray(dec)
		default:
			return nil, fmt.Errorf("json: unexpected delimiter %q", t)
		}
	case json.Number:
		return number(t)
	default:
		// string, bool or nil
		return t, nil
	}
}

func readObject(dec *json.Decoder) (outbreak.Object, error) {
	obj := outbreak.Object{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("json: object key is %T", tok)
		}
		value, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		obj = append(obj, outbreak.Member{Key: key, Value: value})
	}
	// closing brace
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return obj, nil
}

func readArray(dec *json.Decoder) (outbreak.Array, error) {
	arr := outbreak.Array{}
	for dec.More() {
		value, err := readValue(dec)
		if err != nil {
			return nil, err
		}
		arr = append(arr, value)
	}
	// closing bracket
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return arr, nil
}

// number narrows a JSON number to int64, then uint64, then float64.
func number(n json.Number) (any, error) {
	if i, err := n.Int64(); err == nil {
		return i, nil
	}
	if u, err := strconv.ParseUint(n.String(), 10, 64); err == nil {
		return u, nil
	}
	f, err := n.Float64()
	if err != nil {
		return nil, fmt.Errorf("json: number %s: %w", n, err)
	}
	return f, nil
}

func writeValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case outbreak.Object:
		buf.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, m.Key); err != nil {
				return err
			}
			buf.WriteByte(':')
			if err := writeValue(buf, m.Value); err != nil {
				return fmt.Errorf("%s: %w", m.Key, err)
			}
		}
		buf.WriteByte('}')
	case outbreak.Array:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case string:
		return writeString(buf, t)
	case int64:
		buf.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(t, 10))
	case float64:
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return fmt.Errorf("json: unsupported number %v", t)
		}
		buf.WriteString(strconv.FormatFloat(t, 'g', -1, 64))
	case bool:
		buf.WriteString(strconv.FormatBool(t))
	default:
		return fmt.Errorf("json: unsupported document value %T", v)
	}
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	enc := json.NewEncoder(buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	// Encode appends a newline.
	buf.Truncate(buf.Len() - 1)
	return nil
}
