// Package msgpack provides a MessagePack codec implementation.
//
// Maps are read entry by entry with the streaming decoder so order and
// duplicate keys are preserved.
package msgpack

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"github.com/vmihailenco/msgpack/v5/msgpcode"

	"github.com/zoobzio/outbreak"
)

// msgpackCodec implements outbreak.Codec for MessagePack.
type msgpackCodec struct{}

// New returns a MessagePack codec.
func New() outbreak.Codec {
	return &msgpackCodec{}
}

// ContentType returns the MIME type for MessagePack.
func (c *msgpackCodec) ContentType() string {
	return "application/msgpack"
}

// Marshal encodes a document as MessagePack.
func (c *msgpackCodec) Marshal(doc any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := encodeValue(enc, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes MessagePack data into a document.
func (c *msgpackCodec) Unmarshal(data []byte) (any, error) {
	dec := msgpack.NewDecoder(bytes.NewReader(data))
	doc, err := decodeValue(dec)
	if err != nil {
		return nil, err
	}
	if _, err := dec.PeekCode(); !errors.Is(err, io.EOF) {
		return nil, errors.New("msgpack: trailing data after document")
	}
	return doc, nil
}

func isMap(c byte) bool {
	return msgpcode.IsFixedMap(c) || c == msgpcode.Map16 || c == msgpcode.Map32
}

func isArray(c byte) bool {
	return msgpcode.IsFixedArray(c) || c == msgpcode.Array16 || c == msgpcode.Array32
}

func decodeValue(dec *msgpack.Decoder) (any, error) {
	c, err := dec.PeekCode()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, io.ErrUnexpectedEOF
		}
		return nil, err
	}

	switch {
	case isMap(c):
		n, err := dec.DecodeMapLen()
		if err != nil {
			return nil, err
		}
		obj := make(outbreak.Object, 0, max(n, 0))
		for i := 0; i < n; i++ {
			key, err := dec.DecodeString()
			if err != nil {
				return nil, fmt.Errorf("msgpack: map key: %w", err)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj = append(obj, outbreak.Member{Key: key, Value: value})
		}
		return obj, nil
	case isArray(c):
		n, err := dec.DecodeArrayLen()
		if err != nil {
			return nil, err
		}
		arr := make(outbreak.Array, 0, max(n, 0))
		for i := 0; i < n; i++ {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	}

	v, err := dec.DecodeInterfaceLoose()
	if err != nil {
		return nil, err
	}
	switch t := v.(type) {
	case nil, string, int64, uint64, float64, bool:
		return t, nil
	case []byte:
		return string(t), nil
	default:
		return nil, fmt.Errorf("msgpack: unsupported value %T", v)
	}
}

func encodeValue(enc *msgpack.Encoder, v any) error {
	switch t := v.(type) {
	case nil:
		return enc.EncodeNil()
	case outbreak.Object:
		if err := enc.EncodeMapLen(len(t)); err != nil {
			return err
		}
		for _, m := range t {
			if err := enc.EncodeString(m.Key); err != nil {
				return err
			}
			if err := encodeValue(enc, m.Value); err != nil {
				return fmt.Errorf("%s: %w", m.Key, err)
			}
		}
		return nil
	case outbreak.Array:
		if err := enc.EncodeArrayLen(len(t)); err != nil {
			return err
		}
		for _, elem := range t {
			if err := encodeValue(enc, elem); err != nil {
				return err
			}
		}
		return nil
	case string:
		return enc.EncodeString(t)
	case int64:
		return enc.EncodeInt(t)
	case uint64:
		return enc.EncodeUint(t)
	case float64:
		return enc.EncodeFloat64(t)
	case bool:
		return enc.EncodeBool(t)
	default:
		return fmt.Errorf("msgpack: unsupported document value %T", v)
	}
}
