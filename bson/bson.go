// Package bson provides a BSON codec implementation.
//
// Documents are read as raw element lists, which keep order and duplicate
// keys. BSON requires an object at the top level.
package bson

import (
	"errors"
	"fmt"
	"math"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/zoobzio/outbreak"
)

var errTopLevel = errors.New("bson: top-level document must be an object")

// bsonCodec implements outbreak.Codec for BSON.
type bsonCodec struct{}

// New returns a BSON codec.
func New() outbreak.Codec {
	return &bsonCodec{}
}

// ContentType returns the MIME type for BSON.
func (c *bsonCodec) ContentType() string {
	return "application/bson"
}

// Marshal encodes a document as BSON.
func (c *bsonCodec) Marshal(doc any) ([]byte, error) {
	obj, ok := doc.(outbreak.Object)
	if !ok {
		return nil, errTopLevel
	}
	d, err := toD(obj)
	if err != nil {
		return nil, err
	}
	return bson.Marshal(d)
}

// Unmarshal decodes BSON data into a document.
func (c *bsonCodec) Unmarshal(data []byte) (any, error) {
	raw := bson.Raw(data)
	if err := raw.Validate(); err != nil {
		return nil, err
	}
	return fromRaw(raw)
}

func fromRaw(raw bson.Raw) (outbreak.Object, error) {
	elems, err := raw.Elements()
	if err != nil {
		return nil, err
	}
	obj := make(outbreak.Object, 0, len(elems))
	for _, e := range elems {
		value, err := fromValue(e.Value())
		if err != nil {
			return nil, fmt.Errorf("%s: %w", e.Key(), err)
		}
		obj = append(obj, outbreak.Member{Key: e.Key(), Value: value})
	}
	return obj, nil
}

func fromValue(rv bson.RawValue) (any, error) {
	switch rv.Type {
	case bson.TypeEmbeddedDocument:
		return fromRaw(rv.Document())
	case bson.TypeArray:
		values, err := rv.Array().Values()
		if err != nil {
			return nil, err
		}
		arr := make(outbreak.Array, 0, len(values))
		for _, v := range values {
			value, err := fromValue(v)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		return arr, nil
	case bson.TypeString:
		return rv.StringValue(), nil
	case bson.TypeInt32:
		return int64(rv.Int32()), nil
	case bson.TypeInt64:
		return rv.Int64(), nil
	case bson.TypeDouble:
		return rv.Double(), nil
	case bson.TypeBoolean:
		return rv.Boolean(), nil
	case bson.TypeNull, bson.TypeUndefined:
		return nil, nil
	default:
		return nil, fmt.Errorf("bson: unsupported element type %s", rv.Type)
	}
}

func toD(obj outbreak.Object) (bson.D, error) {
	d := make(bson.D, 0, len(obj))
	for _, m := range obj {
		value, err := toValue(m.Value)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", m.Key, err)
		}
		d = append(d, bson.E{Key: m.Key, Value: value})
	}
	return d, nil
}

func toValue(v any) (any, error) {
	switch t := v.(type) {
	case nil, string, int64, float64, bool:
		return t, nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("bson: %d overflows int64", t)
		}
		return int64(t), nil
	case outbreak.Object:
		return toD(t)
	case outbreak.Array:
		a := make(bson.A, 0, len(t))
		for _, elem := range t {
			value, err := toValue(elem)
			if err != nil {
				return nil, err
			}
			a = append(a, value)
		}
		return a, nil
	default:
		return nil, fmt.Errorf("bson: unsupported document value %T", v)
	}
}
