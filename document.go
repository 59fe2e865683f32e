package outbreak

import "fmt"

// Member is a single key/value entry of an Object.
type Member struct {
	Key   string
	Value any
}

// Object is an ordered set of members. Duplicate keys are kept as-is;
// rejecting them is the job of the record decoders.
//
// Values held by an Object or Array are one of: Object, Array, string,
// int64, uint64, float64, bool or nil.
type Object []Member

// Array is an ordered sequence of values.
type Array []any

// Get returns the value of the first member named key.
func (o Object) Get(key string) (any, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Keys returns member keys in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Set appends a member.
func (o *Object) Set(key string, value any) {
	*o = append(*o, Member{Key: key, Value: value})
}

// Kind names the structural kind of a document value.
func Kind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case Object:
		return "object"
	case Array:
		return "array"
	case string:
		return "string"
	case int64, uint64:
		return "integer"
	case float64:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
