package outbreak

import (
	"fmt"
	"math"
	"time"
)

func errExpected(want string, got any) error {
	return fmt.Errorf("expected %s, got %s", want, Kind(got))
}

func decodeString(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", errExpected("string", v)
	}
	return s, nil
}

// decodeCount accepts a non-negative integer that fits in 32 bits.
func decodeCount(v any) (uint32, error) {
	switch n := v.(type) {
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%d is negative", n)
		}
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("%d overflows uint32", n)
		}
		return uint32(n), nil
	case uint64:
		if n > math.MaxUint32 {
			return 0, fmt.Errorf("%d overflows uint32", n)
		}
		return uint32(n), nil
	case float64:
		return 0, fmt.Errorf("%v is not an integer", n)
	default:
		return 0, errExpected("integer", v)
	}
}

func decodeArray(v any) (Array, error) {
	a, ok := v.(Array)
	if !ok {
		return nil, errExpected("array", v)
	}
	return a, nil
}

// dateDecoder returns a parser for text in the given layout.
func dateDecoder(f Formats, l Layout) func(any) (time.Time, error) {
	return func(v any) (time.Time, error) {
		s, err := decodeString(v)
		if err != nil {
			return time.Time{}, err
		}
		return f.Parse(l, s)
	}
}

// decodeEach decodes every element of an array with fn, locating nested
// failures under key[i]. An empty array decodes to a nil slice.
func decodeEach[T any](key string, v any, fn func(any) (T, error)) ([]T, error) {
	arr, err := decodeArray(v)
	if err != nil {
		return nil, err
	}
	if len(arr) == 0 {
		return nil, nil
	}
	out := make([]T, 0, len(arr))
	for i, elem := range arr {
		item, err := fn(elem)
		if err != nil {
			if !isFieldError(err) {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			return nil, nestError(err, fmt.Sprintf("%s[%d]", key, i))
		}
		out = append(out, item)
	}
	return out, nil
}
