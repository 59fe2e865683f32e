package outbreak

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrUnknownField indicates a key outside the record's recognized set.
	ErrUnknownField = errors.New("unknown field")

	// ErrDuplicateField indicates a recognized key appeared more than once.
	ErrDuplicateField = errors.New("duplicate field")

	// ErrMissingField indicates a mandatory field never appeared.
	ErrMissingField = errors.New("missing field")

	// ErrMalformedValue indicates a value that does not parse as its field's type.
	ErrMalformedValue = errors.New("malformed value")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")

	// ErrNotDecodable indicates a record type whose pointer lacks DecodeObject.
	ErrNotDecodable = errors.New("record not decodable")
)

// FieldError represents a record decode failure.
// It wraps one of the field sentinels with the record, field and location.
type FieldError struct {
	Err     error    // Underlying sentinel error (ErrUnknownField, etc.)
	Record  string   // Record type being decoded
	Field   string   // Offending key or field name
	Path    string   // Location of the record within the document, empty at the root
	Allowed []string // Recognized keys, set for ErrUnknownField
	Cause   error    // Parse failure behind ErrMalformedValue
}

func (e *FieldError) Error() string {
	var b strings.Builder
	if e.Field != "" {
		fmt.Fprintf(&b, "%s %q in %s", e.Err.Error(), e.Field, e.Record)
	} else {
		fmt.Fprintf(&b, "%s in %s", e.Err.Error(), e.Record)
	}
	if e.Path != "" {
		fmt.Fprintf(&b, " at %s", e.Path)
	}
	if len(e.Allowed) > 0 {
		fmt.Fprintf(&b, ", expected one of %s", strings.Join(e.Allowed, ", "))
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// ConfigError represents a processor configuration error.
type ConfigError struct {
	Err      error  // Underlying sentinel error
	TypeName string // Record type that triggered the error
}

func (e *ConfigError) Error() string {
	if e.TypeName != "" {
		return fmt.Sprintf("%s (type %s)", e.Err.Error(), e.TypeName)
	}
	return e.Err.Error()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// newFieldError creates a FieldError for a record field.
func newFieldError(sentinel error, record, field string, cause error) error {
	return &FieldError{
		Err:    sentinel,
		Record: record,
		Field:  field,
		Cause:  cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}

// isFieldError reports whether err carries record context already.
func isFieldError(err error) bool {
	var fe *FieldError
	return errors.As(err, &fe)
}

// rootError gives a failure at the top of a record its record context.
func rootError(record string, err error) error {
	if err == nil || isFieldError(err) {
		return err
	}
	return &FieldError{Err: ErrMalformedValue, Record: record, Cause: err}
}

// nestError prefixes the location of a nested record failure.
// Errors that are not FieldErrors pass through untouched.
func nestError(err error, segment string) error {
	var fe *FieldError
	if !errors.As(err, &fe) {
		return err
	}
	nested := *fe
	switch {
	case nested.Path == "":
		nested.Path = segment
	case strings.HasPrefix(nested.Path, "["):
		nested.Path = segment + nested.Path
	default:
		nested.Path = segment + "." + nested.Path
	}
	return &nested
}
