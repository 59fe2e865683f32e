package outbreak

// fieldSet is the closed vocabulary of keys a record recognizes.
// The position of a key in names is its field tag.
type fieldSet struct {
	record string
	names  []string
}

func newFieldSet(record string, names ...string) fieldSet {
	return fieldSet{record: record, names: names}
}

// lookup resolves key to its field tag.
func (s fieldSet) lookup(key string) (int, error) {
	for i, name := range s.names {
		if name == key {
			return i, nil
		}
	}
	allowed := make([]string, len(s.names))
	copy(allowed, s.names)
	return -1, &FieldError{
		Err:     ErrUnknownField,
		Record:  s.record,
		Field:   key,
		Allowed: allowed,
	}
}

// name returns the key for a field tag.
func (s fieldSet) name(tag int) string {
	return s.names[tag]
}

var allFieldSets = []fieldSet{
	lastUpdateFields,
	newsItemFields,
	newsItemsFields,
	summaryContentFields,
	summaryFields,
	statusFields,
	flatStatusFields,
	detailedStatusFields,
}

// Fields returns the recognized keys of the named record in canonical order.
// It returns nil for an unknown record name.
func Fields(record string) []string {
	for _, s := range allFieldSets {
		if s.record == record {
			out := make([]string, len(s.names))
			copy(out, s.names)
			return out
		}
	}
	return nil
}

// slot accumulates the value of one field while a record is decoded.
type slot[T any] struct {
	value  T
	filled bool
}

// fill parses raw with parse and stores the result. A second fill is a
// duplicate; a parse failure is a malformed value unless parse already
// returned a FieldError from a nested record.
func (s *slot[T]) fill(fields fieldSet, tag int, raw any, parse func(any) (T, error)) error {
	key := fields.name(tag)
	if s.filled {
		return newFieldError(ErrDuplicateField, fields.record, key, nil)
	}
	v, err := parse(raw)
	if err != nil {
		if isFieldError(err) {
			return err
		}
		return newFieldError(ErrMalformedValue, fields.record, key, err)
	}
	s.value = v
	s.filled = true
	return nil
}

// require returns the value or a missing field error.
func (s *slot[T]) require(fields fieldSet, tag int) (T, error) {
	if !s.filled {
		var zero T
		return zero, newFieldError(ErrMissingField, fields.record, fields.name(tag), nil)
	}
	return s.value, nil
}

// visit walks the members of an object, resolving each key before handing
// it to fn. A document that is not an Object yields a plain error so the
// enclosing field can report it as malformed.
func visit(fields fieldSet, doc any, fn func(tag int, value any) error) error {
	obj, ok := doc.(Object)
	if !ok {
		return errExpected("object", doc)
	}
	for _, m := range obj {
		tag, err := fields.lookup(m.Key)
		if err != nil {
			return err
		}
		if err := fn(tag, m.Value); err != nil {
			return err
		}
	}
	return nil
}
