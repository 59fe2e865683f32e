package outbreak

// Encoder renders a record as an ordered Object.
// Fields are emitted in canonical order; absent optional fields are omitted.
type Encoder interface {
	EncodeObject(f Formats) Object
}

// Decoder populates a record from a document.
// Implemented on the record's pointer type. Decoding is fail-fast: on error
// the receiver is left unchanged.
type Decoder interface {
	DecodeObject(doc any, f Formats) error
}

// Record is the constraint for types handled by a Processor.
// *T must additionally implement Decoder.
type Record[T any] interface {
	Cloner[T]
	Encoder
}

// Decode decodes doc into a new T.
func Decode[T any, PT interface {
	*T
	Decoder
}](doc any, f Formats) (T, error) {
	var rec T
	if err := PT(&rec).DecodeObject(doc, f); err != nil {
		var zero T
		return zero, err
	}
	return rec, nil
}

// Encode encodes rec.
func Encode(rec Encoder, f Formats) Object {
	return rec.EncodeObject(f)
}
