package outbreak

// Codec converts between wire bytes and the document model.
//
// Implementations must preserve member order and duplicate keys when
// producing an Object so record decoders can enforce their field rules.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes a document (Object, Array or scalar) into bytes.
	Marshal(doc any) ([]byte, error)

	// Unmarshal decodes data into a document.
	Unmarshal(data []byte) (any, error)
}
