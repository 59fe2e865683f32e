package outbreak

import (
	"context"
	"fmt"
	"time"

	"github.com/zoobzio/sentinel"
)

// Processor binds a record type to a wire codec and a format registry.
// Use Read for ingress and Write for egress.
//
// Processors hold no mutable state after construction and are safe for
// concurrent use.
type Processor[T Record[T]] struct {
	codec    Codec
	formats  Formats
	hasher   Hasher
	typeName string
}

// ProcessorOption configures a Processor.
type ProcessorOption func(*processorConfig)

type processorConfig struct {
	formats Formats
	hasher  Hasher
}

func newProcessorConfig(opts []ProcessorOption) processorConfig {
	cfg := processorConfig{
		formats: DefaultFormats(),
		hasher:  Blake2b(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithFormats sets the format registry.
func WithFormats(f Formats) ProcessorOption {
	return func(c *processorConfig) {
		c.formats = f
	}
}

// WithLocation anchors local date-times and calendar dates at loc.
func WithLocation(loc *time.Location) ProcessorOption {
	return func(c *processorConfig) {
		c.formats = FormatsIn(loc)
	}
}

// WithHasher sets the hasher used by Fingerprint.
func WithHasher(h Hasher) ProcessorOption {
	return func(c *processorConfig) {
		c.hasher = h
	}
}

// NewProcessor creates a new Processor for record type T.
// *T must implement Decoder.
func NewProcessor[T Record[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	typeName := sentinel.Scan[T]().TypeName

	var zero T
	if _, ok := any(&zero).(Decoder); !ok {
		return nil, &ConfigError{Err: ErrNotDecodable, TypeName: typeName}
	}

	cfg := newProcessorConfig(opts)
	p := &Processor[T]{
		codec:    codec,
		formats:  cfg.formats,
		hasher:   cfg.hasher,
		typeName: typeName,
	}

	emitProcessorCreated(context.Background(), codec.ContentType(), typeName)
	return p, nil
}

// Formats returns the processor's format registry.
func (p *Processor[T]) Formats() Formats {
	return p.formats
}

// ContentType returns the codec's MIME type.
func (p *Processor[T]) ContentType() string {
	return p.codec.ContentType()
}

// Read unmarshals data and decodes the record.
// Decode failures are returned as *FieldError, wire failures as *CodecError.
func (p *Processor[T]) Read(ctx context.Context, data []byte) (*T, error) {
	start := time.Now()
	emitReadStart(ctx, p.codec.ContentType(), p.typeName, len(data))

	var retErr error
	defer func() {
		emitReadComplete(ctx, p.codec.ContentType(), p.typeName, time.Since(start), retErr)
	}()

	doc, err := p.codec.Unmarshal(data)
	if err != nil {
		retErr = newCodecError(ErrUnmarshal, err)
		return nil, retErr
	}

	rec, err := p.Decode(doc)
	if err != nil {
		retErr = err
		return nil, retErr
	}
	return rec, nil
}

// Decode decodes an already unmarshaled document.
func (p *Processor[T]) Decode(doc any) (*T, error) {
	var rec T
	if err := any(&rec).(Decoder).DecodeObject(doc, p.formats); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Write encodes the record and marshals the result.
func (p *Processor[T]) Write(ctx context.Context, obj *T) ([]byte, error) {
	start := time.Now()
	emitWriteStart(ctx, p.codec.ContentType(), p.typeName)

	var retErr error
	var retData []byte
	defer func() {
		emitWriteComplete(ctx, p.codec.ContentType(), p.typeName,
			len(retData), time.Since(start), retErr)
	}()

	retData, retErr = p.marshal(obj)
	return retData, retErr
}

// Encode renders the record as a document without marshaling it.
func (p *Processor[T]) Encode(obj *T) Object {
	if obj == nil {
		return nil
	}
	return (*obj).EncodeObject(p.formats)
}

// Fingerprint returns the digest of the record's wire encoding.
// Equal records yield equal fingerprints for a given codec and hasher.
func (p *Processor[T]) Fingerprint(_ context.Context, obj *T) (string, error) {
	data, err := p.marshal(obj)
	if err != nil {
		return "", err
	}
	sum, err := p.hasher.Hash(data)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return sum, nil
}

func (p *Processor[T]) marshal(obj *T) ([]byte, error) {
	var doc any
	if obj != nil {
		doc = (*obj).EncodeObject(p.formats)
	}
	data, err := p.codec.Marshal(doc)
	if err != nil {
		return nil, newCodecError(ErrMarshal, err)
	}
	return data, nil
}
