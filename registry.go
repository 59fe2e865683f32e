package outbreak

import (
	"reflect"
	"sync"
	"time"
)

// registryKey combines type, codec, location and hasher for cache lookup.
// Locations are compared by identity: distinct zones may share a name.
type registryKey struct {
	typ         reflect.Type
	contentType string
	location    *time.Location
	hasher      reflect.Type
}

var (
	registry   = make(map[registryKey]any)
	registryMu sync.RWMutex
)

// Use returns a cached processor or builds a new one.
// The processor is cached by type, codec content type, registry location
// and hasher type. Hashers of one type are assumed interchangeable.
func Use[T Record[T]](codec Codec, opts ...ProcessorOption) (*Processor[T], error) {
	cfg := newProcessorConfig(opts)
	key := registryKey{
		typ:         reflect.TypeFor[T](),
		contentType: codec.ContentType(),
		location:    cfg.formats.location(),
		hasher:      reflect.TypeOf(cfg.hasher),
	}

	// Fast path: read-lock cache check
	registryMu.RLock()
	if cached, ok := registry[key]; ok {
		registryMu.RUnlock()
		return cached.(*Processor[T]), nil
	}
	registryMu.RUnlock()

	// Slow path: build and cache with write-lock
	registryMu.Lock()
	defer registryMu.Unlock()

	// Double-check pattern
	if cached, ok := registry[key]; ok {
		return cached.(*Processor[T]), nil
	}

	processor, err := NewProcessor[T](codec, opts...)
	if err != nil {
		return nil, err
	}

	registry[key] = processor
	return processor, nil
}

// Reset clears the processor registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[registryKey]any)
}
