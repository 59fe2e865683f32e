package outbreak

import (
	"context"
	"time"

	"github.com/zoobzio/capitan"
)

// Signals for processor events. Record decoders never emit; only the
// Processor boundary does.
var (
	SignalProcessorCreated = capitan.NewSignal("outbreak.processor.created", "Processor instantiated")
	SignalReadStart        = capitan.NewSignal("outbreak.read.start", "Read operation beginning")
	SignalReadComplete     = capitan.NewSignal("outbreak.read.complete", "Read operation finished")
	SignalWriteStart       = capitan.NewSignal("outbreak.write.start", "Write operation beginning")
	SignalWriteComplete    = capitan.NewSignal("outbreak.write.complete", "Write operation finished")
)

// Keys for typed event data.
var (
	KeyContentType = capitan.NewStringKey("content_type")
	KeyTypeName    = capitan.NewStringKey("type_name")
	KeySize        = capitan.NewIntKey("size")
	KeyDuration    = capitan.NewDurationKey("duration")
	KeyError       = capitan.NewErrorKey("error")
)

// emitProcessorCreated emits an event when a processor is created.
func emitProcessorCreated(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalProcessorCreated,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitReadStart emits an event when read begins.
func emitReadStart(ctx context.Context, contentType, typeName string, size int) {
	capitan.Emit(ctx, SignalReadStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
	)
}

// emitReadComplete emits an event when read finishes.
func emitReadComplete(ctx context.Context, contentType, typeName string, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalReadComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalReadComplete, fields...)
	}
}

// emitWriteStart emits an event when write begins.
func emitWriteStart(ctx context.Context, contentType, typeName string) {
	capitan.Emit(ctx, SignalWriteStart,
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
	)
}

// emitWriteComplete emits an event when write finishes.
func emitWriteComplete(ctx context.Context, contentType, typeName string, size int, duration time.Duration, err error) {
	fields := []capitan.Field{
		KeyContentType.Field(contentType),
		KeyTypeName.Field(typeName),
		KeySize.Field(size),
		KeyDuration.Field(duration),
	}
	if err != nil {
		fields = append(fields, KeyError.Field(err))
		capitan.Error(ctx, SignalWriteComplete, fields...)
	} else {
		capitan.Emit(ctx, SignalWriteComplete, fields...)
	}
}
