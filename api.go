// Package outbreak encodes and decodes regional pandemic-tracking records
// (case counts, status breakdowns, news items, last-update timestamps)
// with hand-written, field-by-field codecs.
//
// # Document Model
//
// Wire codecs turn bytes into a small ordered document model and back:
//
//   - Object: ordered members, duplicate keys preserved
//   - Array: ordered values
//   - string, int64, uint64, float64, bool, nil
//
// Record decoders consume that model. They never see bytes.
//
// # Records
//
//	LastUpdate      {"last_update": "2020/03/25 21:40"}
//	NewsItems       {"news_items": [{"date": "2020/03/25", "text": "...", "url": "..."}]}
//	Summary         {"data": [{"date": "2020-03-25T09:40:00.000Z", "sum": 10}], "last_update": "..."}
//	Status          {"attr": "patients", "value": 4096, "children": [...], "last_update": "..."}
//	FlatStatus      {"attr": "patients", "value": 3072, "children": [{"attr": "leave", "value": 2048}]}
//
// Status is the recursive tree: children and last_update are optional and
// omitted when unset. FlatStatus is the older two-level shape where children
// are mandatory. The two are distinct types.
//
// # Decoding Rules
//
// Every record has a closed set of keys. Decoding fails with a *FieldError
// wrapping one of:
//
//   - ErrUnknownField: key outside the set (the error lists the allowed keys)
//   - ErrDuplicateField: recognized key seen twice
//   - ErrMissingField: mandatory key never seen
//   - ErrMalformedValue: value of the wrong type, wrong date pattern,
//     negative or overflowing count, unknown attribute token
//
// The first violation aborts the decode; no partial record is returned.
//
// # Date Formats
//
// Three fixed layouts, bound to the fields that use them:
//
//   - LocalDateTime  2020/03/25 21:40          last_update fields
//   - CalendarDate   2020/03/25                NewsItem.date
//   - OffsetDateTime 2020-03-25T09:40:00.000Z  SummaryContent.date
//
// Local layouts are read in the Formats location, which is always passed
// explicitly.
//
// # Basic Usage
//
//	proc, _ := outbreak.NewProcessor[outbreak.Summary](
//	    json.New(),
//	    outbreak.WithLocation(tokyo),
//	)
//
//	summary, err := proc.Read(ctx, body)
//	if errors.Is(err, outbreak.ErrMissingField) {
//	    // ...
//	}
//
//	data, _ := proc.Write(ctx, summary)
//	sum, _ := proc.Fingerprint(ctx, summary)
//
// # Codec Providers
//
// The following codec implementations are available as subpackages:
//
//   - json - JSON encoding (application/json), plus JSONC input
//   - yaml - YAML encoding (application/yaml)
//   - msgpack - MessagePack encoding (application/msgpack)
//   - bson - BSON encoding (application/bson)
package outbreak
