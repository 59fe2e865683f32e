package outbreak_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/outbreak"
	codectest "github.com/zoobzio/outbreak/testing"
)

// recordRules describes one record for the field-rule table.
type recordRules struct {
	record    string
	doc       outbreak.Object
	mandatory []string
	decode    func(doc any) error
}

func decoderFor[T any, PT interface {
	*T
	outbreak.Decoder
}]() func(any) error {
	return func(doc any) error {
		_, err := outbreak.Decode[T, PT](doc, codectest.Formats())
		return err
	}
}

func allRecords() []recordRules {
	f := codectest.Formats()
	stamp := codectest.LaunchTime()
	status := outbreak.Status{
		Attr:       outbreak.AttrPatients,
		Value:      1,
		Children:   []outbreak.Status{{Attr: outbreak.AttrDead, Value: 1}},
		LastUpdate: &stamp,
	}

	return []recordRules{
		{
			record:    "LastUpdate",
			doc:       codectest.LastUpdate().EncodeObject(f),
			mandatory: []string{"last_update"},
			decode:    decoderFor[outbreak.LastUpdate](),
		},
		{
			record:    "NewsItem",
			doc:       codectest.NewsItems().Items[0].EncodeObject(f),
			mandatory: []string{"date", "text", "url"},
			decode:    decoderFor[outbreak.NewsItem](),
		},
		{
			record:    "NewsItems",
			doc:       codectest.NewsItems().EncodeObject(f),
			mandatory: []string{"news_items"},
			decode:    decoderFor[outbreak.NewsItems](),
		},
		{
			record:    "SummaryContent",
			doc:       codectest.SummaryContent().EncodeObject(f),
			mandatory: []string{"date", "sum"},
			decode:    decoderFor[outbreak.SummaryContent](),
		},
		{
			record:    "Summary",
			doc:       codectest.Summary().EncodeObject(f),
			mandatory: []string{"data", "last_update"},
			decode:    decoderFor[outbreak.Summary](),
		},
		{
			record:    "Status",
			doc:       status.EncodeObject(f),
			mandatory: []string{"attr", "value"},
			decode:    decoderFor[outbreak.Status](),
		},
		{
			record:    "FlatStatus",
			doc:       codectest.FlatStatus().EncodeObject(f),
			mandatory: []string{"attr", "value", "children"},
			decode:    decoderFor[outbreak.FlatStatus](),
		},
		{
			record:    "DetailedStatus",
			doc:       codectest.FlatStatus().Children[0].EncodeObject(f),
			mandatory: []string{"attr", "value"},
			decode:    decoderFor[outbreak.DetailedStatus](),
		},
	}
}

// without copies doc minus the member named key.
func without(doc outbreak.Object, key string) outbreak.Object {
	out := make(outbreak.Object, 0, len(doc))
	for _, m := range doc {
		if m.Key != key {
			out = append(out, m)
		}
	}
	return out
}

// with copies doc plus one more member.
func with(doc outbreak.Object, key string, value any) outbreak.Object {
	out := make(outbreak.Object, len(doc), len(doc)+1)
	copy(out, doc)
	return append(out, outbreak.Member{Key: key, Value: value})
}

func wantFieldError(t *testing.T, err, sentinel error, record, field string) {
	t.Helper()
	if !errors.Is(err, sentinel) {
		t.Fatalf("Decode() error = %v, want %v", err, sentinel)
	}
	var fe *outbreak.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("error should be *FieldError, got %T", err)
	}
	if fe.Record != record || fe.Field != field {
		t.Errorf("FieldError = %s/%s, want %s/%s", fe.Record, fe.Field, record, field)
	}
}

func TestFieldRules_ValidDocuments(t *testing.T) {
	for _, rr := range allRecords() {
		t.Run(rr.record, func(t *testing.T) {
			if !reflect.DeepEqual(rr.doc.Keys(), outbreak.Fields(rr.record)) {
				t.Fatalf("Keys() = %v, want every field %v", rr.doc.Keys(), outbreak.Fields(rr.record))
			}
			if err := rr.decode(rr.doc); err != nil {
				t.Errorf("Decode() error: %v", err)
			}
		})
	}
}

func TestFieldRules_Missing(t *testing.T) {
	for _, rr := range allRecords() {
		for _, key := range rr.mandatory {
			t.Run(rr.record+"/"+key, func(t *testing.T) {
				err := rr.decode(without(rr.doc, key))
				wantFieldError(t, err, outbreak.ErrMissingField, rr.record, key)
			})
		}
	}
}

func TestFieldRules_OptionalMayBeAbsent(t *testing.T) {
	for _, rr := range allRecords() {
		for _, key := range outbreak.Fields(rr.record) {
			optional := true
			for _, m := range rr.mandatory {
				if m == key {
					optional = false
				}
			}
			if !optional {
				continue
			}
			t.Run(rr.record+"/"+key, func(t *testing.T) {
				if err := rr.decode(without(rr.doc, key)); err != nil {
					t.Errorf("Decode() without %s error: %v", key, err)
				}
			})
		}
	}
}

func TestFieldRules_Duplicate(t *testing.T) {
	for _, rr := range allRecords() {
		for _, m := range rr.doc {
			t.Run(rr.record+"/"+m.Key, func(t *testing.T) {
				// the repeated value is identical and valid
				err := rr.decode(with(rr.doc, m.Key, m.Value))
				wantFieldError(t, err, outbreak.ErrDuplicateField, rr.record, m.Key)
			})
		}
	}
}

func TestFieldRules_Unknown(t *testing.T) {
	for _, rr := range allRecords() {
		t.Run(rr.record, func(t *testing.T) {
			err := rr.decode(with(rr.doc, "extra", "x"))
			wantFieldError(t, err, outbreak.ErrUnknownField, rr.record, "extra")

			var fe *outbreak.FieldError
			errors.As(err, &fe)
			if !reflect.DeepEqual(fe.Allowed, outbreak.Fields(rr.record)) {
				t.Errorf("Allowed = %v, want %v", fe.Allowed, outbreak.Fields(rr.record))
			}
		})
	}
}
