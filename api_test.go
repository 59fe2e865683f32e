package outbreak_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/outbreak"
	"github.com/zoobzio/outbreak/json"
	codectest "github.com/zoobzio/outbreak/testing"
)

// Every record is a Record and its pointer a Decoder.
var (
	_ outbreak.Record[outbreak.LastUpdate]     = outbreak.LastUpdate{}
	_ outbreak.Record[outbreak.NewsItem]       = outbreak.NewsItem{}
	_ outbreak.Record[outbreak.NewsItems]      = outbreak.NewsItems{}
	_ outbreak.Record[outbreak.SummaryContent] = outbreak.SummaryContent{}
	_ outbreak.Record[outbreak.Summary]        = outbreak.Summary{}
	_ outbreak.Record[outbreak.Status]         = outbreak.Status{}
	_ outbreak.Record[outbreak.FlatStatus]     = outbreak.FlatStatus{}
	_ outbreak.Record[outbreak.DetailedStatus] = outbreak.DetailedStatus{}

	_ outbreak.Decoder = (*outbreak.LastUpdate)(nil)
	_ outbreak.Decoder = (*outbreak.NewsItem)(nil)
	_ outbreak.Decoder = (*outbreak.NewsItems)(nil)
	_ outbreak.Decoder = (*outbreak.SummaryContent)(nil)
	_ outbreak.Decoder = (*outbreak.Summary)(nil)
	_ outbreak.Decoder = (*outbreak.Status)(nil)
	_ outbreak.Decoder = (*outbreak.FlatStatus)(nil)
	_ outbreak.Decoder = (*outbreak.DetailedStatus)(nil)
)

func TestCloner_Interface(t *testing.T) {
	var c outbreak.Cloner[outbreak.Status] = codectest.Status()
	clone := c.Clone()
	if !reflect.DeepEqual(clone, codectest.Status()) {
		t.Error("Clone() should equal the original")
	}
}

func TestWorkflow_JSONCIngest(t *testing.T) {
	ctx := context.Background()

	// upstream feeds are sometimes hand-edited
	input := []byte(`{
		// generated nightly
		"attr": "patients",
		"value": 3072,
		"children": [
			{"attr": "leave", "value": 2048},
			{"attr": "dead", "value": 16},
		],
	}`)

	in, err := outbreak.NewProcessor[outbreak.FlatStatus](json.NewJSONC())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}
	out, err := outbreak.NewProcessor[outbreak.FlatStatus](json.New())
	if err != nil {
		t.Fatalf("NewProcessor() error: %v", err)
	}

	rec, err := in.Read(ctx, input)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !reflect.DeepEqual(*rec, codectest.FlatStatus()) {
		t.Errorf("Read() = %+v, want fixture", *rec)
	}

	data, err := out.Write(ctx, rec)
	if err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	want := `{"attr":"patients","value":3072,"children":[{"attr":"leave","value":2048},{"attr":"dead","value":16}]}`
	if string(data) != want {
		t.Errorf("Write() = %s, want %s", data, want)
	}
}

func TestWorkflow_ErrorInspection(t *testing.T) {
	proc, _ := outbreak.NewProcessor[outbreak.NewsItems](json.New())

	_, err := proc.Read(context.Background(), []byte(`{"news_items":[{"date":"2020/03/25","text":"x","link":"y"}]}`))

	var fe *outbreak.FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("Read() error = %v, want *FieldError", err)
	}
	if !errors.Is(err, outbreak.ErrUnknownField) {
		t.Errorf("Read() error = %v, want ErrUnknownField", err)
	}
	if fe.Record != "NewsItem" || fe.Field != "link" || fe.Path != "news_items[0]" {
		t.Errorf("FieldError = %s/%s at %q", fe.Record, fe.Field, fe.Path)
	}
	if !reflect.DeepEqual(fe.Allowed, outbreak.Fields("NewsItem")) {
		t.Errorf("Allowed = %v, want %v", fe.Allowed, outbreak.Fields("NewsItem"))
	}
	want := `unknown field "link" in NewsItem at news_items[0], expected one of date, text, url`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
