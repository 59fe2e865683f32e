package outbreak

import (
	"testing"
	"time"
)

var jst = time.FixedZone("JST", 9*60*60)

func TestFormats_Parse(t *testing.T) {
	f := FormatsIn(jst)

	tests := []struct {
		name   string
		layout Layout
		input  string
		want   time.Time
	}{
		{"local date-time", LocalDateTime, "2020/03/25 21:40", time.Date(2020, 3, 25, 21, 40, 0, 0, jst)},
		{"calendar date", CalendarDate, "2020/03/25", time.Date(2020, 3, 25, 0, 0, 0, 0, jst)},
		{"offset date-time utc", OffsetDateTime, "2020-03-25T09:40:00.000Z", time.Date(2020, 3, 25, 9, 40, 0, 0, time.UTC)},
		{"offset date-time no fraction", OffsetDateTime, "2020-03-25T18:40:00+09:00", time.Date(2020, 3, 25, 9, 40, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.Parse(tt.layout, tt.input)
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormats_ParseRejectsOtherLayouts(t *testing.T) {
	f := DefaultFormats()

	tests := []struct {
		name   string
		layout Layout
		input  string
	}{
		{"local as calendar", CalendarDate, "2020/03/25 21:40"},
		{"local as offset", OffsetDateTime, "2020/03/25 21:40"},
		{"calendar as local", LocalDateTime, "2020/03/25"},
		{"calendar as offset", OffsetDateTime, "2020/03/25"},
		{"offset as local", LocalDateTime, "2020-03-25T09:40:00.000Z"},
		{"offset as calendar", CalendarDate, "2020-03-25T09:40:00.000Z"},
		{"dashes as local", LocalDateTime, "2020-03-25 21:40"},
		{"seconds as local", LocalDateTime, "2020/03/25 21:40:00"},
		{"empty", LocalDateTime, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := f.Parse(tt.layout, tt.input); err == nil {
				t.Errorf("Parse(%s, %q) should fail", tt.layout, tt.input)
			}
		})
	}
}

func TestFormats_Format(t *testing.T) {
	f := FormatsIn(jst)
	instant := time.Date(2020, 3, 25, 12, 40, 0, 0, time.UTC)

	if got := f.Format(LocalDateTime, instant); got != "2020/03/25 21:40" {
		t.Errorf("Format(LocalDateTime) = %q, want %q", got, "2020/03/25 21:40")
	}
	if got := f.Format(CalendarDate, instant); got != "2020/03/25" {
		t.Errorf("Format(CalendarDate) = %q, want %q", got, "2020/03/25")
	}
	if got := f.Format(OffsetDateTime, instant); got != "2020-03-25T12:40:00.000Z" {
		t.Errorf("Format(OffsetDateTime) = %q, want %q", got, "2020-03-25T12:40:00.000Z")
	}
	if got := f.Format(OffsetDateTime, instant.In(jst)); got != "2020-03-25T21:40:00.000+09:00" {
		t.Errorf("Format(OffsetDateTime) = %q, want %q", got, "2020-03-25T21:40:00.000+09:00")
	}
}

func TestFormats_NilLocationIsUTC(t *testing.T) {
	var f Formats
	got, err := f.Parse(LocalDateTime, "2020/03/25 21:40")
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if got.Location() != time.UTC {
		t.Errorf("Location() = %v, want UTC", got.Location())
	}
}

func TestLayout_String(t *testing.T) {
	if LocalDateTime.String() != "local date-time" {
		t.Errorf("String() = %q", LocalDateTime.String())
	}
	if Layout(0).String() != "Layout(0)" {
		t.Errorf("String() = %q, want %q", Layout(0).String(), "Layout(0)")
	}
	if Layout(9).Pattern() != "" {
		t.Error("unknown layout should have no pattern")
	}
}
