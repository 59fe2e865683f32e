package outbreak

import (
	"fmt"
	"time"
)

// Layout identifies one of the fixed textual date/time patterns.
// Each layout is bound to exactly one semantic kind of date; they are not
// interchangeable.
type Layout uint8

const (
	// LocalDateTime is a wall-clock minute in the registry location: 2020/03/25 21:40.
	LocalDateTime Layout = iota + 1

	// CalendarDate is a day without time of day: 2020/03/25.
	CalendarDate

	// OffsetDateTime is an RFC 3339 instant with milliseconds: 2020-03-25T09:40:00.000Z.
	OffsetDateTime
)

const (
	localDateTimeLayout  = "2006/01/02 15:04"
	calendarDateLayout   = "2006/01/02"
	offsetDateTimeLayout = "2006-01-02T15:04:05.000Z07:00"
)

// String returns the layout name.
func (l Layout) String() string {
	switch l {
	case LocalDateTime:
		return "local date-time"
	case CalendarDate:
		return "calendar date"
	case OffsetDateTime:
		return "offset date-time"
	default:
		return fmt.Sprintf("Layout(%d)", uint8(l))
	}
}

// Pattern returns the Go reference layout used to format values.
func (l Layout) Pattern() string {
	switch l {
	case LocalDateTime:
		return localDateTimeLayout
	case CalendarDate:
		return calendarDateLayout
	case OffsetDateTime:
		return offsetDateTimeLayout
	default:
		return ""
	}
}

// Formats is the format registry handed to every encoder and decoder.
// Location anchors the local layouts; it is never read from process state.
type Formats struct {
	Location *time.Location
}

// DefaultFormats returns a registry anchored at UTC.
func DefaultFormats() Formats {
	return Formats{Location: time.UTC}
}

// FormatsIn returns a registry anchored at loc.
func FormatsIn(loc *time.Location) Formats {
	return Formats{Location: loc}
}

func (f Formats) location() *time.Location {
	if f.Location == nil {
		return time.UTC
	}
	return f.Location
}

// Parse reads s using the given layout.
func (f Formats) Parse(l Layout, s string) (time.Time, error) {
	switch l {
	case LocalDateTime, CalendarDate:
		t, err := time.ParseInLocation(l.Pattern(), s, f.location())
		if err != nil {
			return time.Time{}, fmt.Errorf("%q is not a %s: %w", s, l, err)
		}
		return t, nil
	case OffsetDateTime:
		// RFC3339Nano accepts any fractional precision, including none.
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%q is not an %s: %w", s, l, err)
		}
		return t, nil
	default:
		return time.Time{}, fmt.Errorf("unknown layout %s", l)
	}
}

// Format renders t using the given layout.
func (f Formats) Format(l Layout, t time.Time) string {
	switch l {
	case LocalDateTime, CalendarDate:
		return t.In(f.location()).Format(l.Pattern())
	case OffsetDateTime:
		return t.Format(l.Pattern())
	default:
		return ""
	}
}
