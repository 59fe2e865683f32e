// Package testing provides test fixtures for outbreak.
package testing

import (
	"time"

	"github.com/zoobzio/outbreak"
	"github.com/zoobzio/outbreak/internal/clock"
)

// tokyo is shared so decoded times carry the same *Location as fixtures.
var tokyo = time.FixedZone("JST", 9*60*60)

// Tokyo returns the fixed +09:00 zone the fixtures are anchored at.
// A fixed zone keeps tests independent of the host tz database.
func Tokyo() *time.Location {
	return tokyo
}

// Formats returns a format registry anchored at Tokyo.
func Formats() outbreak.Formats {
	return outbreak.FormatsIn(Tokyo())
}

// LaunchTime is 2020/03/25 21:40 in Tokyo.
func LaunchTime() time.Time {
	return time.Date(2020, 3, 25, 21, 40, 0, 0, Tokyo())
}

// Clock returns a mock clock 27 seconds past LaunchTime.
func Clock() *clock.Mock {
	return clock.NewMock(LaunchTime().Add(27 * time.Second).UTC())
}

// LastUpdate returns the LastUpdate fixture.
func LastUpdate() outbreak.LastUpdate {
	return outbreak.LastUpdate{Time: LaunchTime()}
}

// SummaryContent returns a single series point.
func SummaryContent() outbreak.SummaryContent {
	return outbreak.SummaryContent{
		Date: time.Date(2020, 3, 25, 9, 25, 0, 0, time.UTC),
		Sum:  10,
	}
}

// Summary returns the Summary fixture.
func Summary() outbreak.Summary {
	return outbreak.Summary{
		Data:       []outbreak.SummaryContent{SummaryContent()},
		LastUpdate: LaunchTime(),
	}
}

// NewsItems returns a two-item news feed.
func NewsItems() outbreak.NewsItems {
	return outbreak.NewsItems{
		Items: []outbreak.NewsItem{
			{
				Date: time.Date(2020, 3, 25, 0, 0, 0, 0, Tokyo()),
				Text: "Dashboard launched",
				URL:  "https://example.com/news/1?lang=ja&src=feed",
			},
			{
				Date: time.Date(2020, 3, 24, 0, 0, 0, 0, Tokyo()),
				Text: "Testing centre opened",
				URL:  "https://example.com/news/2",
			},
		},
	}
}

// Status returns a three-level status tree with one timestamped node.
func Status() outbreak.Status {
	stamp := LaunchTime()
	return outbreak.Status{
		Attr:  outbreak.AttrPatients,
		Value: 4096,
		Children: []outbreak.Status{
			{
				Attr:  outbreak.AttrHospitalizations,
				Value: 2048,
				Children: []outbreak.Status{
					{Attr: outbreak.AttrSeverelyPatients, Value: 64},
					{Attr: outbreak.AttrOther, Value: 1984},
				},
			},
			{Attr: outbreak.AttrAccommodations, Value: 32, LastUpdate: &stamp},
			{Attr: outbreak.AttrLeave, Value: 2016},
		},
	}
}

// FlatStatus returns the two-level status fixture.
func FlatStatus() outbreak.FlatStatus {
	return outbreak.FlatStatus{
		Attr:  outbreak.AttrPatients,
		Value: 3072,
		Children: []outbreak.DetailedStatus{
			{Attr: outbreak.AttrLeave, Value: 2048},
			{Attr: outbreak.AttrDead, Value: 16},
		},
	}
}
