package testing

import (
	"testing"
	"time"

	"github.com/zoobzio/outbreak"
)

func TestLaunchTime(t *testing.T) {
	got := Formats().Format(outbreak.LocalDateTime, LaunchTime())
	if got != "2020/03/25 21:40" {
		t.Errorf("LaunchTime() formats as %q, want %q", got, "2020/03/25 21:40")
	}
}

func TestStatus_Clone(t *testing.T) {
	original := Status()
	cloned := original.Clone()

	cloned.Children[0].Children[0].Value = 1
	*cloned.Children[1].LastUpdate = cloned.Children[1].LastUpdate.Add(time.Hour)

	if original.Children[0].Children[0].Value != 64 {
		t.Error("Clone() should deep copy children")
	}
	if !original.Children[1].LastUpdate.Equal(LaunchTime()) {
		t.Error("Clone() should copy last_update")
	}
}

func TestSummary_Clone(t *testing.T) {
	original := Summary()
	cloned := original.Clone()
	cloned.Data[0].Sum = 99

	if original.Data[0].Sum != 10 {
		t.Error("Clone() should copy data")
	}
}

func TestNewsItems_Clone(t *testing.T) {
	original := NewsItems()
	cloned := original.Clone()
	cloned.Items[0].Text = "changed"

	if original.Items[0].Text == "changed" {
		t.Error("Clone() should copy items")
	}
}

func TestFlatStatus_Clone(t *testing.T) {
	original := FlatStatus()
	cloned := original.Clone()
	cloned.Children[0].Value = 0

	if original.Children[0].Value != 2048 {
		t.Error("Clone() should copy children")
	}
}
