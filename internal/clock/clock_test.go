package clock

import (
	"testing"
	"time"
)

func TestReal_Now(t *testing.T) {
	before := time.Now()
	got := Real{}.Now()
	if got.Before(before) {
		t.Errorf("Real.Now() = %v, before %v", got, before)
	}
}

func TestMock_ZeroDefaults(t *testing.T) {
	m := NewMock(time.Time{})
	want := time.Date(2020, 3, 25, 12, 40, 0, 0, time.UTC)
	if !m.Now().Equal(want) {
		t.Errorf("Now() = %v, want %v", m.Now(), want)
	}
}

func TestMock_SetAdvance(t *testing.T) {
	start := time.Date(2021, 1, 2, 3, 4, 5, 0, time.UTC)
	m := NewMock(start)

	m.Advance(90 * time.Second)
	if want := start.Add(90 * time.Second); !m.Now().Equal(want) {
		t.Errorf("after Advance Now() = %v, want %v", m.Now(), want)
	}

	later := start.Add(24 * time.Hour)
	m.Set(later)
	if !m.Now().Equal(later) {
		t.Errorf("after Set Now() = %v, want %v", m.Now(), later)
	}
}
