package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		minutes int
		present bool
		wantErr bool
	}{
		{"09:00", 540, true, false},
		{"00:00", 0, true, false},
		{"23:59", 1439, true, false},
		{"18:10:30", 1090, true, false},
		{"", 0, false, false},
		{"   ", 0, false, false},
		{"9", 0, false, true},
		{"24:00", 0, false, true},
		{"12:60", 0, false, true},
		{"ab:cd", 0, false, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error, got %v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", c.input, err)
			continue
		}
		if got.IsPresent() != c.present {
			t.Errorf("ParseClock(%q).IsPresent() = %v, want %v", c.input, got.IsPresent(), c.present)
		}
		if c.present && got.Minutes() != c.minutes {
			t.Errorf("ParseClock(%q).Minutes() = %d, want %d", c.input, got.Minutes(), c.minutes)
		}
	}
}

func TestClockSub(t *testing.T) {
	nine, _ := ParseClock("09:00")
	eightFifty, _ := ParseClock("08:50")

	if d := eightFifty.Sub(nine); d != -10 {
		t.Errorf("08:50 - 09:00 = %d, want -10", d)
	}
	if d := nine.Sub(eightFifty); d != 10 {
		t.Errorf("09:00 - 08:50 = %d, want 10", d)
	}
	if d := nine.DistanceTo(eightFifty); d != 10 {
		t.Errorf("DistanceTo = %d, want 10", d)
	}
}

func TestFromTime(t *testing.T) {
	at := time.Date(2025, 3, 14, 18, 10, 45, 0, time.UTC)
	c := FromTime(at)
	if !c.IsPresent() || c.Minutes() != 18*60+10 {
		t.Errorf("FromTime = %v, want 18:10", c)
	}
	if c.String() != "18:10" {
		t.Errorf("String() = %q, want 18:10", c.String())
	}
}

func TestAbsentClockString(t *testing.T) {
	var c Clock
	if c.IsPresent() {
		t.Error("zero Clock should be absent")
	}
	if c.String() != "" {
		t.Errorf("absent Clock String() = %q, want empty", c.String())
	}
}
