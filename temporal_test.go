package happyhourd

import (
	"testing"
	"time"
)

// 2024-03-01 is a Friday; 2024-03-02 a Saturday.
func friday(hour, minute int) time.Time {
	return time.Date(2024, 3, 1, hour, minute, 0, 0, time.UTC)
}

func saturday(hour, minute int) time.Time {
	return time.Date(2024, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestParseClockMinutes(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"12:00 AM", 0},
		{"12:00 PM", 720},
		{"12:30 AM", 30},
		{"1:00 AM", 60},
		{"4:00 PM", 16 * 60},
		{"7:00 PM", 19 * 60},
		{"11:59 PM", 23*60 + 59},
		{"9:15 am", 9*60 + 15},
		{"  5:30 pm ", 17*60 + 30},
		{"4:00 p.m.", 16 * 60},
		// Malformed strings degrade to midnight; established behavior.
		{"", 0},
		{"4 PM", 0},
		{"16:00", 0},
		{"whenever", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseClockMinutes(tt.in); got != tt.want {
				t.Errorf("ParseClockMinutes(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func fridayVenue() *Venue {
	return &Venue{
		ID:        "v-fri",
		Name:      "Friday Spot",
		Days:      []string{"Friday"},
		StartTime: "4:00 PM",
		EndTime:   "7:00 PM",
	}
}

func TestHappeningNow(t *testing.T) {
	v := fridayVenue()

	if !HappeningNow(v, friday(17, 30)) {
		t.Error("expected happening at Friday 17:30")
	}
	if !HappeningNow(v, friday(16, 0)) {
		t.Error("expected happening at window start")
	}
	if !HappeningNow(v, friday(19, 0)) {
		t.Error("expected happening at window end")
	}
	if HappeningNow(v, friday(15, 30)) {
		t.Error("did not expect happening before the window")
	}
	if HappeningNow(v, friday(19, 1)) {
		t.Error("did not expect happening after the window")
	}
	if HappeningNow(v, saturday(17, 30)) {
		t.Error("did not expect happening on Saturday")
	}
}

func TestStartingSoon(t *testing.T) {
	v := fridayVenue()

	if !StartingSoon(v, friday(15, 30)) {
		t.Error("expected starting soon at Friday 15:30")
	}
	if !StartingSoon(v, friday(14, 0)) {
		t.Error("expected starting soon exactly two hours out")
	}
	if StartingSoon(v, friday(13, 59)) {
		t.Error("did not expect starting soon beyond the horizon")
	}
	if StartingSoon(v, friday(16, 0)) {
		t.Error("did not expect starting soon once the window opened")
	}
	if StartingSoon(v, saturday(15, 30)) {
		t.Error("did not expect starting soon on Saturday")
	}
}

func TestHappeningToday(t *testing.T) {
	v := fridayVenue()

	if !HappeningToday(v, friday(2, 0)) {
		t.Error("expected happening today on Friday, any time")
	}
	if HappeningToday(v, saturday(17, 30)) {
		t.Error("did not expect happening today on Saturday")
	}
}

// HappeningNow and StartingSoon each imply HappeningToday, and are
// mutually exclusive at any instant.
func TestTemporalProperties(t *testing.T) {
	venues := []*Venue{
		fridayVenue(),
		{ID: "v-allweek", Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}, StartTime: "12:00 AM", EndTime: "11:59 PM"},
		{ID: "v-malformed", Days: []string{"Friday"}, StartTime: "whenever", EndTime: "later"},
	}

	for day := 0; day < 2; day++ {
		for hour := 0; hour < 24; hour++ {
			now := time.Date(2024, 3, 1+day, hour, 30, 0, 0, time.UTC)
			for _, v := range venues {
				happening := HappeningNow(v, now)
				soon := StartingSoon(v, now)

				if happening && !HappeningToday(v, now) {
					t.Errorf("%s at %v: happening now but not today", v.ID, now)
				}
				if soon && !HappeningToday(v, now) {
					t.Errorf("%s at %v: starting soon but not today", v.ID, now)
				}
				if happening && soon {
					t.Errorf("%s at %v: both happening now and starting soon", v.ID, now)
				}
			}
		}
	}
}

// A malformed window parses to minute 0, so the venue shows as
// happening exactly at midnight on its listed days.
func TestMalformedWindowMidnight(t *testing.T) {
	v := &Venue{ID: "v-bad", Days: []string{"Friday"}, StartTime: "??", EndTime: "??"}

	if !HappeningNow(v, friday(0, 0)) {
		t.Error("expected malformed window to match midnight")
	}
	if HappeningNow(v, friday(0, 1)) {
		t.Error("did not expect malformed window to match past midnight")
	}
}
