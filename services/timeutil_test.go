package services

import "testing"

func TestParseClock(t *testing.T) {
	cases := []struct {
		in   string
		want int
		ok   bool
	}{
		{"00:00", 0, true},
		{"06:00", 360, true},
		{"23:59", 1439, true},
		{"9:00", 540, true},
		{"24:00", 0, false},
		{"10:60", 0, false},
		{"", 0, false},
		{"noon", 0, false},
	}
	for _, c := range cases {
		got, ok := parseClock(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("parseClock(%q) = (%d, %v), want (%d, %v)", c.in, got, ok, c.want, c.ok)
		}
	}
}

func TestFormatClockRoundTrip(t *testing.T) {
	for _, minutes := range []int{0, 359, 360, 719, 1439} {
		s := formatClock(minutes)
		back, ok := parseClock(s)
		if !ok || back != minutes {
			t.Errorf("formatClock(%d) = %q, parsed back to (%d, %v)", minutes, s, back, ok)
		}
	}
	if got := formatClock(570); got != "09:30" {
		t.Errorf("formatClock(570) = %q, want 09:30", got)
	}
}
