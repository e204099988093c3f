package mathx

import "testing"

func TestClamp(t *testing.T) {
	cases := []struct{ v, lo, hi, want int }{
		{5, 0, 10, 5},
		{-3, 0, 10, 0},
		{42, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
	}
	for _, c := range cases {
		if got := Clamp(c.v, c.lo, c.hi); got != c.want {
			t.Errorf("Clamp(%d,%d,%d) = %d, want %d", c.v, c.lo, c.hi, got, c.want)
		}
	}
}

func TestBetween(t *testing.T) {
	if !Between(7, 2, 127) {
		t.Error("7 should be within [2,127]")
	}
	if Between(200, 2, 127) {
		t.Error("200 should be outside [2,127]")
	}
	if !Between(3, 10, 1) {
		t.Error("Between must be order-insensitive")
	}
}

func TestMapRoundEndpoints(t *testing.T) {
	if got := MapRound(0, 0, 255, 0, 180); got != 0 {
		t.Errorf("MapRound(0) = %d, want 0", got)
	}
	if got := MapRound(255, 0, 255, 0, 180); got != 180 {
		t.Errorf("MapRound(255) = %d, want 180", got)
	}
	// 0x80 is just past the midpoint of the input range.
	if got := MapRound(0x80, 0, 255, 0, 180); got != 90 {
		t.Errorf("MapRound(0x80) = %d, want 90", got)
	}
}

func TestMapRoundMonotone(t *testing.T) {
	prev := uint16(0)
	for raw := 0; raw <= 255; raw++ {
		got := MapRound(uint16(raw), 0, 255, 0, 180)
		if got < prev {
			t.Fatalf("MapRound not monotone at raw=%d: %d < %d", raw, got, prev)
		}
		if got > 180 {
			t.Fatalf("MapRound(%d) = %d exceeds 180", raw, got)
		}
		prev = got
	}
}

func TestRoundDiv(t *testing.T) {
	if got := RoundDiv(uint32(7), 2); got != 4 {
		t.Errorf("RoundDiv(7,2) = %d, want 4", got)
	}
	if got := RoundDiv(uint32(5), 0); got != 0 {
		t.Errorf("RoundDiv(_,0) = %d, want 0", got)
	}
}
