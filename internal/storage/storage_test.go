package storage

import "testing"

func TestMaxConcurrentIO(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{SSD, 256},
		{HDD, 32},
		{Unknown, 64},
	}
	for _, c := range cases {
		if got := c.kind.MaxConcurrentIO(); got != c.want {
			t.Errorf("%s.MaxConcurrentIO() = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestProbeNeverFails(t *testing.T) {
	// Probe must never panic or error out; a nonexistent path falls back
	// to Unknown rather than propagating a stat failure.
	if got := Probe("/path/does/not/exist/at/all"); got != Unknown {
		t.Errorf("Probe(nonexistent) = %s, want unknown", got)
	}
}
