package hero

import "testing"

func TestCounterReachesEnd(t *testing.T) {
	tests := []struct {
		name     string
		end      int
		duration int
		ticks    int // ticks needed to finish
	}{
		{"clients", 500, 2000, 125},
		{"years", 12, 192, 12},
		{"instant", 10, 16, 1},
		{"zero", 0, 2000, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCounter(tt.end, "+", tt.duration)
			if c.Value() != 0 {
				t.Fatalf("initial Value() = %d, want 0", c.Value())
			}
			for i := 0; i < tt.ticks-1; i++ {
				c.Tick()
				if c.Done() {
					t.Fatalf("done after %d ticks, want %d", i+1, tt.ticks)
				}
			}
			c.Tick()
			if !c.Done() || c.Value() != tt.end {
				t.Errorf("after %d ticks: done=%v value=%d, want done at %d", tt.ticks, c.Done(), c.Value(), tt.end)
			}
			c.Tick()
			if c.Value() != tt.end {
				t.Errorf("overshot to %d", c.Value())
			}
		})
	}
}

func TestCounterFloorsAndFormats(t *testing.T) {
	c := NewCounter(15, "M+", 2000) // step 0.12
	for i := 0; i < 10; i++ {
		c.Tick()
	}
	if c.Value() != 1 {
		t.Errorf("Value() = %d after 10 ticks, want 1", c.Value())
	}
	if c.String() != "1M+" {
		t.Errorf("String() = %q, want 1M+", c.String())
	}
}

func TestCounterMonotonic(t *testing.T) {
	c := NewCounter(99, ".9%", 2000)
	prev := 0
	for !c.Done() {
		c.Tick()
		if c.Value() < prev {
			t.Fatalf("went backwards: %d -> %d", prev, c.Value())
		}
		prev = c.Value()
	}
}
