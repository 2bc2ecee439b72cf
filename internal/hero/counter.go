package hero

import (
	"math"
	"strconv"

	"github.com/olivierh59500/particle-field-go/internal/config"
)

// Counter counts up from zero to End in fixed increments, one per 16 ms
// tick, and settles exactly on End.
type Counter struct {
	End    int
	Suffix string

	step  float64
	value float64
	done  bool
}

// NewCounter returns a counter reaching end after roughly durationMs.
func NewCounter(end int, suffix string, durationMs int) *Counter {
	return &Counter{
		End:    end,
		Suffix: suffix,
		step:   float64(end) / (float64(durationMs) / config.FrameMillis),
	}
}

// Tick advances the counter by one increment.
func (c *Counter) Tick() {
	if c.done {
		return
	}
	c.value += c.step
	if c.value >= float64(c.End) {
		c.value = float64(c.End)
		c.done = true
	}
}

// Value is the number currently shown.
func (c *Counter) Value() int {
	if c.done {
		return c.End
	}
	return int(math.Floor(c.value))
}

// Done reports whether End has been reached.
func (c *Counter) Done() bool { return c.done }

func (c *Counter) String() string {
	return strconv.Itoa(c.Value()) + c.Suffix
}
