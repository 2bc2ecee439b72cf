package config

// Hero copy
const (
	Badge    = "Next-Gen Cybersecurity & AI Solutions"
	Headline = "Securing Your Future with AI-Driven Intelligence"
	Tagline  = "We combine cutting-edge artificial intelligence with deep cybersecurity expertise."
)

// Stat is one count-up figure shown under the headline.
type Stat struct {
	Value  int
	Suffix string
	Label  string
}

var Stats = []Stat{
	{500, "+", "Clients Protected"},
	{15, "M+", "Threats Blocked"},
	{99, ".9%", "Client Retention"},
	{12, "+", "Years Experience"},
}

// Hero timing
const (
	RevealDelayMillis   = 100
	CounterDurationMs   = 2000
	RevealOffset        = 30.0
	RevealSpringFreq    = 4.0
	RevealSpringDamping = 1.0
)

// Orb describes one glow orb by the top-left corner of its box. An axis
// flagged Rel is a fraction of the viewport, otherwise pixels.
type Orb struct {
	X, Y       float64
	RelX, RelY bool
	Size       float64
	Purple     bool
	Delay      float64 // seconds
}

var Orbs = []Orb{
	{X: -100, Y: -200, Size: 600, Delay: 0},
	{X: 0.6, Y: 200, RelX: true, Size: 500, Purple: true, Delay: 2},
	{X: 0.2, Y: 0.6, RelX: true, RelY: true, Size: 400, Delay: 1},
}

// Orb pulse, from opacity 0.3 at scale 1 to 0.7 at scale 1.2
const (
	OrbMinAlpha  = 0.3
	OrbMaxAlpha  = 0.7
	OrbMaxScale  = 1.2
	OrbPeriodSec = 4.0 // plus Delay
	OrbRings     = 6
)
