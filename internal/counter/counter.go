package counter

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	baseDuration   = 900 * time.Millisecond
	jitterDuration = 700 * time.Millisecond

	// FrameInterval is how often an animating set should be re-rendered.
	FrameInterval = 16 * time.Millisecond
)

// Spec describes one animated statistic.
type Spec struct {
	ID     string
	Label  string
	Target int
}

// Value is a statistic as displayed at a given instant.
type Value struct {
	ID    string
	Label string
	Value int
	Text  string
}

// Defaults returns the site statistics.
func Defaults() []Spec {
	return []Spec{
		{ID: "statUpdates", Label: "Updates", Target: 24},
		{ID: "statPrompts", Label: "Prompts", Target: 48},
		{ID: "statSubs", Label: "Subscribers", Target: 1200},
	}
}

type counter struct {
	spec     Spec
	duration time.Duration
}

// Set animates a group of counters from zero to their targets. The animation
// runs once: Start after the first call is a no-op.
type Set struct {
	counters []counter
	start    time.Time
	started  bool
}

// NewSet assigns each counter a duration of 900ms plus up to 700ms of jitter
// drawn from rnd, which must return values in [0, 1).
func NewSet(specs []Spec, rnd func() float64) *Set {
	s := &Set{counters: make([]counter, len(specs))}
	for i, spec := range specs {
		jitter := 0.0
		if rnd != nil {
			jitter = rnd()
		}
		s.counters[i] = counter{
			spec:     spec,
			duration: baseDuration + time.Duration(jitter*float64(jitterDuration)),
		}
	}
	return s
}

// Start begins the animation at now. It reports whether this call started it.
func (s *Set) Start(now time.Time) bool {
	if s.started {
		return false
	}
	s.started = true
	s.start = now
	return true
}

// Started reports whether the animation has begun.
func (s *Set) Started() bool {
	return s.started
}

// Values returns every counter at now. Before Start all values are zero.
func (s *Set) Values(now time.Time) []Value {
	out := make([]Value, len(s.counters))
	for i, c := range s.counters {
		v := 0
		if s.started {
			v = valueAt(c, now.Sub(s.start))
		}
		out[i] = Value{ID: c.spec.ID, Label: c.spec.Label, Value: v, Text: Format(v)}
	}
	return out
}

// Done reports whether every counter has reached its target.
func (s *Set) Done(now time.Time) bool {
	if !s.started {
		return false
	}
	elapsed := now.Sub(s.start)
	for _, c := range s.counters {
		if elapsed < c.duration {
			return false
		}
	}
	return true
}

func valueAt(c counter, elapsed time.Duration) int {
	p := 1.0
	if c.duration > 0 {
		p = math.Min(1, float64(elapsed)/float64(c.duration))
	}
	if p < 0 {
		p = 0
	}
	return int(math.Floor(float64(c.spec.Target) * Ease(p)))
}

// Ease is the ease-out cubic curve 1-(1-p)^3.
func Ease(p float64) float64 {
	return 1 - math.Pow(1-p, 3)
}

// Format prints v with thousands separators.
func Format(v int) string {
	return humanize.Comma(int64(v))
}
