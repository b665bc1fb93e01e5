package screenstack

import "time"

const (
	DefaultDebounce   = 150 * time.Millisecond
	DefaultTransition = 300 * time.Millisecond
)

type Transition struct {
	DurationMs int64  `json:"durationMs"`
	Easing     string `json:"easing,omitempty"`
}

// Motion tracks scroll activity. While a scroll was observed within the
// debounce window, offsets apply without animation so sections follow the
// wheel or finger; once idle, offset changes animate.
type Motion struct {
	debounce time.Duration
	duration time.Duration
	last     time.Time
}

func NewMotion(debounce, duration time.Duration) *Motion {
	return &Motion{debounce: debounce, duration: duration}
}

func (m *Motion) Observe(at time.Time) {
	m.last = at
}

func (m *Motion) Scrolling(now time.Time) bool {
	return !m.last.IsZero() && now.Sub(m.last) < m.debounce
}

func (m *Motion) Transition(now time.Time) Transition {
	if m.Scrolling(now) {
		return Transition{DurationMs: 0}
	}
	return Transition{DurationMs: m.duration.Milliseconds(), Easing: "ease-out"}
}

func (m *Motion) Debounce() time.Duration {
	return m.debounce
}
