package screenstack

import "time"

type Frame struct {
	ViewportHeight  float64 `json:"viewportHeight"`
	ScrollY         float64 `json:"scrollY"`
	SectionCount    int     `json:"sectionCount"`
	ContainerHeight float64 `json:"containerHeight"`
	// DocumentHeight adds one viewport so the last section can reach rest.
	DocumentHeight      float64    `json:"documentHeight"`
	Offsets             []float64  `json:"offsets"`
	Translations        []float64  `json:"translations"`
	ContactScrollTarget float64    `json:"contactScrollTarget"`
	Transition          Transition `json:"transition"`
}

// Stack holds the current plan and viewport height. Frames are always
// derived from both, so a new plan or a resize can never leave offsets
// computed for a previous section count behind.
type Stack struct {
	plan   Plan
	height float64
	motion *Motion
}

func NewStack(plan Plan, height float64, motion *Motion) *Stack {
	if motion == nil {
		motion = NewMotion(DefaultDebounce, DefaultTransition)
	}
	return &Stack{plan: plan, height: height, motion: motion}
}

func (s *Stack) SetPlan(p Plan) {
	s.plan = p
}

func (s *Stack) Resize(height float64) {
	s.height = height
}

func (s *Stack) Plan() Plan {
	return s.plan
}

// Scroll records scroll activity at now and returns the resulting frame.
func (s *Stack) Scroll(scrollY float64, now time.Time) Frame {
	s.motion.Observe(now)
	return s.Frame(scrollY, now)
}

func (s *Stack) Frame(scrollY float64, now time.Time) Frame {
	n := s.plan.Count()
	h := s.height
	f := Frame{
		ViewportHeight:  h,
		ScrollY:         scrollY,
		SectionCount:    n,
		ContainerHeight: ContainerHeight(n, h),
		DocumentHeight:  ContainerHeight(n, h) + h,
		Offsets:         make([]float64, n),
		Translations:    make([]float64, n),
		Transition:      s.motion.Transition(now),
	}
	for _, sec := range s.plan.Sections {
		f.Offsets[sec.Index] = Offset(sec.Index, scrollY, h)
		if sec.Stacked {
			f.Translations[sec.Index] = Translate(sec.Index, scrollY, h)
		}
	}
	if i := s.plan.IndexOf(KindContact); i >= 0 {
		f.ContactScrollTarget = RestScroll(i, h)
	}
	return f
}
