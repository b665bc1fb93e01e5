package screenstack

import "math"

// Offset is how far section i has slid in, in [0, h]. At 0 the section sits a
// full viewport below the screen; at h it is at rest covering its predecessor.
func Offset(i int, scrollY, h float64) float64 {
	if h <= 0 {
		return 0
	}
	return math.Max(0, math.Min(h, scrollY-h*(float64(i)+0.5)))
}

// Translate is the vertical translation applied to section i's container.
func Translate(i int, scrollY, h float64) float64 {
	return h - Offset(i, scrollY, h)
}

// ContainerHeight is the scroll range needed for n sections to finish their
// transitions.
func ContainerHeight(n int, h float64) float64 {
	return h * (float64(n) + 0.5)
}

// RestScroll is the smallest scroll position at which section i is at rest.
func RestScroll(i int, h float64) float64 {
	return h * (float64(i) + 1.5)
}
