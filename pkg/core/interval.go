package core

import "math"

// Interval is a closed range of real numbers. An interval with Min > Max is empty.
type Interval struct {
	Min, Max float64
}

var (
	// EmptyInterval contains nothing
	EmptyInterval = Interval{Min: math.Inf(1), Max: math.Inf(-1)}
	// UniverseInterval contains every real number
	UniverseInterval = Interval{Min: math.Inf(-1), Max: math.Inf(1)}
)

// NewInterval creates an interval [min, max]
func NewInterval(min, max float64) Interval {
	return Interval{Min: min, Max: max}
}

// NewIntervalFromIntervals returns the tightest interval enclosing both a and b
func NewIntervalFromIntervals(a, b Interval) Interval {
	return Interval{Min: math.Min(a.Min, b.Min), Max: math.Max(a.Max, b.Max)}
}

// Size returns Max - Min
func (i Interval) Size() float64 {
	return i.Max - i.Min
}

// Contains reports whether min <= x <= max
func (i Interval) Contains(x float64) bool {
	return i.Min <= x && x <= i.Max
}

// Surrounds reports whether min < x < max
func (i Interval) Surrounds(x float64) bool {
	return i.Min < x && x < i.Max
}

// IsEmpty reports whether the interval contains no values
func (i Interval) IsEmpty() bool {
	return i.Min > i.Max
}

// Clamp restricts x to the interval
func (i Interval) Clamp(x float64) float64 {
	if x < i.Min {
		return i.Min
	}
	if x > i.Max {
		return i.Max
	}
	return x
}

// Expand grows the interval by delta in total (delta/2 on each side)
func (i Interval) Expand(delta float64) Interval {
	padding := delta / 2
	return Interval{Min: i.Min - padding, Max: i.Max + padding}
}
