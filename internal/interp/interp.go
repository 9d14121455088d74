// Package interp provides pure functions for mapping values between numeric
// ranges. It is the arithmetic core behind the collapsing header: every
// derived visual property is a linear function of the header height.
package interp

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

// Number is the set of ordered numeric types a Range can span.
type Number interface {
	constraints.Integer | constraints.Float
}

// ErrDomain reports an input outside the domain of an operation.
var ErrDomain = errors.New("value outside domain")

// ErrInvalidRange reports a range whose lower bound exceeds its upper bound.
var ErrInvalidRange = errors.New("invalid range")

// DomainError carries the offending value and the domain it violated.
type DomainError struct {
	Value float64
	Lower float64
	Upper float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %g not in [%g, %g]", ErrDomain, e.Value, e.Lower, e.Upper)
}

// Unwrap allows errors.Is(err, ErrDomain).
func (e *DomainError) Unwrap() error {
	return ErrDomain
}

// Range is an immutable inclusive interval [Lower, Upper].
type Range[T Number] struct {
	lower T
	upper T
}

// NewRange returns the range [lower, upper].
func NewRange[T Number](lower, upper T) (Range[T], error) {
	if lower > upper {
		return Range[T]{}, fmt.Errorf("%w: lower %v > upper %v", ErrInvalidRange, lower, upper)
	}
	return Range[T]{lower: lower, upper: upper}, nil
}

// MustRange is like NewRange but panics on an invalid range.
// Intended for package-level constants.
func MustRange[T Number](lower, upper T) Range[T] {
	r, err := NewRange(lower, upper)
	if err != nil {
		panic(err)
	}
	return r
}

// Lower returns the lower bound.
func (r Range[T]) Lower() T { return r.lower }

// Upper returns the upper bound.
func (r Range[T]) Upper() T { return r.upper }

// Span returns Upper - Lower.
func (r Range[T]) Span() T { return r.upper - r.lower }

// Contains reports whether v lies within the range, bounds included.
func (r Range[T]) Contains(v T) bool {
	return v >= r.lower && v <= r.upper
}

// Clamp limits v to the range.
func (r Range[T]) Clamp(v T) T {
	return Clamp(v, r.lower, r.upper)
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%v, %v]", r.lower, r.upper)
}

// Unit is the normalized range [0, 1].
var Unit = MustRange(0.0, 1.0)

// Map converts value from the from range to the corresponding point of the
// to range. It fails with a *DomainError when value lies outside from, or
// when from has zero width and no unique mapping exists.
func Map[T Number](value T, from Range[T], to Range[float64]) (float64, error) {
	if !from.Contains(value) || from.Span() == 0 {
		return 0, &DomainError{
			Value: float64(value),
			Lower: float64(from.lower),
			Upper: float64(from.upper),
		}
	}
	t := float64(value-from.lower) / float64(from.upper-from.lower)
	return to.lower + (to.upper-to.lower)*t, nil
}

// MapClamped is Map with value first clamped into from. A zero-width from
// range maps to to.Lower.
func MapClamped[T Number](value T, from Range[T], to Range[float64]) float64 {
	if from.Span() == 0 {
		return to.lower
	}
	v, err := Map(from.Clamp(value), from, to)
	if err != nil {
		return to.lower
	}
	return v
}

// Invert returns 1 - x for x in [0, 1].
func Invert(x float64) (float64, error) {
	if !Unit.Contains(x) {
		return 0, &DomainError{Value: x, Lower: 0, Upper: 1}
	}
	return 1 - x, nil
}

// Lerp blends linearly between start and stop.
func Lerp(start, stop, fraction float64) float64 {
	return start + (stop-start)*fraction
}

// Clamp limits v to [lo, hi].
func Clamp[T Number](v, lo, hi T) T {
	return max(lo, min(v, hi))
}

// RoundHalfUp rounds to the nearest integer, ties toward positive infinity.
func RoundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}
