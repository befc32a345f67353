// Package ranking selects the top entries of a collection by a metric.
// This is part of the Functional Core - no I/O, only pure functions.
package ranking

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// Policy decides what happens when more entries are requested than exist.
type Policy string

const (
	// PolicyStrict fails with InsufficientDataError.
	PolicyStrict Policy = "strict"
	// PolicyClamp returns every available entry instead.
	PolicyClamp Policy = "clamp"
)

// DefaultCount is the number of entries a report shows.
const DefaultCount = 10

// ErrInvalidCount is returned for a non-positive k.
var ErrInvalidCount = errors.New("rank count must be positive")

// InsufficientDataError reports that fewer items exist than were requested.
type InsufficientDataError struct {
	Requested int
	Available int
}

func (e *InsufficientDataError) Error() string {
	return fmt.Sprintf("requested top %d but only %d records are available", e.Requested, e.Available)
}

// ParsePolicy resolves a policy name; empty means strict.
func ParsePolicy(name string) (Policy, error) {
	switch Policy(name) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyClamp:
		return PolicyClamp, nil
	}
	return "", fmt.Errorf("unknown rank policy %q (want %s or %s)", name, PolicyStrict, PolicyClamp)
}

type options struct {
	ascending bool
	policy    Policy
}

// Option adjusts a TopK call.
type Option func(*options)

// Ascending ranks lowest values first.
func Ascending() Option {
	return func(o *options) { o.ascending = true }
}

// WithPolicy sets the insufficient-data policy.
func WithPolicy(p Policy) Option {
	return func(o *options) { o.policy = p }
}

// TopK returns the k items with the highest metric value, highest first.
// The sort is stable: items with equal values keep their input order.
// The input slice is not reordered.
func TopK[T any, N cmp.Ordered](items []T, metric func(T) N, k int, opts ...Option) ([]T, error) {
	o := options{policy: PolicyStrict}
	for _, opt := range opts {
		opt(&o)
	}

	if k <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, k)
	}
	if k > len(items) {
		if o.policy != PolicyClamp {
			return nil, &InsufficientDataError{Requested: k, Available: len(items)}
		}
		k = len(items)
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		if o.ascending {
			return cmp.Compare(metric(a), metric(b))
		}
		return cmp.Compare(metric(b), metric(a))
	})
	return sorted[:k], nil
}
