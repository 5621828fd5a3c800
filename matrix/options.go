// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for allocation policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Notes:
//   - The only policy today is the element cap that turns an oversized
//     request into ErrAllocation instead of a runtime allocation failure.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultMaxElements caps rows*cols for any single matrix built through
// NewDense, NewFromRows or Mul (64Mi ints).
const DefaultMaxElements = 1 << 26

// ---------- Internal panic messages (no magic strings) ----------

const panicMaxElementsInvalid = "matrix: WithMaxElements: limit must be > 0"

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	maxElements int // > 0; DefaultMaxElements
}

// WithMaxElements sets the element cap used by allocating constructors.
// Panics when n <= 0.
//
// Complexity: O(1).
func WithMaxElements(n int) Option {
	if n <= 0 {
		panic(panicMaxElementsInvalid)
	}

	return func(o *Options) { o.maxElements = n }
}

// defaultOptions returns Options populated with package defaults.
func defaultOptions() Options {
	return Options{maxElements: DefaultMaxElements}
}

// gatherOptions applies opts in order; later setters win.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
