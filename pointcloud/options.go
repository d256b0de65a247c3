// SPDX-License-Identifier: MIT

package pointcloud

import "fmt"

// DefaultThreshold is the number of shared points that proves an overlap.
const DefaultThreshold = 12

// Option configures Merge and Align via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when the
// search runs.
type Option func(*Options)

// Options holds the search parameters.
type Options struct {
	// Threshold is the minimum number of coinciding points.
	Threshold int

	// UseFingerprint restricts candidate correspondences to point pairs
	// whose distance vectors appear in both clouds, and rejects a merge
	// outright when fewer than Threshold·(Threshold−1)/2 distances match.
	UseFingerprint bool

	// OnMerge is called by Align after each successful merge with the
	// input indexes of the clouds that were joined.
	OnMerge func(into, from []int, shared int)

	err error
}

// DefaultOptions returns Threshold 12 with the fingerprint filter enabled
// and a no-op OnMerge hook.
func DefaultOptions() Options {
	return Options{
		Threshold:      DefaultThreshold,
		UseFingerprint: true,
		OnMerge:        func([]int, []int, int) {},
	}
}

// WithThreshold sets the overlap threshold; k < 1 is invalid.
func WithThreshold(k int) Option {
	return func(o *Options) {
		if k < 1 {
			o.err = fmt.Errorf("%w: threshold must be positive (%d)", ErrOptionViolation, k)
			return
		}
		o.Threshold = k
	}
}

// WithFingerprint toggles the distance-fingerprint candidate filter.
func WithFingerprint(enabled bool) Option {
	return func(o *Options) {
		o.UseFingerprint = enabled
	}
}

// WithOnMerge registers a callback run after every merge performed by Align.
func WithOnMerge(fn func(into, from []int, shared int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnMerge = fn
		}
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
