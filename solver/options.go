// SPDX-License-Identifier: MIT

package solver

// options collects the settings PartialLexopt and ForeachLexopt accept
// as functional options (§1.3 of the expanded spec, matching the
// teacher's own WithX(...) Option convention).
type options struct {
	rational  bool
	maxSplits int
	bigParam  bool
}

// Option configures a solve. See WithRational, WithMaxSplits and
// WithBigParam.
type Option func(*options)

// WithRational sets the §3 rational flag: the cut & div phase is
// skipped entirely and each branch's pieces report the rational
// lex-optimum rather than the integer one.
func WithRational() Option {
	return func(o *options) { o.rational = true }
}

// WithMaxSplits caps the §4.3 splitting recursion's depth at n. The
// reference algorithm has no such cap; this is a host-side safety
// valve, off by default (n <= 0 disables it), surfaced as
// ErrInternalInvariant when exceeded.
func WithMaxSplits(n int) Option {
	return func(o *options) { o.maxSplits = n }
}

// WithBigParam forces allocation of the big-M column (§3, §4.5) even
// when no component of this solve needs its unbounded-output assertion
// exercised — useful for differential testing against the no-M path.
func WithBigParam() Option {
	return func(o *options) { o.bigParam = true }
}

func gatherOptions(opts ...Option) *options {
	o := &options{}
	for _, fn := range opts {
		fn(o)
	}
	return o
}
