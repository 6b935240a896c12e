// Package hook implements pre-commit association gates. A gate is a chain of
// predicates evaluated immediately before an association-mutating write
// commits; the first denial aborts the whole mutation with no partial write.
package hook

import (
	"context"
)

// BeforeAdd vets a candidate child before it is attached to an owner.
// Implementations must be side-effect free: on denial the store guarantees
// that neither the owner nor the candidate has been persisted, so a hook may
// not write state of its own. A denial is reported as a GatingDenied error;
// any other error aborts the mutation as a hard failure.
type BeforeAdd[O any, C any] func(ctx context.Context, owner O, candidate C) error

// Chain evaluates BeforeAdd hooks in registration order and short-circuits
// on the first error.
type Chain[O any, C any] struct {
	hooks []BeforeAdd[O, C]
}

// NewChain creates a chain from the given hooks.
func NewChain[O any, C any](hooks ...BeforeAdd[O, C]) *Chain[O, C] {
	return &Chain[O, C]{hooks: hooks}
}

// Append adds a hook to the end of the chain.
func (c *Chain[O, C]) Append(h BeforeAdd[O, C]) {
	c.hooks = append(c.hooks, h)
}

// Len returns the number of registered hooks.
func (c *Chain[O, C]) Len() int {
	return len(c.hooks)
}

// Run evaluates every hook in order. The first non-nil error stops
// evaluation and is returned unchanged.
func (c *Chain[O, C]) Run(ctx context.Context, owner O, candidate C) error {
	for _, h := range c.hooks {
		if err := h(ctx, owner, candidate); err != nil {
			return err
		}
	}
	return nil
}
