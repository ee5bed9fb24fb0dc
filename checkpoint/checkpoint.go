// Package checkpoint implements scoped, rollback-on-abandonment guards over
// a single mutable value: capture a value, let the caller mutate it, then
// either Commit (keep the mutation) or Abandon (restore the captured
// value). Go has no destructors, so rollback is explicit — callers pair
// New with a deferred or direct Abandon on every exit path, or use Try,
// which does that pairing for them.
//
// A Checkpoint must be used single-threaded and must not outlive the slot
// it guards; none of that is enforced here, by design, to keep the type a
// zero-overhead value wrapper around a pointer.
package checkpoint

// Checkpoint captures the value pointed to by Slot at construction time and
// restores it on Abandon, unless Commit has already been called. Commit and
// Abandon are both idempotent no-ops after the first call.
type Checkpoint[T any] struct {
	slot      *T
	saved     T
	committed bool
	done      bool
}

// New captures *slot's current value and returns a Checkpoint guarding it.
func New[T any](slot *T) *Checkpoint[T] {
	return &Checkpoint[T]{slot: slot, saved: *slot}
}

// Commit marks the checkpoint as accepted: a subsequent Abandon becomes a
// no-op, and the slot keeps whatever value it currently holds.
func (c *Checkpoint[T]) Commit() {
	c.committed = true
}

// Abandon restores the slot to its captured value, unless Commit was called
// first. Safe to call multiple times, and safe to call via defer even after
// an explicit Commit.
func (c *Checkpoint[T]) Abandon() {
	if c.done {
		return
	}
	c.done = true
	if !c.committed {
		*c.slot = c.saved
	}
}

// Try runs mutate against the guarded slot and returns accept's verdict.
// accept is expected to apply/inspect whatever mutate just did and report
// whether the result should stick. On true, the checkpoint is committed; on
// false, it is abandoned and the slot is restored. Try is a convenience for
// the extremely common "mutate, validate, commit-or-rollback" pattern used
// throughout the annealers and the greedy rounder.
func Try[T any](slot *T, mutate func(), accept func() bool) bool {
	cp := New(slot)
	mutate()
	if accept() {
		cp.Commit()
		return true
	}
	cp.Abandon()
	return false
}
