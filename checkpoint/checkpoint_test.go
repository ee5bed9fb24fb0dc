package checkpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckpointAbandonRestores(t *testing.T) {
	x := 42
	cp := New(&x)
	x = 99
	cp.Abandon()
	assert.Equal(t, 42, x)
}

func TestCheckpointCommitKeeps(t *testing.T) {
	x := 42
	cp := New(&x)
	x = 99
	cp.Commit()
	cp.Abandon() // must be a no-op after commit
	assert.Equal(t, 99, x)
}

func TestCheckpointDoubleAbandonIdempotent(t *testing.T) {
	x := 1.0
	cp := New(&x)
	x = 2.0
	cp.Abandon()
	x = 3.0 // mutate again after restore; second Abandon must not touch it
	cp.Abandon()
	assert.Equal(t, 3.0, x)
}

func TestTryAcceptsAndRejects(t *testing.T) {
	x := 10
	ok := Try(&x, func() { x = 20 }, func() bool { return x == 20 })
	assert.True(t, ok)
	assert.Equal(t, 20, x)

	ok = Try(&x, func() { x = 999 }, func() bool { return false })
	assert.False(t, ok)
	assert.Equal(t, 20, x)
}

// TestCheckpointBitExactRestore checks that checkpoint+mutate+abandon
// restores state bit-exactly, including float64 values that are not
// representable as "nice" decimals.
func TestCheckpointBitExactRestore(t *testing.T) {
	orig := 0.1 + 0.2
	v := orig
	cp := New(&v)
	v = 123.456
	cp.Abandon()
	assert.Equal(t, orig, v)
}
