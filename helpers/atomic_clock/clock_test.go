package atomic_clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestApi(t *testing.T) {
	t.Parallel()
	c := Now()
	const delta = 100 * time.Millisecond

	assert.False(t, c.IsZero())
	assert.True(t, Since(c) >= 0)
	assert.True(t, Since(c) < delta)

	var z Clock
	assert.True(t, z.IsZero())
	z.SetIfZero(5)
	z.SetIfZero(7)
	assert.Equal(t, int64(5), z.Nano())
	z.SetNowIfZero()
	assert.Equal(t, int64(5), z.Nano())

	later := New(c.Nano() + int64(time.Second))
	assert.Equal(t, time.Second, later.Sub(c))
	c.Set(0)
	c.SetNowIfZero()
	assert.False(t, c.IsZero())
}

func TestMonotonic(t *testing.T) {
	t.Parallel()
	prev := Source()
	for i := 0; i < 1000; i++ {
		now := Source()
		assert.True(t, now >= prev, "i=%d prev=%d now=%d", i, prev, now)
		prev = now
	}
}
