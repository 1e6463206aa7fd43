package dialog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPool(t *testing.T) {
	var p Pool
	a := &Instance{ID: "a"}
	b := &Instance{ID: "b"}

	assert.Equal(t, 0, p.Len())
	assert.Nil(t, p.Current())

	got, ok := p.TryAcquire(a)
	assert.True(t, ok)
	assert.Same(t, a, got)
	assert.Equal(t, 1, p.Len())

	got, ok = p.TryAcquire(b)
	assert.False(t, ok)
	assert.Same(t, a, got, "occupied slot returns the occupant")
	assert.Equal(t, 1, p.Len())

	assert.False(t, p.Release(b), "non-occupant cannot release")
	assert.True(t, p.Release(a))
	assert.False(t, p.Release(a))
	assert.Equal(t, 0, p.Len())
}

func TestManualScheduler(t *testing.T) {
	s := NewManualScheduler()
	var order []string

	s.AfterFunc(20*time.Millisecond, func() { order = append(order, "b") })
	s.AfterFunc(10*time.Millisecond, func() {
		order = append(order, "a")
		s.AfterFunc(5*time.Millisecond, func() { order = append(order, "a2") })
	})
	s.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })

	s.Advance(9 * time.Millisecond)
	assert.Empty(t, order)

	s.Advance(11 * time.Millisecond)
	assert.Equal(t, []string{"a", "a2", "b", "c"}, order)
	assert.Equal(t, 20*time.Millisecond, s.Now())
	assert.Equal(t, 0, s.Pending())

	s.AfterFunc(time.Second, func() { order = append(order, "d") })
	assert.Equal(t, time.Second, s.Drain())
	assert.Equal(t, "d", order[len(order)-1])
}
