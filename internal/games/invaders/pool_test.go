package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolAcquireFirstFree(t *testing.T) {
	p := NewPool[Bullet](3)

	for want := 0; want < 3; want++ {
		i, ok := p.Acquire(Bullet{X: want})
		require.True(t, ok)
		assert.Equal(t, want, i)
	}

	i, ok := p.Acquire(Bullet{X: 99})
	assert.False(t, ok, "full pool drops the request")
	assert.Equal(t, -1, i)
	assert.Equal(t, 3, p.ActiveCount())
	assert.False(t, p.HasFree())

	p.ReleaseAt(1)
	i, ok = p.Acquire(Bullet{X: 7})
	require.True(t, ok)
	assert.Equal(t, 1, i, "lowest free slot is reused")
	assert.Equal(t, 7, p.At(1).X)
}

func TestPoolReleaseIsChecked(t *testing.T) {
	p := NewPool[Bullet](2)
	p.Acquire(Bullet{})

	p.ReleaseAt(-1)
	p.ReleaseAt(2)
	p.ReleaseAt(1) // already free
	assert.Equal(t, 1, p.ActiveCount())

	p.ReleaseAt(0)
	p.ReleaseAt(0)
	assert.Equal(t, 0, p.ActiveCount())
	assert.Nil(t, p.At(5))
	assert.False(t, p.IsActive(5))
}

func TestPoolForEachActive(t *testing.T) {
	p := NewPool[Bullet](4)
	p.Acquire(Bullet{X: 0})
	p.Acquire(Bullet{X: 1})
	p.Acquire(Bullet{X: 2})
	p.ReleaseAt(1)

	var seen []int
	p.ForEachActive(func(i int, b *Bullet) {
		seen = append(seen, i)
		b.Y = 5
		p.ReleaseAt(i)
	})

	assert.Equal(t, []int{0, 2}, seen)
	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 5, p.At(2).Y, "items are mutated in place")
}

func TestPoolClear(t *testing.T) {
	p := NewPool[Explosion](2)
	p.Acquire(Explosion{})
	p.Acquire(Explosion{})
	p.Clear()

	assert.Equal(t, 0, p.ActiveCount())
	assert.Equal(t, 2, p.Cap())
	_, ok := p.Acquire(Explosion{})
	assert.True(t, ok)
}
