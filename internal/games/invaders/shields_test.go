package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func newTestShields() *Shields {
	cfg := config.DefaultInvadersConfig()
	return NewShields(cfg.Shields, cfg.Field.Width, cfg.Field.Height)
}

func TestShieldLayout(t *testing.T) {
	s := newTestShields()

	require.Len(t, s.List, 4)
	for i, wantX := range []int{96, 272, 448, 624} {
		assert.Equal(t, wantX, s.List[i].X, "shield %d", i)
		assert.Equal(t, 450, s.List[i].Y)
	}

	b := s.List[1].Blocks[3][2]
	assert.Equal(t, 272+24, b.X)
	assert.Equal(t, 450+16, b.Y)
}

func TestShieldArchCutout(t *testing.T) {
	s := newTestShields()

	for i, sh := range s.List {
		require.Len(t, sh.Blocks, 10)
		for col := range sh.Blocks {
			require.Len(t, sh.Blocks[col], 7)
			for row, b := range sh.Blocks[col] {
				carved := row >= 5 && col >= 4 && col <= 6
				assert.Equal(t, !carved, b.Active, "shield %d block col=%d row=%d", i, col, row)
			}
		}
	}
	assert.Equal(t, 4*(70-6), s.ActiveBlocks())
}

func TestShieldHitOrder(t *testing.T) {
	s := newTestShields()

	// (104, 458) touches the shared corner of blocks (0,0), (0,1), (1,0), (1,1).
	// Blocks are scanned column by column.
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	for _, cr := range want {
		require.True(t, s.Hit(104, 458))
		assert.False(t, s.List[0].Blocks[cr[0]][cr[1]].Active, "block col=%d row=%d", cr[0], cr[1])
	}
	assert.False(t, s.Hit(104, 458))
	assert.Equal(t, 4*64-4, s.ActiveBlocks())
}

func TestShieldHitMisses(t *testing.T) {
	s := newTestShields()

	assert.False(t, s.Hit(140, 502), "inside the arch")
	assert.False(t, s.Hit(50, 470), "between shields")
	assert.False(t, s.Hit(100, 449), "just above")
	assert.Equal(t, 4*64, s.ActiveBlocks())
}

func TestShieldReset(t *testing.T) {
	s := newTestShields()
	s.Hit(100, 452)
	s.Hit(300, 452)

	s.Reset()
	assert.Equal(t, 4*64, s.ActiveBlocks())
}

func TestNoShields(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Shields.Count = 0
	s := NewShields(cfg.Shields, cfg.Field.Width, cfg.Field.Height)

	assert.Empty(t, s.List)
	assert.False(t, s.Hit(100, 460))
	assert.Equal(t, 0, s.ActiveBlocks())
}
