package invaders

import (
	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Block is one destructible cell of a shield.
type Block struct {
	X, Y   int
	Active bool
}

// Shield is a fixed grid of blocks.
type Shield struct {
	X, Y   int
	Blocks [][]Block // [col][row]
}

// Shields owns every shield on the field.
type Shields struct {
	List []Shield

	cfg    config.ShieldConfig
	fieldW int
	fieldH int
}

// NewShields builds the shields for a field of the given size.
func NewShields(cfg config.ShieldConfig, fieldW, fieldH int) *Shields {
	s := &Shields{
		List:   make([]Shield, cfg.Count),
		cfg:    cfg,
		fieldW: fieldW,
		fieldH: fieldH,
	}
	cols, rows := cfg.BlockCols(), cfg.BlockRows()
	for i := range s.List {
		s.List[i].Blocks = make([][]Block, cols)
		for c := range s.List[i].Blocks {
			s.List[i].Blocks[c] = make([]Block, rows)
		}
	}
	s.Reset()
	return s
}

// Reset restores every shield to its initial arch pattern.
func (s *Shields) Reset() {
	count := len(s.List)
	spacing := (s.fieldW - count*s.cfg.Width) / (count + 1)
	cols, rows := s.cfg.BlockCols(), s.cfg.BlockRows()

	for i := range s.List {
		sh := &s.List[i]
		sh.X = spacing + i*(s.cfg.Width+spacing)
		sh.Y = s.fieldH - s.cfg.TopOffset
		for c := 0; c < cols; c++ {
			for r := 0; r < rows; r++ {
				sh.Blocks[c][r] = Block{
					X:      sh.X + c*s.cfg.BlockSize,
					Y:      sh.Y + r*s.cfg.BlockSize,
					Active: !s.inArch(c, r),
				}
			}
		}
	}
}

// inArch reports whether block (col, row) lies in the carved-out tunnel.
func (s *Shields) inArch(col, row int) bool {
	cols := float64(s.cfg.BlockCols())
	rows := float64(s.cfg.BlockRows())
	return float64(row) > rows*s.cfg.ArchTop &&
		float64(col) > cols*s.cfg.ArchLeft &&
		float64(col) < cols*s.cfg.ArchRight
}

// BlockBounds returns the rectangle of a block.
func (s *Shields) BlockBounds(b Block) core.Rect {
	return core.NewRect(b.X, b.Y, s.cfg.BlockSize, s.cfg.BlockSize)
}

// Hit deactivates the first active block containing (x, y), scanning shields
// in order and each shield column by column. It returns false on a miss.
func (s *Shields) Hit(x, y int) bool {
	for i := range s.List {
		sh := &s.List[i]
		for c := range sh.Blocks {
			for r := range sh.Blocks[c] {
				b := &sh.Blocks[c][r]
				if b.Active && s.BlockBounds(*b).ContainsPoint(x, y) {
					b.Active = false
					return true
				}
			}
		}
	}
	return false
}

// ActiveBlocks returns the number of active blocks across all shields.
func (s *Shields) ActiveBlocks() int {
	n := 0
	for i := range s.List {
		for c := range s.List[i].Blocks {
			for _, b := range s.List[i].Blocks[c] {
				if b.Active {
					n++
				}
			}
		}
	}
	return n
}
