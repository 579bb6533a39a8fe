package environment

import (
	"github.com/osse101/CustomizeFishing_Go/internal/domain"
)

// Offset is a block position relative to the hook
type Offset struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
	DZ int `json:"dz"`
}

// Snapshot is a sparse BlockView captured by the host around one hook.
// Positions that were not captured read as DefaultBlock.
type Snapshot struct {
	Origin       domain.Location
	Blocks       map[Offset]string
	DefaultBlock string
}

// NewSnapshot creates an empty snapshot centred on origin whose unknown blocks read as fill
func NewSnapshot(origin domain.Location, fill string) *Snapshot {
	return &Snapshot{
		Origin:       origin,
		Blocks:       make(map[Offset]string),
		DefaultBlock: fill,
	}
}

// Set records the block at a relative offset
func (s *Snapshot) Set(dx, dy, dz int, block string) {
	s.Blocks[Offset{DX: dx, DY: dy, DZ: dz}] = block
}

// BlockAt implements domain.BlockView
func (s *Snapshot) BlockAt(loc domain.Location) string {
	if loc.World != s.Origin.World {
		return s.DefaultBlock
	}
	off := Offset{DX: loc.X - s.Origin.X, DY: loc.Y - s.Origin.Y, DZ: loc.Z - s.Origin.Z}
	if block, ok := s.Blocks[off]; ok {
		return block
	}
	return s.DefaultBlock
}
