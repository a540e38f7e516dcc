package wall

import "github.com/vovakirdan/steelwall/internal/spawn"

// Row layout: 11 slots centred on x=0, two units apart.
const (
	SlotCount   = 11
	HalfSlots   = 5
	SlotSpacing = 2.0
	LeftmostX   = -10.0
)

// Slot is one brick position in a generated row.
type Slot struct {
	X float64
	// BrickIndex is the mirrored normal-brick draw for this column.
	// It is recorded even when the slot ends up holding a bonus brick.
	BrickIndex int
	// Bonus is this slot's own coin flip. It is not mirrored.
	Bonus      bool
	BonusIndex int
}

// Index returns the catalog index of the item placed in the slot and
// whether it comes from the bonus table.
func (s Slot) Index() (int, bool) {
	if s.Bonus {
		return s.BonusIndex, true
	}
	return s.BrickIndex, false
}

// Row is one horizontal band of bricks generated together.
type Row struct {
	Y     float64
	Slots [SlotCount]Slot
}

// Generator builds symmetric rows from two weight tables.
type Generator struct {
	bricks      *spawn.Selector
	bonus       *spawn.Selector
	bonusChance float64
	src         spawn.Source
}

// NewGenerator creates a row generator. bonusChance is a percentage in
// [0,100]; a nil or empty bonus table disables bonus placement.
func NewGenerator(bricks, bonus *spawn.Table, bonusChance float64, src spawn.Source) *Generator {
	return &Generator{
		bricks:      spawn.NewSelector(bricks, src),
		bonus:       spawn.NewSelector(bonus, src),
		bonusChance: bonusChance,
		src:         src,
	}
}

// Row generates one row at height y.
//
// Draw order is fixed: five half-row brick draws, then for each slot left
// to right an optional centre brick draw, the bonus roll, and an optional
// bonus draw. Seeded sources therefore reproduce identical walls.
func (g *Generator) Row(y float64) Row {
	row := Row{Y: y}

	var half [HalfSlots]int
	for i := range half {
		half[i] = g.bricks.SampleIndex()
	}

	i, dir := 0, 1
	for col := range SlotCount {
		slot := Slot{X: LeftmostX + float64(col)*SlotSpacing}

		if i == HalfSlots {
			slot.BrickIndex = g.bricks.SampleIndex()
			dir = -1
		} else {
			slot.BrickIndex = half[i]
		}

		roll := g.src.Float64() * 100
		if roll < g.bonusChance && g.bonus.Table().Len() > 0 {
			slot.Bonus = true
			slot.BonusIndex = g.bonus.SampleIndex()
		}

		row.Slots[col] = slot
		i += dir
	}

	return row
}

// InitialWall runs row generation at every integer height from top down to
// bottom inclusive.
func (g *Generator) InitialWall(top, bottom int) []Row {
	if top < bottom {
		return nil
	}
	rows := make([]Row, 0, top-bottom+1)
	for y := top; y >= bottom; y-- {
		rows = append(rows, g.Row(float64(y)))
	}
	return rows
}
