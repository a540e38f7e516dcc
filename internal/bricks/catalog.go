package bricks

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/steelwall/internal/core"
	"github.com/vovakirdan/steelwall/internal/wall"
)

// ErrNoBricks is returned when a catalog has no normal bricks.
var ErrNoBricks = errors.New("bricks: catalog has no normal bricks")

// Def describes one kind of brick as configured.
type Def struct {
	Name     string
	Kind     Kind
	Points   int
	Weight   int
	Glyph    rune
	Color    core.Color
	Duration float64 // Seconds added to the kind's timer
	Radius   float64 // Blast radius for Bomb and TNT
	Lifetime float64 // How long a TNT blast keeps destroying bricks
	Balls    int     // Balls added to the bank by BonusBalls
	Next     string  // Brick left behind when this one is struck

	next *Def
}

// Replacement returns the brick that takes this one's place when struck,
// or nil.
func (d *Def) Replacement() *Def {
	return d.next
}

// Catalog holds the normal and bonus brick definitions in spawn order.
// Indices match the weight tables built from them.
type Catalog struct {
	normal []*Def
	bonus  []*Def
	byName map[string]*Def
}

// NewCatalog validates the definitions and links replacement bricks.
// Replacement-only bricks may be listed with weight 0.
func NewCatalog(normal, bonus []Def) (*Catalog, error) {
	if len(normal) == 0 {
		return nil, ErrNoBricks
	}

	c := &Catalog{byName: make(map[string]*Def)}
	add := func(list []Def) ([]*Def, error) {
		out := make([]*Def, 0, len(list))
		for i := range list {
			d := list[i]
			if d.Name == "" {
				return nil, fmt.Errorf("bricks: definition %d has no name", i)
			}
			if _, dup := c.byName[d.Name]; dup {
				return nil, fmt.Errorf("bricks: duplicate brick %q", d.Name)
			}
			if d.Kind < 0 || d.Kind >= kindCount {
				return nil, fmt.Errorf("bricks: brick %q has invalid kind %d", d.Name, d.Kind)
			}
			if d.Glyph == 0 {
				d.Glyph = '▓'
			}
			c.byName[d.Name] = &d
			out = append(out, &d)
		}
		return out, nil
	}

	var err error
	if c.normal, err = add(normal); err != nil {
		return nil, err
	}
	if c.bonus, err = add(bonus); err != nil {
		return nil, err
	}

	for _, d := range c.byName {
		if d.Next == "" {
			continue
		}
		next, ok := c.byName[d.Next]
		if !ok {
			return nil, fmt.Errorf("bricks: brick %q leaves unknown brick %q", d.Name, d.Next)
		}
		d.next = next
	}

	return c, nil
}

// Normal returns the normal brick definitions in spawn order.
func (c *Catalog) Normal() []*Def { return c.normal }

// Bonus returns the bonus brick definitions in spawn order.
func (c *Catalog) Bonus() []*Def { return c.bonus }

// NormalWeights returns the spawn weights of the normal bricks.
func (c *Catalog) NormalWeights() []int { return weights(c.normal) }

// BonusWeights returns the spawn weights of the bonus bricks.
func (c *Catalog) BonusWeights() []int { return weights(c.bonus) }

// Lookup finds a definition by name.
func (c *Catalog) Lookup(name string) (*Def, bool) {
	d, ok := c.byName[name]
	return d, ok
}

// Resolve returns the definition a generated slot refers to.
func (c *Catalog) Resolve(s wall.Slot) *Def {
	idx, bonus := s.Index()
	list := c.normal
	if bonus {
		list = c.bonus
	}
	if idx < 0 || idx >= len(list) {
		return c.normal[0]
	}
	return list[idx]
}

func weights(defs []*Def) []int {
	out := make([]int, len(defs))
	for i, d := range defs {
		out[i] = d.Weight
	}
	return out
}
