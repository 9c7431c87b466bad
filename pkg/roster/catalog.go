package roster

import (
	"fmt"
	"strings"
)

// Day is one weekday of the roster grid.
type Day string

// Block is one fixed-length time block within a day.
type Block string

const (
	Monday    Day = "Monday"
	Tuesday   Day = "Tuesday"
	Wednesday Day = "Wednesday"
	Thursday  Day = "Thursday"
	Friday    Day = "Friday"
)

const (
	Block10to12 Block = "10-12"
	Block12to14 Block = "12-14"
	Block14to16 Block = "14-16"
	Block16to18 Block = "16-18"
)

const (
	// openingHeadcount applies to the first block of each day.
	openingHeadcount  = 2
	standardHeadcount = 3
)

// Slot identifies one (day, block) cell of the roster grid.
type Slot struct {
	Day   Day   `json:"day"`
	Block Block `json:"block"`
}

func (s Slot) String() string {
	return string(s.Day) + " " + string(s.Block)
}

// Catalog is the fixed universe of slots: an ordered set of days crossed with
// an ordered set of time blocks. It is immutable after construction.
type Catalog struct {
	days   []Day
	blocks []Block
	slots  []Slot
}

// New returns the default weekday catalog: Monday-Friday with four two-hour
// blocks per day.
func New() *Catalog {
	return NewWithGrid(
		[]Day{Monday, Tuesday, Wednesday, Thursday, Friday},
		[]Block{Block10to12, Block12to14, Block14to16, Block16to18},
	)
}

// NewWithGrid builds a catalog over a custom grid. Slot order is day-major,
// matching the given day and block order.
func NewWithGrid(days []Day, blocks []Block) *Catalog {
	c := &Catalog{
		days:   append([]Day(nil), days...),
		blocks: append([]Block(nil), blocks...),
	}
	c.slots = make([]Slot, 0, len(days)*len(blocks))
	for _, d := range c.days {
		for _, b := range c.blocks {
			c.slots = append(c.slots, Slot{Day: d, Block: b})
		}
	}
	return c
}

// Days returns the ordered days of the catalog.
func (c *Catalog) Days() []Day {
	return c.days
}

// Blocks returns the ordered time blocks of a single day.
func (c *Catalog) Blocks() []Block {
	return c.blocks
}

// Slots returns every slot of the grid in catalog order.
func (c *Catalog) Slots() []Slot {
	return c.slots
}

// Required returns the minimum headcount for a slot. The opening block of a
// day needs two people, every later block needs three.
func (c *Catalog) Required(s Slot) int {
	if len(c.blocks) > 0 && s.Block == c.blocks[0] {
		return openingHeadcount
	}
	return standardHeadcount
}

// Contains reports whether the slot belongs to this catalog.
func (c *Catalog) Contains(s Slot) bool {
	return c.dayIndex(s.Day) >= 0 && c.BlockIndex(s.Block) >= 0
}

// BlockIndex returns the position of a block within the day order, or -1 if
// the block is not part of the catalog.
func (c *Catalog) BlockIndex(b Block) int {
	for i, known := range c.blocks {
		if known == b {
			return i
		}
	}
	return -1
}

func (c *Catalog) dayIndex(d Day) int {
	for i, known := range c.days {
		if known == d {
			return i
		}
	}
	return -1
}

// ParseSlot parses a "<day> <block>" label (e.g. "Monday 10-12") into a slot
// of this catalog.
func (c *Catalog) ParseSlot(label string) (Slot, error) {
	day, block, ok := strings.Cut(strings.TrimSpace(label), " ")
	if !ok {
		return Slot{}, fmt.Errorf("invalid slot label %q", label)
	}
	s := Slot{Day: Day(day), Block: Block(strings.TrimSpace(block))}
	if !c.Contains(s) {
		return Slot{}, fmt.Errorf("slot %q is not in the catalog", label)
	}
	return s, nil
}
