package vtscreen

import "strconv"

// Cell is a single grid position: a rune (zero for an untouched/cleared
// cell, rendered as a space), the number of columns it occupies once
// go-runewidth has measured it, and the SGR attributes active when it was
// written.
type Cell struct {
	Rune  rune
	Width int

	FG, BG Color

	Bold      bool
	Italic    bool
	Underline bool
	Inverse   bool
}

// blankCell is what a freshly sized or cleared grid position holds.
var blankCell = Cell{Width: 1, FG: DefaultColor, BG: DefaultColor}

func (c Cell) sameAttrs(o Cell) bool {
	return c.FG.equal(o.FG) && c.BG.equal(o.BG) &&
		c.Bold == o.Bold && c.Italic == o.Italic &&
		c.Underline == o.Underline && c.Inverse == o.Inverse
}

func (c Cell) equal(o Cell) bool {
	return c.Rune == o.Rune && c.Width == o.Width && c.sameAttrs(o)
}

func appendUintDirect(dst []byte, v uint) []byte {
	return strconv.AppendUint(dst, uint64(v), 10)
}
