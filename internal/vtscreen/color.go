// Package vtscreen is a small ANSI/VT text-grid emulator: it consumes the
// literal byte sequences a drawing API feeds it and maintains a cell grid
// (rune, width, colors, attributes) plus cursor position, the same state a
// real terminal would hold. Two independent Screens compared against each
// other are what let a caller compute a minimal redraw.
package vtscreen

// ColorKind distinguishes the three color forms a cell's foreground or
// background can hold.
type ColorKind int

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorRGB
)

// Color is a foreground or background color in one of the three forms a
// standard-16/256-color/truecolor terminal understands.
type Color struct {
	Kind    ColorKind
	Idx     uint8
	R, G, B uint8
}

// DefaultColor is the terminal's configured default foreground/background.
var DefaultColor = Color{Kind: ColorDefault}

// Indexed builds a palette-indexed color, 0-255.
func Indexed(i uint8) Color { return Color{Kind: ColorIndexed, Idx: i} }

// RGB builds a 24-bit truecolor color.
func RGB(r, g, b uint8) Color { return Color{Kind: ColorRGB, R: r, G: g, B: b} }

// The 16 standard terminal colors, by name.
var (
	Black        = Indexed(0)
	Red          = Indexed(1)
	Green        = Indexed(2)
	Yellow       = Indexed(3)
	Blue         = Indexed(4)
	Magenta      = Indexed(5)
	Cyan         = Indexed(6)
	LightGrey    = Indexed(7)
	DarkGrey     = Indexed(8)
	LightRed     = Indexed(9)
	LightGreen   = Indexed(10)
	LightYellow  = Indexed(11)
	LightBlue    = Indexed(12)
	LightMagenta = Indexed(13)
	LightCyan    = Indexed(14)
	White        = Indexed(15)
)

func (c Color) equal(o Color) bool {
	if c.Kind != o.Kind {
		return false
	}
	switch c.Kind {
	case ColorIndexed:
		return c.Idx == o.Idx
	case ColorRGB:
		return c.R == o.R && c.G == o.G && c.B == o.B
	default:
		return true
	}
}

// AppendSGRFG appends the SGR parameter bytes (without the surrounding
// "\x1b[" / "m") that select c as a foreground color.
func (c Color) AppendSGRFG(dst []byte) []byte { return c.sgrFG(dst) }

// AppendSGRBG appends the SGR parameter bytes that select c as a
// background color.
func (c Color) AppendSGRBG(dst []byte) []byte { return c.sgrBG(dst) }

// sgrFG appends the SGR parameter bytes that select c as a foreground color.
func (c Color) sgrFG(dst []byte) []byte {
	switch c.Kind {
	case ColorDefault:
		return append(dst, "39"...)
	case ColorIndexed:
		if c.Idx < 8 {
			return appendUintDirect(dst, uint(c.Idx)+30)
		}
		if c.Idx < 16 {
			return appendUintDirect(dst, uint(c.Idx)+82)
		}
		dst = append(dst, "38;5;"...)
		return appendUintDirect(dst, uint(c.Idx))
	default: // ColorRGB
		dst = append(dst, "38;2;"...)
		dst = appendUintDirect(dst, uint(c.R))
		dst = append(dst, ';')
		dst = appendUintDirect(dst, uint(c.G))
		dst = append(dst, ';')
		return appendUintDirect(dst, uint(c.B))
	}
}

// sgrBG appends the SGR parameter bytes that select c as a background color.
func (c Color) sgrBG(dst []byte) []byte {
	switch c.Kind {
	case ColorDefault:
		return append(dst, "49"...)
	case ColorIndexed:
		if c.Idx < 8 {
			return appendUintDirect(dst, uint(c.Idx)+40)
		}
		if c.Idx < 16 {
			return appendUintDirect(dst, uint(c.Idx)+92)
		}
		dst = append(dst, "48;5;"...)
		return appendUintDirect(dst, uint(c.Idx))
	default: // ColorRGB
		dst = append(dst, "48;2;"...)
		dst = appendUintDirect(dst, uint(c.R))
		dst = append(dst, ';')
		dst = appendUintDirect(dst, uint(c.G))
		dst = append(dst, ';')
		return appendUintDirect(dst, uint(c.B))
	}
}
