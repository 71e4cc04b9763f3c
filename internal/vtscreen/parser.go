package vtscreen

import "github.com/mattn/go-runewidth"

// Parser owns a Screen and interprets the byte stream written to it,
// tracking the "pen" state (current SGR attributes) a real terminal would
// hold between writes. It implements io.Writer so integer formatting
// helpers can write straight into it the way a terminal-backed writer
// would.
type Parser struct {
	screen *Screen

	pen Cell

	// parse state for an in-progress escape sequence spanning Write calls.
	escState escState
	params   []byte
}

type escState int

const (
	escNone escState = iota
	escGotESC
	escCSI
)

// NewParser allocates a Parser over a blank rows x cols Screen.
func NewParser(rows, cols int) *Parser {
	return &Parser{
		screen: NewScreen(rows, cols),
		pen:    blankCell,
	}
}

// Screen returns the Parser's current grid state.
func (p *Parser) Screen() *Screen { return p.screen }

// SetSize resizes the underlying Screen.
func (p *Parser) SetSize(rows, cols int) { p.screen.resize(rows, cols) }

// Process interprets buf as a sequence of literal text and CSI escape
// sequences, mutating the Screen in place.
func (p *Parser) Process(buf []byte) {
	for _, b := range buf {
		p.processByte(b)
	}
}

// Write implements io.Writer by processing the bytes given, so that a
// caller building up an escape sequence a piece at a time (e.g. writing a
// cursor row as decimal digits) can target a Parser directly.
func (p *Parser) Write(buf []byte) (int, error) {
	p.Process(buf)
	return len(buf), nil
}

func (p *Parser) processByte(b byte) {
	switch p.escState {
	case escGotESC:
		if b == '[' {
			p.escState = escCSI
			p.params = p.params[:0]
			return
		}
		// Any other ESC-prefixed byte (save/restore cursor, alt-screen
		// toggles, and the like) is not part of the cell-grid contract
		// this emulator implements: those reach the real terminal only
		// through ScreenGuard's init/deinit sequences, never through
		// Process. Drop back to ground state.
		p.escState = escNone
		return
	case escCSI:
		if b >= 0x30 && b <= 0x3f { // parameter bytes: digits, ';', etc.
			p.params = append(p.params, b)
			return
		}
		p.runCSI(b)
		p.escState = escNone
		return
	}

	switch b {
	case 0x1b:
		p.escState = escGotESC
	case '\r':
		p.screen.cursorCol = 0
	case '\n':
		p.lineFeed()
	default:
		p.put(rune(b))
	}
}

func (p *Parser) runCSI(final byte) {
	switch final {
	case 'H':
		row, col := splitParams2(p.params)
		p.moveTo(row-1, col-1)
	case 'A':
		n := splitParams1(p.params, 1)
		p.moveTo(p.screen.cursorRow-n, p.screen.cursorCol)
	case 'B':
		n := splitParams1(p.params, 1)
		p.moveTo(p.screen.cursorRow+n, p.screen.cursorCol)
	case 'C':
		n := splitParams1(p.params, 1)
		p.moveTo(p.screen.cursorRow, p.screen.cursorCol+n)
	case 'D':
		n := splitParams1(p.params, 1)
		p.moveTo(p.screen.cursorRow, p.screen.cursorCol-n)
	case 'J':
		p.clearScreen()
	case 'K':
		p.clearLineToEnd()
	case 'm':
		p.applySGR(p.params)
	}
}

func (p *Parser) moveTo(row, col int) {
	if row < 0 {
		row = 0
	}
	if row >= p.screen.rows {
		row = p.screen.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col >= p.screen.cols {
		col = p.screen.cols - 1
	}
	p.screen.cursorRow, p.screen.cursorCol = row, col
}

func (p *Parser) clearScreen() {
	for r := range p.screen.cells {
		for c := range p.screen.cells[r] {
			p.screen.cells[r][c] = blankCell
		}
	}
}

func (p *Parser) clearLineToEnd() {
	row := p.screen.cells[p.screen.cursorRow]
	for c := p.screen.cursorCol; c < len(row); c++ {
		row[c] = blankCell
	}
}

// put writes r at the cursor, advancing by its display width and wrapping
// or scrolling as needed.
func (p *Parser) put(r rune) {
	w := runewidth.RuneWidth(r)
	if w < 1 {
		w = 1
	}
	if p.screen.cursorCol+w > p.screen.cols {
		p.screen.cursorCol = 0
		p.lineFeed()
	}

	cell := p.pen
	cell.Rune = r
	cell.Width = w
	p.screen.cells[p.screen.cursorRow][p.screen.cursorCol] = cell
	for i := 1; i < w; i++ {
		if p.screen.cursorCol+i < p.screen.cols {
			p.screen.cells[p.screen.cursorRow][p.screen.cursorCol+i] = Cell{Width: 0}
		}
	}
	p.screen.cursorCol += w
	if p.screen.cursorCol >= p.screen.cols {
		p.screen.cursorCol = 0
		p.lineFeed()
	}
}

// lineFeed advances the cursor to the next row, scrolling the grid up one
// row when already at the bottom.
func (p *Parser) lineFeed() {
	if p.screen.cursorRow+1 < p.screen.rows {
		p.screen.cursorRow++
		return
	}
	copy(p.screen.cells, p.screen.cells[1:])
	blank := make([]Cell, p.screen.cols)
	for i := range blank {
		blank[i] = blankCell
	}
	p.screen.cells[p.screen.rows-1] = blank
}

func (p *Parser) applySGR(params []byte) {
	codes := splitParamsAll(params)
	if len(codes) == 0 {
		codes = []int{0}
	}
	for i := 0; i < len(codes); i++ {
		code := codes[i]
		switch {
		case code == 0:
			p.pen = blankCell
		case code == 1:
			p.pen.Bold = true
		case code == 22:
			p.pen.Bold = false
		case code == 3:
			p.pen.Italic = true
		case code == 23:
			p.pen.Italic = false
		case code == 4:
			p.pen.Underline = true
		case code == 24:
			p.pen.Underline = false
		case code == 7:
			p.pen.Inverse = true
		case code == 27:
			p.pen.Inverse = false
		case code == 39:
			p.pen.FG = DefaultColor
		case code == 49:
			p.pen.BG = DefaultColor
		case code >= 30 && code <= 37:
			p.pen.FG = Indexed(uint8(code - 30))
		case code >= 40 && code <= 47:
			p.pen.BG = Indexed(uint8(code - 40))
		case code >= 90 && code <= 97:
			p.pen.FG = Indexed(uint8(code - 90 + 8))
		case code >= 100 && code <= 107:
			p.pen.BG = Indexed(uint8(code - 100 + 8))
		case code == 38 && i+2 < len(codes) && codes[i+1] == 5:
			p.pen.FG = Indexed(uint8(codes[i+2]))
			i += 2
		case code == 48 && i+2 < len(codes) && codes[i+1] == 5:
			p.pen.BG = Indexed(uint8(codes[i+2]))
			i += 2
		case code == 38 && i+4 < len(codes) && codes[i+1] == 2:
			p.pen.FG = RGB(uint8(codes[i+2]), uint8(codes[i+3]), uint8(codes[i+4]))
			i += 4
		case code == 48 && i+4 < len(codes) && codes[i+1] == 2:
			p.pen.BG = RGB(uint8(codes[i+2]), uint8(codes[i+3]), uint8(codes[i+4]))
			i += 4
		}
	}
}
