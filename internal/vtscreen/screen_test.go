package vtscreen

import "testing"

func TestScreenSizeAndCursor(t *testing.T) {
	s := NewScreen(24, 80)
	rows, cols := s.Size()
	if rows != 24 || cols != 80 {
		t.Fatalf("Size() = (%d, %d), want (24, 80)", rows, cols)
	}
	row, col := s.CursorPosition()
	if row != 0 || col != 0 {
		t.Fatalf("CursorPosition() = (%d, %d), want (0, 0)", row, col)
	}
}

func TestScreenResizeClampsCursor(t *testing.T) {
	s := NewScreen(10, 10)
	s.cursorRow, s.cursorCol = 9, 9
	s.resize(5, 5)
	if s.cursorRow != 4 || s.cursorCol != 4 {
		t.Fatalf("cursor after shrink = (%d, %d), want (4, 4)", s.cursorRow, s.cursorCol)
	}
}

func TestScreenResizePreservesContents(t *testing.T) {
	s := NewScreen(3, 3)
	s.cells[0][0] = Cell{Rune: 'x', Width: 1}
	s.resize(5, 5)
	if s.cells[0][0].Rune != 'x' {
		t.Fatal("resize lost an existing cell")
	}
	if s.cells[4][4] != blankCell {
		t.Fatal("newly grown cells should be blank")
	}
}

func TestStateDiffEmptyWhenIdentical(t *testing.T) {
	a := NewScreen(5, 5)
	b := NewScreen(5, 5)
	if diff := a.StateDiff(b); len(diff) != 0 {
		t.Fatalf("StateDiff() of identical screens = %q, want empty", diff)
	}
}

func TestStateDiffSingleCellChange(t *testing.T) {
	prev := NewScreen(5, 5)
	next := NewScreen(5, 5)
	next.cells[2][2] = Cell{Rune: 'x', Width: 1, FG: DefaultColor, BG: DefaultColor}

	diff := next.StateDiff(prev)
	want := "\x1b[3;3Hx\x1b[1;1H"
	if string(diff) != want {
		t.Fatalf("StateDiff() = %q, want %q", diff, want)
	}
}

func TestStateDiffAdjacentCellsNoRedundantMove(t *testing.T) {
	prev := NewScreen(5, 5)
	next := NewScreen(5, 5)
	next.cells[0][0] = Cell{Rune: 'a', Width: 1, FG: DefaultColor, BG: DefaultColor}
	next.cells[0][1] = Cell{Rune: 'b', Width: 1, FG: DefaultColor, BG: DefaultColor}

	diff := next.StateDiff(prev)
	want := "\x1b[1;1Hab\x1b[1;1H"
	if string(diff) != want {
		t.Fatalf("StateDiff() = %q, want %q", diff, want)
	}
}

func TestContentsDiffIgnoresAttributes(t *testing.T) {
	prev := NewScreen(3, 3)
	next := NewScreen(3, 3)
	next.cells[0][0] = Cell{Rune: 'a', Width: 1, FG: Green, Bold: true}
	prev.cells[0][0] = Cell{Rune: 'a', Width: 1, FG: DefaultColor}

	if diff := next.ContentsDiff(prev); len(diff) != 0 {
		t.Fatalf("ContentsDiff() = %q, want empty (only attributes differ)", diff)
	}
}

func TestContentsDiffRuneChange(t *testing.T) {
	prev := NewScreen(3, 3)
	next := NewScreen(3, 3)
	next.cells[1][1] = Cell{Rune: 'z', Width: 1}

	diff := next.ContentsDiff(prev)
	want := "\x1b[2;2Hz\x1b[1;1H"
	if string(diff) != want {
		t.Fatalf("ContentsDiff() = %q, want %q", diff, want)
	}
}

func TestStateFormattedSkipsBlankCells(t *testing.T) {
	s := NewScreen(3, 3)
	s.cells[1][1] = Cell{Rune: 'm', Width: 1, FG: DefaultColor, BG: DefaultColor}

	out := s.StateFormatted()
	want := "\x1b[2J\x1b[H\x1b[2;2Hm\x1b[1;1H"
	if string(out) != want {
		t.Fatalf("StateFormatted() = %q, want %q", out, want)
	}
}
