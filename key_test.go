package textmode

import "testing"

func TestKeyIntoBytesEncoding(t *testing.T) {
	cases := []struct {
		name string
		key  Key
		want []byte
	}{
		{"ctrl-a", KeyCtrl('a'), []byte{1}},
		{"ctrl-z", KeyCtrl('z'), []byte{26}},
		{"meta-c", KeyMeta('c'), []byte{0x1b, 'c'}},
		{"backspace", KeyBackspace, []byte{0x7f}},
		{"escape", KeyEscape, []byte{0x1b}},
		{"up", KeyUp, []byte{0x1b, '[', 'A'}},
		{"down", KeyDown, []byte{0x1b, '[', 'B'}},
		{"right", KeyRight, []byte{0x1b, '[', 'C'}},
		{"left", KeyLeft, []byte{0x1b, '[', 'D'}},
		{"keypad-up", KeyKeypadUp, []byte{0x1b, 'O', 'A'}},
		{"home", KeyHome, []byte{0x1b, '[', 'H'}},
		{"end", KeyEnd, []byte{0x1b, '[', 'F'}},
		{"insert", KeyInsert, []byte{0x1b, '[', '2', '~'}},
		{"delete", KeyDelete, []byte{0x1b, '[', '3', '~'}},
		{"pageup", KeyPageUp, []byte{0x1b, '[', '5', '~'}},
		{"pagedown", KeyPageDown, []byte{0x1b, '[', '6', '~'}},
		{"f1", KeyF(1), []byte{0x1b, 'O', 'P'}},
		{"f4", KeyF(4), []byte{0x1b, 'O', 'S'}},
		{"f5", KeyF(5), []byte{0x1b, '[', '1', '5', '~'}},
		{"f20", KeyF(20), []byte{0x1b, '[', '3', '4', '~'}},
		{"char", KeyChar('x'), []byte("x")},
		{"string", KeyString("hello"), []byte("hello")},
		{"byte", KeyByte(0x41), []byte{0x41}},
		{"bytes", KeyBytes([]byte{1, 2, 3}), []byte{1, 2, 3}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.key.IntoBytes()
			if string(got) != string(tc.want) {
				t.Fatalf("IntoBytes() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestKeyBytesCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	k := KeyBytes(src)
	src[0] = 0xff
	got, ok := k.AsBytes()
	if !ok {
		t.Fatal("AsBytes() returned false")
	}
	if got[0] != 1 {
		t.Fatalf("KeyBytes retained a reference to caller's slice: got[0] = %d", got[0])
	}
}

func TestKeyEqual(t *testing.T) {
	if !KeyChar('a').Equal(KeyChar('a')) {
		t.Fatal("identical Char keys should be equal")
	}
	if KeyChar('a').Equal(KeyChar('b')) {
		t.Fatal("different Char keys should not be equal")
	}
	if !KeyBytes([]byte{1, 2}).Equal(KeyBytes([]byte{1, 2})) {
		t.Fatal("identical Bytes keys should be equal")
	}
	if KeyUp.Equal(KeyDown) {
		t.Fatal("Up and Down should not be equal")
	}
}

func TestKeyAccessors(t *testing.T) {
	if _, ok := KeyUp.AsChar(); ok {
		t.Fatal("AsChar should fail on a non-Char key")
	}
	if c, ok := KeyF(10).AsF(); !ok || c != 10 {
		t.Fatalf("AsF() = (%d, %v), want (10, true)", c, ok)
	}
	if c, ok := KeyCtrl('q').AsCtrl(); !ok || c != 'q' {
		t.Fatalf("AsCtrl() = (%c, %v), want ('q', true)", c, ok)
	}
}
