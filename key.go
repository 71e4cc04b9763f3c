package textmode

import "fmt"

// Key represents a single classified keypress read from the input byte
// stream. Unlike a fixed enum of physical keys, Key carries its payload
// inline: String and Bytes variants hold the literal run of bytes that
// produced them, so no information is lost between the raw stream and the
// classified value.
type Key struct {
	kind kindTag

	// r holds the payload for Char and F.
	r rune
	// b holds the payload for Byte, Ctrl, and Meta.
	b byte
	// s holds the payload for String.
	s string
	// buf holds the payload for Bytes.
	buf []byte
}

type kindTag int

const (
	kindString kindTag = iota
	kindChar
	kindBytes
	kindByte
	kindCtrl
	kindMeta
	kindBackspace
	kindEscape
	kindUp
	kindDown
	kindRight
	kindLeft
	kindKeypadUp
	kindKeypadDown
	kindKeypadRight
	kindKeypadLeft
	kindHome
	kindEnd
	kindInsert
	kindDelete
	kindPageUp
	kindPageDown
	kindF
)

// Constructors. Each returns the Key variant named in spec.md's data model.

// KeyString wraps a run of one or more printable code points.
func KeyString(s string) Key { return Key{kind: kindString, s: s} }

// KeyChar wraps a single printable code point.
func KeyChar(c rune) Key { return Key{kind: kindChar, r: c} }

// KeyBytes wraps one or more raw bytes with no further interpretation.
func KeyBytes(b []byte) Key {
	cp := make([]byte, len(b))
	copy(cp, b)
	return Key{kind: kindBytes, buf: cp}
}

// KeyByte wraps a single raw byte.
func KeyByte(b byte) Key { return Key{kind: kindByte, b: b} }

// KeyCtrl wraps a control character, c in ['a', 'z'], decoded from the
// control byte c - 'a' + 1.
func KeyCtrl(c byte) Key { return Key{kind: kindCtrl, b: c} }

// KeyMeta wraps an ESC-prefixed modifier key, c in [0x20, 0x7e] minus
// 'O' and '[', decoded from ESC c.
func KeyMeta(c byte) Key { return Key{kind: kindMeta, b: c} }

// KeyF wraps a function key, n in [1, 20].
func KeyF(n int) Key { return Key{kind: kindF, r: rune(n)} }

// Named singleton keys.
var (
	KeyBackspace  = Key{kind: kindBackspace}
	KeyEscape     = Key{kind: kindEscape}
	KeyUp         = Key{kind: kindUp}
	KeyDown       = Key{kind: kindDown}
	KeyRight      = Key{kind: kindRight}
	KeyLeft       = Key{kind: kindLeft}
	KeyKeypadUp   = Key{kind: kindKeypadUp}
	KeyKeypadDown = Key{kind: kindKeypadDown}
	KeyKeypadR    = Key{kind: kindKeypadRight}
	KeyKeypadL    = Key{kind: kindKeypadLeft}
	KeyHome       = Key{kind: kindHome}
	KeyEnd        = Key{kind: kindEnd}
	KeyInsert     = Key{kind: kindInsert}
	KeyDelete     = Key{kind: kindDelete}
	KeyPageUp     = Key{kind: kindPageUp}
	KeyPageDown   = Key{kind: kindPageDown}
)

// Kind reports which variant a Key holds, for callers that want to switch on
// it directly instead of using the As* accessors below.
func (k Key) Kind() string {
	switch k.kind {
	case kindString:
		return "String"
	case kindChar:
		return "Char"
	case kindBytes:
		return "Bytes"
	case kindByte:
		return "Byte"
	case kindCtrl:
		return "Ctrl"
	case kindMeta:
		return "Meta"
	case kindBackspace:
		return "Backspace"
	case kindEscape:
		return "Escape"
	case kindUp:
		return "Up"
	case kindDown:
		return "Down"
	case kindRight:
		return "Right"
	case kindLeft:
		return "Left"
	case kindKeypadUp:
		return "KeypadUp"
	case kindKeypadDown:
		return "KeypadDown"
	case kindKeypadRight:
		return "KeypadRight"
	case kindKeypadLeft:
		return "KeypadLeft"
	case kindHome:
		return "Home"
	case kindEnd:
		return "End"
	case kindInsert:
		return "Insert"
	case kindDelete:
		return "Delete"
	case kindPageUp:
		return "PageUp"
	case kindPageDown:
		return "PageDown"
	case kindF:
		return "F"
	default:
		return "Unknown"
	}
}

// String returns the key in Char/Ctrl/Meta/F(n)-aware notation for debugging
// and log lines; it is not the byte encoding (see IntoBytes for that).
func (k Key) String() string {
	switch k.kind {
	case kindString:
		return fmt.Sprintf("String(%q)", k.s)
	case kindChar:
		return fmt.Sprintf("Char(%q)", k.r)
	case kindBytes:
		return fmt.Sprintf("Bytes(%v)", k.buf)
	case kindByte:
		return fmt.Sprintf("Byte(0x%02x)", k.b)
	case kindCtrl:
		return fmt.Sprintf("Ctrl(%q)", k.b)
	case kindMeta:
		return fmt.Sprintf("Meta(%q)", k.b)
	case kindF:
		return fmt.Sprintf("F(%d)", int(k.r))
	default:
		return k.Kind()
	}
}

// AsString reports the payload of a String key.
func (k Key) AsString() (string, bool) {
	if k.kind != kindString {
		return "", false
	}
	return k.s, true
}

// AsChar reports the payload of a Char key.
func (k Key) AsChar() (rune, bool) {
	if k.kind != kindChar {
		return 0, false
	}
	return k.r, true
}

// AsBytes reports the payload of a Bytes key.
func (k Key) AsBytes() ([]byte, bool) {
	if k.kind != kindBytes {
		return nil, false
	}
	return k.buf, true
}

// AsByte reports the payload of a Byte key.
func (k Key) AsByte() (byte, bool) {
	if k.kind != kindByte {
		return 0, false
	}
	return k.b, true
}

// AsCtrl reports the payload of a Ctrl key, as the letter ('a'..'z') rather
// than the control byte.
func (k Key) AsCtrl() (byte, bool) {
	if k.kind != kindCtrl {
		return 0, false
	}
	return k.b, true
}

// AsMeta reports the payload of a Meta key.
func (k Key) AsMeta() (byte, bool) {
	if k.kind != kindMeta {
		return 0, false
	}
	return k.b, true
}

// AsF reports the function-key number of an F key, 1..20.
func (k Key) AsF() (int, bool) {
	if k.kind != kindF {
		return 0, false
	}
	return int(k.r), true
}

// Equal reports whether two Keys are the same variant with the same
// payload. Keys are not comparable with == because String/Bytes carry
// reference-typed payloads.
func (k Key) Equal(o Key) bool {
	if k.kind != o.kind {
		return false
	}
	switch k.kind {
	case kindString:
		return k.s == o.s
	case kindChar:
		return k.r == o.r
	case kindBytes:
		return string(k.buf) == string(o.buf)
	case kindByte, kindCtrl, kindMeta:
		return k.b == o.b
	case kindF:
		return k.r == o.r
	default:
		return true
	}
}

// fKeyWire maps F(5..20) to its CSI parameter, skipping 16, 22, 27, 30 as
// the real terminal encodings do (xterm never assigned those numbers).
var fKeyWire = map[int]string{
	5: "15", 6: "17", 7: "18", 8: "19", 9: "20", 10: "21",
	11: "23", 12: "24", 13: "25", 14: "26", 15: "28", 16: "29",
	17: "31", 18: "32", 19: "33", 20: "34",
}

// IntoBytes produces the canonical byte encoding for k, per spec.md §6. An
// InputClassifier with default settings reads k.IntoBytes() back as k for
// every variant except String and Bytes, which it splits into one key per
// code point or byte (see TestReadKeyRoundTrip).
func (k Key) IntoBytes() []byte {
	switch k.kind {
	case kindString:
		return []byte(k.s)
	case kindChar:
		return []byte(string(k.r))
	case kindBytes:
		return append([]byte(nil), k.buf...)
	case kindByte:
		return []byte{k.b}
	case kindCtrl:
		return []byte{k.b - 'a' + 1}
	case kindMeta:
		return []byte{0x1b, k.b}
	case kindBackspace:
		return []byte{0x7f}
	case kindEscape:
		return []byte{0x1b}
	case kindUp:
		return []byte{0x1b, '[', 'A'}
	case kindDown:
		return []byte{0x1b, '[', 'B'}
	case kindRight:
		return []byte{0x1b, '[', 'C'}
	case kindLeft:
		return []byte{0x1b, '[', 'D'}
	case kindKeypadUp:
		return []byte{0x1b, 'O', 'A'}
	case kindKeypadDown:
		return []byte{0x1b, 'O', 'B'}
	case kindKeypadRight:
		return []byte{0x1b, 'O', 'C'}
	case kindKeypadLeft:
		return []byte{0x1b, 'O', 'D'}
	case kindHome:
		return []byte{0x1b, '[', 'H'}
	case kindEnd:
		return []byte{0x1b, '[', 'F'}
	case kindInsert:
		return []byte{0x1b, '[', '2', '~'}
	case kindDelete:
		return []byte{0x1b, '[', '3', '~'}
	case kindPageUp:
		return []byte{0x1b, '[', '5', '~'}
	case kindPageDown:
		return []byte{0x1b, '[', '6', '~'}
	case kindF:
		n := int(k.r)
		switch {
		case n >= 1 && n <= 4:
			return []byte{0x1b, 'O', "PQRS"[n-1]}
		default:
			if param, ok := fKeyWire[n]; ok {
				return append([]byte{0x1b, '['}, append([]byte(param), '~')...)
			}
			return nil
		}
	default:
		return nil
	}
}
