package textmode

import "unicode/utf8"

// utf8ContinuationsFor reports how many continuation bytes a leading byte
// requires, per spec.md §4.4.5, and whether the leader is valid at all.
func utf8ContinuationsFor(lead byte) (need int, ok bool) {
	switch {
	case lead&0x80 == 0x00: // 0xxxxxxx
		return 0, true
	case lead&0xe0 == 0xc0: // 110xxxxx
		return 1, true
	case lead&0xf0 == 0xe0: // 1110xxxx
		return 2, true
	case lead&0xf8 == 0xf0: // 11110xxx
		return 3, true
	default:
		return 0, false
	}
}

// readUTF8Char reads the continuation bytes of a multibyte UTF-8 sequence
// that began with initial. On an invalid continuation byte or an invalid
// overall encoding, it pushes the bytes it already consumed back onto the
// buffer in reverse order and returns Byte(initial), per spec.md §4.4.5. On
// end-of-stream mid-sequence it reports ok=false without pushing anything
// back, matching the bytes-already-consumed-stay-consumed behavior the
// reference implementation uses for this otherwise-unreachable corner case
// (the boundary top-up step in ReadKey is what keeps it unreachable in
// practice).
func (c *InputClassifier) readUTF8Char(initial byte) (key Key, ok bool) {
	need, valid := utf8ContinuationsFor(initial)
	if !valid {
		return KeyByte(initial), true
	}

	seen := make([]byte, 0, need)
	for i := 0; i < need; i++ {
		b, got := c.buf.getc()
		if !got {
			return Key{}, false
		}
		if b < 0x80 || b > 0xbf {
			c.buf.ungetc(b)
			for j := len(seen) - 1; j >= 0; j-- {
				c.buf.ungetc(seen[j])
			}
			return KeyByte(initial), true
		}
		seen = append(seen, b)
	}

	full := append([]byte{initial}, seen...)
	r, size := utf8.DecodeRune(full)
	if r == utf8.RuneError && size <= 1 {
		for j := len(seen) - 1; j >= 0; j-- {
			c.buf.ungetc(seen[j])
		}
		return KeyByte(initial), true
	}
	return KeyChar(r), true
}
