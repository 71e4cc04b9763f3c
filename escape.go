package textmode

// readEscapeSequence runs the state machine over the bytes following a
// leading ESC (0x1b), per spec.md §4.4.4. Every consumed byte is kept in
// seen so that a failed parse can push them all back in reverse order,
// leaving the buffer exactly as an outside observer would expect the
// unconsumed suffix to read (spec.md §9, Open Question: rollback order is
// pinned to reverse-push order). Input exhaustion mid-sequence is treated
// as failure, same as an unrecognized byte (spec.md §4.4.4).
func (c *InputClassifier) readEscapeSequence() Key {
	seen := []byte{0x1b}

	fail := func() Key {
		for i := len(seen) - 1; i >= 1; i-- {
			c.buf.ungetc(seen[i])
		}
		if c.cfg.ParseSpecialKeys {
			return KeyEscape
		}
		return KeyByte(0x1b)
	}

	type state int
	const (
		stInit state = iota
		stCSI
		stCKM
	)

	st := stInit
	var param []byte

	for {
		b, got := c.buf.getc()
		if !got {
			return fail()
		}
		seen = append(seen, b)

		switch st {
		case stInit:
			switch {
			case b == '[':
				if !c.cfg.ParseSpecialKeys {
					return fail()
				}
				st = stCSI
				param = nil
			case b == 'O':
				if !c.cfg.ParseSpecialKeys {
					return fail()
				}
				st = stCKM
			case b >= 0x20 && b <= 0x7e && b != 'O' && b != '[':
				if !c.cfg.ParseMeta {
					return fail()
				}
				return KeyMeta(b)
			default:
				return fail()
			}

		case stCSI:
			switch {
			case b == 'A':
				return KeyUp
			case b == 'B':
				return KeyDown
			case b == 'C':
				return KeyRight
			case b == 'D':
				return KeyLeft
			case b == 'H':
				return KeyHome
			case b == 'F':
				return KeyEnd
			case b >= '0' && b <= '9':
				param = append(param, b)
			case b == '~':
				k, ok := csiTildeKey(param)
				if !ok {
					return fail()
				}
				return k
			default:
				return fail()
			}

		case stCKM:
			switch b {
			case 'A':
				return KeyKeypadUp
			case 'B':
				return KeyKeypadDown
			case 'C':
				return KeyKeypadR
			case 'D':
				return KeyKeypadL
			case 'P':
				return KeyF(1)
			case 'Q':
				return KeyF(2)
			case 'R':
				return KeyF(3)
			case 'S':
				return KeyF(4)
			default:
				return fail()
			}
		}
	}
}

// csiTildeKey maps a CSI parameter buffer (the digits preceding '~') to the
// key it designates, per spec.md §6's F(5..20) table.
func csiTildeKey(param []byte) (Key, bool) {
	switch string(param) {
	case "2":
		return KeyInsert, true
	case "3":
		return KeyDelete, true
	case "5":
		return KeyPageUp, true
	case "6":
		return KeyPageDown, true
	case "15":
		return KeyF(5), true
	case "17":
		return KeyF(6), true
	case "18":
		return KeyF(7), true
	case "19":
		return KeyF(8), true
	case "20":
		return KeyF(9), true
	case "21":
		return KeyF(10), true
	case "23":
		return KeyF(11), true
	case "24":
		return KeyF(12), true
	case "25":
		return KeyF(13), true
	case "26":
		return KeyF(14), true
	case "28":
		return KeyF(15), true
	case "29":
		return KeyF(16), true
	case "31":
		return KeyF(17), true
	case "32":
		return KeyF(18), true
	case "33":
		return KeyF(19), true
	case "34":
		return KeyF(20), true
	default:
		return Key{}, false
	}
}
