package textmode

import (
	"errors"
	"io"
	"unicode/utf8"
)

// fillSize is the chunk size InputClassifier reads from its source at a
// time, per spec.md §4.4.2 step 1.
const fillSize = 4096

// InputClassifier is a buffered, incremental byte-to-Key classifier. It
// reads from a single io.Reader and returns one classified Key per ReadKey
// call according to its ClassifierConfig. An InputClassifier is not safe
// for concurrent use; it is meant to be owned by a single goroutine, the
// same way the teacher's Input/Backend types document single-owner use.
type InputClassifier struct {
	src io.Reader
	buf inputBuffer
	cfg ClassifierConfig

	scratch []byte // reused read buffer, avoids a per-Fill allocation
}

// NewInputClassifier constructs a classifier reading from src with the
// default (all-true) configuration, adjusted by any options given.
func NewInputClassifier(src io.Reader, opts ...Option) *InputClassifier {
	c := &InputClassifier{
		src:     src,
		cfg:     DefaultClassifierConfig(),
		scratch: make([]byte, fillSize),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Config returns the classifier's current flag set.
func (c *InputClassifier) Config() ClassifierConfig { return c.cfg }

// SetConfig replaces the classifier's flag set. Per spec.md §3, changing a
// flag between two ReadKey calls is allowed and takes effect on the next
// classification step.
func (c *InputClassifier) SetConfig(cfg ClassifierConfig) { c.cfg = cfg }

// ReadKey returns the next classified Key from the input stream.
//
//   - (key, true, nil): a key was classified.
//   - (Key{}, false, nil): no key was produced this call but the stream has
//     not ended (a zero-byte read with no pending bytes); callers should
//     call ReadKey again.
//   - (Key{}, false, io.EOF): the input stream has ended; there are no more
//     keys.
//   - (Key{}, false, err): a real read error, wrapped as ErrReadStdin.
func (c *InputClassifier) ReadKey() (Key, bool, error) {
	if c.buf.empty() {
		n, err := c.src.Read(c.scratch)
		if n > 0 {
			c.buf.reset(c.scratch[:n])
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				if n == 0 {
					return Key{}, false, io.EOF
				}
				// Fall through: bytes arrived alongside EOF, classify them
				// now; the next call will see an empty buffer and EOF.
			} else {
				return Key{}, false, readStdinErr(err)
			}
		}
		if c.buf.empty() {
			// Zero-byte read with no pending bytes: no progress, but not
			// end-of-stream (spec.md §9, Open Question).
			return Key{}, false, nil
		}
	}

	c.topUpUTF8Boundary()

	if c.cfg.ParseSingle {
		k := c.readSingleKey()
		return k, true, nil
	}

	if k, ok := c.tryReadString(); ok {
		return k, true, nil
	}
	if k, ok := c.tryReadBytes(); ok {
		return k, true, nil
	}
	k := c.readSingleKey()
	return normalizeToBytes(k), true, nil
}

// topUpUTF8Boundary guarantees no UTF-8 sequence is split across reads: if
// the first unread byte is a multibyte leader, keep reading from the source
// until either enough bytes are buffered or the source closes (spec.md
// §4.4.2 step 2).
func (c *InputClassifier) topUpUTF8Boundary() {
	if !c.cfg.ParseUTF8 || c.buf.empty() {
		return
	}
	lead := c.buf.unread()[0]
	need, valid := utf8ContinuationsFor(lead)
	if !valid {
		return
	}
	want := need + 1
	for len(c.buf.unread()) < want {
		n, err := c.src.Read(c.scratch)
		if n > 0 {
			c.buf.append(c.scratch[:n])
		}
		if err != nil || n == 0 {
			return
		}
	}
}

// readSingleKey consumes one byte and dispatches on its value, per spec.md
// §4.4.3.
func (c *InputClassifier) readSingleKey() Key {
	b, ok := c.buf.getc()
	if !ok {
		return Key{}
	}

	switch {
	case b == 0:
		return KeyByte(0)
	case b >= 1 && b <= 26:
		if c.cfg.ParseCtrl {
			return KeyCtrl('a' + b - 1)
		}
		return KeyByte(b)
	case b == 27:
		if c.cfg.ParseMeta || c.cfg.ParseSpecialKeys {
			return c.readEscapeSequence()
		}
		return KeyByte(27)
	case b >= 28 && b <= 31:
		return KeyByte(b)
	case b >= 32 && b <= 126:
		if c.cfg.ParseUTF8 {
			return KeyChar(rune(b))
		}
		return KeyByte(b)
	case b == 127:
		if c.cfg.ParseSpecialKeys {
			return KeyBackspace
		}
		return KeyByte(127)
	default: // 128..255
		if c.cfg.ParseUTF8 {
			k, ok := c.readUTF8Char(b)
			if !ok {
				// End-of-stream mid-sequence: the boundary top-up already
				// tried its best, so degrade to the raw leader byte rather
				// than report no key at all.
				return KeyByte(b)
			}
			return k
		}
		return KeyByte(b)
	}
}

// tryReadString consumes the maximal prefix of printable bytes (spec.md
// §4.4.2's byte classification table, printable range) that decodes as
// valid UTF-8 and returns it as String. It stops at the first byte that
// would make the accumulated text invalid, leaving that byte (and
// everything after it) for tryReadBytes/readSingleKey to classify on the
// next step, per spec.md §8 scenario 7.
func (c *InputClassifier) tryReadString() (Key, bool) {
	if !c.cfg.ParseUTF8 {
		return Key{}, false
	}

	unread := c.buf.unread()
	window := 0
	for window < len(unread) && isPrintableRange(unread[window]) {
		window++
	}
	if window == 0 {
		return Key{}, false
	}

	valid := 0
	for valid < window {
		r, size := utf8.DecodeRune(unread[valid:window])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		valid += size
	}
	if valid == 0 {
		return Key{}, false
	}

	s := string(unread[:valid])
	c.buf.consume(valid)
	return KeyString(s), true
}

// isPrintableRange reports whether b is in 0x20-0x7e or 0x80-0xff, the
// range try_read_string scans, per spec.md §4.4.2.
func isPrintableRange(b byte) bool {
	return (b >= 0x20 && b <= 0x7e) || b >= 0x80
}

// tryReadBytes consumes the maximal prefix of bytes classified as "raw
// byte" under the current flag set (spec.md §4.4.2's byte classification
// table) and returns it as Bytes.
func (c *InputClassifier) tryReadBytes() (Key, bool) {
	unread := c.buf.unread()
	n := 0
	for n < len(unread) && c.isRawByte(unread[n]) {
		n++
	}
	if n == 0 {
		return Key{}, false
	}
	prefix := append([]byte(nil), unread[:n]...)
	c.buf.consume(n)
	return KeyBytes(prefix), true
}

// isRawByte classifies a single byte per the table in spec.md §4.4.2.
func (c *InputClassifier) isRawByte(b byte) bool {
	switch {
	case b == 0:
		return true
	case b >= 1 && b <= 26:
		return !c.cfg.ParseCtrl
	case b == 27:
		return !c.cfg.ParseMeta && !c.cfg.ParseSpecialKeys
	case b >= 28 && b <= 31:
		return true
	case b >= 32 && b <= 126:
		return true
	case b == 127:
		return !c.cfg.ParseSpecialKeys
	default: // 128..255
		return true
	}
}

// normalizeToBytes turns a lone Byte(c) into Bytes([c]) so that
// parse_single=false callers never see a bare Byte, per spec.md §4.4.2.
func normalizeToBytes(k Key) Key {
	if b, ok := k.AsByte(); ok {
		return KeyBytes([]byte{b})
	}
	return k
}
