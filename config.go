package textmode

// ClassifierConfig holds the five independent flags that govern how
// InputClassifier turns bytes into Keys. All flags default to true; see
// spec.md §4.4.1 for the effect of disabling each one.
type ClassifierConfig struct {
	// ParseUTF8 enables UTF-8 decoding into Char/String. When false, every
	// byte >= 0x20 classifies as Byte/Bytes instead.
	ParseUTF8 bool

	// ParseCtrl enables Ctrl('a'+c-1) for control bytes 1..26. When false,
	// those bytes classify as Byte/Bytes.
	ParseCtrl bool

	// ParseMeta enables Meta(c) for ESC c sequences where c is printable and
	// not 'O' or '['.
	ParseMeta bool

	// ParseSpecialKeys enables Backspace, Escape, arrows, function/keypad
	// keys, and navigation keys. When false, their byte sequences classify
	// per the other flags instead.
	ParseSpecialKeys bool

	// ParseSingle, when true, makes every ReadKey call return exactly one
	// primitive key; String and Bytes are never returned. When false,
	// maximal runs of printable/byte material collapse into String/Bytes.
	ParseSingle bool
}

// DefaultClassifierConfig returns the all-true configuration every
// InputClassifier starts with.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		ParseUTF8:        true,
		ParseCtrl:        true,
		ParseMeta:        true,
		ParseSpecialKeys: true,
		ParseSingle:      true,
	}
}

// Option configures an InputClassifier at construction time.
type Option func(*InputClassifier)

// WithParseUTF8 sets the parse_utf8 flag.
func WithParseUTF8(v bool) Option { return func(c *InputClassifier) { c.cfg.ParseUTF8 = v } }

// WithParseCtrl sets the parse_ctrl flag.
func WithParseCtrl(v bool) Option { return func(c *InputClassifier) { c.cfg.ParseCtrl = v } }

// WithParseMeta sets the parse_meta flag.
func WithParseMeta(v bool) Option { return func(c *InputClassifier) { c.cfg.ParseMeta = v } }

// WithParseSpecialKeys sets the parse_special_keys flag.
func WithParseSpecialKeys(v bool) Option {
	return func(c *InputClassifier) { c.cfg.ParseSpecialKeys = v }
}

// WithParseSingle sets the parse_single flag.
func WithParseSingle(v bool) Option { return func(c *InputClassifier) { c.cfg.ParseSingle = v } }

// WithConfig replaces the whole configuration at once.
func WithConfig(cfg ClassifierConfig) Option {
	return func(c *InputClassifier) { c.cfg = cfg }
}
