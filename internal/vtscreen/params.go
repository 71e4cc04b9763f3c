package vtscreen

import "bytes"

// splitParamsAll parses a semicolon-separated CSI parameter buffer into its
// integer codes. An empty field (including an entirely empty buffer) is
// skipped; CSI's own default-to-0 behavior is applied by callers.
func splitParamsAll(buf []byte) []int {
	if len(buf) == 0 {
		return nil
	}
	var out []int
	for _, field := range bytes.Split(buf, []byte{';'}) {
		if len(field) == 0 {
			continue
		}
		n := 0
		for _, b := range field {
			if b < '0' || b > '9' {
				n = 0
				break
			}
			n = n*10 + int(b-'0')
		}
		out = append(out, n)
	}
	return out
}

// splitParams1 returns the first parameter, or def if none was given.
func splitParams1(buf []byte, def int) int {
	codes := splitParamsAll(buf)
	if len(codes) == 0 || codes[0] == 0 {
		return def
	}
	return codes[0]
}

// splitParams2 returns the first two parameters (1-indexed row/col as a CSI
// H sequence carries them), defaulting each to 1 when absent or zero.
func splitParams2(buf []byte) (a, b int) {
	codes := splitParamsAll(buf)
	a, b = 1, 1
	if len(codes) > 0 && codes[0] != 0 {
		a = codes[0]
	}
	if len(codes) > 1 && codes[1] != 0 {
		b = codes[1]
	}
	return a, b
}
