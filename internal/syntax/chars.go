package syntax

// Character classification helpers. Each accepts a lookahead value and
// reports false for EOF.

// IsAlpha reports whether c is an ASCII letter.
func IsAlpha(c int) bool {
	return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z'
}

// IsDigit reports whether c is a decimal digit.
func IsDigit(c int) bool {
	return '0' <= c && c <= '9'
}

// IsAddop reports whether c is '+' or '-'.
func IsAddop(c int) bool {
	return c == '+' || c == '-'
}

// IsMulop reports whether c is '*' or '/'.
func IsMulop(c int) bool {
	return c == '*' || c == '/'
}

// IsNewline reports whether c starts a line ending.
func IsNewline(c int) bool {
	return c == '\r' || c == '\n'
}

// Upper returns the uppercase form of an ASCII letter; other bytes are
// returned unchanged.
func Upper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}
