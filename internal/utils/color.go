package utils

// IsHexColor reports whether s is a #-prefixed 3, 6 or 8 digit hex color,
// e.g. "#BBDEFB" or "#FF112233".
func IsHexColor(s string) bool {
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	digits := s[1:]
	switch len(digits) {
	case 3, 6, 8:
	default:
		return false
	}
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NormalizeHexColor returns s when it is a valid hex color and fallback
// otherwise. Imported CSV rows routinely carry junk in the color column.
func NormalizeHexColor(s, fallback string) string {
	if IsHexColor(s) {
		return s
	}
	return fallback
}
