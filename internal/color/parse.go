package color

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)
	rgbPattern = regexp.MustCompile(`(?i)^rgb\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*\)$`)
	hslPattern = regexp.MustCompile(`(?i)^hsl\(\s*(\d{1,3})\s*,\s*(\d{1,3})%?\s*,\s*(\d{1,3})%?\s*\)$`)
)

// Parse normalizes loosely formatted color text into canonical hex.
//
// Out-of-range rgb() and hsl() components are clamped rather than rejected.
func Parse(text string) (string, error) {
	s := strings.TrimSpace(text)

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		return expandHex(m[1]), nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		return RGBToHex(RGB{
			R: clampedInt(m[1], 255),
			G: clampedInt(m[2], 255),
			B: clampedInt(m[3], 255),
		}), nil
	}

	if m := hslPattern.FindStringSubmatch(s); m != nil {
		return HSLToHex(HSL{
			H: float64(clampedInt(m[1], 360)),
			S: clampedInt(m[2], 100),
			L: clampedInt(m[3], 100),
		}), nil
	}

	return "", &ParseError{Input: text}
}

// IsCanonical reports whether s is already in canonical "#rrggbb" form.
func IsCanonical(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		if !(c >= '0' && c <= '9' || c >= 'a' && c <= 'f') {
			return false
		}
	}
	return true
}

func expandHex(digits string) string {
	digits = strings.ToLower(digits)
	if len(digits) == 3 {
		var b strings.Builder
		b.Grow(7)
		b.WriteByte('#')
		for i := 0; i < 3; i++ {
			b.WriteByte(digits[i])
			b.WriteByte(digits[i])
		}
		return b.String()
	}
	return "#" + digits
}

// clampedInt converts a regexp-validated run of 1-3 digits and caps it at max.
func clampedInt(s string, max int) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
