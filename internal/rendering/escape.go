package rendering

import "strings"

// CleanText prepares text for a Word run. Control characters that XML 1.0 forbids are
// dropped; tabs and newlines become spaces. Markup escaping is left to the encoder.
func CleanText(text string) string {
	if text == "" {
		return ""
	}

	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch r {
		case '\t', '\n', '\r':
			result.WriteRune(' ')
		default:
			if r < 0x20 || r == 0xFFFE || r == 0xFFFF {
				continue
			}
			result.WriteRune(r)
		}
	}

	return result.String()
}
