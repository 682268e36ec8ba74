package util

import (
	"strings"
	"unicode"
)

const maxSlugLength = 80

// Slugify derives a URL-safe slug from a post title: lowercase ASCII
// letters and digits, hyphen-separated, truncated by runes. Returns ""
// when nothing usable remains.
func Slugify(title string) string {
	trimmed := strings.TrimSpace(strings.ToLower(title))
	if trimmed == "" {
		return ""
	}

	builder := strings.Builder{}
	builder.Grow(len(trimmed))
	lastHyphen := true // suppress a leading hyphen

	for _, char := range trimmed {
		switch {
		case char >= 'a' && char <= 'z', char >= '0' && char <= '9':
			builder.WriteRune(char)
			lastHyphen = false
		case unicode.IsControl(char) || unicode.Is(unicode.Cf, char):
			// dropped entirely; these must not become separators
		default:
			if !lastHyphen {
				builder.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.Trim(builder.String(), "-")

	runes := []rune(slug)
	if len(runes) > maxSlugLength {
		slug = strings.Trim(string(runes[:maxSlugLength]), "-")
	}

	return slug
}
