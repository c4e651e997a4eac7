package utils

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// Slugify lowercases the title and collapses every non-alphanumeric run into
// a single hyphen.
func Slugify(title string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
		} else if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	return strings.TrimRight(b.String(), "-")
}

// GenerateUniqueSlug derives a slug from the title and probes for collisions
// through exists, appending a short random suffix until the slug is free.
// It fails only when the probe itself fails.
func GenerateUniqueSlug(title string, exists func(slug string) (bool, error)) (string, error) {
	slug := Slugify(title)
	if slug == "" {
		slug = "article"
	}
	candidate := slug
	for {
		taken, err := exists(candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = slug + "-" + uuid.NewString()[:8]
	}
}
