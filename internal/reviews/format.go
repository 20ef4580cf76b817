package reviews

import (
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/naveenspark/reviews/pkg/domain"
)

const anonymousName = "Anonymous"

var createdLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

// sanitize removes terminal escape sequences and control characters from
// feed text. Newlines survive only when keepNewlines is set; tabs become
// spaces so wrapping widths stay exact.
func sanitize(s string, keepNewlines bool) string {
	s = ansi.Strip(s)
	return strings.Map(func(r rune) rune {
		switch {
		case r == '\n' && keepNewlines:
			return r
		case r == '\t' || r == '\n':
			return ' '
		case r < 0x20, r == 0x7f, r >= 0x80 && r <= 0x9f:
			return -1
		}
		return r
	}, s)
}

func formatText(r domain.Review) string {
	return sanitize(r.Text, true)
}

// cleanAuthor returns r with its name parts sanitized.
func cleanAuthor(r domain.Review) domain.Review {
	r.FirstName = sanitize(r.FirstName, false)
	r.LastName = sanitize(r.LastName, false)
	return r
}

func formatName(r domain.Review) string {
	if name := cleanAuthor(r).FullName(); name != "" {
		return name
	}
	return anonymousName
}

// formatCreated renders machine timestamps as "Jan 2, 2006" and passes any
// other text through with control characters removed.
func formatCreated(raw string) string {
	raw = strings.TrimSpace(sanitize(raw, false))
	for _, layout := range createdLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return raw
}

func formatInitials(r domain.Review) string {
	if initials := cleanAuthor(r).Initials(); initials != "" {
		return initials
	}
	return "?"
}
