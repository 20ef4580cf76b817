package domain

import "strings"

// Review is a single review record as delivered by the feed.
type Review struct {
	Text      string `json:"text"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Rating    int    `json:"rating"`  // 1-5
	Created   string `json:"created"` // timestamp text, usually RFC3339
	AvatarURL string `json:"avatar_url,omitempty"`
}

// Page is one slice of the review feed plus the total number of reviews.
type Page struct {
	Items []Review `json:"items"`
	Count int      `json:"count"`
}

// MinRating and MaxRating bound Review.Rating.
const (
	MinRating = 1
	MaxRating = 5
)

// FullName joins the author's first and last name, skipping empty parts.
func (r Review) FullName() string {
	return strings.TrimSpace(strings.TrimSpace(r.FirstName) + " " + strings.TrimSpace(r.LastName))
}

// Initials returns up to two uppercase initials for the author.
func (r Review) Initials() string {
	var b strings.Builder
	for _, part := range []string{r.FirstName, r.LastName} {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		b.WriteString(strings.ToUpper(string([]rune(part)[:1])))
	}
	return b.String()
}

// ValidRating reports whether the rating is within MinRating..MaxRating.
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}
