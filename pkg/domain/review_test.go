package domain

import (
	"encoding/json"
	"testing"
)

func TestReviewFullName(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   string
	}{
		{"both parts", Review{FirstName: "Anna", LastName: "Petrova"}, "Anna Petrova"},
		{"first only", Review{FirstName: "Anna"}, "Anna"},
		{"last only", Review{LastName: "Petrova"}, "Petrova"},
		{"padded", Review{FirstName: "  Anna ", LastName: " Petrova  "}, "Anna Petrova"},
		{"anonymous", Review{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.review.FullName(); got != tt.want {
				t.Errorf("FullName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReviewInitials(t *testing.T) {
	tests := []struct {
		name   string
		review Review
		want   string
	}{
		{"both parts", Review{FirstName: "anna", LastName: "petrova"}, "AP"},
		{"first only", Review{FirstName: "Ivan"}, "I"},
		{"cyrillic", Review{FirstName: "Олег", LastName: "Смирнов"}, "ОС"},
		{"empty", Review{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.review.Initials(); got != tt.want {
				t.Errorf("Initials() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidRating(t *testing.T) {
	for rating := -1; rating <= 7; rating++ {
		want := rating >= 1 && rating <= 5
		if got := ValidRating(rating); got != want {
			t.Errorf("ValidRating(%d) = %v, want %v", rating, got, want)
		}
	}
}

func TestPageDecodesOptionalNames(t *testing.T) {
	raw := `{"items":[{"text":"ok","rating":4,"created":"2024-02-13T10:00:00Z"}],"count":1}`

	var p Page
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}
	if p.Count != 1 || len(p.Items) != 1 {
		t.Fatalf("got count=%d items=%d, want 1/1", p.Count, len(p.Items))
	}
	if p.Items[0].FirstName != "" || p.Items[0].LastName != "" {
		t.Errorf("expected empty names, got %q %q", p.Items[0].FirstName, p.Items[0].LastName)
	}
}
