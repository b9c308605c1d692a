package utils

import (
	"strings"
	"testing"
	"time"
)

func TestSanitizeString(t *testing.T) {
	u := New()

	cases := []struct {
		name  string
		input string
		want  string
	}{
		{"plain text", "Groceries at the market", "Groceries at the market"},
		{"strips tags", "<b>Rent</b> payment", "Rent payment"},
		{"strips script", "<script>alert(1)</script>Salary", "alert(1)Salary"},
		{"trims whitespace", "   coffee   ", "coffee"},
		{"tags and whitespace", "  <i> bus ticket </i>  ", "bus ticket"},
		{"empty", "", ""},
		{"only markup", "<div></div>", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := u.SanitizeString(tc.input); got != tc.want {
				t.Fatalf("SanitizeString(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestNewULIDFromTimestamp(t *testing.T) {
	u := New()

	id, err := u.NewULIDFromTimestamp(time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(id) != 26 {
		t.Fatalf("ULID length = %d, want 26", len(id))
	}
	if id != strings.ToUpper(id) {
		t.Fatalf("ULID should be upper-case Crockford base32, got %q", id)
	}
}
