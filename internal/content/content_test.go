package content

import (
	"strings"
	"testing"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"Empty", "", 0},
		{"ASCII", "hello", 5},
		{"Accents and emoji", "héllo 🤖", 7},
		{"Markup counts as typed", "<b>", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.input); got != tt.expected {
				t.Errorf("Length() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestNearLimitAndCounter(t *testing.T) {
	if NearLimit(strings.Repeat("a", WarnLength)) {
		t.Error("NearLimit() at the threshold should be false")
	}
	if !NearLimit(strings.Repeat("a", WarnLength+1)) {
		t.Error("NearLimit() past the threshold should be true")
	}
	if got := Counter("abc"); got != "3/2000" {
		t.Errorf("Counter() = %q, want 3/2000", got)
	}
	if got := Counter(strings.Repeat("é", MaxLength)); got != "2000/2000" {
		t.Errorf("Counter() = %q, want 2000/2000", got)
	}
}
