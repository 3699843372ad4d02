package utils

import "testing"

func TestIntFromString(t *testing.T) {
	tests := []struct {
		input    string
		fallback int
		want     int
	}{
		{"42", 1, 42},
		{"-3", 1, -3},
		{"", 1, 1},
		{"abc", 7, 7},
		{"3.5", 7, 7},
	}
	for _, tt := range tests {
		if got := IntFromString(tt.input, tt.fallback); got != tt.want {
			t.Errorf("IntFromString(%q, %d) = %d, want %d", tt.input, tt.fallback, got, tt.want)
		}
	}
}

func TestToJson(t *testing.T) {
	got := string(ToJson(map[string]int{"a": 1}))
	if got != `{"a":1}` {
		t.Errorf("got %s", got)
	}
}
