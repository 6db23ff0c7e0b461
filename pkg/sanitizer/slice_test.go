package sanitizer

import (
	"reflect"
	"testing"
)

func TestNormalizeImageURLs(t *testing.T) {
	tests := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "nil slice",
			input:    nil,
			expected: []string{},
		},
		{
			name: "http upgraded and duplicates removed",
			input: []string{
				"http://cdn.example.com/events/a.jpg",
				"https://cdn.example.com/events/a.jpg",
				"https://CDN.example.com/events/b.jpg",
			},
			expected: []string{
				"https://cdn.example.com/events/a.jpg",
				"https://cdn.example.com/events/b.jpg",
			},
		},
		{
			name:     "empty entries dropped",
			input:    []string{"", "  ", "https://cdn.example.com/c.png"},
			expected: []string{"https://cdn.example.com/c.png"},
		},
		{
			name:     "trailing slash trimmed",
			input:    []string{"https://cdn.example.com/"},
			expected: []string{"https://cdn.example.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeImageURLs(tt.input)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("NormalizeImageURLs(%v) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}
