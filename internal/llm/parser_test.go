package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePackages(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "plain list",
			raw:  "Wedding Deluxe, Garden Party, Corporate Lunch",
			want: []string{"Wedding Deluxe", "Garden Party", "Corporate Lunch"},
		},
		{
			name: "extra whitespace and trailing comma",
			raw:  "  Wedding Deluxe ,Garden Party , ",
			want: []string{"Wedding Deluxe", "Garden Party"},
		},
		{
			name: "single entry",
			raw:  "Mezze Night",
			want: []string{"Mezze Night"},
		},
		{
			name: "empty reply",
			raw:  "",
			want: nil,
		},
		{
			name: "only separators",
			raw:  ", ,,",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParsePackages(tt.raw))
		})
	}
}
