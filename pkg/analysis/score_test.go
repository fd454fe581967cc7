package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractScore(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		score float64
		ok    bool
	}{
		{"leading line", "Score: 92/100\nStrong backend profile.", 92, true},
		{"anywhere in text", "Summary first.\nOverall Score: 61/100 given gaps.", 61, true},
		{"lowercase", "score: 7/100", 7, true},
		{"upper case and no space", "SCORE:88/100", 88, true},
		{"first match wins", "Score: 40/100 ... revised Score: 90/100", 40, true},
		{"absent", "The candidate looks promising.", 0, false},
		{"wrong denominator", "Score: 8/10", 0, false},
		{"explicit zero", "Score: 0/100", 0, true},
		{"clamped", "Score: 250/100", 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, ok := ExtractScore(tt.text)
			assert.Equal(t, tt.ok, ok)
			assert.InDelta(t, tt.score, score, 1e-9)
		})
	}
}
