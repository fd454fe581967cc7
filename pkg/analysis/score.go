package analysis

import (
	"regexp"
	"strconv"
)

var reScoreLine = regexp.MustCompile(`(?i)Score:\s*(\d+)/100`)

const maxScore = 100

// ExtractScore finds the first "Score: N/100" line (any case) in text.
// ok is false when there is no such line; score is then 0.
func ExtractScore(text string) (score float64, ok bool) {
	m := reScoreLine.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if n > maxScore {
		n = maxScore
	}
	return n, true
}
