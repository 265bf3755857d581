package intake

import (
	"strconv"

	"github.com/viant/parsly"
	"github.com/viant/parsly/matcher"
)

// floorUnit is the counter suffix the form appends to a floor choice.
const floorUnit = "階"

// Token codes
const (
	digitsCode = iota
	unitCode
)

// Token definitions
var (
	digitsToken = parsly.NewToken(digitsCode, "Digits", newDigitsMatcher())
	unitToken   = parsly.NewToken(unitCode, floorUnit, matcher.NewFragment(floorUnit))
)

func newDigitsMatcher() parsly.Matcher {
	return &digitsMatcher{}
}

// digitsMatcher matches a run of ASCII digits.
type digitsMatcher struct{}

func (m *digitsMatcher) Match(cursor *parsly.Cursor) int {
	input := cursor.Input
	pos := cursor.Pos
	size := cursor.InputSize

	matched := 0
	for i := pos; i < size; i++ {
		if input[i] < '0' || input[i] > '9' {
			break
		}
		matched++
	}
	return matched
}

// parseFloorToken parses a trimmed floor-choice answer in the form
// "<digits>" or "<digits>階". It returns false when the value carries
// anything else.
func parseFloorToken(value string) (int, bool) {
	if value == "" {
		return 0, false
	}
	cursor := parsly.NewCursor("", []byte(value), 0)

	matched := cursor.MatchOne(digitsToken)
	if matched.Code != digitsToken.Code {
		return 0, false
	}
	text := matched.Text(cursor)

	// Optional unit suffix.
	if cursor.Pos < cursor.InputSize {
		matched = cursor.MatchOne(unitToken)
		if matched.Code != unitToken.Code {
			return 0, false
		}
	}
	// Anything after the unit invalidates the token.
	if cursor.Pos < cursor.InputSize {
		return 0, false
	}

	floor, err := strconv.Atoi(text)
	if err != nil {
		return 0, false
	}
	return floor, true
}
