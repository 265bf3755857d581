package intake

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFloorToken(t *testing.T) {
	testCases := []struct {
		description string
		value       string
		expect      int
		ok          bool
	}{
		{
			description: "bare digits",
			value:       "4",
			expect:      4,
			ok:          true,
		},
		{
			description: "digits with counter suffix",
			value:       "4階",
			expect:      4,
			ok:          true,
		},
		{
			description: "multi digit floor",
			value:       "10階",
			expect:      10,
			ok:          true,
		},
		{
			description: "empty",
			value:       "",
			ok:          false,
		},
		{
			description: "suffix only",
			value:       "階",
			ok:          false,
		},
		{
			description: "wrong suffix",
			value:       "4F",
			ok:          false,
		},
		{
			description: "trailing content after suffix",
			value:       "4階希望",
			ok:          false,
		},
		{
			description: "not a number",
			value:       "four",
			ok:          false,
		},
	}
	for _, testCase := range testCases {
		actual, ok := parseFloorToken(testCase.value)
		assert.Equal(t, testCase.ok, ok, testCase.description)
		if testCase.ok {
			assert.Equal(t, testCase.expect, actual, testCase.description)
		}
	}
}
