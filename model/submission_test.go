package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubmissionReject(t *testing.T) {
	sub := &Submission{Role: RoleApplicant, PersonID: "150001"}
	assert.True(t, sub.Clean())

	sub.Reject(OutcomeInvalid)
	assert.Equal(t, OutcomeInvalid, sub.Outcome)

	// A terminal code is never overwritten.
	sub.Reject(OutcomeSuperseded)
	assert.Equal(t, OutcomeInvalid, sub.Outcome)
	assert.False(t, sub.Clean())
}

func TestSubmissionClone(t *testing.T) {
	floor := 4
	sub := &Submission{
		Role:     RoleApplicant,
		PersonID: "150001",
		Floor:    &floor,
		Record:   map[string]string{"k": "v"},
	}
	cloned := sub.Clone()
	assert.Equal(t, sub, cloned)

	*cloned.Floor = 5
	cloned.Record["k"] = "changed"
	assert.Equal(t, 4, *sub.Floor)
	assert.Equal(t, "v", sub.Record["k"])
}

func TestOutcome(t *testing.T) {
	assert.False(t, OutcomeNone.Terminal())
	assert.False(t, OutcomeNone.Rejected())

	for _, code := range []Outcome{OutcomeInvalid, OutcomeIneligible, OutcomeSuperseded} {
		assert.True(t, code.Terminal())
		assert.True(t, code.Rejected())
	}
	assert.True(t, OutcomeAccepted.Terminal())
	assert.False(t, OutcomeAccepted.Rejected())
}
