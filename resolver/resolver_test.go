package resolver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/viant/lockor/model"
	"github.com/viant/lockor/policy"
)

var pol = policy.Default()

func at(value string) time.Time {
	ts, err := time.Parse("2006-01-02 15:04:05", value)
	if err != nil {
		panic(err)
	}
	return ts
}

func newApplicant(seq int, ts string, id string, floor int) *model.Submission {
	return &model.Submission{
		Role:        model.RoleApplicant,
		Seq:         seq,
		Timestamp:   at(ts),
		PersonID:    id,
		PersonName:  "applicant " + id,
		Photo:       pol.Photo,
		Consent:     pol.Consent,
		Partnership: pol.WithoutPartner,
		Floor:       &floor,
	}
}

func newPaired(seq int, ts string, id string, partnerID string, floor int) *model.Submission {
	sub := newApplicant(seq, ts, id, floor)
	sub.Partnership = pol.WithPartner
	sub.PartnerID = partnerID
	sub.PartnerName = "partner " + partnerID
	return sub
}

func newPartner(seq int, ts string, id string) *model.Submission {
	return &model.Submission{
		Role:       model.RolePartner,
		Seq:        seq,
		Timestamp:  at(ts),
		PersonID:   id,
		PersonName: "partner " + id,
		Photo:      pol.Photo,
		Consent:    pol.Consent,
	}
}

func TestResolveSolo(t *testing.T) {
	applicants := []*model.Submission{
		newApplicant(0, "2025-04-02 09:00:00", "150001", 4),
	}
	result := Resolve(context.Background(), 0, applicants, nil, NewRegistry())

	assert.Equal(t, model.OutcomeAccepted, applicants[0].Outcome)
	if assert.Len(t, result.Allocations, 1) {
		row := result.Allocations[0]
		assert.Equal(t, "150001", row.ApplicantID)
		assert.Equal(t, "", row.PartnerID)
		assert.Equal(t, 4, row.Floor)
		assert.False(t, row.Paired())
	}
	assert.Empty(t, result.Rejected())
}

func TestResolveInvalid(t *testing.T) {
	missingName := newApplicant(2, "2025-04-02 09:02:00", "150003", 4)
	missingName.PersonName = ""
	wrongConsent := newApplicant(3, "2025-04-02 09:03:00", "150004", 4)
	wrongConsent.Consent = "yes"
	wrongPhoto := newApplicant(4, "2025-04-02 09:04:00", "150005", 4)
	wrongPhoto.Photo = "pending"
	noFloor := newApplicant(5, "2025-04-02 09:05:00", "150006", 4)
	noFloor.Floor = nil
	floorOutOfRange := newApplicant(6, "2025-04-02 09:06:00", "150007", 7)
	namedUnwantedPartner := newApplicant(7, "2025-04-02 09:07:00", "150008", 4)
	namedUnwantedPartner.PartnerID = "150009"
	namedUnwantedPartner.PartnerName = "partner 150009"

	applicants := []*model.Submission{
		newApplicant(0, "2025-04-02 09:00:00", "999999", 4),
		newApplicant(1, "2025-04-02 09:01:00", "150002", 2),
		missingName,
		wrongConsent,
		wrongPhoto,
		noFloor,
		floorOutOfRange,
		namedUnwantedPartner,
	}
	result := Resolve(context.Background(), 0, applicants, nil, NewRegistry())

	for _, sub := range applicants {
		assert.Equal(t, model.OutcomeInvalid, sub.Outcome, sub.PersonID)
	}
	assert.Empty(t, result.Allocations)
	assert.Len(t, result.Rejected(), len(applicants))
}

func TestResolvePairing(t *testing.T) {
	applicants := []*model.Submission{
		newPaired(0, "2025-04-02 09:00:00", "150001", "500001", 2),
	}
	partners := []*model.Submission{
		newPartner(0, "2025-04-02 10:00:00", "500001"),
	}
	result := Resolve(context.Background(), 0, applicants, partners, NewRegistry())

	assert.Equal(t, model.OutcomeAccepted, applicants[0].Outcome)
	assert.Equal(t, model.OutcomeAccepted, partners[0].Outcome)
	if assert.Len(t, result.Allocations, 1) {
		row := result.Allocations[0]
		assert.Equal(t, "150001", row.ApplicantID)
		assert.Equal(t, "500001", row.PartnerID)
		assert.True(t, row.Paired())
		assert.Equal(t, []string{"150001", "500001"}, row.PersonIDs())
	}
}

func TestResolveMissingPartnerForm(t *testing.T) {
	// The referenced partner never submitted a form this term.
	applicants := []*model.Submission{
		newPaired(0, "2025-04-02 09:00:00", "150001", "500001", 2),
	}
	result := Resolve(context.Background(), 0, applicants, nil, NewRegistry())

	assert.Equal(t, model.OutcomeInvalid, applicants[0].Outcome)
	assert.Empty(t, result.Allocations)
}

func TestResolveInvalidPartnerForm(t *testing.T) {
	// The partner form exists but fails validation; the applicant survives
	// validation and loses at pairing instead.
	applicants := []*model.Submission{
		newPaired(0, "2025-04-02 09:00:00", "150001", "500001", 2),
	}
	partner := newPartner(0, "2025-04-02 10:00:00", "500001")
	partner.Consent = "no"
	partners := []*model.Submission{partner}

	result := Resolve(context.Background(), 0, applicants, partners, NewRegistry())

	assert.Equal(t, model.OutcomeInvalid, partner.Outcome)
	assert.Equal(t, model.OutcomeSuperseded, applicants[0].Outcome)
	assert.Empty(t, result.Allocations)
}

func TestResolveDedupe(t *testing.T) {
	first := newApplicant(0, "2025-04-02 09:00:00", "150001", 4)
	second := newApplicant(1, "2025-04-03 09:00:00", "150001", 5)
	result := Resolve(context.Background(), 0, []*model.Submission{first, second}, nil, NewRegistry())

	assert.Equal(t, model.OutcomeSuperseded, first.Outcome)
	assert.Equal(t, model.OutcomeAccepted, second.Outcome)
	if assert.Len(t, result.Allocations, 1) {
		assert.Equal(t, 5, result.Allocations[0].Floor)
	}
}

func TestResolveDedupeTimestampTie(t *testing.T) {
	// Identical timestamps fall back to file order, the later entry winning.
	first := newApplicant(0, "2025-04-02 09:00:00", "150001", 4)
	second := newApplicant(1, "2025-04-02 09:00:00", "150001", 5)
	Resolve(context.Background(), 0, []*model.Submission{first, second}, nil, NewRegistry())

	assert.Equal(t, model.OutcomeSuperseded, first.Outcome)
	assert.Equal(t, model.OutcomeAccepted, second.Outcome)
}

func TestResolvePartnerConflict(t *testing.T) {
	// Two applicants claim the same partner; the earliest claim holds.
	early := newPaired(0, "2025-04-02 09:00:00", "150001", "500001", 2)
	late := newPaired(1, "2025-04-02 11:00:00", "150002", "500001", 3)
	partners := []*model.Submission{
		newPartner(0, "2025-04-02 10:00:00", "500001"),
	}
	result := Resolve(context.Background(), 0, []*model.Submission{early, late}, partners, NewRegistry())

	assert.Equal(t, model.OutcomeAccepted, early.Outcome)
	assert.Equal(t, model.OutcomeSuperseded, late.Outcome)
	assert.Equal(t, model.OutcomeAccepted, partners[0].Outcome)
	if assert.Len(t, result.Allocations, 1) {
		assert.Equal(t, "150001", result.Allocations[0].ApplicantID)
	}
}

func TestResolveUnclaimedPartner(t *testing.T) {
	partners := []*model.Submission{
		newPartner(0, "2025-04-02 10:00:00", "500001"),
	}
	result := Resolve(context.Background(), 0, nil, partners, NewRegistry())

	assert.Equal(t, model.OutcomeSuperseded, partners[0].Outcome)
	assert.Empty(t, result.Allocations)
}

func TestResolveIneligible(t *testing.T) {
	registry := NewRegistry()
	registry.Add("150001", "500001")

	resubmission := newApplicant(0, "2025-04-09 09:00:00", "150001", 4)
	invalidToo := newApplicant(1, "2025-04-09 09:01:00", "500001", 4)
	invalidToo.Consent = "no"

	Resolve(context.Background(), 1, []*model.Submission{resubmission, invalidToo}, nil, registry)

	assert.Equal(t, model.OutcomeIneligible, resubmission.Outcome)
	// Validation precedes the ineligibility filter.
	assert.Equal(t, model.OutcomeInvalid, invalidToo.Outcome)
}

func TestResolveCarryOver(t *testing.T) {
	registry := NewRegistry()

	first := newApplicant(0, "2025-04-02 09:00:00", "150001", 4)
	result := Resolve(context.Background(), 0, []*model.Submission{first}, nil, registry)
	for _, row := range result.Allocations {
		registry.Add(row.PersonIDs()...)
	}
	assert.Equal(t, model.OutcomeAccepted, first.Outcome)

	second := newApplicant(0, "2025-04-09 09:00:00", "150001", 5)
	Resolve(context.Background(), 1, []*model.Submission{second}, nil, registry)
	assert.Equal(t, model.OutcomeIneligible, second.Outcome)
}

func TestResolveEveryOutcomeTerminal(t *testing.T) {
	applicants := []*model.Submission{
		newApplicant(0, "2025-04-02 09:00:00", "150001", 4),
		newPaired(1, "2025-04-02 09:01:00", "150002", "500001", 2),
		newPaired(2, "2025-04-02 09:02:00", "150003", "500001", 3),
		newApplicant(3, "2025-04-02 09:03:00", "bad-id", 4),
	}
	partners := []*model.Submission{
		newPartner(0, "2025-04-02 10:00:00", "500001"),
		newPartner(1, "2025-04-02 10:01:00", "500002"),
	}
	result := Resolve(context.Background(), 0, applicants, partners, NewRegistry())

	for _, sub := range append(result.Applicants, result.Partners...) {
		assert.True(t, sub.Outcome.Terminal(), sub.PersonID)
	}
}

func TestResolveIdempotence(t *testing.T) {
	build := func() ([]*model.Submission, []*model.Submission) {
		applicants := []*model.Submission{
			newApplicant(0, "2025-04-02 09:00:00", "150001", 4),
			newApplicant(1, "2025-04-03 09:00:00", "150001", 5),
			newPaired(2, "2025-04-02 09:02:00", "150002", "500001", 2),
		}
		partners := []*model.Submission{
			newPartner(0, "2025-04-02 10:00:00", "500001"),
		}
		return applicants, partners
	}

	registry := NewRegistry()
	registry.Add("160000")

	applicants1, partners1 := build()
	result1 := Resolve(context.Background(), 0, applicants1, partners1, registry)
	applicants2, partners2 := build()
	result2 := Resolve(context.Background(), 0, applicants2, partners2, registry)

	assert.Equal(t, result1.Allocations, result2.Allocations)
	for i := range applicants1 {
		assert.Equal(t, applicants1[i].Outcome, applicants2[i].Outcome)
	}
	for i := range partners1 {
		assert.Equal(t, partners1[i].Outcome, partners2[i].Outcome)
	}
}
