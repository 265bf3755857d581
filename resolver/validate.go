package resolver

import (
	"github.com/viant/lockor/model"
	"github.com/viant/lockor/policy"
)

// validate runs the stateless per-submission rule chain over both roles and
// then cross-checks that every clean partner-requiring applicant references
// a partner submission present in this term. The first failing rule wins;
// every failure is an E1.
func validate(pol *policy.Policy, applicants, partners []*model.Submission) {
	for _, sub := range applicants {
		sub.Outcome = check(pol, sub)
	}
	for _, sub := range partners {
		sub.Outcome = check(pol, sub)
	}

	// The referenced partner form must exist this term, regardless of that
	// form's own validity at this point.
	partnerIDs := make(map[string]bool, len(partners))
	for _, par := range partners {
		if par.PersonID != "" {
			partnerIDs[par.PersonID] = true
		}
	}
	for _, app := range applicants {
		if !app.Clean() || !pol.RequiresPartner(app.Partnership) {
			continue
		}
		if !partnerIDs[app.PartnerID] {
			app.Outcome = model.OutcomeInvalid
		}
	}
}

// check evaluates the per-submission rules in order and returns E1 on the
// first breach, or OutcomeNone when the submission is clean.
func check(pol *policy.Policy, sub *model.Submission) model.Outcome {
	if sub.PersonID == "" || sub.PersonName == "" {
		return model.OutcomeInvalid
	}
	if !pol.ValidPersonID(sub.PersonID) {
		return model.OutcomeInvalid
	}
	if sub.Consent != pol.Consent {
		return model.OutcomeInvalid
	}
	if sub.Photo != pol.Photo {
		return model.OutcomeInvalid
	}
	if sub.Role != model.RoleApplicant {
		return model.OutcomeNone
	}

	// Applicant-only rules.
	if !pol.ValidPartnership(sub.Partnership) {
		return model.OutcomeInvalid
	}
	if sub.Floor == nil || !pol.ValidFloor(*sub.Floor) {
		return model.OutcomeInvalid
	}
	if pol.PartnerOnly(*sub.Floor) && !pol.RequiresPartner(sub.Partnership) {
		return model.OutcomeInvalid
	}
	if pol.RequiresPartner(sub.Partnership) {
		if sub.PartnerID == "" || sub.PartnerName == "" {
			return model.OutcomeInvalid
		}
		if !pol.ValidPersonID(sub.PartnerID) {
			return model.OutcomeInvalid
		}
	} else if sub.PartnerID != "" || sub.PartnerName != "" {
		// Declaring no partner while naming one is itself an error.
		return model.OutcomeInvalid
	}
	return model.OutcomeNone
}

// filterIneligible rejects with E2 every still clean submission whose person
// already holds an allocation. The registry snapshot predates this term and
// is never mutated mid-term.
func filterIneligible(subs []*model.Submission, registry *Registry) {
	for _, sub := range subs {
		if sub.Clean() && registry.Contains(sub.PersonID) {
			sub.Outcome = model.OutcomeIneligible
		}
	}
}
