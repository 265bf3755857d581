package resolver

import (
	"sort"

	"github.com/viant/lockor/model"
	"github.com/viant/lockor/policy"
)

// pair matches the surviving applicant candidates to partner candidates and
// produces the term's accepted allocation rows. The partner lookup is built
// fresh from the candidate set at this stage so no stale entries can leak
// across the filter pipeline. Conflict resolution is earliest-wins: a
// partner is a scarce slot and the first claim on it holds, unlike
// deduplication where the latest self-correction is authoritative.
func pair(pol *policy.Policy, applicants, partners []*model.Submission) []*model.Allocation {
	var appCandidates, parCandidates []*model.Submission
	for _, app := range applicants {
		if app.Clean() {
			appCandidates = append(appCandidates, app)
		}
	}
	for _, par := range partners {
		if par.Clean() {
			parCandidates = append(parCandidates, par)
		}
	}
	partnerByID := make(map[string]*model.Submission, len(parCandidates))
	for _, par := range parCandidates {
		partnerByID[par.PersonID] = par
	}

	// 1. Applicants whose partner form did not survive the earlier stages.
	for _, app := range appCandidates {
		if pol.RequiresPartner(app.Partnership) {
			if _, ok := partnerByID[app.PartnerID]; !ok {
				app.Outcome = model.OutcomeSuperseded
			}
		}
	}

	// 2. Several applicants referencing the same partner: the earliest claim
	// holds, every later one loses.
	byPartner := map[string][]*model.Submission{}
	for _, app := range appCandidates {
		if app.Clean() && pol.RequiresPartner(app.Partnership) {
			byPartner[app.PartnerID] = append(byPartner[app.PartnerID], app)
		}
	}
	for _, contenders := range byPartner {
		if len(contenders) < 2 {
			continue
		}
		sort.SliceStable(contenders, func(i, j int) bool {
			return earlier(contenders[i], contenders[j])
		})
		for _, loser := range contenders[1:] {
			loser.Outcome = model.OutcomeSuperseded
		}
	}

	// 3. Emit allocation rows and mark claimed partners.
	var rows []*model.Allocation
	paired := map[string]bool{}
	for _, app := range appCandidates {
		if !app.Clean() {
			continue
		}
		var floor int
		if app.Floor != nil {
			floor = *app.Floor
		}
		if pol.RequiresPartner(app.Partnership) {
			partner := partnerByID[app.PartnerID]
			if partner == nil || !partner.Clean() {
				// The dependency failed after the claim was resolved.
				app.Outcome = model.OutcomeSuperseded
				continue
			}
			paired[partner.PersonID] = true
			rows = append(rows, &model.Allocation{
				ApplicantID:   app.PersonID,
				ApplicantName: app.PersonName,
				PartnerID:     partner.PersonID,
				PartnerName:   partner.PersonName,
				Floor:         floor,
			})
			continue
		}
		rows = append(rows, &model.Allocation{
			ApplicantID:   app.PersonID,
			ApplicantName: app.PersonName,
			Floor:         floor,
		})
	}

	// 4. Partner forms never claimed by a surviving applicant.
	for _, par := range parCandidates {
		if par.Clean() && !paired[par.PersonID] {
			par.Outcome = model.OutcomeSuperseded
		}
	}
	return rows
}
