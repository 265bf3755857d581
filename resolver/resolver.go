package resolver

import (
	"context"

	"github.com/viant/lockor/model"
	"github.com/viant/lockor/policy"
	"github.com/viant/lockor/progress"
)

// Result holds the outcome of resolving a single term: the input submissions
// with outcomes populated and the accepted allocation rows in applicant file
// order.
type Result struct {
	Term        int                 `json:"term"`
	Applicants  []*model.Submission `json:"applicants,omitempty"`
	Partners    []*model.Submission `json:"partners,omitempty"`
	Allocations []*model.Allocation `json:"allocations,omitempty"`
}

// Rejected returns the submissions of both roles that ended the term with a
// rejection code, in original sequence order per role.
func (r *Result) Rejected() []*model.Submission {
	var out []*model.Submission
	for _, sub := range r.Applicants {
		if sub.Outcome.Rejected() {
			out = append(out, sub)
		}
	}
	for _, sub := range r.Partners {
		if sub.Outcome.Rejected() {
			out = append(out, sub)
		}
	}
	return out
}

// Resolve runs a term's submissions through the filter chain – validation,
// ineligibility, deduplication, pairing – and classifies every submission
// with exactly one terminal code. The function mutates only the Outcome
// field of the supplied submissions, reads the registry without updating it,
// and is idempotent for identical inputs and registry state. Terms must be
// resolved in strictly increasing index order because the registry carries
// the cumulative result of all prior terms.
func Resolve(ctx context.Context, term int, applicants, partners []*model.Submission, registry *Registry) *Result {
	pol := policy.FromContext(ctx)

	all := make([]*model.Submission, 0, len(applicants)+len(partners))
	all = append(all, applicants...)
	all = append(all, partners...)

	validate(pol, applicants, partners)
	filterIneligible(all, registry)
	dedupe(all)
	allocations := pair(pol, applicants, partners)
	classify(applicants, partners, allocations)

	delta := progress.Delta{Terms: 1, Submissions: len(all)}
	for _, sub := range all {
		switch sub.Outcome {
		case model.OutcomeAccepted:
			delta.Accepted++
		case model.OutcomeInvalid:
			delta.Invalid++
		case model.OutcomeIneligible:
			delta.Ineligible++
		case model.OutcomeSuperseded:
			delta.Superseded++
		}
	}
	progress.UpdateCtx(ctx, delta)

	return &Result{
		Term:        term,
		Applicants:  applicants,
		Partners:    partners,
		Allocations: allocations,
	}
}

// classify assigns the final code to every submission that is still clean:
// S0 when its person id appears in an accepted row for its role, E3
// otherwise. Codes assigned by earlier stages are left untouched.
func classify(applicants, partners []*model.Submission, allocations []*model.Allocation) {
	acceptedApplicants := make(map[string]bool, len(allocations))
	acceptedPartners := make(map[string]bool, len(allocations))
	for _, row := range allocations {
		acceptedApplicants[row.ApplicantID] = true
		if row.PartnerID != "" {
			acceptedPartners[row.PartnerID] = true
		}
	}
	for _, app := range applicants {
		if !app.Clean() {
			continue
		}
		if acceptedApplicants[app.PersonID] {
			app.Outcome = model.OutcomeAccepted
		} else {
			app.Outcome = model.OutcomeSuperseded
		}
	}
	for _, par := range partners {
		if !par.Clean() {
			continue
		}
		if acceptedPartners[par.PersonID] {
			par.Outcome = model.OutcomeAccepted
		} else {
			par.Outcome = model.OutcomeSuperseded
		}
	}
}
