package resolver

import (
	"sort"

	"github.com/viant/lockor/model"
)

// dedupe groups the still clean submissions of both roles by person id and
// keeps only that person's latest attempt – a person may correct and
// resubmit, and only the final attempt counts. Every earlier submission in a
// group receives E3. Ties on identical timestamps are broken by original
// file order, the later sequence index winning, which yields a deterministic
// total order.
func dedupe(subs []*model.Submission) {
	groups := map[string][]*model.Submission{}
	for _, sub := range subs {
		if sub.Clean() {
			groups[sub.PersonID] = append(groups[sub.PersonID], sub)
		}
	}
	for _, group := range groups {
		if len(group) < 2 {
			continue
		}
		// Stable sort: the two roles keep independent sequence counters, so
		// an applicant and a partner form can tie on both keys; input order
		// (applicants first) then decides.
		sort.SliceStable(group, func(i, j int) bool {
			return earlier(group[i], group[j])
		})
		for _, superseded := range group[:len(group)-1] {
			superseded.Outcome = model.OutcomeSuperseded
		}
	}
}

// earlier orders submissions by (timestamp, sequence index) ascending.
func earlier(a, b *model.Submission) bool {
	if !a.Timestamp.Equal(b.Timestamp) {
		return a.Timestamp.Before(b.Timestamp)
	}
	return a.Seq < b.Seq
}
