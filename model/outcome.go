package model

// Outcome is the terminal result code assigned to every submission by the
// end of its term. The set is closed – the boundary never invents new codes.
type Outcome string

const (
	// OutcomeNone marks a submission that has not been classified yet. A
	// submission with no outcome is called "clean" and is still a candidate
	// for allocation.
	OutcomeNone Outcome = ""

	// OutcomeInvalid (E1) – structurally or content invalid: missing required
	// fields, malformed student id, wrong consent or photo sentinel, floor
	// restriction breach or partner-requirement mismatch.
	OutcomeInvalid Outcome = "E1"

	// OutcomeIneligible (E2) – the person already holds an allocation from an
	// earlier term of this run.
	OutcomeIneligible Outcome = "E2"

	// OutcomeSuperseded (E3) – lost to deduplication, lost a pairing conflict
	// or ended the term with no viable pairing.
	OutcomeSuperseded Outcome = "E3"

	// OutcomeAccepted (S0) – accepted; the submission contributes to an
	// allocation row.
	OutcomeAccepted Outcome = "S0"
)

// Terminal reports whether o is one of the closed terminal codes.
func (o Outcome) Terminal() bool {
	switch o {
	case OutcomeInvalid, OutcomeIneligible, OutcomeSuperseded, OutcomeAccepted:
		return true
	}
	return false
}

// Rejected reports whether o is a rejection code.
func (o Outcome) Rejected() bool {
	return o.Terminal() && o != OutcomeAccepted
}
