package model

import (
	"time"
)

// Role identifies which of the two intake forms a submission came from.
type Role string

const (
	// RoleApplicant is the primary submitter requesting a locker.
	RoleApplicant Role = "applicant"

	// RolePartner is the second person named by an applicant, submitting
	// their own consent form.
	RolePartner Role = "partner"
)

// Submission represents a single normalised form entry. Instances are built
// once per run by the intake service and mutated only by assigning Outcome;
// no submission is reused across terms.
type Submission struct {
	// Role distinguishes the applicant form from the partner consent form.
	Role Role `json:"role"`

	// Seq is the original position within the source file; it is the final
	// tie-break key for otherwise equal timestamps.
	Seq int `json:"seq"`

	// Timestamp is the submission instant as recorded by the form export.
	Timestamp time.Time `json:"timestamp"`

	// Term is the weekly term index assigned by the segmenter.
	Term int `json:"term"`

	// PersonID is the submitter's student id.
	PersonID string `json:"personId"`

	// PersonName is the submitter's display name.
	PersonName string `json:"personName"`

	// Photo is the free-text proof-of-identity status.
	Photo string `json:"photo,omitempty"`

	// Consent is the free-text terms-of-use acknowledgement.
	Consent string `json:"consent,omitempty"`

	// PartnerID and PartnerName identify the requested partner. Applicant
	// submissions only; empty when no partner is requested.
	PartnerID   string `json:"partnerId,omitempty"`
	PartnerName string `json:"partnerName,omitempty"`

	// Partnership is the raw partnership-choice answer (applicant only).
	Partnership string `json:"partnership,omitempty"`

	// Floor is the parsed floor preference, nil when absent or invalid.
	// Applicant submissions only.
	Floor *int `json:"floor,omitempty"`

	// Outcome is the mutable terminal code, initially unset.
	Outcome Outcome `json:"outcome,omitempty"`

	// Record keeps the original raw columns so rejected submissions can be
	// written back verbatim with their result code appended.
	Record map[string]string `json:"record,omitempty"`
}

// Clean reports whether the submission carries no outcome yet and therefore
// remains a candidate for allocation.
func (s *Submission) Clean() bool {
	return s.Outcome == OutcomeNone
}

// Reject assigns the supplied rejection code unless the submission already
// carries a terminal outcome. Codes are never overwritten.
func (s *Submission) Reject(code Outcome) {
	if s.Outcome == OutcomeNone {
		s.Outcome = code
	}
}

// Clone returns a deep copy of the submission so stored instances cannot be
// mutated through previously returned pointers.
func (s *Submission) Clone() *Submission {
	if s == nil {
		return nil
	}
	ret := *s
	if s.Floor != nil {
		floor := *s.Floor
		ret.Floor = &floor
	}
	if s.Record != nil {
		ret.Record = make(map[string]string, len(s.Record))
		for k, v := range s.Record {
			ret.Record[k] = v
		}
	}
	return &ret
}
