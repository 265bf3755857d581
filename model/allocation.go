package model

// Allocation is one accepted row: an applicant (optionally paired with a
// partner) assigned to a floor. Partner fields are empty for single
// applicants.
type Allocation struct {
	ApplicantID   string `json:"applicantId"`
	ApplicantName string `json:"applicantName"`
	PartnerID     string `json:"partnerId,omitempty"`
	PartnerName   string `json:"partnerName,omitempty"`
	Floor         int    `json:"floor"`
}

// Paired reports whether the row carries a partner.
func (a *Allocation) Paired() bool {
	return a.PartnerID != ""
}

// PersonIDs returns the applicant id and, when present, the partner id. The
// result feeds the ineligibility registry after a term is finalised.
func (a *Allocation) PersonIDs() []string {
	if a.PartnerID == "" {
		return []string{a.ApplicantID}
	}
	return []string{a.ApplicantID, a.PartnerID}
}
