package intake

import (
	"fmt"
	"strings"
	"time"

	"github.com/viant/lockor/model"
	"github.com/viant/toolbox"
)

// DefaultTimestampLayout is the fixed timestamp format of the form export.
const DefaultTimestampLayout = "2006-01-02 15:04:05"

// NormalizeApplicants converts an applicant table into submissions, in file
// order. The term index stays zero until the segmenter assigns it.
func (s *Service) NormalizeApplicants(table *Table) ([]*model.Submission, error) {
	if err := table.Require(ApplicantColumns()...); err != nil {
		return nil, err
	}
	var out []*model.Submission
	for i, row := range table.Rows {
		ts, err := s.timestamp(table, i, row)
		if err != nil {
			return nil, err
		}
		sub := &model.Submission{
			Role:        model.RoleApplicant,
			Seq:         i,
			Timestamp:   ts,
			PersonID:    strings.TrimSpace(row[ColumnApplicantID]),
			PersonName:  strings.TrimSpace(row[ColumnApplicantName]),
			Photo:       strings.TrimSpace(row[ColumnApplicantPhoto]),
			Consent:     strings.TrimSpace(row[ColumnConsent]),
			PartnerID:   strings.TrimSpace(row[ColumnPartnerID]),
			PartnerName: strings.TrimSpace(row[ColumnPartnerName]),
			Partnership: strings.TrimSpace(row[ColumnPartnership]),
			Floor:       floorPreference(row),
			Record:      row,
		}
		out = append(out, sub)
	}
	return out, nil
}

// NormalizePartners converts a partner table into submissions, in file order.
func (s *Service) NormalizePartners(table *Table) ([]*model.Submission, error) {
	if err := table.Require(PartnerColumns()...); err != nil {
		return nil, err
	}
	var out []*model.Submission
	for i, row := range table.Rows {
		ts, err := s.timestamp(table, i, row)
		if err != nil {
			return nil, err
		}
		sub := &model.Submission{
			Role:       model.RolePartner,
			Seq:        i,
			Timestamp:  ts,
			PersonID:   strings.TrimSpace(row[ColumnPartnerID]),
			PersonName: strings.TrimSpace(row[ColumnPartnerName]),
			Photo:      strings.TrimSpace(row[ColumnPartnerPhoto]),
			Consent:    strings.TrimSpace(row[ColumnConsent]),
			Record:     row,
		}
		out = append(out, sub)
	}
	return out, nil
}

// timestamp parses the row's submission instant. A malformed timestamp
// indicates corrupt input and aborts the run.
func (s *Service) timestamp(table *Table, index int, row map[string]string) (time.Time, error) {
	value := strings.TrimSpace(row[ColumnTimestamp])
	ts, err := toolbox.ToTime(value, s.layout)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q at %s row %d: %w", value, table.URL, index+1, err)
	}
	if ts == nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q at %s row %d", value, table.URL, index+1)
	}
	// toolbox falls back to epoch-seconds for bare numeric input; only
	// values that round-trip through the layout are layout-conforming.
	if ts.Format(s.layout) != value {
		return time.Time{}, fmt.Errorf("invalid timestamp %q at %s row %d: does not match layout %q", value, table.URL, index+1, s.layout)
	}
	return *ts, nil
}

// floorPreference extracts the floor choice from the two mutually exclusive
// source columns. Exactly one must be filled; the trailing unit suffix is
// stripped. Any other shape leaves the preference unset for the validator to
// reject.
func floorPreference(row map[string]string) *int {
	solo := strings.TrimSpace(row[ColumnFloorSolo])
	partnered := strings.TrimSpace(row[ColumnFloorPartnered])
	if (solo == "") == (partnered == "") {
		return nil
	}
	value := solo
	if value == "" {
		value = partnered
	}
	floor, ok := parseFloorToken(value)
	if !ok {
		return nil
	}
	return &floor
}
