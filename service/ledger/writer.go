package ledger

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"sort"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/afs/url"
	"github.com/viant/lockor/model"
	"github.com/viant/lockor/resolver"
)

// Output file naming and the appended result column.
const (
	resultColumn     = "結果"
	rejectedAppFile  = "invalid_app.csv"
	rejectedParFile  = "invalid_par.csv"
	allocationFormat = "valid_%dF.csv"
)

// allocationHeader is the header of the per-floor allocation files.
var allocationHeader = []string{
	"申請者学籍番号",
	"申請者氏名",
	"共同利用者学籍番号",
	"共同利用者氏名",
}

// Service persists term results under a base location, one directory per
// term (term1, term2, …).
type Service struct {
	fs      afs.Service
	baseURL string
}

// New creates a ledger service writing under baseURL. A nil fs defaults to
// the afs service.
func New(fs afs.Service, baseURL string) *Service {
	if fs == nil {
		fs = afs.New()
	}
	return &Service{fs: fs, baseURL: baseURL}
}

// TermURL returns the output location of a term. Term directories are
// numbered from one, matching the published results.
func (s *Service) TermURL(term int) string {
	return url.Join(s.baseURL, fmt.Sprintf("term%d", term+1))
}

// WriteTerm persists a resolved term: one allocation file per floor in
// [minFloor, maxFloor] (floors without rows still produce a header-only
// file) and the rejected submissions of each role in original sequence
// order.
func (s *Service) WriteTerm(ctx context.Context, result *resolver.Result, minFloor, maxFloor int, applicantColumns, partnerColumns []string) error {
	termURL := s.TermURL(result.Term)

	byFloor := map[int][]*model.Allocation{}
	for _, row := range result.Allocations {
		if row.Floor < minFloor || row.Floor > maxFloor {
			continue
		}
		byFloor[row.Floor] = append(byFloor[row.Floor], row)
	}
	for floor := minFloor; floor <= maxFloor; floor++ {
		rows := byFloor[floor]
		sort.Slice(rows, func(i, j int) bool {
			return rows[i].ApplicantID < rows[j].ApplicantID
		})
		URL := url.Join(termURL, fmt.Sprintf(allocationFormat, floor))
		if err := s.writeAllocations(ctx, URL, rows); err != nil {
			return err
		}
	}

	if err := s.writeRejected(ctx, url.Join(termURL, rejectedAppFile), applicantColumns, result.Applicants); err != nil {
		return err
	}
	return s.writeRejected(ctx, url.Join(termURL, rejectedParFile), partnerColumns, result.Partners)
}

func (s *Service) writeAllocations(ctx context.Context, URL string, rows []*model.Allocation) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(allocationHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{row.ApplicantID, row.ApplicantName, row.PartnerID, row.PartnerName}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return s.upload(ctx, URL, buf.Bytes())
}

// writeRejected writes the submissions that ended the term with a rejection
// code, original columns first, result code last.
func (s *Service) writeRejected(ctx context.Context, URL string, columns []string, subs []*model.Submission) error {
	rejected := make([]*model.Submission, 0, len(subs))
	for _, sub := range subs {
		if sub.Outcome.Rejected() {
			rejected = append(rejected, sub)
		}
	}
	sort.Slice(rejected, func(i, j int) bool {
		return rejected[i].Seq < rejected[j].Seq
	})

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(append(append([]string{}, columns...), resultColumn)); err != nil {
		return err
	}
	for _, sub := range rejected {
		record := make([]string, 0, len(columns)+1)
		for _, column := range columns {
			record = append(record, sub.Record[column])
		}
		record = append(record, string(sub.Outcome))
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return s.upload(ctx, URL, buf.Bytes())
}

func (s *Service) upload(ctx context.Context, URL string, data []byte) error {
	if err := s.fs.Upload(ctx, URL, file.DefaultFileOsMode, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write %s: %w", URL, err)
	}
	return nil
}
