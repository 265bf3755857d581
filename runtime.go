package lockor

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/lockor/internal/clock"
	"github.com/viant/lockor/internal/idgen"
	"github.com/viant/lockor/model"
	"github.com/viant/lockor/policy"
	"github.com/viant/lockor/progress"
	"github.com/viant/lockor/resolver"
	"github.com/viant/lockor/service/dao"
	"github.com/viant/lockor/service/event"
	"github.com/viant/lockor/service/intake"
	"github.com/viant/lockor/service/ledger"
	"github.com/viant/lockor/service/report"
	"github.com/viant/lockor/tracing"
)

// Runtime represents the allocation engine runtime. It orchestrates the
// term-by-term pipeline: intake, segmentation, resolution, ledger output.
type Runtime struct {
	config       *Config
	policy       *policy.Policy
	intake       *intake.Service
	ledger       *ledger.Service
	resultDAO    dao.Service[int, resolver.Result]
	registry     *resolver.Registry
	eventService *event.Service
	onProgress   func(progress.Progress)
}

// Roster holds the normalized form submissions for a run, segmented into
// weekly terms anchored at the academic year start.
type Roster struct {
	Applicants     []*model.Submission
	Partners       []*model.Submission
	ApplicantTable *intake.Table
	PartnerTable   *intake.Table
	Anchor         time.Time
}

// Terms returns every term index from zero through the latest submission,
// ascending. Indices with no submissions are included – an empty term still
// resolves (as a no-op) and still produces its output files.
func (r *Roster) Terms() []int {
	max := -1
	for _, sub := range r.Applicants {
		if sub.Term > max {
			max = sub.Term
		}
	}
	for _, sub := range r.Partners {
		if sub.Term > max {
			max = sub.Term
		}
	}
	terms := make([]int, 0, max+1)
	for term := 0; term <= max; term++ {
		terms = append(terms, term)
	}
	return terms
}

func (r *Roster) applicantsOf(term int) []*model.Submission {
	return submissionsOf(r.Applicants, term)
}

func (r *Roster) partnersOf(term int) []*model.Submission {
	return submissionsOf(r.Partners, term)
}

func submissionsOf(subs []*model.Submission, term int) []*model.Submission {
	var result []*model.Submission
	for _, sub := range subs {
		if sub.Term == term {
			result = append(result, sub)
		}
	}
	return result
}

// Run captures the outcome of a full allocation run.
type Run struct {
	ID        string
	StartedAt time.Time
	Anchor    time.Time
	Terms     []*resolver.Result
	Progress  progress.Progress
}

// LoadRoster reads and normalizes both form exports, then segments all
// submissions into terms. Malformed input (missing columns, unparseable
// timestamps, no submissions at all) is a fatal error.
func (r *Runtime) LoadRoster(ctx context.Context) (*Roster, error) {
	applicantTable, err := r.intake.ReadTable(ctx, r.config.Input.ApplicantsURL)
	if err != nil {
		return nil, err
	}
	partnerTable, err := r.intake.ReadTable(ctx, r.config.Input.PartnersURL)
	if err != nil {
		return nil, err
	}
	applicants, err := r.intake.NormalizeApplicants(applicantTable)
	if err != nil {
		return nil, err
	}
	partners, err := r.intake.NormalizePartners(partnerTable)
	if err != nil {
		return nil, err
	}
	if len(applicants)+len(partners) == 0 {
		return nil, fmt.Errorf("no submissions in %v and %v", r.config.Input.ApplicantsURL, r.config.Input.PartnersURL)
	}
	roster := &Roster{
		Applicants:     applicants,
		Partners:       partners,
		ApplicantTable: applicantTable,
		PartnerTable:   partnerTable,
	}
	roster.Anchor = model.Anchor(earliest(applicants, partners))
	for _, sub := range applicants {
		sub.Term = model.TermIndex(sub.Timestamp, roster.Anchor)
	}
	for _, sub := range partners {
		sub.Term = model.TermIndex(sub.Timestamp, roster.Anchor)
	}
	return roster, nil
}

func earliest(applicants, partners []*model.Submission) time.Time {
	var min time.Time
	for _, sub := range applicants {
		if min.IsZero() || sub.Timestamp.Before(min) {
			min = sub.Timestamp
		}
	}
	for _, sub := range partners {
		if min.IsZero() || sub.Timestamp.Before(min) {
			min = sub.Timestamp
		}
	}
	return min
}

// Allocate executes the full pipeline: load, segment, then resolve each term
// in increasing index order, updating the ineligibility registry from each
// term's accepted rows before the next term is processed. Per-term results
// are written to the ledger and persisted in the result store.
func (r *Runtime) Allocate(ctx context.Context) (*Run, error) {
	run := &Run{ID: idgen.New(), StartedAt: clock.Now()}
	ctx, tracker := progress.WithNewTracker(ctx, run.ID, r.onProgress)
	ctx = policy.WithPolicy(ctx, r.policy)
	ctx, span := tracing.StartSpan(ctx, "allocate", "internal")
	span.WithAttributes(map[string]string{"runID": run.ID})

	roster, err := r.LoadRoster(ctx)
	if err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}
	run.Anchor = roster.Anchor
	for _, term := range roster.Terms() {
		result, err := r.allocateTerm(ctx, run.ID, term, roster)
		if err != nil {
			tracing.EndSpan(span, err)
			return nil, err
		}
		run.Terms = append(run.Terms, result)
	}
	run.Progress = tracker.Snapshot()
	tracing.EndSpan(span, nil)
	return run, nil
}

func (r *Runtime) allocateTerm(ctx context.Context, runID string, term int, roster *Roster) (*resolver.Result, error) {
	ctx, span := tracing.StartSpan(ctx, fmt.Sprintf("term-%d", term), "internal")
	started := clock.Now()

	result := resolver.Resolve(ctx, term, roster.applicantsOf(term), roster.partnersOf(term), r.registry)
	for _, row := range result.Allocations {
		r.registry.Add(row.PersonIDs()...)
	}
	pol := r.policy
	if err := r.ledger.WriteTerm(ctx, result, pol.MinFloor, pol.MaxFloor, intake.ApplicantColumns(), intake.PartnerColumns()); err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}
	if err := r.resultDAO.Save(ctx, result); err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}
	r.publishTermEvent(ctx, runID, started, result)
	tracing.EndSpan(span, nil)
	return result, nil
}

func (r *Runtime) publishTermEvent(ctx context.Context, runID string, started time.Time, result *resolver.Result) {
	if r.eventService == nil {
		return
	}
	publisher, err := event.PublisherOf[resolver.Result](r.eventService)
	if err != nil {
		return
	}
	anEvent := event.NewEvent[resolver.Result](&event.Context{
		RunID:       runID,
		Term:        result.Term,
		EventType:   "term.resolved",
		Service:     "resolver",
		Method:      "Resolve",
		TimeTakenMs: int(clock.Now().Sub(started).Milliseconds()),
	}, *result)
	_ = publisher.Publish(ctx, anEvent)
}

// Report reads the tabular export at the supplied URL and summarises the
// value frequency of every column.
func (r *Runtime) Report(ctx context.Context, URL string) (*report.Summary, error) {
	table, err := r.intake.ReadTable(ctx, URL)
	if err != nil {
		return nil, err
	}
	return report.Analyze(table, r.config.Report.MaxValues), nil
}

// Result returns a previously resolved term result.
func (r *Runtime) Result(ctx context.Context, term int) (*resolver.Result, error) {
	return r.resultDAO.Load(ctx, term)
}

// Results returns all resolved term results in ascending term order.
func (r *Runtime) Results(ctx context.Context) ([]*resolver.Result, error) {
	return r.resultDAO.List(ctx)
}

// Registry exposes the ineligibility registry, e.g. to persist it between
// runs.
func (r *Runtime) Registry() *resolver.Registry {
	return r.registry
}
