// Package lockor provides a locker allocation engine for weekly application
// terms.
//
// The engine turns raw form exports (applicant and partner CSV submissions)
// into per-floor allocation rows plus a classified list of rejected
// submissions, with pluggable service layers such as:
//
//   - intake   – reading and normalizing the form exports
//   - resolver – validation, deduplication, pairing and outcome assignment
//   - ledger   – per-floor and rejection output files
//   - report   – column value frequency summaries
//
// Lockor is designed to be embedded in host applications.  End-users
// typically interact with the engine via the high-level Service façade
// exposed by the root package:
//
//	srv, _ := lockor.New(lockor.WithConfig(cfg))
//	run, _ := srv.Runtime().Allocate(ctx)
//	for _, result := range run.Terms {
//		fmt.Println(result.Term, len(result.Allocations))
//	}
//
// For more details see the individual sub-packages.
package lockor
