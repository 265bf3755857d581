// Package intake reads the two form exports (applicant and partner CSV
// files) and normalises raw records into model.Submission values: it parses
// timestamps, trims fields and extracts the floor preference. Malformed
// input – a missing required column or an unparseable timestamp – is a fatal
// error for the run, never a per-submission outcome.
package intake
