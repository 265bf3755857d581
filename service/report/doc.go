// Package report produces a column-frequency summary of a form export: per
// column the number of distinct values and the most common answers, with
// blanks folded into a single token. The report is a diagnostic aid for
// spotting drift in the upstream form before a run.
package report
