// Package ledger writes a resolved term back to storage: accepted allocation
// rows partitioned into per-floor CSV files and rejected submissions with
// their original columns plus the result code. Everything goes through afs
// so runs can target file://, mem:// or any other supported scheme.
package ledger
