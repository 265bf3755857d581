// Package resolver implements the allocation decision engine. A term's raw
// submissions pass through four explicit filter stages – validation,
// ineligibility, deduplication and pairing – followed by outcome
// classification, each stage only annotating outcome codes. The stages are
// deliberately implemented as a sequence of pure passes rather than
// opportunistically checked flags so that the ordering guarantees stay
// auditable.
package resolver
