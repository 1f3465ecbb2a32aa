// Package award contains the Award aggregate and its supporting entities.
//
// An Award is an offer-evaluation record attached to one lot of a tender. It is
// created once in pending/empty state and afterwards mutated only through the
// evaluation workflow: description, documents, status details and the
// last-modified date. The status-details state machine, the id-keyed document
// merge, and the canonical supplier identity all live here so the aggregate
// enforces its own invariants regardless of the calling workflow.
package award
