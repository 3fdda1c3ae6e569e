package engine

import (
	"slices"

	"github.com/hourlog/paymosync/internal/paymo"
)

// Reconcile computes the minimal plan that makes the existing remote entries
// match the desired local ones.
//
// Identity between a local and a remote entry is structural: byte-equal
// description plus exact duration. The remote service assigns its own ids
// and the local format stores none, so there is no foreign key to match on.
// Structural identity makes the algorithm idempotent: every previously
// uploaded entry finds its twin on the next run and the plan comes out empty.
//
// Remote entries without a date (timed manually via start/end) are outside
// this function's authority and are never deletion candidates.
//
// Known limitation: when several entries in the period share the same
// (description, duration) pair, ties are broken by encounter order only; the
// first remote entry scanned consumes the first unconsumed matching local
// entry.
func Reconcile(desired []ResolvedEntry, existing []paymo.TimeEntry) Plan {
	remaining := slices.Clone(desired)
	var plan Plan

	for _, old := range existing {
		if old.Date == nil {
			continue
		}

		matched := -1
		for i, want := range remaining {
			if want.Entry.Description == old.Description && want.Entry.Hours.Seconds() == old.Duration {
				matched = i
				break
			}
		}

		if matched >= 0 {
			// consumed: the remote entry already represents this fact
			remaining = slices.Delete(remaining, matched, matched+1)
		} else {
			plan.Deletes = append(plan.Deletes, old)
		}
	}

	plan.Creates = remaining
	return plan
}
