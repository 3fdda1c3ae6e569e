// Package engine implements the reconciliation pipeline that makes the
// remote time-tracking state mirror the local hour log.
//
// The pipeline runs strictly in sequence: [ResolveTasks] attributes every
// entry to exactly one task, [SummarizePerDay] optionally collapses same-day
// same-task entries, [Reconcile] diffs desired against existing entries into
// a [Plan], and [Syncer] applies the plan through the [Store] boundary.
//
// Local validation completes before anything is sent: a single unresolvable
// entry aborts the run with no remote side effects. During apply, the first
// failed call aborts the remainder; applied actions are not rolled back and
// a re-run is safe because reconciliation is idempotent.
package engine
