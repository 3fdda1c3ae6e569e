package engine

import (
	"context"

	"github.com/hourlog/paymosync/internal/hourlog"
	"github.com/hourlog/paymosync/internal/paymo"
)

// Store is the capability the engine needs from the remote time-tracking
// service. Implemented by [paymo.API]; tests substitute doubles.
type Store interface {
	// CurrentUser resolves the account the credentials belong to.
	CurrentUser(ctx context.Context) (paymo.User, error)

	// ListEntries retrieves the user's time entries within the period.
	ListEntries(ctx context.Context, userID uint64, period hourlog.Period) ([]paymo.TimeEntry, error)

	// CreateEntry adds a new time entry for the task on the given date.
	CreateEntry(ctx context.Context, taskID uint64, date hourlog.Date, seconds uint32, description string) error

	// DeleteEntry removes the time entry with the given id.
	DeleteEntry(ctx context.Context, id uint64) error
}

// ResolvedEntry pairs an hour log entry with the single task it bills to.
// Only [ResolveTasks] constructs these.
type ResolvedEntry struct {
	Entry  hourlog.Entry
	TaskID uint64
}

// Plan is the minimal set of remote mutations that makes the remote state
// match the local log for one period. Produced by [Reconcile], consumed
// once by [Syncer.Apply].
type Plan struct {
	Creates []ResolvedEntry
	Deletes []paymo.TimeEntry
}

// Empty reports whether the plan requires no remote mutation.
func (p Plan) Empty() bool {
	return len(p.Creates) == 0 && len(p.Deletes) == 0
}
