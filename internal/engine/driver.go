package engine

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hourlog/paymosync/internal/hourlog"
)

// Syncer drives one sync run against a [Store].
type Syncer struct {
	store  Store
	logger *log.Logger
}

// NewSyncer creates a Syncer applying plans through the given store.
func NewSyncer(store Store, logger *log.Logger) *Syncer {
	return &Syncer{store: store, logger: logger}
}

// RunResult summarizes a completed sync run.
type RunResult struct {
	Plan    Plan
	User    uint64
	Created int
	Deleted int
}

// Run synchronizes the desired entries for the period: it resolves the
// current user, fetches the existing remote entries, reconciles, and applies
// the resulting plan. In dry-run mode every action is reported and nothing
// is sent.
func (s *Syncer) Run(ctx context.Context, desired []ResolvedEntry, period hourlog.Period, dryRun bool) (*RunResult, error) {
	user, err := s.store.CurrentUser(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to determine user ID: %w", err)
	}

	existing, err := s.store.ListEntries(ctx, user.ID, period)
	if err != nil {
		return nil, fmt.Errorf("failed to get time entries between %s and %s: %w", period.Start, period.End, err)
	}
	s.logger.Debug("found existing entries on server", "count", len(existing), "period", period.String())

	plan := Reconcile(desired, existing)

	if err := s.Apply(ctx, plan, dryRun); err != nil {
		return nil, err
	}

	return &RunResult{
		Plan:    plan,
		User:    user.ID,
		Created: len(plan.Creates),
		Deleted: len(plan.Deletes),
	}, nil
}

// Apply executes the plan: all deletes first, then all creates. The first
// failed call aborts the remainder; already-applied actions stand.
func (s *Syncer) Apply(ctx context.Context, plan Plan, dryRun bool) error {
	for _, old := range plan.Deletes {
		date := "????"
		if old.Date != nil {
			date = *old.Date
		} else if old.StartTime != nil {
			date = *old.StartTime
		}
		s.logger.Warn("deleting entry", "id", old.ID, "date", date,
			"hours", hourlog.HoursFromMinutes(old.Duration/60).String(), "description", old.Description)

		if dryRun {
			continue
		}
		if err := s.store.DeleteEntry(ctx, old.ID); err != nil {
			return fmt.Errorf("failed to delete entry %d: %w", old.ID, err)
		}
	}

	for _, entry := range plan.Creates {
		s.logger.Info("adding entry", "task", entry.TaskID, "entry", entry.Entry.String())

		if dryRun {
			continue
		}
		if err := s.store.CreateEntry(ctx, entry.TaskID, entry.Entry.Date, entry.Entry.Hours.Seconds(), entry.Entry.Description); err != nil {
			return fmt.Errorf("failed to add entry %q: %w", entry.Entry.Description, err)
		}
	}

	return nil
}
