package main

import (
	"context"
	"fmt"

	"github.com/hourlog/paymosync/internal/engine"
	"github.com/hourlog/paymosync/internal/hourlog"
	"github.com/hourlog/paymosync/internal/shared"
	"github.com/urfave/cli/v3"
)

// Sync reconciles the hour log files against Paymo for the given period.
//
// The run is validated to completion locally (parsing, task table, tag
// resolution) before anything is sent; the first remote failure aborts the
// remainder of the plan.
func (r *Runner) Sync(ctx context.Context, cmd *cli.Command) error {
	r.setVerbosity(cmd)

	files := cmd.Args().Slice()
	if len(files) == 0 {
		return fmt.Errorf("%w: at least one hour log file", shared.ErrMissingArgument)
	}

	period, err := hourlog.ParsePeriod(cmd.String("period"))
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}
	if config.General.Token == "" {
		return shared.ErrMissingToken
	}

	var entries []hourlog.Entry
	for _, file := range files {
		fileEntries, err := hourlog.ParseFile(file)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", file, err)
		}
		entries = append(entries, fileEntries...)
	}

	inPeriod := make([]hourlog.Entry, 0, len(entries))
	for _, entry := range entries {
		if period.Contains(entry.Date) {
			inPeriod = append(inPeriod, entry)
		}
	}
	r.logger.Debug("entries in period", "total", len(entries), "in_period", len(inPeriod), "period", period.String())

	table, err := config.TaskIDs()
	if err != nil {
		return err
	}

	resolved, err := engine.ResolveTasks(inPeriod, table)
	if err != nil {
		return err
	}

	if config.General.SummarizePerDay != "" {
		resolved = engine.SummarizePerDay(resolved, config.General.SummarizePerDay)
	}

	store := r.store
	if store == nil {
		store = r.newAPI(cmd, config)
	}

	dryRun := cmd.Bool("dry-run")
	result, err := engine.NewSyncer(store, r.logger).Run(ctx, resolved, period, dryRun)
	if err != nil {
		return err
	}

	if dryRun {
		r.writePlain("Dry run: would delete %d and add %d entries for %s\n",
			result.Deleted, result.Created, period)
	} else if result.Plan.Empty() {
		r.writePlain("Nothing to do: Paymo already matches the log for %s\n", period)
	} else {
		r.writePlain("Deleted %d and added %d entries for %s\n",
			result.Deleted, result.Created, period)
	}

	return nil
}
