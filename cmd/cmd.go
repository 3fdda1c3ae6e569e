// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// listTasksCommand prints the available tasks organized by client and project.
func listTasksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "list-tasks",
		Aliases: []string{"tasks"},
		Usage:   "List available tasks (organized by client and project)",
		Action:  r.ListTasks,
	}
}

// syncCommand synchronizes logged hours to Paymo.
func syncCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:      "sync",
		Usage:     "Synchronize logged hours to Paymo",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "period",
				Usage:    "The period to synchronize (YYYY[-MM[-DD]])",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Print what would be done, without changing any entries on Paymo",
			},
		},
		Action: r.Sync,
	}
}

// initCommand scaffolds a configuration file.
func initCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:   "init",
		Usage:  "Write an example configuration file",
		Action: r.Init,
	}
}
