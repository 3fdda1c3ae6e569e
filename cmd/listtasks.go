package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
	"github.com/hourlog/paymosync/internal/paymo"
	"github.com/urfave/cli/v3"
)

var (
	clientStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	projectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575"))
	idStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
)

// ListTasks prints a tree of clients, their active projects and the
// incomplete tasks within them, with the task ids needed for the
// configuration's tag table.
func (r *Runner) ListTasks(ctx context.Context, cmd *cli.Command) error {
	r.setVerbosity(cmd)

	config, err := r.loadConfig(cmd)
	if err != nil {
		return err
	}

	directory := r.directory
	if directory == nil {
		directory = r.newAPI(cmd, config)
	}

	clients, err := directory.Clients(ctx)
	if err != nil {
		return err
	}
	sort.Slice(clients, func(i, j int) bool { return clients[i].Name < clients[j].Name })

	active := true
	projects, err := directory.Projects(ctx, paymo.ProjectFilter{Active: &active})
	if err != nil {
		return err
	}
	projectsByClient := indexBy(projects, func(p paymo.Project) uint64 { return p.ClientID })

	tasks, err := directory.Tasks(ctx)
	if err != nil {
		return err
	}
	tasksByProject := indexBy(tasks, func(t paymo.Task) uint64 { return t.ProjectID })

	for _, client := range clients {
		clientProjects, ok := projectsByClient[client.ID]
		if !ok {
			continue
		}
		r.writePlain("%s %s\n", clientStyle.Render(client.Name), idStyle.Render(fmt.Sprintf("(%d)", client.ID)))
		for _, project := range clientProjects {
			r.writePlain("  %s %s\n", projectStyle.Render(project.Name), idStyle.Render(fmt.Sprintf("(%d)", project.ID)))
			for _, task := range tasksByProject[project.ID] {
				if task.Complete {
					continue
				}
				r.writePlain("    %s %s\n", task.Name, idStyle.Render(fmt.Sprintf("(%d)", task.ID)))
			}
		}
	}

	return nil
}
