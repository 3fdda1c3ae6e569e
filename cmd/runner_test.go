package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hourlog/paymosync/internal/hourlog"
	"github.com/hourlog/paymosync/internal/paymo"
	"github.com/hourlog/paymosync/internal/shared"
	"github.com/urfave/cli/v3"
)

type mockDirectory struct {
	clients  []paymo.Client
	projects []paymo.Project
	tasks    []paymo.Task
	err      error
}

func (m *mockDirectory) Clients(ctx context.Context) ([]paymo.Client, error) {
	return m.clients, m.err
}

func (m *mockDirectory) Projects(ctx context.Context, filter paymo.ProjectFilter) ([]paymo.Project, error) {
	return m.projects, m.err
}

func (m *mockDirectory) Tasks(ctx context.Context) ([]paymo.Task, error) {
	return m.tasks, m.err
}

type mockStore struct {
	user    paymo.User
	entries []paymo.TimeEntry
	calls   []string
}

func (m *mockStore) CurrentUser(ctx context.Context) (paymo.User, error) {
	m.calls = append(m.calls, "user")
	return m.user, nil
}

func (m *mockStore) ListEntries(ctx context.Context, userID uint64, period hourlog.Period) ([]paymo.TimeEntry, error) {
	m.calls = append(m.calls, "list")
	return m.entries, nil
}

func (m *mockStore) CreateEntry(ctx context.Context, taskID uint64, date hourlog.Date, seconds uint32, description string) error {
	m.calls = append(m.calls, fmt.Sprintf("create %d %s %d %s", taskID, date, seconds, description))
	return nil
}

func (m *mockStore) DeleteEntry(ctx context.Context, id uint64) error {
	m.calls = append(m.calls, fmt.Sprintf("delete %d", id))
	return nil
}

// newTestApp builds the CLI surface the way main does.
func newTestApp(r *Runner, configPath string) *cli.Command {
	return &cli.Command{
		Name: "paymosync",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Value: configPath},
			&cli.StringFlag{Name: "api-root"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"q"}},
		},
		Commands: r.register(),
	}
}

func writeTestConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "paymosync.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

const testConfig = `
[general]
token = "secret"

[[task]]
name = "proj/a"
id = 7

[[task]]
name = "proj/b"
id = 8
`

func TestRunner(t *testing.T) {
	t.Run("NewRunner", func(t *testing.T) {
		t.Run("with nil logger uses default", func(t *testing.T) {
			if runner := NewRunner(RunnerOpts{}); runner.logger == nil {
				t.Error("expected default logger to be set")
			}
		})

		t.Run("with nil output uses stdout", func(t *testing.T) {
			if runner := NewRunner(RunnerOpts{}); runner.output != os.Stdout {
				t.Error("expected output to default to os.Stdout")
			}
		})

		t.Run("with nil httpClient uses default", func(t *testing.T) {
			if runner := NewRunner(RunnerOpts{}); runner.httpClient != http.DefaultClient {
				t.Error("expected httpClient to default to http.DefaultClient")
			}
		})
	})

	t.Run("Init", func(t *testing.T) {
		output := &bytes.Buffer{}
		runner := NewRunner(RunnerOpts{Output: output, Logger: shared.NewLogger(output)})
		configPath := filepath.Join(t.TempDir(), "paymosync.toml")
		app := newTestApp(runner, configPath)

		if err := app.Run(context.Background(), []string{"paymosync", "init"}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if _, err := os.Stat(configPath); err != nil {
			t.Errorf("expected config file to exist: %v", err)
		}

		if err := app.Run(context.Background(), []string{"paymosync", "init"}); err == nil {
			t.Error("expected error when config already exists")
		}
	})
}

func TestListTasks(t *testing.T) {
	directory := &mockDirectory{
		clients: []paymo.Client{
			{ID: 2, Name: "Zebra Corp"},
			{ID: 1, Name: "Acme"},
		},
		projects: []paymo.Project{
			{ID: 10, Name: "Website", ClientID: 1},
		},
		tasks: []paymo.Task{
			{ID: 7, Name: "Fix header", ProjectID: 10},
			{ID: 8, Name: "Old task", ProjectID: 10, Complete: true},
		},
	}

	output := &bytes.Buffer{}
	runner := NewRunner(RunnerOpts{
		Directory: directory,
		Output:    output,
		Logger:    shared.NewLogger(&bytes.Buffer{}),
	})
	app := newTestApp(runner, writeTestConfig(t, testConfig))

	if err := app.Run(context.Background(), []string{"paymosync", "list-tasks"}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got := output.String()
	if !strings.Contains(got, "Acme") || !strings.Contains(got, "(1)") {
		t.Errorf("expected client with id in output, got:\n%s", got)
	}
	if !strings.Contains(got, "Fix header") || !strings.Contains(got, "(7)") {
		t.Errorf("expected task with id in output, got:\n%s", got)
	}
	if strings.Contains(got, "Old task") {
		t.Errorf("expected complete tasks to be hidden, got:\n%s", got)
	}
	if strings.Contains(got, "Zebra Corp") {
		t.Errorf("expected clients without active projects to be hidden, got:\n%s", got)
	}
}

func TestSync(t *testing.T) {
	writeHourLog := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "hours.log")
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write hour log: %v", err)
		}
		return path
	}

	newSyncRunner := func(store *mockStore) (*Runner, *bytes.Buffer) {
		output := &bytes.Buffer{}
		return NewRunner(RunnerOpts{
			Store:  store,
			Output: output,
			Logger: shared.NewLogger(&bytes.Buffer{}),
		}), output
	}

	t.Run("Uploads New Entries", func(t *testing.T) {
		store := &mockStore{user: paymo.User{ID: 42}}
		runner, output := newSyncRunner(store)
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		want := []string{"user", "list", "create 7 2024-01-01 7200 work"}
		if len(store.calls) != len(want) {
			t.Fatalf("unexpected calls %v", store.calls)
		}
		for i, call := range want {
			if store.calls[i] != call {
				t.Errorf("call %d: got %q, want %q", i, store.calls[i], call)
			}
		}
		if !strings.Contains(output.String(), "added 1") {
			t.Errorf("expected summary in output, got %q", output.String())
		}
	})

	t.Run("Deletes Stale Entries First", func(t *testing.T) {
		date := "2024-01-03"
		store := &mockStore{
			user:    paymo.User{ID: 42},
			entries: []paymo.TimeEntry{{ID: 5, Date: &date, Duration: 900, Description: "stale"}},
		}
		runner, _ := newSyncRunner(store)
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if store.calls[2] != "delete 5" || !strings.HasPrefix(store.calls[3], "create") {
			t.Errorf("expected delete before create, got %v", store.calls)
		}
	})

	t.Run("Out Of Period Entries Skipped", func(t *testing.T) {
		store := &mockStore{user: paymo.User{ID: 42}}
		runner, _ := newSyncRunner(store)
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-02-01 2:00 [proj/a] out of range\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, call := range store.calls {
			if strings.HasPrefix(call, "create") {
				t.Errorf("expected no uploads for out-of-period entries, got %v", store.calls)
			}
		}
	})

	t.Run("Dry Run Never Mutates", func(t *testing.T) {
		date := "2024-01-03"
		store := &mockStore{
			user:    paymo.User{ID: 42},
			entries: []paymo.TimeEntry{{ID: 5, Date: &date, Duration: 900, Description: "stale"}},
		}
		runner, output := newSyncRunner(store)
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--dry-run", "--period", "2024-01", logPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		for _, call := range store.calls {
			if strings.HasPrefix(call, "create") || strings.HasPrefix(call, "delete") {
				t.Errorf("expected no mutations in dry run, got %v", store.calls)
			}
		}
		if !strings.Contains(output.String(), "Dry run") {
			t.Errorf("expected dry run summary, got %q", output.String())
		}
	})

	t.Run("Summarize Per Day", func(t *testing.T) {
		store := &mockStore{user: paymo.User{ID: 42}}
		runner, _ := newSyncRunner(store)
		config := testConfig + "\n" // summarize option lives under [general]
		config = strings.Replace(config, `token = "secret"`, "token = \"secret\"\nsummarize_per_day = \"Worked hours\"", 1)
		app := newTestApp(runner, writeTestConfig(t, config))
		logPath := writeHourLog(t, "2024-01-01 1:00 [proj/a] morning\n2024-01-01 1:30 [proj/a] afternoon\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		var creates []string
		for _, call := range store.calls {
			if strings.HasPrefix(call, "create") {
				creates = append(creates, call)
			}
		}
		if len(creates) != 1 || creates[0] != "create 7 2024-01-01 9000 Worked hours" {
			t.Errorf("expected one summarized upload, got %v", creates)
		}
	})

	t.Run("Ambiguous Tags Abort Before Any Call", func(t *testing.T) {
		store := &mockStore{user: paymo.User{ID: 42}}
		runner, _ := newSyncRunner(store)
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a, proj/b] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err == nil {
			t.Fatal("expected error for ambiguous tags")
		}
		if len(store.calls) != 0 {
			t.Errorf("expected no remote calls, got %v", store.calls)
		}
	})

	t.Run("Missing Files Argument", func(t *testing.T) {
		runner, _ := newSyncRunner(&mockStore{})
		app := newTestApp(runner, writeTestConfig(t, testConfig))

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01"})
		if err == nil {
			t.Error("expected error without hour log files")
		}
	})

	t.Run("Invalid Period", func(t *testing.T) {
		runner, _ := newSyncRunner(&mockStore{})
		app := newTestApp(runner, writeTestConfig(t, testConfig))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "soon", logPath})
		if err == nil {
			t.Error("expected error for invalid period")
		}
	})

	t.Run("Missing Token", func(t *testing.T) {
		runner, _ := newSyncRunner(&mockStore{})
		config := strings.Replace(testConfig, `token = "secret"`, `token = ""`, 1)
		app := newTestApp(runner, writeTestConfig(t, config))
		logPath := writeHourLog(t, "2024-01-01 2:00 [proj/a] work\n")

		err := app.Run(context.Background(), []string{"paymosync", "sync", "--period", "2024-01", logPath})
		if err == nil {
			t.Error("expected error for missing token")
		}
	})
}
