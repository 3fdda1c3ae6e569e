package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hourlog/paymosync/internal/engine"
	"github.com/hourlog/paymosync/internal/paymo"
	"github.com/hourlog/paymosync/internal/shared"
	"github.com/urfave/cli/v3"
)

// Directory is the read-only task catalog the list-tasks command consumes.
// Satisfied by [paymo.API].
type Directory interface {
	Clients(ctx context.Context) ([]paymo.Client, error)
	Projects(ctx context.Context, filter paymo.ProjectFilter) ([]paymo.Project, error)
	Tasks(ctx context.Context) ([]paymo.Task, error)
}

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	store      engine.Store
	directory  Directory
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Store and Directory are optional; when nil, each action constructs a
// [paymo.API] from the loaded configuration. Tests inject doubles.
type RunnerOpts struct {
	Store      engine.Store
	Directory  Directory
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}

	return &Runner{
		store:      opts.Store,
		directory:  opts.Directory,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		listTasksCommand, syncCommand, initCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// setVerbosity applies the --verbose/--quiet flags to the logger.
func (r *Runner) setVerbosity(cmd *cli.Command) {
	verbose, quiet := 0, 0
	if cmd.Bool("verbose") {
		verbose = 1
	}
	if cmd.Bool("quiet") {
		quiet = 1
	}
	r.logger.SetLevel(shared.VerbosityLevel(verbose, quiet))
}

// loadConfig reads the configuration file named by the --config flag.
func (r *Runner) loadConfig(cmd *cli.Command) (*shared.Config, error) {
	return shared.LoadConfig(cmd.String("config"))
}

// newAPI builds a Paymo client from the configuration, honoring the
// --api-root override.
func (r *Runner) newAPI(cmd *cli.Command, config *shared.Config) *paymo.API {
	root := config.General.APIRoot
	if override := cmd.String("api-root"); override != "" {
		root = override
	}

	return paymo.NewAPI(paymo.APIOpts{
		Root:              root,
		Token:             config.General.Token,
		HTTPClient:        r.httpClient,
		Logger:            r.logger,
		RequestsPerSecond: config.General.RequestsPerSecond,
	})
}

// Init writes the example configuration file to the --config path.
func (r *Runner) Init(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("config")
	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}
	r.writePlain("Wrote example configuration to %s\n", path)
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// indexBy groups a sequence by the return value of the key function.
func indexBy[T any, K comparable](items []T, key func(T) K) map[K][]T {
	index := map[K][]T{}
	for _, item := range items {
		k := key(item)
		index[k] = append(index[k], item)
	}
	return index
}
