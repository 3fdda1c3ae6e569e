package shared

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/hourlog/paymosync/internal/hourlog"
)

//go:embed config.example.toml
var exampleConf []byte

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	General GeneralConfig `toml:"general"`
	Tasks   []TaskConfig  `toml:"task"`
}

// GeneralConfig contains the API credentials and sync policy settings.
type GeneralConfig struct {
	Token             string  `toml:"token"`
	APIRoot           string  `toml:"api_root"`
	SummarizePerDay   string  `toml:"summarize_per_day"`
	TasksFile         string  `toml:"tasks_file"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

// TaskConfig maps one hour log tag to a Paymo task id.
type TaskConfig struct {
	Name string `toml:"name"`
	ID   uint64 `toml:"id"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %v", ErrMissingConfig, path, err)
	}

	var config Config
	if err := toml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s: %v", ErrInvalidConfig, path, err)
	}

	return &config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// TaskIDs builds the tag → task id table from the [[task]] blocks and, when
// configured, the external tasks file. Duplicate names fail the whole table
// before any sync logic runs.
func (c *Config) TaskIDs() (map[string]uint64, error) {
	table := map[string]uint64{}

	for _, task := range c.Tasks {
		if _, exists := table[task.Name]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTask, task.Name)
		}
		table[task.Name] = task.ID
	}

	if c.General.TasksFile != "" {
		fileTable, err := hourlog.ReadTaskIDs(c.General.TasksFile)
		if err != nil {
			return nil, err
		}
		for name, id := range fileTable {
			if _, exists := table[name]; exists {
				return nil, fmt.Errorf("%w: %s (in both config and %s)", ErrDuplicateTask, name, c.General.TasksFile)
			}
			table[name] = id
		}
	}

	if len(table) == 0 {
		return nil, ErrNoTasks
	}

	return table, nil
}
