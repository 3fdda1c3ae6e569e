package hourlog

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ReadTaskIDs reads a tag → task id table from the file at path.
func ReadTaskIDs(path string) (map[string]uint64, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read task table: %w", err)
	}
	table, err := ParseTaskIDs(string(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return table, nil
}

// ParseTaskIDs parses a tag → task id table.
//
// Each non-blank, non-comment line has the form "tag = ID". Tag names must
// be unique; a duplicate fails the whole table.
func ParseTaskIDs(data string) (map[string]uint64, error) {
	table := map[string]uint64{}

	for i, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		tag, idField, ok := strings.Cut(line, "=")
		if !ok {
			return nil, fmt.Errorf("invalid syntax on line %d: expected \"tag = ID\"", i+1)
		}
		tag = strings.TrimSpace(tag)
		idField = strings.TrimSpace(idField)

		id, err := strconv.ParseUint(idField, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid task ID on line %d: expected unsigned number, got %q", i+1, idField)
		}

		if _, exists := table[tag]; exists {
			return nil, fmt.Errorf("duplicate tag on line %d: %s", i+1, tag)
		}
		table[tag] = id
	}

	return table, nil
}
