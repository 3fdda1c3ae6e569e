package engine

import (
	"fmt"

	"github.com/hourlog/paymosync/internal/hourlog"
)

// NoTaskError reports an entry whose tags match no known task.
type NoTaskError struct {
	Entry hourlog.Entry
}

func (e *NoTaskError) Error() string {
	return fmt.Sprintf("no tag maps to a known task: %s", e.Entry)
}

// AmbiguousTagError reports an entry with more than one tag mapping to a
// task. The resolver never picks among competing tags.
type AmbiguousTagError struct {
	Entry hourlog.Entry
	TagA  string
	TagB  string
}

func (e *AmbiguousTagError) Error() string {
	return fmt.Sprintf("multiple tags map to a task: %s and %s: %s", e.TagA, e.TagB, e.Entry)
}

// ResolveTasks attributes every entry to exactly one task id via the tag →
// task table. The whole batch resolves before any remote mutation; the
// first unresolvable entry fails the run so partial syncs never silently
// skip work.
func ResolveTasks(entries []hourlog.Entry, table map[string]uint64) ([]ResolvedEntry, error) {
	resolved := make([]ResolvedEntry, 0, len(entries))

	for _, entry := range entries {
		matched := ""
		var taskID uint64
		found := false

		for _, tag := range entry.Tags {
			id, ok := table[tag]
			if !ok {
				continue
			}
			if found {
				return nil, &AmbiguousTagError{Entry: entry, TagA: matched, TagB: tag}
			}
			matched, taskID, found = tag, id, true
		}

		if !found {
			return nil, &NoTaskError{Entry: entry}
		}
		resolved = append(resolved, ResolvedEntry{Entry: entry, TaskID: taskID})
	}

	return resolved, nil
}
