package engine

import (
	"sort"

	"github.com/hourlog/paymosync/internal/hourlog"
)

// SummarizePerDay collapses same-day entries for the same task into a single
// entry whose hours are the group's sum and whose description is the fixed
// summary text. Tag provenance is discarded; this is a summarization view,
// not a merge-preserving transform.
//
// Emission is in sorted (date, task) order.
func SummarizePerDay(entries []ResolvedEntry, description string) []ResolvedEntry {
	type key struct {
		date hourlog.Date
		task uint64
	}

	groups := map[key]hourlog.Hours{}
	for _, e := range entries {
		k := key{date: e.Entry.Date, task: e.TaskID}
		groups[k] += e.Entry.Hours
	}

	keys := make([]key, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if c := keys[i].date.Compare(keys[j].date); c != 0 {
			return c < 0
		}
		return keys[i].task < keys[j].task
	})

	summarized := make([]ResolvedEntry, 0, len(keys))
	for _, k := range keys {
		summarized = append(summarized, ResolvedEntry{
			Entry: hourlog.Entry{
				Date:        k.date,
				Hours:       groups[k],
				Description: description,
			},
			TaskID: k.task,
		})
	}
	return summarized
}
