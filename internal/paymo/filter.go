package paymo

import (
	"fmt"
	"strings"

	"github.com/hourlog/paymosync/internal/hourlog"
)

// EntryFilter selects which time entries to list. Nil fields are omitted
// from the query.
type EntryFilter struct {
	UserID *uint64
	Period *hourlog.Period
}

// Where renders the filter as the API's "where" query parameter value.
// An empty filter renders as the empty string.
func (f EntryFilter) Where() string {
	var conds []string
	if f.UserID != nil {
		conds = append(conds, fmt.Sprintf("user_id=%d", *f.UserID))
	}
	if f.Period != nil {
		conds = append(conds, fmt.Sprintf("time_interval in (%q,%q)",
			dayStart(f.Period.Start), dayStart(f.Period.End)))
	}
	return strings.Join(conds, " and ")
}

// ProjectFilter selects which projects to list.
type ProjectFilter struct {
	Active *bool
}

// Where renders the filter as the API's "where" query parameter value.
func (f ProjectFilter) Where() string {
	if f.Active == nil {
		return ""
	}
	return fmt.Sprintf("active=%t", *f.Active)
}

func dayStart(d hourlog.Date) string {
	return d.String() + "T00:00:00Z"
}
