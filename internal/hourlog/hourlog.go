package hourlog

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Date is a plain civil date with no time zone attached.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate constructs a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// ParseDate parses a date in YYYY-MM-DD form.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", s)
	}
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}, nil
}

// Compare returns -1, 0 or 1 depending on whether d sorts before, equal to or after o.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return cmpInt(d.Year, o.Year)
	case d.Month != o.Month:
		return cmpInt(int(d.Month), int(o.Month))
	default:
		return cmpInt(d.Day, o.Day)
	}
}

// Before reports whether d is strictly earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Hours is a duration of worked time counted in whole minutes.
type Hours uint32

// HoursFromMinutes constructs an Hours value from a minute count.
func HoursFromMinutes(minutes uint32) Hours { return Hours(minutes) }

// ParseHours parses a duration in either clock form ("1:30") or
// unit form ("1h30m", "2h", "45m").
func ParseHours(s string) (Hours, error) {
	if h, m, ok := strings.Cut(s, ":"); ok {
		hours, err := strconv.ParseUint(h, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		minutes, err := strconv.ParseUint(m, 10, 32)
		if err != nil || len(m) != 2 || minutes >= 60 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return Hours(hours*60 + minutes), nil
	}

	rest := s
	var total uint64
	var seen bool
	if h, r, ok := strings.Cut(rest, "h"); ok {
		hours, err := strconv.ParseUint(h, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total += hours * 60
		rest = r
		seen = true
	}
	if rest != "" {
		m, ok := strings.CutSuffix(rest, "m")
		if !ok {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		minutes, err := strconv.ParseUint(m, 10, 32)
		if err != nil {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		total += minutes
		seen = true
	}
	if !seen {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	return Hours(total), nil
}

// Minutes returns the total number of minutes.
func (h Hours) Minutes() uint32 { return uint32(h) }

// Seconds returns the total number of seconds.
func (h Hours) Seconds() uint32 { return uint32(h) * 60 }

// String renders the duration in clock form, e.g. "1:30".
func (h Hours) String() string {
	return fmt.Sprintf("%d:%02d", h/60, h%60)
}

// Entry is one unit of logged work. Entries are immutable once parsed.
type Entry struct {
	Date        Date
	Hours       Hours
	Tags        []string
	Description string
}

func (e Entry) String() string {
	if len(e.Tags) == 0 {
		return fmt.Sprintf("%s %s %s", e.Date, e.Hours, e.Description)
	}
	return fmt.Sprintf("%s %s [%s] %s", e.Date, e.Hours, strings.Join(e.Tags, ", "), e.Description)
}

// Period is a half-open date range [Start, End).
type Period struct {
	Start Date
	End   Date
}

// Contains reports whether d falls inside the period.
func (p Period) Contains(d Date) bool {
	return !d.Before(p.Start) && d.Before(p.End)
}

func (p Period) String() string {
	return fmt.Sprintf("%s..%s", p.Start, p.End)
}

// ParsePeriod parses a partial date of the form YYYY, YYYY-MM or YYYY-MM-DD
// into the period covering that year, month or day.
func ParsePeriod(s string) (Period, error) {
	switch strings.Count(s, "-") {
	case 0:
		year, err := strconv.Atoi(s)
		if err != nil || len(s) != 4 {
			return Period{}, fmt.Errorf("invalid period %q: expected YYYY[-MM[-DD]]", s)
		}
		return Period{
			Start: NewDate(year, time.January, 1),
			End:   NewDate(year+1, time.January, 1),
		}, nil
	case 1:
		t, err := time.Parse("2006-01", s)
		if err != nil {
			return Period{}, fmt.Errorf("invalid period %q: expected YYYY[-MM[-DD]]", s)
		}
		next := t.AddDate(0, 1, 0)
		return Period{
			Start: NewDate(t.Year(), t.Month(), 1),
			End:   NewDate(next.Year(), next.Month(), 1),
		}, nil
	case 2:
		start, err := ParseDate(s)
		if err != nil {
			return Period{}, fmt.Errorf("invalid period %q: expected YYYY[-MM[-DD]]", s)
		}
		next := time.Date(start.Year, start.Month, start.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
		return Period{
			Start: start,
			End:   NewDate(next.Year(), next.Month(), next.Day()),
		}, nil
	default:
		return Period{}, fmt.Errorf("invalid period %q: expected YYYY[-MM[-DD]]", s)
	}
}
