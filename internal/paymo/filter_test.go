package paymo

import (
	"testing"

	"github.com/hourlog/paymosync/internal/hourlog"
)

func TestEntryFilter(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := (EntryFilter{}).Where(); got != "" {
			t.Errorf("expected empty where clause, got %q", got)
		}
	})

	t.Run("User Only", func(t *testing.T) {
		userID := uint64(123)
		if got := (EntryFilter{UserID: &userID}).Where(); got != "user_id=123" {
			t.Errorf("unexpected where clause %q", got)
		}
	})

	t.Run("User And Period", func(t *testing.T) {
		userID := uint64(123)
		period, err := hourlog.ParsePeriod("2024-01")
		if err != nil {
			t.Fatalf("failed to parse period: %v", err)
		}

		got := (EntryFilter{UserID: &userID, Period: &period}).Where()
		want := `user_id=123 and time_interval in ("2024-01-01T00:00:00Z","2024-02-01T00:00:00Z")`
		if got != want {
			t.Errorf("unexpected where clause\n got: %s\nwant: %s", got, want)
		}
	})
}

func TestProjectFilter(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := (ProjectFilter{}).Where(); got != "" {
			t.Errorf("expected empty where clause, got %q", got)
		}
	})

	t.Run("Active", func(t *testing.T) {
		active := true
		if got := (ProjectFilter{Active: &active}).Where(); got != "active=true" {
			t.Errorf("unexpected where clause %q", got)
		}
	})
}
