package scheduler

import (
	"sort"
	"time"
)

// Ledger records the hours already committed per (date, role) across all
// tasks scheduled so far in one leveling run. It is owned by a single
// engine run and discarded at the end; it is never shared across runs.
type Ledger map[time.Time]map[string]float64

// NewLedger returns an empty ledger.
func NewLedger() Ledger {
	return Ledger{}
}

// Committed returns the hours already committed for a role on a date.
func (l Ledger) Committed(date time.Time, role string) float64 {
	return l[date][role]
}

// Add commits hours for a role on a date.
func (l Ledger) Add(date time.Time, role string, hours float64) {
	day, ok := l[date]
	if !ok {
		day = map[string]float64{}
		l[date] = day
	}
	day[role] += hours
}

// DayLog is one day of a task's simulated consumption, kept outside the
// ledger until the whole task completes.
type DayLog struct {
	Date    time.Time
	PerRole map[string]float64
}

// MergeLog commits a completed simulation log additively.
func (l Ledger) MergeLog(log []DayLog) {
	for _, d := range log {
		for role, hours := range d.PerRole {
			l.Add(d.Date, role, hours)
		}
	}
}

// Dates returns the ledger's dates in chronological order.
func (l Ledger) Dates() []time.Time {
	dates := make([]time.Time, 0, len(l))
	for d := range l {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

// RoleEntry is one (role, hours) pair of a ledger day, ordered by role name.
type RoleEntry struct {
	Role  string
	Hours float64
}

// DaySnapshot is a ledger day in deterministic order.
type DaySnapshot struct {
	Date  time.Time
	Roles []RoleEntry
}

// Snapshot returns the full ledger in deterministic (date, role) order,
// the form handed to callers for workload display.
func (l Ledger) Snapshot() []DaySnapshot {
	out := make([]DaySnapshot, 0, len(l))
	for _, date := range l.Dates() {
		day := l[date]
		names := make([]string, 0, len(day))
		for role := range day {
			names = append(names, role)
		}
		sort.Strings(names)
		snap := DaySnapshot{Date: date, Roles: make([]RoleEntry, 0, len(names))}
		for _, role := range names {
			snap.Roles = append(snap.Roles, RoleEntry{Role: role, Hours: day[role]})
		}
		out = append(out, snap)
	}
	return out
}

// TotalsByRole sums committed hours per role over the whole run.
func (l Ledger) TotalsByRole() map[string]float64 {
	totals := map[string]float64{}
	for _, day := range l {
		for role, hours := range day {
			totals[role] += hours
		}
	}
	return totals
}
