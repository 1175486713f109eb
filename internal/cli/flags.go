package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/avelarde/planlevel/internal/domain"
)

var weekdayNames = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// parseWeekFlags turns repeated "Day=Hours" flags into a WeekHours map.
func parseWeekFlags(values []string) (domain.WeekHours, error) {
	week := domain.WeekHours{}
	for _, v := range values {
		parts := strings.SplitN(v, "=", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid --day format %q, expected Day=Hours", v)
		}
		wd, ok := weekdayNames[strings.ToLower(strings.TrimSpace(parts[0]))]
		if !ok {
			return nil, fmt.Errorf("unknown weekday %q", parts[0])
		}
		hours, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
		if err != nil || hours < 0 || hours > 24 {
			return nil, fmt.Errorf("invalid hours in %q, expected 0-24", v)
		}
		week[wd] = hours
	}
	return week, nil
}

// assignmentsFlag collects repeated "Role=Pct" values into assignments.
// It implements pflag.Value so role names may contain spaces.
type assignmentsFlag struct {
	assignments []domain.Assignment
}

var _ pflag.Value = (*assignmentsFlag)(nil)

func (f *assignmentsFlag) String() string {
	parts := make([]string, 0, len(f.assignments))
	for _, a := range f.assignments {
		parts = append(parts, fmt.Sprintf("%s=%.0f", a.Role, a.AllocationPct))
	}
	return strings.Join(parts, ",")
}

func (f *assignmentsFlag) Set(v string) error {
	parts := strings.SplitN(v, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid assignment %q, expected Role=Pct", v)
	}
	role := strings.TrimSpace(parts[0])
	if role == "" {
		return fmt.Errorf("invalid assignment %q: empty role", v)
	}
	pct, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil || pct < 0 || pct > 100 {
		return fmt.Errorf("invalid allocation in %q, expected 0-100", v)
	}
	f.assignments = append(f.assignments, domain.Assignment{Role: role, AllocationPct: pct})
	return nil
}

func (f *assignmentsFlag) Type() string { return "role=pct" }

// parseIntList parses a comma-separated id list like "1,2,100".
func parseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", p)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
