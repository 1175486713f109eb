package domain

// Role is a named pool of capacity shared by every task that assigns it.
type Role struct {
	Name string

	// AvailabilityPct is the share of a working day the role can give to
	// project work at all, in [0,100].
	AvailabilityPct float64

	// HourlyRate is carried through for cost reporting; the scheduler
	// never reads it.
	HourlyRate float64
}

// RoleMap indexes roles by name, the form the scheduler consumes.
type RoleMap map[string]Role
