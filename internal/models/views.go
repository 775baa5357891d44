package models

import "time"

// Read-side projections scanned straight from aggregate queries.

type EventWithCount struct {
	Event
	RegisteredCount int64 `json:"registered_count"`
}

// RegisteredEvent is an event joined with the caller's registration time.
type RegisteredEvent struct {
	Event
	RegisteredAt time.Time `json:"registered_at"`
}

type UserWithCount struct {
	User
	RegistrationCount int64 `json:"registration_count"`
}

// CapacityUsage pairs an event's raw capacity text with its registration
// count, for the attendance ratio which only counts numeric capacities.
type CapacityUsage struct {
	Capacity        string `json:"capacity"`
	RegisteredCount int64  `json:"registered_count"`
}

type Stats struct {
	TotalRegistrations int64 `json:"total_registrations"`
	TotalEvents        int64 `json:"total_events"`
	AvgAttendance      int64 `json:"avg_attendance"`
}
