package domain

import "time"

// ActivityLog is one audit entry recorded by the backend for an admin-visible
// action (status change, upload, login, ...).
type ActivityLog struct {
	ID     int
	Actor  string
	Action string
	Detail string
	At     time.Time
}

type ActivityLogPage struct {
	Entries []ActivityLog
	Page    int
	PerPage int
	Total   int
}
