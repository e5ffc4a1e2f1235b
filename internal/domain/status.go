package domain

// ReviewStatus is an admin-configurable state an applicant moves through,
// e.g. "received", "under review", "admitted".
type ReviewStatus struct {
	Code  string
	Label string
	Color string
	Order int
}

type StatusCount struct {
	Code  string
	Label string
	Count int
}

// SessionStatistics summarizes one session's applicants per review status.
type SessionStatistics struct {
	SessionID int
	Total     int
	ByStatus  []StatusCount
}

// Share returns the fraction of the session total held by one status bucket.
func (s SessionStatistics) Share(count int) float64 {
	if s.Total <= 0 {
		return 0
	}

	return float64(count) / float64(s.Total)
}
