package domain

import "time"

type Applicant struct {
	ID          int
	SessionID   int
	FullName    string
	Email       string
	StatusCode  string
	SubmittedAt time.Time
}

type PersonalInfo struct {
	FullName    string
	Email       string
	Phone       string
	BirthDate   time.Time
	Citizenship string
	Address     string
}

type Institution struct {
	Name           string
	Degree         string
	GPA            float64
	GraduationYear int
}

type TestScore struct {
	TestName   string
	Score      float64
	Percentile float64
	TakenAt    time.Time
}

type Review struct {
	Reviewer  string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

const (
	MinRating = 1
	MaxRating = 5
)

func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ApplicantDetail aggregates everything the detail view shows: personal info,
// prior institutions, test scores, and reviewer ratings with comments.
type ApplicantDetail struct {
	Applicant    Applicant
	Personal     PersonalInfo
	Institutions []Institution
	Scores       []TestScore
	Reviews      []Review
}

// AverageRating returns the mean of all review ratings, or 0 when unreviewed.
func (d ApplicantDetail) AverageRating() float64 {
	if len(d.Reviews) == 0 {
		return 0
	}

	total := 0
	for _, review := range d.Reviews {
		total += review.Rating
	}

	return float64(total) / float64(len(d.Reviews))
}

// ApplicantFilter narrows a session's applicant list: free-text search,
// status filter, and pagination.
type ApplicantFilter struct {
	Query   string
	Status  string
	Page    int
	PerPage int
}

type ApplicantPage struct {
	Applicants []Applicant
	Page       int
	PerPage    int
	Total      int
}

func (p ApplicantPage) TotalPages() int {
	if p.PerPage <= 0 {
		return 0
	}

	pages := p.Total / p.PerPage
	if p.Total%p.PerPage != 0 {
		pages++
	}

	return pages
}
