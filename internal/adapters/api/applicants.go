package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/reviewdesk/admitctl/internal/domain"
)

type applicantSchema struct {
	ID          int    `json:"id"`
	SessionID   int    `json:"session_id"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	StatusCode  string `json:"status"`
	SubmittedAt string `json:"submitted_at"`
}

func (s applicantSchema) toDomain() domain.Applicant {
	return domain.Applicant{
		ID:          s.ID,
		SessionID:   s.SessionID,
		FullName:    s.FullName,
		Email:       s.Email,
		StatusCode:  s.StatusCode,
		SubmittedAt: parseTime(s.SubmittedAt),
	}
}

func filterValues(q domain.ApplicantFilter) url.Values {
	values := url.Values{}
	if q.Query != "" {
		values.Set("query", q.Query)
	}
	if q.Status != "" {
		values.Set("status", q.Status)
	}
	if q.Page > 0 {
		values.Set("page", strconv.Itoa(q.Page))
	}
	if q.PerPage > 0 {
		values.Set("per_page", strconv.Itoa(q.PerPage))
	}

	return values
}

type applicantPageEnvelope struct {
	Success    bool              `json:"success"`
	Message    string            `json:"message"`
	Applicants []applicantSchema `json:"applicants"`
	Page       int               `json:"page"`
	PerPage    int               `json:"per_page"`
	Total      int               `json:"total"`
}

func (c *Client) SearchApplicants(ctx context.Context, sessionID int, filter domain.ApplicantFilter) (domain.ApplicantPage, error) {
	var envelope applicantPageEnvelope
	path := fmt.Sprintf("/api/sessions/%d/applicants", sessionID)
	if err := c.getJSON(ctx, path, filterValues(filter), &envelope); err != nil {
		return domain.ApplicantPage{}, fmt.Errorf("search applicants: %w", err)
	}
	if !envelope.Success {
		return domain.ApplicantPage{}, fmt.Errorf("search applicants: %w", envelopeFailure(envelope.Message))
	}

	applicants := make([]domain.Applicant, 0, len(envelope.Applicants))
	for _, schema := range envelope.Applicants {
		applicants = append(applicants, schema.toDomain())
	}

	return domain.ApplicantPage{
		Applicants: applicants,
		Page:       envelope.Page,
		PerPage:    envelope.PerPage,
		Total:      envelope.Total,
	}, nil
}

type personalInfoSchema struct {
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	BirthDate   string `json:"birth_date"`
	Citizenship string `json:"citizenship"`
	Address     string `json:"address"`
}

type institutionSchema struct {
	Name           string  `json:"name"`
	Degree         string  `json:"degree"`
	GPA            float64 `json:"gpa"`
	GraduationYear int     `json:"graduation_year"`
}

type testScoreSchema struct {
	TestName   string  `json:"test_name"`
	Score      float64 `json:"score"`
	Percentile float64 `json:"percentile"`
	TakenAt    string  `json:"taken_at"`
}

type reviewSchema struct {
	Reviewer  string `json:"reviewer"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	CreatedAt string `json:"created_at"`
}

type applicantDetailEnvelope struct {
	Success      bool                `json:"success"`
	Message      string              `json:"message"`
	Applicant    *applicantSchema    `json:"applicant"`
	Personal     personalInfoSchema  `json:"personal"`
	Institutions []institutionSchema `json:"institutions"`
	Scores       []testScoreSchema   `json:"test_scores"`
	Reviews      []reviewSchema      `json:"reviews"`
}

// GetApplicant fetches the full detail record: personal info, institutions,
// test scores, and reviews in one response.
func (c *Client) GetApplicant(ctx context.Context, id int) (domain.ApplicantDetail, error) {
	var envelope applicantDetailEnvelope
	err := c.getJSON(ctx, fmt.Sprintf("/api/applicants/%d", id), nil, &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.ApplicantDetail{}, domain.ErrApplicantNotFound
		}
		return domain.ApplicantDetail{}, fmt.Errorf("fetch applicant %d: %w", id, err)
	}
	if !envelope.Success || envelope.Applicant == nil {
		return domain.ApplicantDetail{}, fmt.Errorf("fetch applicant %d: %w", id, envelopeFailure(envelope.Message))
	}

	detail := domain.ApplicantDetail{
		Applicant: envelope.Applicant.toDomain(),
		Personal: domain.PersonalInfo{
			FullName:    envelope.Personal.FullName,
			Email:       envelope.Personal.Email,
			Phone:       envelope.Personal.Phone,
			BirthDate:   parseTime(envelope.Personal.BirthDate),
			Citizenship: envelope.Personal.Citizenship,
			Address:     envelope.Personal.Address,
		},
	}

	for _, schema := range envelope.Institutions {
		detail.Institutions = append(detail.Institutions, domain.Institution{
			Name:           schema.Name,
			Degree:         schema.Degree,
			GPA:            schema.GPA,
			GraduationYear: schema.GraduationYear,
		})
	}
	for _, schema := range envelope.Scores {
		detail.Scores = append(detail.Scores, domain.TestScore{
			TestName:   schema.TestName,
			Score:      schema.Score,
			Percentile: schema.Percentile,
			TakenAt:    parseTime(schema.TakenAt),
		})
	}
	for _, schema := range envelope.Reviews {
		detail.Reviews = append(detail.Reviews, domain.Review{
			Reviewer:  schema.Reviewer,
			Rating:    schema.Rating,
			Comment:   schema.Comment,
			CreatedAt: parseTime(schema.CreatedAt),
		})
	}

	return detail, nil
}

type submitReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment,omitempty"`
}

type submitReviewEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) SubmitReview(ctx context.Context, applicantID int, rating int, comment string) error {
	var envelope submitReviewEnvelope
	path := fmt.Sprintf("/api/applicants/%d/reviews", applicantID)
	err := c.postJSON(ctx, path, submitReviewRequest{Rating: rating, Comment: comment}, &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.ErrApplicantNotFound
		}
		return fmt.Errorf("submit review for applicant %d: %w", applicantID, err)
	}
	if !envelope.Success {
		return fmt.Errorf("submit review for applicant %d: %w", applicantID, envelopeFailure(envelope.Message))
	}

	return nil
}
