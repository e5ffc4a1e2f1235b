package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/reviewdesk/admitctl/internal/application"
	"github.com/reviewdesk/admitctl/internal/domain"
)

func TestRenderSessionsMarksCurrent(t *testing.T) {
	t.Parallel()

	out, err := RenderSessions([]application.SessionListing{
		{Session: domain.Session{ID: 3, Name: "Fall 2026", Campus: domain.CampusMain, Year: 2026, ApplicantCount: 120}},
		{Session: domain.Session{ID: 4, Name: "Spring 2027", Campus: domain.CampusSecondary, Year: 2027, ApplicantCount: 45}, Current: true},
	})
	require.NoError(t, err)

	require.Contains(t, out, "Fall 2026")
	require.Contains(t, out, "* 4")
	require.Contains(t, out, "Secondary campus")
	require.NotContains(t, out, "* 3")
}

func TestRenderSessionsEmpty(t *testing.T) {
	t.Parallel()

	out, err := RenderSessions(nil)
	require.NoError(t, err)
	require.Contains(t, out, "No sessions available")
}

func TestRenderSelection(t *testing.T) {
	t.Parallel()

	out, err := RenderSelection(application.Selection{
		SessionID: 7,
		Meta:      &domain.SessionMeta{Name: "Fall 2026", Campus: domain.CampusMain, Year: 2026},
	}, true)
	require.NoError(t, err)
	require.Contains(t, out, "#7")
	require.Contains(t, out, "Fall 2026 (Main campus, 2026)")

	out, err = RenderSelection(application.Selection{}, false)
	require.NoError(t, err)
	require.Contains(t, out, "No session selected")
}

func TestRenderApplicantsPagination(t *testing.T) {
	t.Parallel()

	out, err := RenderApplicants(domain.ApplicantPage{
		Applicants: []domain.Applicant{
			{ID: 11, FullName: "Ada Okafor", Email: "ada@example.edu", StatusCode: "received", SubmittedAt: time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC)},
		},
		Page:    2,
		PerPage: 1,
		Total:   3,
	})
	require.NoError(t, err)

	require.Contains(t, out, "Ada Okafor")
	require.Contains(t, out, "received")
	require.Contains(t, out, "Page 2 of 3")
}

func TestRenderApplicantDetailSections(t *testing.T) {
	t.Parallel()

	detail := domain.ApplicantDetail{
		Applicant: domain.Applicant{ID: 5, FullName: "Jo Puk", StatusCode: "under_review"},
		Personal:  domain.PersonalInfo{Email: "jo@example.edu", Citizenship: "NL"},
		Institutions: []domain.Institution{
			{Name: "Delft", Degree: "BSc", GPA: 3.41, GraduationYear: 2024},
		},
		Scores: []domain.TestScore{
			{TestName: "GRE", Score: 321, Percentile: 88, TakenAt: time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC)},
		},
		Reviews: []domain.Review{
			{Reviewer: "prof.a", Rating: 4, Comment: "strong"},
			{Reviewer: "prof.b", Rating: 5},
		},
	}

	out, err := RenderApplicantDetail(detail, DetailSections{Institutions: true, Scores: true, Reviews: true})
	require.NoError(t, err)

	require.Contains(t, out, "Applicant #5")
	require.Contains(t, out, "jo@example.edu")
	require.Contains(t, out, "Delft")
	require.Contains(t, out, "GRE")
	require.Contains(t, out, "average 4.5")
	require.Contains(t, out, "strong")
}

func TestRenderApplicantDetailPersonalOnly(t *testing.T) {
	t.Parallel()

	detail := domain.ApplicantDetail{
		Applicant: domain.Applicant{ID: 5, FullName: "Jo Puk"},
		Institutions: []domain.Institution{
			{Name: "Delft"},
		},
	}

	out, err := RenderApplicantDetail(detail, DetailSections{})
	require.NoError(t, err)
	require.NotContains(t, out, "Delft")
}

func TestRenderStatisticsBars(t *testing.T) {
	t.Parallel()

	out, err := RenderStatistics(domain.SessionStatistics{
		SessionID: 2,
		Total:     4,
		ByStatus: []domain.StatusCount{
			{Code: "received", Label: "Received", Count: 4},
			{Code: "admitted", Label: "Admitted", Count: 0},
		},
	})
	require.NoError(t, err)

	require.Contains(t, out, "Session #2")
	require.Contains(t, out, "[========================]")
	require.Contains(t, out, "[------------------------]")
	require.Contains(t, out, "(100%)")
}

func TestRenderStatisticsEmpty(t *testing.T) {
	t.Parallel()

	out, err := RenderStatistics(domain.SessionStatistics{SessionID: 2})
	require.NoError(t, err)
	require.Contains(t, out, "No status counts reported")
}

func TestRenderLogs(t *testing.T) {
	t.Parallel()

	out, err := RenderLogs(domain.ActivityLogPage{
		Entries: []domain.ActivityLog{
			{ID: 1, Actor: "admin", Action: "status.update", Detail: "applicant 9 admitted", At: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		},
		Page:    1,
		PerPage: 20,
		Total:   1,
	})
	require.NoError(t, err)

	require.Contains(t, out, "admin")
	require.Contains(t, out, "status.update")
	require.Contains(t, out, "2026-03-01 09:30")
}

func TestRenderUsers(t *testing.T) {
	t.Parallel()

	out, err := RenderUsers([]domain.User{
		{ID: 1, Username: "root", FullName: "Site Admin", Role: domain.RoleAdmin, Active: true},
		{ID: 2, Username: "gone", FullName: "Former Reviewer", Role: domain.RoleReviewer, Active: false},
	})
	require.NoError(t, err)

	require.Contains(t, out, "root")
	require.Contains(t, out, "yes")
	require.Contains(t, out, "no")
}

func TestRenderStatuses(t *testing.T) {
	t.Parallel()

	out, err := RenderStatuses([]domain.ReviewStatus{
		{Code: "received", Label: "Received", Color: "#888888", Order: 1},
	})
	require.NoError(t, err)

	require.Contains(t, out, "received")
	require.Contains(t, out, "#888888")
}

func TestRenderUploadReport(t *testing.T) {
	t.Parallel()

	out, err := RenderUploadReport(domain.UploadReport{
		Received: 10,
		Imported: 8,
		Rejected: 2,
		Errors:   []string{"row 4: missing email"},
	})
	require.NoError(t, err)

	require.Contains(t, out, "Upload complete")
	require.Contains(t, out, "row 4: missing email")
}
