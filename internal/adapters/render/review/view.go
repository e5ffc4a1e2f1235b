package review

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/reviewdesk/admitctl/internal/application"
	"github.com/reviewdesk/admitctl/internal/domain"
)

const (
	barWidth  = 24
	timeLabel = "2006-01-02 15:04"
	dateLabel = "2006-01-02"
)

// DetailSections selects which optional blocks of the applicant detail view
// to include alongside the always-shown personal information.
type DetailSections struct {
	Institutions bool
	Scores       bool
	Reviews      bool
}

// RenderSessions lists the selectable sessions, marking the active one.
func RenderSessions(listings []application.SessionListing) (string, error) {
	return render(func(s styles) string {
		if len(listings) == 0 {
			return s.empty.Render("No sessions available.")
		}

		lines := []string{
			s.header.Render(fmt.Sprintf("  %-4s %-28s %-18s %-6s %s", "ID", "NAME", "CAMPUS", "YEAR", "APPLICANTS")),
		}

		for _, listing := range listings {
			marker := "  "
			style := s.row
			if listing.Current {
				marker = "* "
				style = s.current
			}

			sess := listing.Session
			lines = append(lines, style.Render(fmt.Sprintf(
				"%s%-4d %-28s %-18s %-6d %d",
				marker, sess.ID, sess.Name, sess.Campus.Label(), sess.Year, sess.ApplicantCount,
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderSelection shows the active session, or a hint when none is selected.
func RenderSelection(sel application.Selection, ok bool) (string, error) {
	return render(func(s styles) string {
		if !ok {
			return s.warning.Render("No session selected. Run 'admit session use' to pick one.")
		}

		if sel.Meta == nil {
			return s.row.Render(fmt.Sprintf("Current session: #%d", sel.SessionID))
		}

		return s.row.Render(fmt.Sprintf("Current session: #%d %s", sel.SessionID, sel.Meta.String()))
	})
}

// RenderApplicants prints one page of the applicant list.
func RenderApplicants(page domain.ApplicantPage) (string, error) {
	return render(func(s styles) string {
		if len(page.Applicants) == 0 {
			return s.empty.Render("No applicants match.")
		}

		lines := []string{
			s.header.Render(fmt.Sprintf("%-6s %-28s %-30s %-16s %s", "ID", "NAME", "EMAIL", "STATUS", "SUBMITTED")),
		}

		for _, a := range page.Applicants {
			lines = append(lines, s.row.Render(fmt.Sprintf(
				"%-6d %-28s %-30s %-16s %s",
				a.ID, a.FullName, a.Email, a.StatusCode, a.SubmittedAt.Format(dateLabel),
			)))
		}

		lines = append(lines, s.faint.Render(fmt.Sprintf(
			"Page %d of %d (%d applicants)", page.Page, page.TotalPages(), page.Total,
		)))

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderApplicantDetail prints the detail tabs for one applicant.
func RenderApplicantDetail(detail domain.ApplicantDetail, sections DetailSections) (string, error) {
	return render(func(s styles) string {
		blocks := []string{
			s.title.Render(fmt.Sprintf("Applicant #%d  %s", detail.Applicant.ID, detail.Applicant.FullName)),
			renderPersonal(s, detail),
		}

		if sections.Institutions {
			blocks = append(blocks, renderInstitutions(s, detail.Institutions))
		}

		if sections.Scores {
			blocks = append(blocks, renderScores(s, detail.Scores))
		}

		if sections.Reviews {
			blocks = append(blocks, renderReviews(s, detail))
		}

		return lipgloss.JoinVertical(lipgloss.Left, blocks...)
	})
}

func renderPersonal(s styles, detail domain.ApplicantDetail) string {
	p := detail.Personal

	rows := []string{
		detailRow(s, "Email", p.Email),
		detailRow(s, "Phone", p.Phone),
		detailRow(s, "Born", p.BirthDate.Format(dateLabel)),
		detailRow(s, "Citizenship", p.Citizenship),
		detailRow(s, "Address", p.Address),
		detailRow(s, "Status", detail.Applicant.StatusCode),
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func renderInstitutions(s styles, institutions []domain.Institution) string {
	if len(institutions) == 0 {
		return s.section.Render(s.empty.Render("No prior institutions on file."))
	}

	lines := []string{s.title.Render("Institutions")}
	for _, inst := range institutions {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"%s, %s (GPA %.2f, class of %d)",
			inst.Name, inst.Degree, inst.GPA, inst.GraduationYear,
		)))
	}

	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderScores(s styles, scores []domain.TestScore) string {
	if len(scores) == 0 {
		return s.section.Render(s.empty.Render("No test scores on file."))
	}

	lines := []string{s.title.Render("Test scores")}
	for _, score := range scores {
		lines = append(lines, s.detail.Render(fmt.Sprintf(
			"%-12s %.1f (%.0fth percentile, taken %s)",
			score.TestName, score.Score, score.Percentile, score.TakenAt.Format(dateLabel),
		)))
	}

	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func renderReviews(s styles, detail domain.ApplicantDetail) string {
	if len(detail.Reviews) == 0 {
		return s.section.Render(s.empty.Render("Not yet reviewed."))
	}

	lines := []string{
		s.title.Render(fmt.Sprintf("Reviews (average %.1f)", detail.AverageRating())),
	}

	for _, review := range detail.Reviews {
		stars := strings.Repeat("*", review.Rating) + strings.Repeat(".", domain.MaxRating-review.Rating)
		line := fmt.Sprintf("[%s] %s", stars, review.Reviewer)
		if review.Comment != "" {
			line += ": " + review.Comment
		}

		lines = append(lines, s.detail.Render(line))
	}

	return s.section.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// RenderStatistics prints per-status counts with proportional bars.
func RenderStatistics(stats domain.SessionStatistics) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render(fmt.Sprintf("Session #%d  %d applicants", stats.SessionID, stats.Total)),
		}

		if len(stats.ByStatus) == 0 {
			lines = append(lines, s.empty.Render("No status counts reported."))
			return lipgloss.JoinVertical(lipgloss.Left, lines...)
		}

		for _, bucket := range stats.ByStatus {
			share := stats.Share(bucket.Count)
			lines = append(lines, lipgloss.JoinHorizontal(
				lipgloss.Top,
				s.statusKey.Render(fmt.Sprintf("%-18s", bucket.Label)),
				renderShareBar(s, share, barWidth),
				s.faint.Render(fmt.Sprintf(" %4d (%3.0f%%)", bucket.Count, share*100)),
			))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func renderShareBar(s styles, share float64, width int) string {
	filled := int(clampShare(share)*float64(width) + 0.5)
	if filled > width {
		filled = width
	}

	return s.barBracket.Render("[") +
		s.barFill.Render(strings.Repeat("=", filled)) +
		s.barEmpty.Render(strings.Repeat("-", width-filled)) +
		s.barBracket.Render("]")
}

func clampShare(share float64) float64 {
	if share < 0 {
		return 0
	}

	if share > 1 {
		return 1
	}

	return share
}

// RenderLogs prints one page of the activity log.
func RenderLogs(page domain.ActivityLogPage) (string, error) {
	return render(func(s styles) string {
		if len(page.Entries) == 0 {
			return s.empty.Render("No activity recorded.")
		}

		lines := []string{
			s.header.Render(fmt.Sprintf("%-17s %-16s %-20s %s", "WHEN", "ACTOR", "ACTION", "DETAIL")),
		}

		for _, entry := range page.Entries {
			lines = append(lines, s.row.Render(fmt.Sprintf(
				"%-17s %-16s %-20s %s",
				entry.At.Format(timeLabel), entry.Actor, entry.Action, entry.Detail,
			)))
		}

		lines = append(lines, s.faint.Render(fmt.Sprintf(
			"Page %d (%d entries total)", page.Page, page.Total,
		)))

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderUsers prints the reviewer account list.
func RenderUsers(users []domain.User) (string, error) {
	return render(func(s styles) string {
		if len(users) == 0 {
			return s.empty.Render("No user accounts.")
		}

		lines := []string{
			s.header.Render(fmt.Sprintf("%-6s %-18s %-26s %-10s %s", "ID", "USERNAME", "NAME", "ROLE", "ACTIVE")),
		}

		for _, user := range users {
			active := "yes"
			style := s.row
			if !user.Active {
				active = "no"
				style = s.faint
			}

			lines = append(lines, style.Render(fmt.Sprintf(
				"%-6d %-18s %-26s %-10s %s",
				user.ID, user.Username, user.FullName, user.Role, active,
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderStatuses prints the configurable review status set in display order.
func RenderStatuses(statuses []domain.ReviewStatus) (string, error) {
	return render(func(s styles) string {
		if len(statuses) == 0 {
			return s.empty.Render("No review statuses configured.")
		}

		lines := []string{
			s.header.Render(fmt.Sprintf("%-6s %-16s %-22s %s", "ORDER", "CODE", "LABEL", "COLOR")),
		}

		for _, status := range statuses {
			lines = append(lines, s.row.Render(fmt.Sprintf(
				"%-6d %-16s %-22s %s",
				status.Order, status.Code, status.Label, status.Color,
			)))
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

// RenderUploadReport summarizes a CSV import result.
func RenderUploadReport(report domain.UploadReport) (string, error) {
	return render(func(s styles) string {
		lines := []string{
			s.title.Render("Upload complete"),
			detailRow(s, "Received", fmt.Sprintf("%d", report.Received)),
			detailRow(s, "Imported", fmt.Sprintf("%d", report.Imported)),
			detailRow(s, "Rejected", fmt.Sprintf("%d", report.Rejected)),
		}

		if len(report.Errors) > 0 {
			lines = append(lines, s.warning.Render("Row errors:"))
			for _, rowErr := range report.Errors {
				lines = append(lines, s.detail.Render("  "+rowErr))
			}
		}

		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	})
}

func detailRow(s styles, key, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.statusKey.Render(fmt.Sprintf("%-13s", key)),
		s.detail.Render(value),
	)
}
