package ports

import (
	"context"
	"io"

	"github.com/reviewdesk/admitctl/internal/domain"
)

// The backend surfaces, grouped by the screen that consumes them. All are
// satisfied by the api adapter's Client.

type SessionDirectory interface {
	ListSessions(ctx context.Context) ([]domain.Session, error)
	SwitchSession(ctx context.Context, id int) (domain.Session, error)
}

type ApplicantDirectory interface {
	SearchApplicants(ctx context.Context, sessionID int, filter domain.ApplicantFilter) (domain.ApplicantPage, error)
	GetApplicant(ctx context.Context, id int) (domain.ApplicantDetail, error)
	SubmitReview(ctx context.Context, applicantID int, rating int, comment string) error
}

type AdminDirectory interface {
	Statistics(ctx context.Context, sessionID int) (domain.SessionStatistics, error)
	ActivityLogs(ctx context.Context, page int, perPage int) (domain.ActivityLogPage, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	CreateUser(ctx context.Context, user domain.User) (domain.User, error)
	UpdateUser(ctx context.Context, user domain.User) (domain.User, error)
	ListStatuses(ctx context.Context) ([]domain.ReviewStatus, error)
	CreateStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error)
	UpdateStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error)
	DeleteStatus(ctx context.Context, code string) error
}

type ApplicantUploader interface {
	UploadApplicantsCSV(ctx context.Context, sessionID int, filename string, content io.Reader) (domain.UploadReport, error)
}

type Authenticator interface {
	Login(ctx context.Context, username string, password string) (string, error)
	Logout(ctx context.Context) error
}
