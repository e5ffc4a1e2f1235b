package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

// AdminService covers the admin screens: per-session statistics, activity
// logs, user management, and the configurable review statuses.
type AdminService struct {
	admin ports.AdminDirectory
	store *session.Store
}

func NewAdminService(admin ports.AdminDirectory, store *session.Store) *AdminService {
	return &AdminService{admin: admin, store: store}
}

func (s *AdminService) Statistics(ctx context.Context) (domain.SessionStatistics, error) {
	sessionID, ok := s.store.CurrentSessionID(ctx)
	if !ok {
		return domain.SessionStatistics{}, domain.ErrNoSession
	}

	return s.admin.Statistics(ctx, sessionID)
}

func (s *AdminService) Logs(ctx context.Context, page int, perPage int) (domain.ActivityLogPage, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 20
	}

	return s.admin.ActivityLogs(ctx, page, perPage)
}

func (s *AdminService) Users(ctx context.Context) ([]domain.User, error) {
	return s.admin.ListUsers(ctx)
}

func (s *AdminService) AddUser(ctx context.Context, user domain.User) (domain.User, error) {
	if user.Username == "" {
		return domain.User{}, errors.New("username is required")
	}
	if !user.Role.Valid() {
		return domain.User{}, fmt.Errorf("unknown role %q", user.Role)
	}
	user.Active = true

	return s.admin.CreateUser(ctx, user)
}

func (s *AdminService) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	if !user.Role.Valid() {
		return domain.User{}, fmt.Errorf("unknown role %q", user.Role)
	}

	return s.admin.UpdateUser(ctx, user)
}

// DisableUser deactivates an account without deleting it, keeping its
// review history attributable.
func (s *AdminService) DisableUser(ctx context.Context, id int) (domain.User, error) {
	users, err := s.admin.ListUsers(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, user := range users {
		if user.ID == id {
			user.Active = false
			return s.admin.UpdateUser(ctx, user)
		}
	}

	return domain.User{}, domain.ErrUserNotFound
}

func (s *AdminService) Statuses(ctx context.Context) ([]domain.ReviewStatus, error) {
	return s.admin.ListStatuses(ctx)
}

func (s *AdminService) AddStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	if err := validateStatus(status); err != nil {
		return domain.ReviewStatus{}, err
	}

	return s.admin.CreateStatus(ctx, status)
}

func (s *AdminService) UpdateStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	if err := validateStatus(status); err != nil {
		return domain.ReviewStatus{}, err
	}

	return s.admin.UpdateStatus(ctx, status)
}

func (s *AdminService) DeleteStatus(ctx context.Context, code string) error {
	if code == "" {
		return errors.New("status code is required")
	}

	return s.admin.DeleteStatus(ctx, code)
}

func validateStatus(status domain.ReviewStatus) error {
	if status.Code == "" {
		return errors.New("status code is required")
	}
	if status.Label == "" {
		return errors.New("status label is required")
	}

	return nil
}
