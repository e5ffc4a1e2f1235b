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

type statusCountSchema struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Count int    `json:"count"`
}

type statisticsEnvelope struct {
	Success  bool                `json:"success"`
	Message  string              `json:"message"`
	Total    int                 `json:"total"`
	ByStatus []statusCountSchema `json:"by_status"`
}

func (c *Client) Statistics(ctx context.Context, sessionID int) (domain.SessionStatistics, error) {
	var envelope statisticsEnvelope
	path := fmt.Sprintf("/api/sessions/%d/statistics", sessionID)
	if err := c.getJSON(ctx, path, nil, &envelope); err != nil {
		return domain.SessionStatistics{}, fmt.Errorf("fetch statistics: %w", err)
	}
	if !envelope.Success {
		return domain.SessionStatistics{}, fmt.Errorf("fetch statistics: %w", envelopeFailure(envelope.Message))
	}

	stats := domain.SessionStatistics{SessionID: sessionID, Total: envelope.Total}
	for _, schema := range envelope.ByStatus {
		stats.ByStatus = append(stats.ByStatus, domain.StatusCount{
			Code:  schema.Code,
			Label: schema.Label,
			Count: schema.Count,
		})
	}

	return stats, nil
}

type activityLogSchema struct {
	ID     int    `json:"id"`
	Actor  string `json:"actor"`
	Action string `json:"action"`
	Detail string `json:"detail"`
	At     string `json:"at"`
}

type activityLogEnvelope struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Entries []activityLogSchema `json:"entries"`
	Page    int                 `json:"page"`
	PerPage int                 `json:"per_page"`
	Total   int                 `json:"total"`
}

func (c *Client) ActivityLogs(ctx context.Context, page int, perPage int) (domain.ActivityLogPage, error) {
	values := url.Values{}
	if page > 0 {
		values.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		values.Set("per_page", strconv.Itoa(perPage))
	}

	var envelope activityLogEnvelope
	if err := c.getJSON(ctx, "/api/logs", values, &envelope); err != nil {
		return domain.ActivityLogPage{}, fmt.Errorf("fetch activity logs: %w", err)
	}
	if !envelope.Success {
		return domain.ActivityLogPage{}, fmt.Errorf("fetch activity logs: %w", envelopeFailure(envelope.Message))
	}

	logPage := domain.ActivityLogPage{
		Page:    envelope.Page,
		PerPage: envelope.PerPage,
		Total:   envelope.Total,
	}
	for _, schema := range envelope.Entries {
		logPage.Entries = append(logPage.Entries, domain.ActivityLog{
			ID:     schema.ID,
			Actor:  schema.Actor,
			Action: schema.Action,
			Detail: schema.Detail,
			At:     parseTime(schema.At),
		})
	}

	return logPage, nil
}

type userSchema struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

func (s userSchema) toDomain() domain.User {
	return domain.User{
		ID:       s.ID,
		Username: s.Username,
		FullName: s.FullName,
		Role:     domain.UserRole(s.Role),
		Active:   s.Active,
	}
}

type userListEnvelope struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Users   []userSchema `json:"users"`
}

func (c *Client) ListUsers(ctx context.Context) ([]domain.User, error) {
	var envelope userListEnvelope
	if err := c.getJSON(ctx, "/api/users", nil, &envelope); err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("list users: %w", envelopeFailure(envelope.Message))
	}

	users := make([]domain.User, 0, len(envelope.Users))
	for _, schema := range envelope.Users {
		users = append(users, schema.toDomain())
	}

	return users, nil
}

type userRequest struct {
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
	Active   bool   `json:"active"`
}

type userEnvelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	User    *userSchema `json:"user"`
}

func (c *Client) CreateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var envelope userEnvelope
	body := userRequest{Username: user.Username, FullName: user.FullName, Role: string(user.Role), Active: user.Active}
	if err := c.postJSON(ctx, "/api/users", body, &envelope); err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}
	if !envelope.Success || envelope.User == nil {
		return domain.User{}, fmt.Errorf("create user: %w", envelopeFailure(envelope.Message))
	}

	return envelope.User.toDomain(), nil
}

func (c *Client) UpdateUser(ctx context.Context, user domain.User) (domain.User, error) {
	var envelope userEnvelope
	body := userRequest{Username: user.Username, FullName: user.FullName, Role: string(user.Role), Active: user.Active}
	err := c.putJSON(ctx, fmt.Sprintf("/api/users/%d", user.ID), body, &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update user %d: %w", user.ID, err)
	}
	if !envelope.Success || envelope.User == nil {
		return domain.User{}, fmt.Errorf("update user %d: %w", user.ID, envelopeFailure(envelope.Message))
	}

	return envelope.User.toDomain(), nil
}

type statusListEnvelope struct {
	Success  bool           `json:"success"`
	Message  string         `json:"message"`
	Statuses []statusSchema `json:"statuses"`
}

type statusSchema struct {
	Code  string `json:"code"`
	Label string `json:"label"`
	Color string `json:"color"`
	Order int    `json:"order"`
}

func (s statusSchema) toDomain() domain.ReviewStatus {
	return domain.ReviewStatus{Code: s.Code, Label: s.Label, Color: s.Color, Order: s.Order}
}

func (c *Client) ListStatuses(ctx context.Context) ([]domain.ReviewStatus, error) {
	var envelope statusListEnvelope
	if err := c.getJSON(ctx, "/api/statuses", nil, &envelope); err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("list statuses: %w", envelopeFailure(envelope.Message))
	}

	statuses := make([]domain.ReviewStatus, 0, len(envelope.Statuses))
	for _, schema := range envelope.Statuses {
		statuses = append(statuses, schema.toDomain())
	}

	return statuses, nil
}

type statusEnvelope struct {
	Success bool          `json:"success"`
	Message string        `json:"message"`
	Status  *statusSchema `json:"status"`
}

func (c *Client) CreateStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	var envelope statusEnvelope
	body := statusSchema{Code: status.Code, Label: status.Label, Color: status.Color, Order: status.Order}
	if err := c.postJSON(ctx, "/api/statuses", body, &envelope); err != nil {
		return domain.ReviewStatus{}, fmt.Errorf("create status: %w", err)
	}
	if !envelope.Success || envelope.Status == nil {
		return domain.ReviewStatus{}, fmt.Errorf("create status: %w", envelopeFailure(envelope.Message))
	}

	return envelope.Status.toDomain(), nil
}

func (c *Client) UpdateStatus(ctx context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	var envelope statusEnvelope
	body := statusSchema{Code: status.Code, Label: status.Label, Color: status.Color, Order: status.Order}
	err := c.putJSON(ctx, "/api/statuses/"+url.PathEscape(status.Code), body, &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.ReviewStatus{}, domain.ErrStatusNotFound
		}
		return domain.ReviewStatus{}, fmt.Errorf("update status %q: %w", status.Code, err)
	}
	if !envelope.Success || envelope.Status == nil {
		return domain.ReviewStatus{}, fmt.Errorf("update status %q: %w", status.Code, envelopeFailure(envelope.Message))
	}

	return envelope.Status.toDomain(), nil
}

type deleteStatusEnvelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Client) DeleteStatus(ctx context.Context, code string) error {
	var envelope deleteStatusEnvelope
	err := c.deleteJSON(ctx, "/api/statuses/"+url.PathEscape(code), &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.ErrStatusNotFound
		}
		return fmt.Errorf("delete status %q: %w", code, err)
	}
	if !envelope.Success {
		return fmt.Errorf("delete status %q: %w", code, envelopeFailure(envelope.Message))
	}

	return nil
}
