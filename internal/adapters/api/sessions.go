package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
)

var _ ports.SessionResolver = (*Client)(nil)

type sessionSchema struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Campus         string `json:"campus"`
	Year           int    `json:"year"`
	ApplicantCount int    `json:"applicant_count"`
}

func (s sessionSchema) toDomain() domain.Session {
	return domain.Session{
		ID:             s.ID,
		Name:           s.Name,
		Campus:         domain.Campus(s.Campus),
		Year:           s.Year,
		ApplicantCount: s.ApplicantCount,
	}
}

type currentSessionEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Session *sessionSchema `json:"session"`
}

// ResolveCurrent asks the backend which session the authenticated user last
// worked in. A success envelope without a session means "none yet"; that is
// reported through the bool, not as an error.
func (c *Client) ResolveCurrent(ctx context.Context) (domain.Session, bool, error) {
	var envelope currentSessionEnvelope
	if err := c.getJSON(ctx, "/api/sessions/current", nil, &envelope); err != nil {
		return domain.Session{}, false, fmt.Errorf("fetch current session: %w", err)
	}

	if !envelope.Success || envelope.Session == nil {
		return domain.Session{}, false, nil
	}

	return envelope.Session.toDomain(), true, nil
}

type sessionListEnvelope struct {
	Success  bool            `json:"success"`
	Message  string          `json:"message"`
	Sessions []sessionSchema `json:"sessions"`
}

func (c *Client) ListSessions(ctx context.Context) ([]domain.Session, error) {
	var envelope sessionListEnvelope
	if err := c.getJSON(ctx, "/api/sessions", nil, &envelope); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	if !envelope.Success {
		return nil, fmt.Errorf("list sessions: %w", envelopeFailure(envelope.Message))
	}

	sessions := make([]domain.Session, 0, len(envelope.Sessions))
	for _, schema := range envelope.Sessions {
		sessions = append(sessions, schema.toDomain())
	}

	return sessions, nil
}

type switchSessionEnvelope struct {
	Success bool           `json:"success"`
	Message string         `json:"message"`
	Session *sessionSchema `json:"session"`
}

// SwitchSession records the selection server-side and returns the backend's
// view of the session, so the local snapshot matches what was switched to.
func (c *Client) SwitchSession(ctx context.Context, id int) (domain.Session, error) {
	var envelope switchSessionEnvelope
	err := c.postJSON(ctx, fmt.Sprintf("/api/sessions/%d/switch", id), nil, &envelope)
	if err != nil {
		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound {
			return domain.Session{}, domain.ErrSessionNotFound
		}
		return domain.Session{}, fmt.Errorf("switch session %d: %w", id, err)
	}
	if !envelope.Success || envelope.Session == nil {
		return domain.Session{}, fmt.Errorf("switch session %d: %w", id, envelopeFailure(envelope.Message))
	}

	return envelope.Session.toDomain(), nil
}
