package ports

import (
	"context"

	"github.com/reviewdesk/admitctl/internal/domain"
)

// SessionResolver answers "which session does the backend consider current".
// The second return is false when the backend has no current session for the
// authenticated user.
type SessionResolver interface {
	ResolveCurrent(ctx context.Context) (domain.Session, bool, error)
}
