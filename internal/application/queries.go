package application

import "github.com/reviewdesk/admitctl/internal/domain"

// Selection is the client-side view of "which session is active".
type Selection struct {
	SessionID int
	Meta      *domain.SessionMeta
}

// SessionListing is one row of the session switcher, with the currently
// selected session marked.
type SessionListing struct {
	Session domain.Session
	Current bool
}
