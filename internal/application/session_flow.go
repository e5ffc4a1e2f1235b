package application

import (
	"context"
	"fmt"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

// SessionFlow orchestrates session listing and switching around the
// selection store: the backend acknowledges a switch first, then the local
// selection is replaced with the backend's snapshot.
type SessionFlow struct {
	directory ports.SessionDirectory
	store     *session.Store
}

func NewSessionFlow(directory ports.SessionDirectory, store *session.Store) *SessionFlow {
	return &SessionFlow{directory: directory, store: store}
}

// Current reads the local selection without contacting the backend.
func (f *SessionFlow) Current(ctx context.Context) (Selection, bool) {
	id, ok := f.store.CurrentSessionID(ctx)
	if !ok {
		return Selection{}, false
	}

	selection := Selection{SessionID: id}
	if meta, ok := f.store.SessionMetadata(ctx); ok {
		selection.Meta = &meta
	}

	return selection, true
}

// Bootstrap resolves a usable selection: the persisted one when present, the
// backend's current session otherwise. Absent both, the caller prompts the
// user to pick a session.
func (f *SessionFlow) Bootstrap(ctx context.Context) (int, bool) {
	return f.store.Initialize(ctx)
}

func (f *SessionFlow) List(ctx context.Context) ([]SessionListing, error) {
	sessions, err := f.directory.ListSessions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}

	currentID, hasCurrent := f.store.CurrentSessionID(ctx)

	listings := make([]SessionListing, 0, len(sessions))
	for _, sess := range sessions {
		listings = append(listings, SessionListing{
			Session: sess,
			Current: hasCurrent && sess.ID == currentID,
		})
	}

	return listings, nil
}

// Switch records the selection server-side, then replaces the local one with
// the metadata the backend returned.
func (f *SessionFlow) Switch(ctx context.Context, id int) (domain.Session, error) {
	switched, err := f.directory.SwitchSession(ctx, id)
	if err != nil {
		return domain.Session{}, err
	}

	meta := switched.Meta()
	f.store.SetCurrentSession(ctx, switched.ID, &meta)

	return switched, nil
}

func (f *SessionFlow) Clear(ctx context.Context) {
	f.store.ClearCurrentSession(ctx)
}
