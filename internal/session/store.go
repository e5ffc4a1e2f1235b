// Package session holds the single source of truth for "which academic
// session is active": a selection persisted across CLI invocations plus a
// synchronous change feed for everything that renders session-scoped data.
package session

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
)

// Store owns the persisted session selection. Storage failures never surface
// to callers: reads degrade to absent, writes degrade to "not persisted but
// still announced", both logged. Two selections never coexist; the last
// writer wins with no merge.
type Store struct {
	state    ports.StateStore
	bus      *Bus
	resolver ports.SessionResolver
	logger   *slog.Logger
}

func NewStore(state ports.StateStore, bus *Bus, resolver ports.SessionResolver, logger *slog.Logger) *Store {
	if bus == nil {
		bus = NewBus()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Store{state: state, bus: bus, resolver: resolver, logger: logger}
}

// CurrentSessionID reads the persisted selection. Absent storage, a missing
// key, or an unparsable value all report (0, false).
func (s *Store) CurrentSessionID(ctx context.Context) (int, bool) {
	raw, err := s.state.Get(ctx, currentIDKey)
	if err != nil {
		if !errors.Is(err, domain.ErrStateKeyNotFound) {
			s.logger.Warn("read session selection", "error", err)
		}
		return 0, false
	}

	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}

	return id, true
}

// SessionMetadata reads the cached display snapshot without contacting the
// backend. Malformed snapshots report absent.
func (s *Store) SessionMetadata(ctx context.Context) (domain.SessionMeta, bool) {
	raw, err := s.state.Get(ctx, currentMetaKey)
	if err != nil {
		if !errors.Is(err, domain.ErrStateKeyNotFound) {
			s.logger.Warn("read session metadata", "error", err)
		}
		return domain.SessionMeta{}, false
	}

	return decodeMeta(raw)
}

func (s *Store) HasSession(ctx context.Context) bool {
	_, ok := s.CurrentSessionID(ctx)
	return ok
}

// SetCurrentSession replaces the selection and synchronously notifies every
// subscriber, even when the id is unchanged and even when persistence failed:
// dependent renderers must reflect the user's intent for this process
// lifetime regardless.
func (s *Store) SetCurrentSession(ctx context.Context, id int, meta *domain.SessionMeta) {
	if err := s.state.Put(ctx, currentIDKey, strconv.Itoa(id)); err != nil {
		s.logger.Warn("session selection not persisted", "session_id", id, "error", err)
	}

	if meta != nil {
		encoded, err := encodeMeta(*meta)
		if err != nil {
			s.logger.Warn("session metadata not encoded", "session_id", id, "error", err)
		} else if err := s.state.Put(ctx, currentMetaKey, encoded); err != nil {
			s.logger.Warn("session metadata not persisted", "session_id", id, "error", err)
		}
	} else if err := s.state.Delete(ctx, currentMetaKey); err != nil {
		s.logger.Warn("stale session metadata not removed", "session_id", id, "error", err)
	}

	s.bus.Publish(Event{SessionID: id, OK: true, Meta: meta})
}

// ClearCurrentSession removes id and metadata together and announces the
// empty selection. Used on logout.
func (s *Store) ClearCurrentSession(ctx context.Context) {
	if err := s.state.Delete(ctx, currentIDKey); err != nil {
		s.logger.Warn("session selection not cleared", "error", err)
	}
	if err := s.state.Delete(ctx, currentMetaKey); err != nil {
		s.logger.Warn("session metadata not cleared", "error", err)
	}

	s.bus.Publish(Event{})
}

// Initialize is the idempotent bootstrap: a persisted selection wins without
// any network call; otherwise the backend's current session is resolved,
// persisted, and returned. Resolution failures and "no current session" both
// report absent and leave storage untouched. No retries and no internal
// deadline; callers bound the call through ctx.
func (s *Store) Initialize(ctx context.Context) (int, bool) {
	if id, ok := s.CurrentSessionID(ctx); ok {
		return id, true
	}

	if s.resolver == nil {
		return 0, false
	}

	resolved, ok, err := s.resolver.ResolveCurrent(ctx)
	if err != nil {
		s.logger.Warn("resolve current session", "error", err)
		return 0, false
	}
	if !ok {
		return 0, false
	}

	meta := resolved.Meta()
	s.SetCurrentSession(ctx, resolved.ID, &meta)

	return resolved.ID, true
}

// OnSessionChange registers fn for every selection change published through
// this store's bus. Cancel the returned subscription to stop receiving.
func (s *Store) OnSessionChange(fn func(Event)) *Subscription {
	return s.bus.Subscribe(fn)
}
