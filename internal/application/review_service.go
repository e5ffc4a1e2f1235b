package application

import (
	"context"
	"fmt"
	"sync"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

// ReviewService serves applicant listing, detail, and rating, always scoped
// to the current session selection. Listing results are cached per filter
// and dropped whenever the selection changes, so a switch never shows the
// previous session's applicants.
type ReviewService struct {
	applicants ports.ApplicantDirectory
	store      *session.Store

	mu    sync.Mutex
	cache map[string]domain.ApplicantPage
	sub   *session.Subscription
}

func NewReviewService(applicants ports.ApplicantDirectory, store *session.Store) *ReviewService {
	s := &ReviewService{
		applicants: applicants,
		store:      store,
		cache:      map[string]domain.ApplicantPage{},
	}
	s.sub = store.OnSessionChange(func(session.Event) {
		s.invalidate()
	})

	return s
}

// Close cancels the session-change subscription.
func (s *ReviewService) Close() {
	s.sub.Cancel()
}

func (s *ReviewService) Applicants(ctx context.Context, filter domain.ApplicantFilter) (domain.ApplicantPage, error) {
	sessionID, ok := s.store.CurrentSessionID(ctx)
	if !ok {
		return domain.ApplicantPage{}, domain.ErrNoSession
	}

	key := cacheKey(sessionID, filter)

	s.mu.Lock()
	cached, hit := s.cache[key]
	s.mu.Unlock()
	if hit {
		return cached, nil
	}

	page, err := s.applicants.SearchApplicants(ctx, sessionID, filter)
	if err != nil {
		return domain.ApplicantPage{}, err
	}

	s.mu.Lock()
	s.cache[key] = page
	s.mu.Unlock()

	return page, nil
}

func (s *ReviewService) Detail(ctx context.Context, applicantID int) (domain.ApplicantDetail, error) {
	if !s.store.HasSession(ctx) {
		return domain.ApplicantDetail{}, domain.ErrNoSession
	}

	return s.applicants.GetApplicant(ctx, applicantID)
}

func (s *ReviewService) Rate(ctx context.Context, applicantID int, rating int, comment string) error {
	if !domain.ValidRating(rating) {
		return fmt.Errorf("rating must be between %d and %d, got %d", domain.MinRating, domain.MaxRating, rating)
	}
	if !s.store.HasSession(ctx) {
		return domain.ErrNoSession
	}

	return s.applicants.SubmitReview(ctx, applicantID, rating, comment)
}

func (s *ReviewService) invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cache = map[string]domain.ApplicantPage{}
}

func cacheKey(sessionID int, filter domain.ApplicantFilter) string {
	return fmt.Sprintf("%d|%s|%s|%d|%d", sessionID, filter.Query, filter.Status, filter.Page, filter.PerPage)
}
