package application

import (
	"context"
	"testing"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplicantsRequireSelection(t *testing.T) {
	t.Parallel()

	service := NewReviewService(&fakeApplicants{}, newTestStore())
	defer service.Close()

	_, err := service.Applicants(context.Background(), domain.ApplicantFilter{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestApplicantsCachedPerFilter(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{page: domain.ApplicantPage{Total: 3}}
	service := NewReviewService(applicants, store)
	defer service.Close()
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)

	_, err := service.Applicants(ctx, domain.ApplicantFilter{Query: "smith"})
	require.NoError(t, err)
	_, err = service.Applicants(ctx, domain.ApplicantFilter{Query: "smith"})
	require.NoError(t, err)
	assert.Equal(t, 1, applicants.searches, "repeat query served from cache")

	_, err = service.Applicants(ctx, domain.ApplicantFilter{Query: "jones"})
	require.NoError(t, err)
	assert.Equal(t, 2, applicants.searches, "different filter misses the cache")
}

func TestSessionChangeInvalidatesCache(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{page: domain.ApplicantPage{Total: 3}}
	service := NewReviewService(applicants, store)
	defer service.Close()
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)
	_, err := service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)

	// A switch, even back to the same id, drops every cached page.
	store.SetCurrentSession(ctx, 7, nil)
	_, err = service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)
	assert.Equal(t, 2, applicants.searches)
}

func TestClearInvalidatesCacheAndBlocksQueries(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{}
	service := NewReviewService(applicants, store)
	defer service.Close()
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)
	_, err := service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)

	store.ClearCurrentSession(ctx)

	_, err = service.Applicants(ctx, domain.ApplicantFilter{})
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestClosedServiceStopsInvalidating(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{}
	service := NewReviewService(applicants, store)
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)
	_, err := service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)

	service.Close()
	store.SetCurrentSession(ctx, 7, nil)

	_, err = service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, applicants.searches, "cache survives events after Close")
}

func TestRateValidatesRange(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{}
	service := NewReviewService(applicants, store)
	defer service.Close()
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)

	assert.Error(t, service.Rate(ctx, 11, 0, ""))
	assert.Error(t, service.Rate(ctx, 11, 6, ""))
	assert.Empty(t, applicants.reviews)

	require.NoError(t, service.Rate(ctx, 11, 4, "strong"))
	require.Len(t, applicants.reviews, 1)
	assert.Equal(t, submittedReview{applicantID: 11, rating: 4, comment: "strong"}, applicants.reviews[0])
}

func TestDetailRequiresSelection(t *testing.T) {
	t.Parallel()

	service := NewReviewService(&fakeApplicants{}, newTestStore())
	defer service.Close()

	_, err := service.Detail(context.Background(), 11)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestReviewServiceObservesExternalSwitches(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	applicants := &fakeApplicants{}
	service := NewReviewService(applicants, store)
	defer service.Close()
	ctx := context.Background()

	// Another component (the session switcher) drives the store directly;
	// the review cache follows without polling.
	flow := NewSessionFlow(&fakeSessions{sessions: []domain.Session{{ID: 7, Name: "Fall 2027"}}}, store)
	_, err := flow.Switch(ctx, 7)
	require.NoError(t, err)

	_, err = service.Applicants(ctx, domain.ApplicantFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, applicants.searches)
}
