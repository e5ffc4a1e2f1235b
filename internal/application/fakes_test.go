package application

import (
	"context"
	"io"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/session"
)

type memState struct {
	values map[string]string
}

func newMemState() *memState {
	return &memState{values: map[string]string{}}
}

func (m *memState) Get(_ context.Context, key string) (string, error) {
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrStateKeyNotFound
	}
	return value, nil
}

func (m *memState) Put(_ context.Context, key string, value string) error {
	m.values[key] = value
	return nil
}

func (m *memState) Delete(_ context.Context, key string) error {
	delete(m.values, key)
	return nil
}

func newTestStore() *session.Store {
	return session.NewStore(newMemState(), nil, nil, nil)
}

type fakeSessions struct {
	sessions  []domain.Session
	switchErr error
	switched  []int
}

func (f *fakeSessions) ListSessions(context.Context) ([]domain.Session, error) {
	return f.sessions, nil
}

func (f *fakeSessions) SwitchSession(_ context.Context, id int) (domain.Session, error) {
	if f.switchErr != nil {
		return domain.Session{}, f.switchErr
	}

	f.switched = append(f.switched, id)
	for _, sess := range f.sessions {
		if sess.ID == id {
			return sess, nil
		}
	}

	return domain.Session{}, domain.ErrSessionNotFound
}

type fakeApplicants struct {
	page      domain.ApplicantPage
	detail    domain.ApplicantDetail
	searchErr error
	searches  int
	reviews   []submittedReview
}

type submittedReview struct {
	applicantID int
	rating      int
	comment     string
}

func (f *fakeApplicants) SearchApplicants(_ context.Context, _ int, _ domain.ApplicantFilter) (domain.ApplicantPage, error) {
	f.searches++
	if f.searchErr != nil {
		return domain.ApplicantPage{}, f.searchErr
	}
	return f.page, nil
}

func (f *fakeApplicants) GetApplicant(context.Context, int) (domain.ApplicantDetail, error) {
	return f.detail, nil
}

func (f *fakeApplicants) SubmitReview(_ context.Context, applicantID int, rating int, comment string) error {
	f.reviews = append(f.reviews, submittedReview{applicantID: applicantID, rating: rating, comment: comment})
	return nil
}

type fakeAdmin struct {
	stats    domain.SessionStatistics
	logs     domain.ActivityLogPage
	users    []domain.User
	statuses []domain.ReviewStatus
	updated  []domain.User
	logCalls []int
}

func (f *fakeAdmin) Statistics(_ context.Context, sessionID int) (domain.SessionStatistics, error) {
	stats := f.stats
	stats.SessionID = sessionID
	return stats, nil
}

func (f *fakeAdmin) ActivityLogs(_ context.Context, page int, perPage int) (domain.ActivityLogPage, error) {
	f.logCalls = append(f.logCalls, page, perPage)
	return f.logs, nil
}

func (f *fakeAdmin) ListUsers(context.Context) ([]domain.User, error) {
	return f.users, nil
}

func (f *fakeAdmin) CreateUser(_ context.Context, user domain.User) (domain.User, error) {
	user.ID = len(f.users) + 1
	f.users = append(f.users, user)
	return user, nil
}

func (f *fakeAdmin) UpdateUser(_ context.Context, user domain.User) (domain.User, error) {
	f.updated = append(f.updated, user)
	return user, nil
}

func (f *fakeAdmin) ListStatuses(context.Context) ([]domain.ReviewStatus, error) {
	return f.statuses, nil
}

func (f *fakeAdmin) CreateStatus(_ context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	f.statuses = append(f.statuses, status)
	return status, nil
}

func (f *fakeAdmin) UpdateStatus(_ context.Context, status domain.ReviewStatus) (domain.ReviewStatus, error) {
	return status, nil
}

func (f *fakeAdmin) DeleteStatus(context.Context, string) error {
	return nil
}

type fakeUploader struct {
	report    domain.UploadReport
	sessionID int
	filename  string
	content   string
}

func (f *fakeUploader) UploadApplicantsCSV(_ context.Context, sessionID int, filename string, content io.Reader) (domain.UploadReport, error) {
	data, err := io.ReadAll(content)
	if err != nil {
		return domain.UploadReport{}, err
	}

	f.sessionID = sessionID
	f.filename = filename
	f.content = string(data)
	return f.report, nil
}

type fakeAuth struct {
	token     string
	loginErr  error
	logoutErr error
	logouts   int
}

func (f *fakeAuth) Login(context.Context, string, string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeAuth) Logout(context.Context) error {
	f.logouts++
	return f.logoutErr
}

type fakeCreds struct {
	tokens map[string]string
}

func newFakeCreds() *fakeCreds {
	return &fakeCreds{tokens: map[string]string{}}
}

func (f *fakeCreds) Get(_ context.Context, profile string) (string, error) {
	token, ok := f.tokens[profile]
	if !ok {
		return "", domain.ErrNoCredentials
	}
	return token, nil
}

func (f *fakeCreds) Put(_ context.Context, profile string, token string) error {
	f.tokens[profile] = token
	return nil
}

func (f *fakeCreds) Delete(_ context.Context, profile string) error {
	delete(f.tokens, profile)
	return nil
}
