package application

import (
	"context"
	"fmt"
	"os"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

// UploadService streams local CSV files to the current session's import
// endpoint. The file's contents are never inspected here.
type UploadService struct {
	uploader ports.ApplicantUploader
	store    *session.Store
}

func NewUploadService(uploader ports.ApplicantUploader, store *session.Store) *UploadService {
	return &UploadService{uploader: uploader, store: store}
}

func (s *UploadService) UploadCSV(ctx context.Context, path string) (domain.UploadReport, error) {
	sessionID, ok := s.store.CurrentSessionID(ctx)
	if !ok {
		return domain.UploadReport{}, domain.ErrNoSession
	}

	file, err := os.Open(path)
	if err != nil {
		return domain.UploadReport{}, fmt.Errorf("open csv file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return s.uploader.UploadApplicantsCSV(ctx, sessionID, path, file)
}
