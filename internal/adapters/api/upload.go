package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/reviewdesk/admitctl/internal/domain"
)

type uploadEnvelope struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Received int      `json:"received"`
	Imported int      `json:"imported"`
	Rejected int      `json:"rejected"`
	Errors   []string `json:"errors"`
}

// UploadApplicantsCSV submits a CSV file as multipart form data. The backend
// owns parsing and validation; the response summarizes what it accepted.
func (c *Client) UploadApplicantsCSV(ctx context.Context, sessionID int, filename string, content io.Reader) (domain.UploadReport, error) {
	endpoint, err := buildAPIURL(c.BaseURL, fmt.Sprintf("/api/sessions/%d/applicants/upload", sessionID))
	if err != nil {
		return domain.UploadReport{}, err
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filepath.Base(filename))
	if err != nil {
		return domain.UploadReport{}, fmt.Errorf("create upload form: %w", err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return domain.UploadReport{}, fmt.Errorf("read upload content: %w", err)
	}
	if err := writer.Close(); err != nil {
		return domain.UploadReport{}, fmt.Errorf("finalize upload form: %w", err)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	req, err := http.NewRequestWithContext(requestCtx, http.MethodPost, endpoint, &body)
	if err != nil {
		return domain.UploadReport{}, fmt.Errorf("create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	var envelope uploadEnvelope
	if err := c.send(req, &envelope); err != nil {
		return domain.UploadReport{}, fmt.Errorf("upload applicants csv: %w", err)
	}
	if !envelope.Success {
		return domain.UploadReport{}, fmt.Errorf("upload applicants csv: %w", envelopeFailure(envelope.Message))
	}

	return domain.UploadReport{
		Received: envelope.Received,
		Imported: envelope.Imported,
		Rejected: envelope.Rejected,
		Errors:   envelope.Errors,
	}, nil
}
