package domain

import "errors"

var (
	ErrSessionNotFound   = errors.New("session not found")
	ErrApplicantNotFound = errors.New("applicant not found")
	ErrStatusNotFound    = errors.New("review status not found")
	ErrUserNotFound      = errors.New("user not found")
	ErrNoSession         = errors.New("no session selected")
	ErrNoCredentials     = errors.New("not logged in")
	ErrStateKeyNotFound  = errors.New("state key not found")
)
