package ports

import "context"

// CredentialStore holds the backend API token per profile. Auth itself is the
// backend's concern; the client only stores and replays an opaque token.
type CredentialStore interface {
	Get(ctx context.Context, profile string) (string, error)
	Put(ctx context.Context, profile string, token string) error
	Delete(ctx context.Context, profile string) error
}
