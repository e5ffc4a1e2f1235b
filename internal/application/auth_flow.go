package application

import (
	"context"
	"fmt"

	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

// AuthFlow holds login and logout together with their local side effects:
// login stores the backend token under the active profile, logout removes it
// and clears the session selection.
type AuthFlow struct {
	auth    ports.Authenticator
	creds   ports.CredentialStore
	store   *session.Store
	profile string
}

func NewAuthFlow(auth ports.Authenticator, creds ports.CredentialStore, store *session.Store, profile string) *AuthFlow {
	if profile == "" {
		profile = "default"
	}

	return &AuthFlow{auth: auth, creds: creds, store: store, profile: profile}
}

func (f *AuthFlow) Login(ctx context.Context, username string, password string) error {
	token, err := f.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	if err := f.creds.Put(ctx, f.profile, token); err != nil {
		return fmt.Errorf("store api token: %w", err)
	}

	return nil
}

// Logout clears local state unconditionally; a failed remote logout still
// leaves this machine signed out.
func (f *AuthFlow) Logout(ctx context.Context) error {
	remoteErr := f.auth.Logout(ctx)

	if err := f.creds.Delete(ctx, f.profile); err != nil {
		return fmt.Errorf("remove api token: %w", err)
	}
	f.store.ClearCurrentSession(ctx)

	if remoteErr != nil {
		return fmt.Errorf("backend logout: %w", remoteErr)
	}

	return nil
}
