package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/reviewdesk/admitctl/internal/adapters/api"
	chainstore "github.com/reviewdesk/admitctl/internal/adapters/credentials/chain"
	tomlstate "github.com/reviewdesk/admitctl/internal/adapters/state/toml"
	"github.com/reviewdesk/admitctl/internal/application"
	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
	"github.com/reviewdesk/admitctl/internal/session"
)

const defaultProfile = "default"

type app struct {
	sessions *application.SessionFlow
	reviews  *application.ReviewService
	admin    *application.AdminService
	uploads  *application.UploadService
	auth     *application.AuthFlow
}

func wireApp() (*app, error) {
	stateStore, err := tomlstate.NewStore(viper.New())
	if err != nil {
		return nil, fmt.Errorf("wire state store: %w", err)
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	creds, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".admitctl", "credentials"))
	if err != nil {
		return nil, fmt.Errorf("wire credential store chain: %w", err)
	}

	profile := envOrDefault("ADMIT_PROFILE", defaultProfile)

	client := &api.Client{
		BaseURL:    envOrDefault("ADMIT_API_BASE_URL", "http://localhost:8080"),
		HTTPClient: http.DefaultClient,
		Token:      tokenFromCredentials(creds, profile),
	}

	bus := session.NewBus()
	store := session.NewStore(stateStore, bus, client, slog.Default())

	return &app{
		sessions: application.NewSessionFlow(client, store),
		reviews:  application.NewReviewService(client, store),
		admin:    application.NewAdminService(client, store),
		uploads:  application.NewUploadService(client, store),
		auth:     application.NewAuthFlow(client, creds, store, profile),
	}, nil
}

// tokenFromCredentials resolves the bearer token for the active profile.
// Missing credentials mean an unauthenticated request, not an error.
func tokenFromCredentials(creds ports.CredentialStore, profile string) api.TokenSource {
	return func(ctx context.Context) (string, error) {
		token, err := creds.Get(ctx, profile)
		if errors.Is(err, domain.ErrNoCredentials) {
			return "", nil
		}
		if err != nil {
			return "", err
		}

		return token, nil
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
