// Package file keeps API tokens as plain files under the user's config
// directory, one file per profile. Fallback for machines without pass.
package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/reviewdesk/admitctl/internal/domain"
	"github.com/reviewdesk/admitctl/internal/ports"
)

const (
	storeDirMode  = 0o700
	tokenFileMode = 0o600
	tokenFileExt  = ".token"
)

type Store struct {
	root string
	mu   sync.RWMutex
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore(root string) *Store {
	return &Store{root: filepath.Clean(root)}
}

func (s *Store) Put(ctx context.Context, profile string, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForProfile(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(path), storeDirMode); err != nil {
		return fmt.Errorf("create credential directory: %w", err)
	}

	if err := os.WriteFile(path, []byte(token), tokenFileMode); err != nil {
		return fmt.Errorf("write token for profile %q: %w", profile, err)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, profile string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	path, err := s.pathForProfile(profile)
	if err != nil {
		return "", err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("profile %q: %w", profile, domain.ErrNoCredentials)
		}
		return "", fmt.Errorf("read token for profile %q: %w", profile, err)
	}

	return strings.TrimSpace(string(data)), nil
}

func (s *Store) Delete(ctx context.Context, profile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.pathForProfile(profile)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	err = os.Remove(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete token for profile %q: %w", profile, err)
	}

	return nil
}

func (s *Store) pathForProfile(profile string) (string, error) {
	trimmed := strings.TrimSpace(profile)
	if trimmed == "" {
		return "", errors.New("profile is empty")
	}
	if strings.ContainsAny(trimmed, "/\\") || strings.HasPrefix(trimmed, ".") {
		return "", fmt.Errorf("invalid profile %q", profile)
	}

	return filepath.Join(s.root, trimmed+tokenFileExt), nil
}
