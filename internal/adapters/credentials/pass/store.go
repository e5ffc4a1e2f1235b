// Package pass stores API tokens in the standard unix password manager when
// it is present on the machine.
package pass

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/reviewdesk/admitctl/internal/ports"
)

var ErrUnavailable = errors.New("pass command unavailable")

const passPrefix = "admitctl/"

type runFunc func(ctx context.Context, input string, args ...string) (stdout string, stderr string, err error)

type Store struct {
	run runFunc
}

var _ ports.CredentialStore = (*Store)(nil)

func NewStore() *Store {
	return &Store{run: runPassCommand}
}

func (s *Store) Put(ctx context.Context, profile string, token string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := entryForProfile(profile)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, token+"\n", "insert", "-m", "-f", entry)
	if err != nil {
		return formatError("put", profile, err, stderr)
	}

	return nil
}

func (s *Store) Get(ctx context.Context, profile string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	entry, err := entryForProfile(profile)
	if err != nil {
		return "", err
	}

	stdout, stderr, err := s.run(ctx, "", "show", entry)
	if err != nil {
		return "", formatError("get", profile, err, stderr)
	}

	stdout = strings.TrimSuffix(stdout, "\n")
	stdout = strings.TrimSuffix(stdout, "\r")

	return stdout, nil
}

func (s *Store) Delete(ctx context.Context, profile string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	entry, err := entryForProfile(profile)
	if err != nil {
		return err
	}

	_, stderr, err := s.run(ctx, "", "rm", "-f", entry)
	if err != nil {
		return formatError("delete", profile, err, stderr)
	}

	return nil
}

func entryForProfile(profile string) (string, error) {
	trimmed := strings.TrimSpace(profile)
	if trimmed == "" {
		return "", errors.New("profile is empty")
	}

	return passPrefix + trimmed, nil
}

func runPassCommand(ctx context.Context, input string, args ...string) (string, string, error) {
	path, err := exec.LookPath("pass")
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", "", ErrUnavailable
		}
		return "", "", fmt.Errorf("locate pass command: %w", err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	return stdout.String(), strings.TrimSpace(stderr.String()), err
}

func formatError(op string, profile string, err error, stderr string) error {
	if stderr == "" {
		return fmt.Errorf("pass %s profile %q: %w", op, profile, err)
	}

	return fmt.Errorf("pass %s profile %q: %w: %s", op, profile, err, stderr)
}
