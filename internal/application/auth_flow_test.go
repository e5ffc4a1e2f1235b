package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoginStoresToken(t *testing.T) {
	t.Parallel()

	creds := newFakeCreds()
	flow := NewAuthFlow(&fakeAuth{token: "tok-123"}, creds, newTestStore(), "")

	require.NoError(t, flow.Login(context.Background(), "ada", "pw"))
	assert.Equal(t, "tok-123", creds.tokens["default"])
}

func TestLoginFailureStoresNothing(t *testing.T) {
	t.Parallel()

	creds := newFakeCreds()
	flow := NewAuthFlow(&fakeAuth{loginErr: errors.New("bad credentials")}, creds, newTestStore(), "default")

	assert.Error(t, flow.Login(context.Background(), "ada", "wrong"))
	assert.Empty(t, creds.tokens)
}

func TestLogoutClearsTokenAndSelection(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	creds := newFakeCreds()
	creds.tokens["default"] = "tok-123"
	auth := &fakeAuth{}
	flow := NewAuthFlow(auth, creds, store, "default")
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)

	require.NoError(t, flow.Logout(ctx))
	assert.Empty(t, creds.tokens)
	assert.False(t, store.HasSession(ctx))
	assert.Equal(t, 1, auth.logouts)
}

func TestLogoutClearsLocallyEvenWhenBackendFails(t *testing.T) {
	t.Parallel()

	store := newTestStore()
	creds := newFakeCreds()
	creds.tokens["default"] = "tok-123"
	flow := NewAuthFlow(&fakeAuth{logoutErr: errors.New("backend unreachable")}, creds, store, "default")
	ctx := context.Background()

	store.SetCurrentSession(ctx, 7, nil)

	err := flow.Logout(ctx)
	assert.Error(t, err)
	assert.Empty(t, creds.tokens, "token removed despite remote failure")
	assert.False(t, store.HasSession(ctx), "selection cleared despite remote failure")
}
