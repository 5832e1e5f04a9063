//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	api "github.com/oshokin/inheritance-vault/internal/api/grpc/inheritance"
)

// TestDial_ValidatesAddress verifies that Dial rejects empty addresses.
func TestDial_ValidatesAddress(t *testing.T) {
	t.Parallel()

	c, err := Dial(context.Background(), "")
	require.Error(t, err)
	require.Nil(t, c)
}

// TestClient_callContext checks timeout vs cancel-only behavior of callContext.
func TestClient_callContext(t *testing.T) {
	t.Parallel()

	c := &Client{
		callTimeout: 0,
	}

	ctx, cancel := c.callContext(context.Background())
	cancel()

	require.NotNil(t, ctx)

	c.callTimeout = 10 * time.Millisecond

	ctx, cancel = c.callContext(context.Background())
	defer cancel()

	deadline, ok := ctx.Deadline()
	require.True(t, ok)
	require.WithinDuration(t, time.Now().Add(10*time.Millisecond), deadline, 30*time.Millisecond)
}

// TestClient_RequiresIdentity asserts that mutating calls need a caller and an actor.
func TestClient_RequiresIdentity(t *testing.T) {
	t.Parallel()

	c := new(Client)

	_, err := c.Initialize(context.Background())
	require.ErrorIs(t, err, errActorRequired)

	WithIdentity("", &api.SystemActor{Hostname: "h", Username: "u"})(c)

	err = c.ResetTimer(context.Background())
	require.ErrorIs(t, err, errCallerRequired)
}

// TestDial_AppliesOptions verifies options are applied to the created client.
func TestDial_AppliesOptions(t *testing.T) {
	t.Parallel()

	actor := &api.SystemActor{Hostname: "h", Username: "u"}

	c, err := Dial(context.Background(), "127.0.0.1:1",
		WithCallTimeout(time.Second),
		WithIdentity("0x00000000000000000000000000000000000000a0", actor),
	)
	require.NoError(t, err)

	defer func() {
		require.NoError(t, c.Close())
	}()

	require.Equal(t, time.Second, c.callTimeout)
	require.Same(t, actor, c.actor)
	require.Equal(t, "0x00000000000000000000000000000000000000a0", c.caller)
}
