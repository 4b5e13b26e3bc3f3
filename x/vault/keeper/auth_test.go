package keeper_test

import (
	"testing"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/require"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/keeper"
	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

func TestGrantAndRevokeOperator(t *testing.T) {
	f := setupKeeper(t)

	require.False(t, f.keeper.IsOperator(f.ctx, "clio1newop"))
	require.NoError(t, f.keeper.GrantOperator(f.ctx, testAuthority, "clio1newop"))
	require.True(t, f.keeper.IsOperator(f.ctx, "clio1newop"))

	require.NoError(t, f.keeper.RevokeOperator(f.ctx, testAuthority, "clio1newop"))
	require.False(t, f.keeper.IsOperator(f.ctx, "clio1newop"))
}

func TestGrantRevokeIdempotent(t *testing.T) {
	f := setupKeeper(t)

	require.NoError(t, f.keeper.GrantAdmin(f.ctx, testAuthority, "clio1peer"))
	require.NoError(t, f.keeper.GrantAdmin(f.ctx, testAuthority, "clio1peer"))
	require.True(t, f.keeper.IsAdmin(f.ctx, "clio1peer"))

	require.NoError(t, f.keeper.RevokeAdmin(f.ctx, testAuthority, "clio1peer"))
	require.NoError(t, f.keeper.RevokeAdmin(f.ctx, testAuthority, "clio1peer"))
	require.False(t, f.keeper.IsAdmin(f.ctx, "clio1peer"))

	// revoking an identity that was never granted is a no-op, not an error
	require.NoError(t, f.keeper.RevokeOperator(f.ctx, testAuthority, "clio1ghost"))
}

func TestPermissionMutationsAreAdminGated(t *testing.T) {
	f := setupKeeper(t)

	err := f.keeper.GrantOperator(f.ctx, testOperator, "clio1friend")
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.False(t, f.keeper.IsOperator(f.ctx, "clio1friend"))

	err = f.keeper.GrantAdmin(f.ctx, "clio1stranger", "clio1stranger")
	require.ErrorIs(t, err, types.ErrUnauthorized)

	err = f.keeper.RevokeAdmin(f.ctx, testOperator, testAuthority)
	require.ErrorIs(t, err, types.ErrUnauthorized)
	require.True(t, f.keeper.IsAdmin(f.ctx, testAuthority))
}

func TestAdminAndOperatorSetsAreIndependent(t *testing.T) {
	f := setupKeeper(t)

	// authority is admin but not operator
	require.True(t, f.keeper.IsAdmin(f.ctx, testAuthority))
	require.False(t, f.keeper.IsOperator(f.ctx, testAuthority))

	// an identity can hold both memberships at once
	require.NoError(t, f.keeper.GrantAdmin(f.ctx, testAuthority, testOperator))
	require.True(t, f.keeper.IsAdmin(f.ctx, testOperator))
	require.True(t, f.keeper.IsOperator(f.ctx, testOperator))
}

func TestMembershipEventsCarryActorAndStatus(t *testing.T) {
	f := setupKeeper(t)
	f.ctx = f.ctx.WithEventManager(sdk.NewEventManager())

	require.NoError(t, f.keeper.GrantOperator(f.ctx, testAuthority, "clio1audit"))

	events := f.ctx.EventManager().Events()
	require.Len(t, events, 1)
	require.Equal(t, keeper.EventTypeOperatorSet, events[0].Type)
	requireAttribute(t, events[0], keeper.AttributeKeyCaller, testAuthority)
	requireAttribute(t, events[0], keeper.AttributeKeyIdentity, "clio1audit")
	requireAttribute(t, events[0], keeper.AttributeKeyGranted, "true")
}

func requireAttribute(t *testing.T, event sdk.Event, key, want string) {
	t.Helper()
	for _, attr := range event.Attributes {
		if attr.Key == key {
			require.Equal(t, want, attr.Value)
			return
		}
	}
	t.Fatalf("event %s missing attribute %s", event.Type, key)
}
