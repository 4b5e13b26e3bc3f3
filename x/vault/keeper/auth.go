package keeper

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"cosmossdk.io/collections"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// The admin and operator sets are independent: an identity can hold either
// membership, both, or neither. Admins configure the vault; operators move
// value. Both sets are mutable only by current admins.

// IsAdmin reports admin-set membership.
func (k Keeper) IsAdmin(ctx context.Context, identity string) bool {
	ok, err := k.Admins.Has(ctx, identity)
	return err == nil && ok
}

// IsOperator reports operator-set membership.
func (k Keeper) IsOperator(ctx context.Context, identity string) bool {
	ok, err := k.Operators.Has(ctx, identity)
	return err == nil && ok
}

// GrantAdmin adds identity to the admin set. Idempotent; admin-gated.
func (k Keeper) GrantAdmin(ctx context.Context, caller, identity string) error {
	return k.setMembership(ctx, caller, identity, k.Admins, EventTypeAdminSet, true)
}

// RevokeAdmin removes identity from the admin set. Revoking an absent entry
// is a no-op; admin-gated.
func (k Keeper) RevokeAdmin(ctx context.Context, caller, identity string) error {
	return k.setMembership(ctx, caller, identity, k.Admins, EventTypeAdminSet, false)
}

// GrantOperator adds identity to the operator set. Idempotent; admin-gated.
func (k Keeper) GrantOperator(ctx context.Context, caller, identity string) error {
	return k.setMembership(ctx, caller, identity, k.Operators, EventTypeOperatorSet, true)
}

// RevokeOperator removes identity from the operator set. Idempotent;
// admin-gated.
func (k Keeper) RevokeOperator(ctx context.Context, caller, identity string) error {
	return k.setMembership(ctx, caller, identity, k.Operators, EventTypeOperatorSet, false)
}

func (k Keeper) setMembership(
	ctx context.Context,
	caller, identity string,
	set collections.KeySet[string],
	eventType string,
	grant bool,
) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return fmt.Errorf("identity cannot be empty")
	}

	var err error
	if grant {
		err = set.Set(ctx, identity)
	} else {
		err = set.Remove(ctx, identity)
	}
	if err != nil {
		return err
	}

	k.emitEvent(ctx, sdk.NewEvent(
		eventType,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyIdentity, identity),
		sdk.NewAttribute(AttributeKeyGranted, strconv.FormatBool(grant)),
	))
	return nil
}

func (k Keeper) requireAdmin(ctx context.Context, caller string) error {
	if !k.IsAdmin(ctx, caller) {
		return fmt.Errorf("%s is not an admin: %w", caller, types.ErrUnauthorized)
	}
	return nil
}

func (k Keeper) requireOperator(ctx context.Context, caller string) error {
	if !k.IsOperator(ctx, caller) {
		return fmt.Errorf("%s is not an operator: %w", caller, types.ErrUnauthorized)
	}
	return nil
}
