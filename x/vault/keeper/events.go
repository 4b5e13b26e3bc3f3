package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// Event type constants. Every successful mutating call emits exactly one of
// these; failed calls emit nothing. Together they form the audit trail.
const (
	EventTypeLock         = "vault_lock"
	EventTypeFree         = "vault_free"
	EventTypeDraw         = "vault_draw"
	EventTypeWipe         = "vault_wipe"
	EventTypeQuit         = "vault_quit"
	EventTypeAdminSet     = "vault_admin_set"
	EventTypeOperatorSet  = "vault_operator_set"
	EventTypeParameterSet = "vault_parameter_set"

	// Attribute keys
	AttributeKeyCaller         = "caller"
	AttributeKeyIdentity       = "identity"
	AttributeKeyGranted        = "granted"
	AttributeKeyParameter      = "parameter"
	AttributeKeyValue          = "value"
	AttributeKeyAmount         = "amount"
	AttributeKeyCollateralType = "collateral_type"
)

func (k Keeper) emitEvent(ctx context.Context, event sdk.Event) {
	if em := sdk.UnwrapSDKContext(ctx).EventManager(); em != nil {
		em.EmitEvent(event)
	}
}
