package keeper

import (
	"context"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// Msg handlers: each validates the command payload, then dispatches to the
// corresponding keeper operation.

func (k Keeper) MsgLock(ctx context.Context, msg types.MsgLock) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Lock(ctx, msg.Caller, msg.Amount)
}

func (k Keeper) MsgFree(ctx context.Context, msg types.MsgFree) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Free(ctx, msg.Caller, msg.Amount)
}

func (k Keeper) MsgDraw(ctx context.Context, msg types.MsgDraw) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Draw(ctx, msg.Caller, msg.Amount)
}

func (k Keeper) MsgWipe(ctx context.Context, msg types.MsgWipe) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Wipe(ctx, msg.Caller, msg.Amount)
}

func (k Keeper) MsgQuit(ctx context.Context, msg types.MsgQuit) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.Quit(ctx, msg.Caller)
}

func (k Keeper) MsgSetParameter(ctx context.Context, msg types.MsgSetParameter) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.SetParameter(ctx, msg.Caller, msg.Name, msg.Value)
}

func (k Keeper) MsgGrantAdmin(ctx context.Context, msg types.MsgGrantAdmin) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.GrantAdmin(ctx, msg.Caller, msg.Identity)
}

func (k Keeper) MsgRevokeAdmin(ctx context.Context, msg types.MsgRevokeAdmin) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.RevokeAdmin(ctx, msg.Caller, msg.Identity)
}

func (k Keeper) MsgGrantOperator(ctx context.Context, msg types.MsgGrantOperator) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.GrantOperator(ctx, msg.Caller, msg.Identity)
}

func (k Keeper) MsgRevokeOperator(ctx context.Context, msg types.MsgRevokeOperator) error {
	if err := msg.ValidateBasic(); err != nil {
		return err
	}
	return k.RevokeOperator(ctx, msg.Caller, msg.Identity)
}
