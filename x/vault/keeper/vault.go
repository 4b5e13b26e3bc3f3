package keeper

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// The five value-moving operations. Each one checks authorization first,
// converts units where needed, then touches at most two collaborators. The
// vault keeps no position bookkeeping: the ledger's (collateral type, vault)
// entry is authoritative, and a failure anywhere aborts the whole message
// with no partial effect.

// Lock transfers amount of the underlying asset from the caller into
// custody and records it as locked collateral on the ledger. Operator-only;
// no debt or rate interaction.
func (k Keeper) Lock(ctx context.Context, caller string, amount sdkmath.Int) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}
	if err := k.requireOperator(ctx, caller); err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}

	if err := k.custodian.TransferIn(ctx, caller, amount); err != nil {
		return fmt.Errorf("lock: custody in: %w", err)
	}
	if err := k.ledger.ModifyPosition(ctx, k.collateralType, k.vaultAddress, amount, sdkmath.ZeroInt()); err != nil {
		return fmt.Errorf("lock: ledger: %w", err)
	}

	k.logger(ctx).Info("locked collateral", "caller", caller, "amount", amount.String())
	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeLock,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyCollateralType, k.collateralType),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Free unlocks amount of collateral on the ledger and releases it from
// custody back to the caller. The ledger rejects the delta if it would
// leave the position under-collateralized. Operator-only.
func (k Keeper) Free(ctx context.Context, caller string, amount sdkmath.Int) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}
	if err := k.requireOperator(ctx, caller); err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}

	if err := k.ledger.ModifyPosition(ctx, k.collateralType, k.vaultAddress, amount.Neg(), sdkmath.ZeroInt()); err != nil {
		return fmt.Errorf("free: ledger: %w", err)
	}
	if err := k.custodian.TransferOut(ctx, caller, amount); err != nil {
		return fmt.Errorf("free: custody out: %w", err)
	}

	k.logger(ctx).Info("freed collateral", "caller", caller, "amount", amount.String())
	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeFree,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyCollateralType, k.collateralType),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Draw accrues interest, raises normalized debt by the round-up conversion
// of amount, and mints amount of debt tokens to the output routing target.
// Rounding up means the ledger never under-records owed debt. Operator-only.
func (k Keeper) Draw(ctx context.Context, caller string, amount sdkmath.Int) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}
	if err := k.requireOperator(ctx, caller); err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}
	target, err := k.outputTarget(ctx)
	if err != nil {
		return err
	}

	rate, err := k.accrue(ctx)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	dart, err := debtDeltaRoundUp(amount, rate)
	if err != nil {
		return fmt.Errorf("draw: %w", err)
	}

	if err := k.ledger.ModifyPosition(ctx, k.collateralType, k.vaultAddress, sdkmath.ZeroInt(), dart); err != nil {
		return fmt.Errorf("draw: ledger: %w", err)
	}
	if err := k.debtToken.Mint(ctx, target, amount); err != nil {
		return fmt.Errorf("draw: mint: %w", err)
	}

	k.logger(ctx).Info("drew debt", "caller", caller, "amount", amount.String(), "normalized_delta", dart.String())
	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeDraw,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyCollateralType, k.collateralType),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Wipe burns amount of debt tokens supplied by the caller and lowers
// normalized debt by the round-down conversion. Rounding down means the
// vault never claims more debt reduction than the burned funds justify, so
// a "full" repayment can leave residual dust; Position exposes it. Callable
// by anyone: repaying someone else's debt cannot be abused.
func (k Keeper) Wipe(ctx context.Context, caller string, amount sdkmath.Int) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}
	if err := validAmount(amount); err != nil {
		return err
	}

	if err := k.debtToken.Burn(ctx, caller, amount); err != nil {
		return fmt.Errorf("wipe: burn: %w", err)
	}

	rate, err := k.accrue(ctx)
	if err != nil {
		return fmt.Errorf("wipe: %w", err)
	}
	dart, err := debtDeltaRoundDown(amount, rate)
	if err != nil {
		return fmt.Errorf("wipe: %w", err)
	}

	if err := k.ledger.ModifyPosition(ctx, k.collateralType, k.vaultAddress, sdkmath.ZeroInt(), dart.Neg()); err != nil {
		return fmt.Errorf("wipe: ledger: %w", err)
	}

	k.logger(ctx).Info("wiped debt", "caller", caller, "amount", amount.String(), "normalized_delta", dart.String())
	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeWipe,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyCollateralType, k.collateralType),
		sdk.NewAttribute(AttributeKeyAmount, amount.String()),
	))
	return nil
}

// Quit flushes the vault's entire debt-token balance to the output routing
// target. Only callable once the ledger has asserted global shutdown; it is
// the emergency drain for the degraded state, not a destructor. Callable by
// anyone.
func (k Keeper) Quit(ctx context.Context, caller string) error {
	if err := k.requireInitialized(ctx); err != nil {
		return err
	}

	live, err := k.ledger.IsLive(ctx)
	if err != nil {
		return fmt.Errorf("quit: ledger liveness: %w", err)
	}
	if live {
		return types.ErrLedgerStillLive
	}

	target, err := k.outputTarget(ctx)
	if err != nil {
		return err
	}
	balance, err := k.debtToken.Balance(ctx, k.vaultAddress)
	if err != nil {
		return fmt.Errorf("quit: balance: %w", err)
	}
	if err := k.debtToken.Transfer(ctx, k.vaultAddress, target, balance); err != nil {
		return fmt.Errorf("quit: transfer: %w", err)
	}

	k.logger(ctx).Info("quit vault", "caller", caller, "flushed", balance.String())
	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeQuit,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyAmount, balance.String()),
	))
	return nil
}

// accrue brings the rate current via the configured rate service and
// returns it.
func (k Keeper) accrue(ctx context.Context) (sdkmath.Int, error) {
	service, err := k.RateService.Get(ctx)
	if err != nil || service == "" {
		return sdkmath.Int{}, types.ErrRateServiceNotConfigured
	}
	rate, err := k.rates.Accrue(ctx, service, k.collateralType)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("accrue rate: %w", err)
	}
	if !rate.IsPositive() {
		return sdkmath.Int{}, fmt.Errorf("rate service returned non-positive rate %s", rate)
	}
	return rate, nil
}

// debtDeltaRoundUp converts a nominal draw amount into a normalized-debt
// delta, rounding up.
func debtDeltaRoundUp(amount, rate sdkmath.Int) (sdkmath.Int, error) {
	scaled, err := types.ToLedgerDebtScale(amount)
	if err != nil {
		return sdkmath.Int{}, err
	}
	dart, err := types.DivRoundUp(scaled, rate)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if err := types.CheckDeltaRange(dart); err != nil {
		return sdkmath.Int{}, err
	}
	return dart, nil
}

// debtDeltaRoundDown converts a nominal repay amount into a normalized-debt
// delta, rounding down. The repayer must supply the exact or greater
// nominal amount to fully clear debt.
func debtDeltaRoundDown(amount, rate sdkmath.Int) (sdkmath.Int, error) {
	scaled, err := types.ToLedgerDebtScale(amount)
	if err != nil {
		return sdkmath.Int{}, err
	}
	dart := scaled.Quo(rate)
	if err := types.CheckDeltaRange(dart); err != nil {
		return sdkmath.Int{}, err
	}
	return dart, nil
}

func validAmount(amount sdkmath.Int) error {
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative")
	}
	return types.CheckDeltaRange(amount)
}
