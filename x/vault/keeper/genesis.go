package keeper

import (
	"context"
	"fmt"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// InitGenesis seeds the permission sets and configuration references. The
// authority is always granted admin so the admin set is non-empty from
// construction onward.
func (k Keeper) InitGenesis(ctx context.Context, gs *types.GenesisState) error {
	if err := gs.Validate(); err != nil {
		return fmt.Errorf("invalid %s genesis: %w", types.ModuleName, err)
	}

	if err := k.Admins.Set(ctx, k.authority); err != nil {
		return err
	}
	for _, admin := range gs.Admins {
		if err := k.Admins.Set(ctx, admin); err != nil {
			return err
		}
	}
	for _, operator := range gs.Operators {
		if err := k.Operators.Set(ctx, operator); err != nil {
			return err
		}
	}
	if gs.OutputTarget != "" {
		if err := k.OutputTarget.Set(ctx, gs.OutputTarget); err != nil {
			return err
		}
	}
	if gs.RateService != "" {
		if err := k.RateService.Set(ctx, gs.RateService); err != nil {
			return err
		}
	}
	return nil
}

// ExportGenesis writes the permission sets and configuration back out.
func (k Keeper) ExportGenesis(ctx context.Context) (*types.GenesisState, error) {
	gs := types.DefaultGenesis()

	if err := k.Admins.Walk(ctx, nil, func(identity string) (bool, error) {
		gs.Admins = append(gs.Admins, identity)
		return false, nil
	}); err != nil {
		return nil, err
	}
	if err := k.Operators.Walk(ctx, nil, func(identity string) (bool, error) {
		gs.Operators = append(gs.Operators, identity)
		return false, nil
	}); err != nil {
		return nil, err
	}

	if target, err := k.OutputTarget.Get(ctx); err == nil {
		gs.OutputTarget = target
	}
	if service, err := k.RateService.Get(ctx); err == nil {
		gs.RateService = service
	}
	return gs, nil
}
