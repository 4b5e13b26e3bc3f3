package keeper

import (
	"context"
	"fmt"
	"strings"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// SetParameter updates one of the vault's named configuration references.
// Admin-gated; the recognized names are exactly ParamOutputTarget and
// ParamRateService. The output routing target may never be set to the null
// identity, because draw and quit proceeds are routed to it unconditionally.
func (k Keeper) SetParameter(ctx context.Context, caller, name, value string) error {
	if err := k.requireAdmin(ctx, caller); err != nil {
		return err
	}

	switch name {
	case types.ParamOutputTarget:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("set %s: %w", name, types.ErrNullOutputTarget)
		}
		if err := k.OutputTarget.Set(ctx, value); err != nil {
			return err
		}
	case types.ParamRateService:
		if err := k.RateService.Set(ctx, value); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%s: %w", name, types.ErrUnrecognizedParameter)
	}

	k.emitEvent(ctx, sdk.NewEvent(
		EventTypeParameterSet,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyParameter, name),
		sdk.NewAttribute(AttributeKeyValue, value),
	))
	return nil
}
