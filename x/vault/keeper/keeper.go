package keeper

import (
	"context"
	"fmt"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"
	"github.com/cosmos/cosmos-sdk/codec"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

// LedgerKeeper is the shared accounting ledger owning the authoritative
// (locked collateral, normalized debt) position for every (collateral type,
// vault) pair. A position delta either fully applies or is fully rejected;
// the ledger never partially applies one.
type LedgerKeeper interface {
	// ModifyPosition applies a signed delta to the vault's position.
	// Ledger-side rules (under-collateralization, debt ceiling) reject the
	// whole delta.
	ModifyPosition(ctx context.Context, collateralType, vault string, deltaCollateral, deltaDebt sdkmath.Int) error

	// Position reports the current locked collateral and normalized debt.
	Position(ctx context.Context, collateralType, vault string) (collateral, normalizedDebt sdkmath.Int, err error)

	// IsLive reports whether the ledger is in normal operation. False means
	// global shutdown.
	IsLive(ctx context.Context) (bool, error)

	// AuthorizeCreditTransfers registers the vault to receive debt-token
	// credit. Construction wiring, called once from Initialize.
	AuthorizeCreditTransfers(ctx context.Context, vault string) error
}

// RateKeeper is the interest-accrual service. Accrue brings the rate for the
// collateral type current and returns it, scaled by types.RateScale.
type RateKeeper interface {
	Accrue(ctx context.Context, service, collateralType string) (sdkmath.Int, error)
}

// CustodianKeeper moves the underlying asset between callers and custody.
type CustodianKeeper interface {
	// CollateralType identifies the asset class and ledger accounting
	// bucket this custodian serves.
	CollateralType() string

	TransferIn(ctx context.Context, from string, amount sdkmath.Int) error
	TransferOut(ctx context.Context, to string, amount sdkmath.Int) error

	// ApproveVault grants the vault allowance to move the underlying
	// asset. Construction wiring.
	ApproveVault(ctx context.Context, vault string) error
}

// DebtTokenKeeper mints, burns and moves debt tokens.
type DebtTokenKeeper interface {
	Mint(ctx context.Context, to string, amount sdkmath.Int) error

	// Burn pulls amount from the holder and destroys it, failing on
	// insufficient balance or allowance.
	Burn(ctx context.Context, holder string, amount sdkmath.Int) error

	Transfer(ctx context.Context, from, to string, amount sdkmath.Int) error
	Balance(ctx context.Context, addr string) (sdkmath.Int, error)

	// ApproveVault grants the vault allowance to move debt tokens.
	// Construction wiring.
	ApproveVault(ctx context.Context, vault string) error
}

// Keeper gates access to the external ledger position for one collateral
// type. It holds no collateral or debt bookkeeping of its own: permission
// sets and two configuration references are its only state.
type Keeper struct {
	cdc          codec.Codec
	storeService store.KVStoreService

	// authority is the deployer identity. It is seeded into the admin set
	// at genesis so the set is never empty at construction.
	authority string

	// vaultAddress keys the ledger position and custodies in-transit
	// funds. Fixed at construction.
	vaultAddress string

	// collateralType is derived from the custodian at construction and
	// immutable thereafter.
	collateralType string

	ledger    LedgerKeeper
	rates     RateKeeper
	custodian CustodianKeeper
	debtToken DebtTokenKeeper

	Admins       collections.KeySet[string]
	Operators    collections.KeySet[string]
	OutputTarget collections.Item[string]
	RateService  collections.Item[string]
	Initialized  collections.Item[bool]
}

// NewKeeper creates a new vault keeper.
func NewKeeper(
	cdc codec.Codec,
	storeService store.KVStoreService,
	authority string,
	vaultAddress string,
	ledger LedgerKeeper,
	rates RateKeeper,
	custodian CustodianKeeper,
	debtToken DebtTokenKeeper,
) Keeper {
	sb := collections.NewSchemaBuilder(storeService)

	return Keeper{
		cdc:            cdc,
		storeService:   storeService,
		authority:      authority,
		vaultAddress:   vaultAddress,
		collateralType: custodian.CollateralType(),
		ledger:         ledger,
		rates:          rates,
		custodian:      custodian,
		debtToken:      debtToken,
		Admins: collections.NewKeySet(
			sb,
			collections.NewPrefix(types.AdminKeyPrefix),
			"admins",
			collections.StringKey,
		),
		Operators: collections.NewKeySet(
			sb,
			collections.NewPrefix(types.OperatorKeyPrefix),
			"operators",
			collections.StringKey,
		),
		OutputTarget: collections.NewItem(
			sb,
			collections.NewPrefix(types.OutputTargetKey),
			"output_target",
			collections.StringValue,
		),
		RateService: collections.NewItem(
			sb,
			collections.NewPrefix(types.RateServiceKey),
			"rate_service",
			collections.StringValue,
		),
		Initialized: collections.NewItem(
			sb,
			collections.NewPrefix(types.InitializedKey),
			"initialized",
			collections.BoolValue,
		),
	}
}

// GetAuthority returns the keeper authority address.
func (k Keeper) GetAuthority() string {
	return k.authority
}

// VaultAddress returns the vault's own identity.
func (k Keeper) VaultAddress() string {
	return k.vaultAddress
}

// CollateralType returns the immutable collateral-type identifier.
func (k Keeper) CollateralType() string {
	return k.collateralType
}

// Initialize performs the one-time construction wiring: allowance for the
// custodian to move the underlying asset, allowance for the debt-token
// adapter, and registration with the ledger for debt-token credit. Distinct
// from the runtime operation set; every value-moving operation requires it
// to have succeeded.
func (k Keeper) Initialize(ctx context.Context) error {
	if done, err := k.Initialized.Get(ctx); err == nil && done {
		return types.ErrAlreadyInitialized
	}
	if err := k.custodian.ApproveVault(ctx, k.vaultAddress); err != nil {
		return fmt.Errorf("approve custodian: %w", err)
	}
	if err := k.debtToken.ApproveVault(ctx, k.vaultAddress); err != nil {
		return fmt.Errorf("approve debt token: %w", err)
	}
	if err := k.ledger.AuthorizeCreditTransfers(ctx, k.vaultAddress); err != nil {
		return fmt.Errorf("register with ledger: %w", err)
	}
	return k.Initialized.Set(ctx, true)
}

// Position returns the ledger-held locked collateral and normalized debt
// for this vault. After a round-down repayment this is how callers observe
// any residual dust left outstanding.
func (k Keeper) Position(ctx context.Context) (collateral, normalizedDebt sdkmath.Int, err error) {
	return k.ledger.Position(ctx, k.collateralType, k.vaultAddress)
}

func (k Keeper) requireInitialized(ctx context.Context) error {
	done, err := k.Initialized.Get(ctx)
	if err != nil || !done {
		return types.ErrNotInitialized
	}
	return nil
}

func (k Keeper) outputTarget(ctx context.Context) (string, error) {
	target, err := k.OutputTarget.Get(ctx)
	if err != nil || target == "" {
		return "", fmt.Errorf("output target not configured: %w", types.ErrNullOutputTarget)
	}
	return target, nil
}

func (k Keeper) logger(ctx context.Context) log.Logger {
	return sdk.UnwrapSDKContext(ctx).Logger().With("module", "x/"+types.ModuleName)
}
