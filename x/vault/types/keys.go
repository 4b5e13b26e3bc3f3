package types

const (
	// ModuleName defines the module name.
	//
	// The vault fronts the shared ledger's collateral/debt position for a
	// single tokenized real-world-asset class: it gates who may lock and
	// free collateral, who may draw and repay debt tokens, and routes
	// drawn proceeds to a configured output target.
	ModuleName = "rwavault"

	// StoreKey defines the primary module store key.
	StoreKey = ModuleName
)

var (
	// AdminKeyPrefix is the prefix for the admin permission set.
	AdminKeyPrefix = []byte{0x01}

	// OperatorKeyPrefix is the prefix for the operator permission set.
	OperatorKeyPrefix = []byte{0x02}

	// OutputTargetKey stores the identity receiving draw and quit proceeds.
	OutputTargetKey = []byte{0x03}

	// RateServiceKey stores the reference to the rate-accrual service.
	RateServiceKey = []byte{0x04}

	// InitializedKey stores the one-time construction wiring flag.
	InitializedKey = []byte{0x05}
)

const (
	// ParamOutputTarget names the draw/quit proceeds recipient parameter.
	ParamOutputTarget = "outputTarget"

	// ParamRateService names the rate-accrual service reference parameter.
	ParamRateService = "rateService"
)
