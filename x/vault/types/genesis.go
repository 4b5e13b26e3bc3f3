package types

import (
	"fmt"
	"strings"
)

// GenesisState seeds the vault's permission sets and configuration. The
// ledger-owned collateral/debt position is not part of it; the ledger keeps
// that bookkeeping itself.
type GenesisState struct {
	Admins       []string `json:"admins"`
	Operators    []string `json:"operators"`
	OutputTarget string   `json:"output_target"`
	RateService  string   `json:"rate_service"`
}

// DefaultGenesis returns the default genesis state. The admin set is left
// empty here; InitGenesis seeds it with the keeper authority so the set is
// never empty at construction.
func DefaultGenesis() *GenesisState {
	return &GenesisState{
		Admins:    []string{},
		Operators: []string{},
	}
}

// Validate performs basic genesis state validation
func (gs GenesisState) Validate() error {
	if err := validateIdentitySet("admin", gs.Admins); err != nil {
		return err
	}
	if err := validateIdentitySet("operator", gs.Operators); err != nil {
		return err
	}
	// An explicitly configured output target must not be the null identity;
	// leaving it unset defers to SetParameter.
	if gs.OutputTarget != "" && strings.TrimSpace(gs.OutputTarget) == "" {
		return fmt.Errorf("output target cannot be blank")
	}
	return nil
}

func validateIdentitySet(kind string, identities []string) error {
	seen := make(map[string]struct{}, len(identities))
	for i, id := range identities {
		id = strings.TrimSpace(id)
		if id == "" {
			return fmt.Errorf("%s identity at index %d is empty", kind, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("duplicate %s identity: %s", kind, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}
