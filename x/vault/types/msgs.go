package types

import (
	"fmt"
	"strings"

	sdkmath "cosmossdk.io/math"
)

// Plain command payloads, one per external operation. ValidateBasic covers
// the stateless checks; authorization, unit conversion and collaborator
// calls stay in the keeper.

// MsgLock moves collateral from the caller into custody.
type MsgLock struct {
	Caller string      `json:"caller"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgLock) ValidateBasic() error {
	return validateValueCommand(m.Caller, m.Amount)
}

// MsgFree releases custodied collateral back to the caller.
type MsgFree struct {
	Caller string      `json:"caller"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgFree) ValidateBasic() error {
	return validateValueCommand(m.Caller, m.Amount)
}

// MsgDraw raises debt and mints debt tokens to the output target.
type MsgDraw struct {
	Caller string      `json:"caller"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgDraw) ValidateBasic() error {
	return validateValueCommand(m.Caller, m.Amount)
}

// MsgWipe burns debt tokens supplied by the caller against outstanding debt.
type MsgWipe struct {
	Caller string      `json:"caller"`
	Amount sdkmath.Int `json:"amount"`
}

func (m MsgWipe) ValidateBasic() error {
	return validateValueCommand(m.Caller, m.Amount)
}

// MsgQuit flushes the vault's debt-token balance once the ledger is shut
// down.
type MsgQuit struct {
	Caller string `json:"caller"`
}

func (m MsgQuit) ValidateBasic() error {
	return validateCaller(m.Caller)
}

// MsgSetParameter updates a named configuration reference.
type MsgSetParameter struct {
	Caller string `json:"caller"`
	Name   string `json:"name"`
	Value  string `json:"value"`
}

func (m MsgSetParameter) ValidateBasic() error {
	if err := validateCaller(m.Caller); err != nil {
		return err
	}
	switch m.Name {
	case ParamOutputTarget:
		if strings.TrimSpace(m.Value) == "" {
			return fmt.Errorf("set %s: %w", m.Name, ErrNullOutputTarget)
		}
	case ParamRateService:
	default:
		return fmt.Errorf("%s: %w", m.Name, ErrUnrecognizedParameter)
	}
	return nil
}

// MsgGrantAdmin adds an identity to the admin set.
type MsgGrantAdmin struct {
	Caller   string `json:"caller"`
	Identity string `json:"identity"`
}

func (m MsgGrantAdmin) ValidateBasic() error {
	return validateMembershipCommand(m.Caller, m.Identity)
}

// MsgRevokeAdmin removes an identity from the admin set.
type MsgRevokeAdmin struct {
	Caller   string `json:"caller"`
	Identity string `json:"identity"`
}

func (m MsgRevokeAdmin) ValidateBasic() error {
	return validateMembershipCommand(m.Caller, m.Identity)
}

// MsgGrantOperator adds an identity to the operator set.
type MsgGrantOperator struct {
	Caller   string `json:"caller"`
	Identity string `json:"identity"`
}

func (m MsgGrantOperator) ValidateBasic() error {
	return validateMembershipCommand(m.Caller, m.Identity)
}

// MsgRevokeOperator removes an identity from the operator set.
type MsgRevokeOperator struct {
	Caller   string `json:"caller"`
	Identity string `json:"identity"`
}

func (m MsgRevokeOperator) ValidateBasic() error {
	return validateMembershipCommand(m.Caller, m.Identity)
}

func validateCaller(caller string) error {
	if strings.TrimSpace(caller) == "" {
		return fmt.Errorf("caller cannot be empty")
	}
	return nil
}

func validateValueCommand(caller string, amount sdkmath.Int) error {
	if err := validateCaller(caller); err != nil {
		return err
	}
	if amount.IsNil() || amount.IsNegative() {
		return fmt.Errorf("amount must be non-negative")
	}
	return CheckDeltaRange(amount)
}

func validateMembershipCommand(caller, identity string) error {
	if err := validateCaller(caller); err != nil {
		return err
	}
	if strings.TrimSpace(identity) == "" {
		return fmt.Errorf("identity cannot be empty")
	}
	return nil
}
