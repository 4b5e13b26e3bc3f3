package types_test

import (
	"math/big"
	"testing"

	sdkmath "cosmossdk.io/math"
	"github.com/stretchr/testify/require"

	"github.com/clio-finance/socgen-ofh-onboarding/x/vault/types"
)

func TestValueCommandValidateBasic(t *testing.T) {
	msg := types.MsgLock{Caller: "clio1operator", Amount: sdkmath.NewInt(5)}
	require.NoError(t, msg.ValidateBasic())

	require.Error(t, types.MsgLock{Caller: "", Amount: sdkmath.NewInt(5)}.ValidateBasic())
	require.Error(t, types.MsgFree{Caller: " ", Amount: sdkmath.NewInt(5)}.ValidateBasic())
	require.Error(t, types.MsgDraw{Caller: "clio1operator", Amount: sdkmath.NewInt(-1)}.ValidateBasic())
	require.Error(t, types.MsgWipe{Caller: "clio1operator"}.ValidateBasic())

	huge := sdkmath.NewIntFromBigInt(new(big.Int).Lsh(big.NewInt(1), 255))
	err := types.MsgLock{Caller: "clio1operator", Amount: huge}.ValidateBasic()
	require.ErrorIs(t, err, types.ErrIntOverflow)
}

func TestQuitValidateBasic(t *testing.T) {
	require.NoError(t, types.MsgQuit{Caller: "clio1anyone"}.ValidateBasic())
	require.Error(t, types.MsgQuit{}.ValidateBasic())
}

func TestSetParameterValidateBasic(t *testing.T) {
	msg := types.MsgSetParameter{Caller: "clio1admin", Name: types.ParamOutputTarget, Value: "clio1conduit"}
	require.NoError(t, msg.ValidateBasic())

	msg = types.MsgSetParameter{Caller: "clio1admin", Name: types.ParamRateService, Value: "clio1jug"}
	require.NoError(t, msg.ValidateBasic())

	err := types.MsgSetParameter{Caller: "clio1admin", Name: "oracle", Value: "clio1oracle"}.ValidateBasic()
	require.ErrorIs(t, err, types.ErrUnrecognizedParameter)

	err = types.MsgSetParameter{Caller: "clio1admin", Name: types.ParamOutputTarget, Value: " "}.ValidateBasic()
	require.ErrorIs(t, err, types.ErrNullOutputTarget)
}

func TestMembershipCommandValidateBasic(t *testing.T) {
	require.NoError(t, types.MsgGrantAdmin{Caller: "clio1admin", Identity: "clio1peer"}.ValidateBasic())
	require.NoError(t, types.MsgRevokeOperator{Caller: "clio1admin", Identity: "clio1peer"}.ValidateBasic())

	require.Error(t, types.MsgGrantOperator{Caller: "clio1admin", Identity: ""}.ValidateBasic())
	require.Error(t, types.MsgRevokeAdmin{Caller: "", Identity: "clio1peer"}.ValidateBasic())
}
