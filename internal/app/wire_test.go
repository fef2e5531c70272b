package app_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"makeabet/internal/app"
	"makeabet/internal/chain"
	"makeabet/internal/config"
	"makeabet/internal/deploy"
)

func localSettings() config.Local {
	return config.Local{
		Enabled:      true,
		ChainID:      31337,
		RPCURL:       "http://127.0.0.1:8545",
		PYUSDAddress: "0x5FbDB2315678afecb367f032d93F642f64180aa3",
		FaucetKey:    deploy.HardhatFaucetKey,
		FaucetETH:    "1",
		FaucetPYUSD:  "100",
	}
}

func TestFaucetConfig(t *testing.T) {
	cfg, err := app.FaucetConfig(localSettings())
	require.NoError(t, err)
	assert.Equal(t, int64(31337), cfg.ChainID.Int64())
	assert.Equal(t, "1000000000000000000", cfg.NativeAmount.String())
	assert.Equal(t, "100000000", cfg.TokenAmount.String())
	assert.Equal(t, "0x5FbDB2315678afecb367f032d93F642f64180aa3", cfg.Token.Hex())
}

func TestFaucetConfig_Errors(t *testing.T) {
	l := localSettings()
	l.FaucetKey = "0xnothex"
	_, err := app.FaucetConfig(l)
	assert.ErrorContains(t, err, "LOCAL_FAUCET_PRIVATE_KEY")

	l = localSettings()
	l.FaucetETH = "one"
	_, err = app.FaucetConfig(l)
	assert.ErrorContains(t, err, "LOCAL_FAUCET_ETH_AMOUNT")

	l = localSettings()
	l.PYUSDAddress = "0x123"
	_, err = app.FaucetConfig(l)
	assert.ErrorIs(t, err, chain.ErrInvalidAddress)
}

func TestNewWire_LocalDisabled(t *testing.T) {
	w, err := app.NewWire(context.Background(), config.API{
		Port: 4000, ChainType: "evm", TargetChain: "sepolia",
		RateLimitMax: 300, RateLimitWindow: time.Minute,
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	assert.Nil(t, w.Faucet)
	assert.Nil(t, w.Chain)
	assert.False(t, w.Server.FaucetEnabled())
}

func TestNewWire_LocalEnabled(t *testing.T) {
	// Dialling an HTTP endpoint does not connect, so no node is needed.
	w, err := app.NewWire(context.Background(), config.API{
		Port: 4000, ChainType: "evm", TargetChain: chain.LocalKey,
		RateLimitMax: 300, RateLimitWindow: time.Minute,
		Local: localSettings(),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	require.NotNil(t, w.Faucet)
	assert.Equal(t, "0x70997970C51812dc3A010C7d01b50e0d17dc79C8", w.Faucet.Address().Hex())
	assert.True(t, w.Faucet.TokenEnabled())
	assert.True(t, w.Server.FaucetEnabled())
}

func TestNewWire_LocalEnabledRemoteTarget(t *testing.T) {
	w, err := app.NewWire(context.Background(), config.API{
		Port: 4000, ChainType: "evm", TargetChain: "sepolia",
		RateLimitMax: 300, RateLimitWindow: time.Minute,
		Local: localSettings(),
	}, zaptest.NewLogger(t))
	require.NoError(t, err)
	defer w.Close()

	assert.Nil(t, w.Faucet)
	assert.Nil(t, w.Chain)
	assert.False(t, w.Server.FaucetEnabled())
}
