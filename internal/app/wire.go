package app

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"go.uber.org/zap"

	"makeabet/internal/api"
	"makeabet/internal/chain"
	"makeabet/internal/config"
	"makeabet/internal/faucet"
)

// Wire bundles the clients and services behind the API.
type Wire struct {
	Config config.API
	Log    *zap.Logger
	Chain  *ethclient.Client // nil unless the faucet is available
	Faucet *faucet.Faucet    // nil unless the faucet is available
	Server *api.Server
}

// NewWire constructs the dependency graph from cfg.
func NewWire(ctx context.Context, cfg config.API, log *zap.Logger) (*Wire, error) {
	w := &Wire{Config: cfg, Log: log}

	// The faucet only exists for the local Hardhat chain
	if chain.FaucetAvailable(cfg.TargetChain, cfg.Local.Enabled) {
		fcfg, err := FaucetConfig(cfg.Local)
		if err != nil {
			return nil, err
		}
		client, err := ethclient.DialContext(ctx, cfg.Local.RPCURL)
		if err != nil {
			return nil, fmt.Errorf("dial local chain %s: %w", cfg.Local.RPCURL, err)
		}
		f, err := faucet.New(client, fcfg, log.Named("faucet"))
		if err != nil {
			client.Close()
			return nil, err
		}
		w.Chain, w.Faucet = client, f
		log.Info("local faucet ready",
			zap.String("rpc", cfg.Local.RPCURL),
			zap.String("from", f.Address().Hex()),
			zap.Bool("token", f.TokenEnabled()),
		)
	}

	var funder api.Funder
	if w.Faucet != nil {
		funder = w.Faucet
	}
	w.Server = api.New(cfg, funder, log.Named("http"))
	return w, nil
}

// Close releases the chain connection.
func (w *Wire) Close() {
	if w.Chain != nil {
		w.Chain.Close()
	}
}

// FaucetConfig turns the LOCAL_* settings into a faucet.Config.
func FaucetConfig(l config.Local) (faucet.Config, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(l.FaucetKey, "0x"))
	if err != nil {
		return faucet.Config{}, fmt.Errorf("LOCAL_FAUCET_PRIVATE_KEY: %w", err)
	}
	eth, err := faucet.ParseUnits(l.FaucetETH, faucet.NativeDecimals)
	if err != nil {
		return faucet.Config{}, fmt.Errorf("LOCAL_FAUCET_ETH_AMOUNT: %w", err)
	}
	pyusd, err := faucet.ParseUnits(l.FaucetPYUSD, faucet.TokenDecimals)
	if err != nil {
		return faucet.Config{}, fmt.Errorf("LOCAL_FAUCET_PYUSD_AMOUNT: %w", err)
	}

	cfg := faucet.Config{
		ChainID:      big.NewInt(l.ChainID),
		Key:          key,
		NativeAmount: eth,
		TokenAmount:  pyusd,
		Cooldown:     l.FaucetCooldown,
	}
	if l.PYUSDAddress != "" {
		if !chain.IsHexAddress(l.PYUSDAddress) {
			return faucet.Config{}, fmt.Errorf("LOCAL_PYUSD_ADDRESS: %w", chain.ErrInvalidAddress)
		}
		cfg.Token = common.HexToAddress(l.PYUSDAddress)
	}
	return cfg, nil
}
