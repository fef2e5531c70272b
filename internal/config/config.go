package config

import (
	"errors"
	"fmt"
	"time"

	"makeabet/internal/chain"
	"makeabet/internal/deploy"
)

// API is the environment of cmd/api.
type API struct {
	Port        int    `env:"PORT" envDefault:"4000"`
	ChainType   string `env:"CHAIN_TYPE" envDefault:"evm"`
	TargetChain string `env:"TARGET_CHAIN" envDefault:"sepolia"`

	PayPalClientID string `env:"PAYPAL_CLIENT_ID"`
	PythEndpoint   string `env:"PYTH_PRICE_SERVICE_URL"`

	PYUSDAddress  string `env:"PYUSD_CONTRACT_ADDRESS"`
	PYUSDMint     string `env:"PYUSD_MINT_ADDRESS"`
	EVMRPCURL     string `env:"EVM_RPC_URL"`
	SolanaRPCURL  string `env:"SOLANA_RPC_URL"`
	MarketAddress string `env:"MARKET_CONTRACT_ADDRESS"`

	Local Local

	RateLimitMax    int           `env:"RATE_LIMIT_MAX" envDefault:"300"`
	RateLimitWindow time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// Local configures the Hardhat chain and its faucet.
type Local struct {
	Enabled        bool          `env:"LOCAL_CHAIN_ENABLED" envDefault:"false"`
	ChainID        int64         `env:"LOCAL_CHAIN_ID" envDefault:"31337"`
	RPCURL         string        `env:"LOCAL_RPC_URL" envDefault:"http://127.0.0.1:8545"`
	PYUSDAddress   string        `env:"LOCAL_PYUSD_ADDRESS"`
	MarketAddress  string        `env:"LOCAL_MARKET_ADDRESS"`
	FaucetKey      string        `env:"LOCAL_FAUCET_PRIVATE_KEY"`
	FaucetETH      string        `env:"LOCAL_FAUCET_ETH_AMOUNT" envDefault:"1"`
	FaucetPYUSD    string        `env:"LOCAL_FAUCET_PYUSD_AMOUNT" envDefault:"100"`
	FaucetCooldown time.Duration `env:"LOCAL_FAUCET_COOLDOWN" envDefault:"0s"`
	DeploymentPath string        `env:"LOCAL_DEPLOYMENT_PATH"`
}

// Worker is the environment of cmd/worker.
type Worker struct {
	DBPath       string        `env:"WORKER_DB_PATH" envDefault:"data/worker.db"`
	PollInterval time.Duration `env:"WORKER_POLL_INTERVAL" envDefault:"2s"`
	MaxAttempts  int           `env:"WORKER_MAX_ATTEMPTS" envDefault:"5"`
	TargetChain  string        `env:"TARGET_CHAIN" envDefault:"sepolia"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadAPI parses the API environment and fills local contract addresses
// from the deployment artifact when the local chain is on.
func LoadAPI() (API, error) {
	var cfg API
	if err := ParseEnv(&cfg); err != nil {
		return API{}, err
	}
	if err := cfg.Validate(); err != nil {
		return API{}, err
	}
	if cfg.Local.Enabled {
		if err := cfg.Local.fillFromDeployment(); err != nil {
			return API{}, err
		}
		if cfg.Local.FaucetKey == "" {
			cfg.Local.FaucetKey = deploy.HardhatFaucetKey
		}
	}
	return cfg, nil
}

// LoadWorker parses the worker environment.
func LoadWorker() (Worker, error) {
	var cfg Worker
	if err := ParseEnv(&cfg); err != nil {
		return Worker{}, err
	}
	if cfg.PollInterval <= 0 {
		return Worker{}, fmt.Errorf("WORKER_POLL_INTERVAL must be positive, got %s", cfg.PollInterval)
	}
	if cfg.MaxAttempts < 1 {
		return Worker{}, fmt.Errorf("WORKER_MAX_ATTEMPTS must be at least 1, got %d", cfg.MaxAttempts)
	}
	return cfg, nil
}

// Validate rejects values the API cannot serve.
func (c API) Validate() error {
	switch chain.Type(c.ChainType) {
	case chain.TypeEVM, chain.TypeSolana:
	default:
		return fmt.Errorf("CHAIN_TYPE must be evm or solana, got %q", c.ChainType)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.RateLimitMax < 1 || c.RateLimitWindow <= 0 {
		return fmt.Errorf("rate limit must be positive, got %d per %s", c.RateLimitMax, c.RateLimitWindow)
	}
	return nil
}

// Addr is the listen address.
func (c API) Addr() string {
	return fmt.Sprintf("0.0.0.0:%d", c.Port)
}

// ArtifactPath is where the local deployment is read from.
func (l Local) ArtifactPath() string {
	if l.DeploymentPath != "" {
		return l.DeploymentPath
	}
	return deploy.DefaultArtifactPath
}

// fillFromDeployment copies addresses that the environment left empty. A
// missing artifact is not an error: the chain may not be deployed yet.
func (l *Local) fillFromDeployment() error {
	if l.PYUSDAddress != "" && l.MarketAddress != "" {
		return nil
	}
	a, err := deploy.Load(l.ArtifactPath())
	if errors.Is(err, deploy.ErrNoDeployment) {
		return nil
	}
	if err != nil {
		return err
	}
	if l.PYUSDAddress == "" {
		l.PYUSDAddress = a.PYUSD
	}
	if l.MarketAddress == "" {
		l.MarketAddress = a.Market
	}
	return nil
}
