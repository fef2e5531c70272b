package deploy

import (
	"fmt"
	"path/filepath"

	"makeabet/internal/store"
)

// HardhatFaucetKey is the private key of Hardhat's second default account,
// which the local deploy script funds as the faucet signer. It is public
// knowledge and only meaningful on a throwaway local node.
const HardhatFaucetKey = "0x59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"

// LocalRPCURL is the Hardhat node endpoint the template dev scripts start.
const LocalRPCURL = "http://127.0.0.1:8545"

// EnvFiles renders the root, api, worker and web .env.local files for a.
func EnvFiles(a Artifact) []store.EnvFile {
	id := a.EffectiveChainID()

	root := []string{
		"# Local Chain Configuration",
		"LOCAL_CHAIN_ENABLED=true",
		fmt.Sprintf("LOCAL_CHAIN_ID=%d", id),
		"LOCAL_RPC_URL=" + LocalRPCURL,
		"LOCAL_PYUSD_ADDRESS=" + a.PYUSD,
		"LOCAL_PYUSD_MINT=",
		"LOCAL_FAUCET_PRIVATE_KEY=" + HardhatFaucetKey,
		"LOCAL_MARKET_ADDRESS=" + a.Market,
		"LOCAL_FAUCET_ADDRESS=" + a.Faucet,
		"",
		"# Active Chain Configuration",
		"CHAIN_TYPE=evm",
		"TARGET_CHAIN=local-hardhat",
		"PYUSD_CONTRACT_ADDRESS=" + a.PYUSD,
		"PYUSD_MINT_ADDRESS=",
		"MARKET_CONTRACT_ADDRESS=" + a.Market,
		"",
		"# Faucet Configuration",
		"LOCAL_FAUCET_ETH_AMOUNT=1",
		"LOCAL_FAUCET_PYUSD_AMOUNT=100",
	}

	service := []string{
		"# Chain Configuration",
		"CHAIN_TYPE=evm",
		"TARGET_CHAIN=local-hardhat",
		fmt.Sprintf("EVM_CHAIN_ID=%d", id),
		"EVM_RPC_URL=" + LocalRPCURL,
		"SOLANA_RPC_URL=",
		"",
		"# Contract Addresses",
		"PYUSD_CONTRACT_ADDRESS=" + a.PYUSD,
		"PYUSD_MINT_ADDRESS=",
		"MARKET_CONTRACT_ADDRESS=" + a.Market,
		"",
		"# Local Chain Configuration",
		"LOCAL_CHAIN_ENABLED=true",
		fmt.Sprintf("LOCAL_CHAIN_ID=%d", id),
		"LOCAL_RPC_URL=" + LocalRPCURL,
		"LOCAL_PYUSD_ADDRESS=" + a.PYUSD,
		"LOCAL_MARKET_ADDRESS=" + a.Market,
		"LOCAL_FAUCET_ADDRESS=" + a.Faucet,
		"LOCAL_FAUCET_PRIVATE_KEY=" + HardhatFaucetKey,
	}

	web := []string{
		"# Local Chain Configuration",
		"VITE_LOCAL_CHAIN_ENABLED=true",
		fmt.Sprintf("VITE_LOCAL_CHAIN_ID=%d", id),
		"VITE_LOCAL_RPC_URL=" + LocalRPCURL,
		"VITE_LOCAL_PYUSD_ADDRESS=" + a.PYUSD,
		"VITE_LOCAL_PYUSD_MINT=",
		"",
		"# Active Chain Configuration",
		"VITE_CHAIN_DEFAULT=local-hardhat",
		"VITE_TARGET_CHAIN=local-hardhat",
		"VITE_CHAIN_TYPE=evm",
		"",
		"# EVM Configuration",
		fmt.Sprintf("VITE_EVM_CHAIN_ID=%d", id),
		"VITE_EVM_RPC_URL=" + LocalRPCURL,
		"VITE_PYUSD_ADDRESS=" + a.PYUSD,
		"VITE_PYUSD_MINT=",
		"",
		"# Solana Configuration",
		"VITE_SOLANA_RPC_URL=",
		"",
		"# Contract Addresses",
		"VITE_MARKET_ADDRESS=" + a.Market,
		"",
		"# WalletConnect",
		"VITE_WALLETCONNECT_PROJECT_ID=",
		"",
		"# API",
		"VITE_API_URL=http://localhost:4000",
	}

	return []store.EnvFile{
		{Path: ".env.local", Lines: root},
		{Path: filepath.Join("apps", "api", ".env.local"), Lines: service},
		{Path: filepath.Join("apps", "worker", ".env.local"), Lines: service},
		{Path: filepath.Join("apps", "web", ".env.local"), Lines: web},
	}
}

// Sync writes every EnvFiles document under root and returns the relative
// paths written, in order.
func Sync(root string, a Artifact) ([]string, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	return store.WriteEnvFiles(root, EnvFiles(a))
}
