// Package main runs the MakeABet API that the scaffolded web app talks to.
//
// Configuration comes from the process environment after the .env and
// .env.local files of the working directory and up to two parents are
// applied. The listen address is 0.0.0.0:$PORT (default 4000).
//
// HTTP API
//
//	GET /api/health
//	    Liveness probe. Always {"status":"ok"}.
//
//	GET /api/config
//	    Public client configuration derived from the environment at startup.
//
//	POST /api/faucet {"address": "0x..."}
//	    Send test ETH and PYUSD from the local Hardhat faucet account. Only
//	    registered when LOCAL_CHAIN_ENABLED=true and TARGET_CHAIN=local-hardhat.
//
// SIGINT and SIGTERM trigger a graceful shutdown.
package main
