// Package api serves the MakeABet HTTP API.
//
// Routes
//
//	GET /api/health
//	    Liveness probe, always {"status":"ok"}.
//
//	GET /api/config
//	    Public client configuration derived from the environment at start:
//	    PayPal client id, Pyth endpoint, target chain and chain type, the
//	    PYUSD address (evm) or mint (solana), RPC URL, explorer and market
//	    address, and whether the local faucet is available.
//
//	POST /api/faucet {"address":"0x..."}
//	    Only when LOCAL_CHAIN_ENABLED=true and TARGET_CHAIN=local-hardhat.
//	    Sends test ETH and PYUSD.
//	    200 {"ok":true,"transactions":[...]}, 400 on a malformed address,
//	    429 while another request is in flight, 500 when a transfer fails.
//
// Behaviour
//
//   - Responses are JSON.
//   - CORS reflects the request origin.
//   - Each client IP gets RATE_LIMIT_MAX requests per RATE_LIMIT_WINDOW;
//     excess requests get 429.
//   - An access log records method, path, remote, status, bytes and
//     duration for each request.
package api
