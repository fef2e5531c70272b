// Package deploy reads the local deployment artifact written by the contracts
// app and turns it into the .env.local files the other apps load.
//
// The artifact lives at apps/contracts/deployments/local.json:
//
//	{"pyusd": "0x…", "market": "0x…", "faucet": "0x…", "timestamp": 1700000000000, "chainId": 31337}
//
// It is written once per local deployment and read at startup; the only
// invariant is that the three addresses are 20-byte hex strings.
package deploy
