// Package faucet hands out test ETH and PYUSD on the local Hardhat chain.
//
// A Faucet serves one request at a time. Each request reads the pending
// nonce once, sends the native transfer and waits for it to be mined, then
// sends the token transfer with the next nonce. Errors are mapped to short
// user-facing strings with UserMessage.
package faucet
