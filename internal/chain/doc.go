// Package chain holds the registry of chains the MakeABet template can target.
//
// The registry is compiled in from chains.yaml. It answers the questions the
// scaffolder and the API both need: which chains a new project may target,
// where each chain's explorer lives, and whether the local faucet applies.
// It also validates and checksums EVM addresses.
package chain
