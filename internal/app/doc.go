// Package app wires the API and worker processes.
//
// It builds the chain client, faucet and HTTP server from the parsed
// environment, exposing them via the Wire struct, and runs each process
// until its context ends.
package app
