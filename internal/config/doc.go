// Package config reads the API and worker settings from the environment.
//
// Dotenv files are applied first (LoadDotenv), then the typed structs are
// parsed with caarlos0/env. With the local chain enabled, contract
// addresses the environment leaves empty are taken from the deployment
// artifact written by the Hardhat deploy script.
package config
