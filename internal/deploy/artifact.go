package deploy

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"makeabet/internal/chain"
	"makeabet/internal/store"
)

// DefaultChainID is the Hardhat node chain id, used when an artifact omits it.
const DefaultChainID = 31337

// DefaultArtifactPath is where the contracts app writes its local deployment,
// relative to the project root.
var DefaultArtifactPath = filepath.Join("apps", "contracts", "deployments", "local.json")

// ErrNoDeployment means no artifact exists at the requested path.
var ErrNoDeployment = errors.New("no local deployment found")

// Artifact records the contracts deployed to the local chain.
type Artifact struct {
	PYUSD     string `json:"pyusd"`
	Market    string `json:"market"`
	Faucet    string `json:"faucet"`
	Timestamp int64  `json:"timestamp,omitempty"` // unix milliseconds
	ChainID   int64  `json:"chainId,omitempty"`
}

// Validate checks that every address is a 20-byte hex string.
func (a Artifact) Validate() error {
	fields := []struct{ name, value string }{
		{"pyusd", a.PYUSD},
		{"market", a.Market},
		{"faucet", a.Faucet},
	}
	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
			continue
		}
		if !chain.IsHexAddress(f.value) {
			return fmt.Errorf("%s %q: %w", f.name, f.value, chain.ErrInvalidAddress)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("invalid deployment file, missing required fields %v", missing)
	}
	return nil
}

// EffectiveChainID returns ChainID or DefaultChainID when unset.
func (a Artifact) EffectiveChainID() int64 {
	if a.ChainID == 0 {
		return DefaultChainID
	}
	return a.ChainID
}

// Load reads and validates the artifact at path.
func Load(path string) (Artifact, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Artifact{}, fmt.Errorf("%w at %s", ErrNoDeployment, path)
	}
	if err != nil {
		return Artifact{}, fmt.Errorf("read deployment: %w", err)
	}
	var a Artifact
	if err := json.Unmarshal(b, &a); err != nil {
		return Artifact{}, fmt.Errorf("parse deployment %s: %w", path, err)
	}
	if err := a.Validate(); err != nil {
		return Artifact{}, err
	}
	return a, nil
}

// Save validates a and writes it to path.
func Save(path string, a Artifact) error {
	if err := a.Validate(); err != nil {
		return err
	}
	return store.WriteJSON(path, a, 0o644)
}
