package chain

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// LocalKey is the registry key of the development Hardhat node.
const LocalKey = "local-hardhat"

// DefaultKey is used whenever a caller asks for a chain we do not know.
const DefaultKey = "sepolia"

// Type separates EVM chains from Solana clusters.
type Type string

const (
	TypeEVM    Type = "evm"
	TypeSolana Type = "solana"
)

// Metadata describes one chain the template can target.
type Metadata struct {
	Key             string `yaml:"key" json:"key"`
	Name            string `yaml:"name" json:"name"`
	Type            Type   `yaml:"chainType" json:"chainType"`
	NativeSymbol    string `yaml:"nativeSymbol" json:"nativeSymbol"`
	StableSymbol    string `yaml:"stableSymbol" json:"stableSymbol"`
	ChainID         string `yaml:"chainId,omitempty" json:"chainId,omitempty"`
	RPCURL          string `yaml:"rpcUrl" json:"rpcUrl"`
	ExplorerURL     string `yaml:"explorerUrl,omitempty" json:"explorerUrl,omitempty"`
	AddressTemplate string `yaml:"addressTemplate,omitempty" json:"blockExplorerAddressTemplate,omitempty"`
	PYUSDAddress    string `yaml:"pyusdAddress,omitempty" json:"pyusdAddress,omitempty"`
	PYUSDMint       string `yaml:"pyusdMint,omitempty" json:"pyusdMint,omitempty"`
	FaucetURL       string `yaml:"faucetUrl,omitempty" json:"faucetUrl,omitempty"`
	Local           bool   `yaml:"local,omitempty" json:"-"`
	Scaffold        bool   `yaml:"scaffold,omitempty" json:"-"`
}

//go:embed chains.yaml
var registryYAML []byte

var (
	loadOnce sync.Once
	registry []Metadata
	loadErr  error
)

// ParseRegistry decodes a YAML chain list and checks that keys are unique.
func ParseRegistry(b []byte) ([]Metadata, error) {
	var out []Metadata
	if err := yaml.Unmarshal(b, &out); err != nil {
		return nil, fmt.Errorf("decode chain registry: %w", err)
	}
	seen := make(map[string]bool, len(out))
	for i, m := range out {
		if m.Key == "" {
			return nil, fmt.Errorf("chain registry entry %d: missing key", i)
		}
		if seen[m.Key] {
			return nil, fmt.Errorf("chain registry: duplicate key %q", m.Key)
		}
		if m.Type != TypeEVM && m.Type != TypeSolana {
			return nil, fmt.Errorf("chain %q: unknown chain type %q", m.Key, m.Type)
		}
		seen[m.Key] = true
	}
	return out, nil
}

func load() []Metadata {
	loadOnce.Do(func() {
		registry, loadErr = ParseRegistry(registryYAML)
	})
	if loadErr != nil {
		// The registry is compiled in; a decode error is a build defect.
		panic(loadErr)
	}
	return registry
}

// All returns every known chain in registry order.
func All() []Metadata {
	src := load()
	out := make([]Metadata, len(src))
	copy(out, src)
	return out
}

// Lookup returns the chain registered under key.
func Lookup(key string) (Metadata, bool) {
	for _, m := range load() {
		if m.Key == key {
			return m, true
		}
	}
	return Metadata{}, false
}

// Resolve is Lookup with a fallback to the default chain.
func Resolve(key string) Metadata {
	if m, ok := Lookup(key); ok {
		return m
	}
	m, _ := Lookup(DefaultKey)
	return m
}

// ScaffoldTargets lists the chains offered by the scaffolder.
func ScaffoldTargets() []Metadata {
	var out []Metadata
	for _, m := range load() {
		if m.Scaffold {
			out = append(out, m)
		}
	}
	return out
}

// IsScaffoldTarget reports whether key may be passed to the scaffolder.
func IsScaffoldTarget(key string) bool {
	m, ok := Lookup(key)
	return ok && m.Scaffold
}

// ScaffoldTargetKeys returns the scaffold target keys, for help text.
func ScaffoldTargetKeys() []string {
	var keys []string
	for _, m := range ScaffoldTargets() {
		keys = append(keys, m.Key)
	}
	return keys
}

// ExplorerKind selects which explorer page ExplorerURL links to.
type ExplorerKind string

const (
	ExplorerAddress ExplorerKind = "address"
	ExplorerTx      ExplorerKind = "tx"
)

// ExplorerURL links value on the chain's block explorer. The local chain
// has no explorer and always yields "".
func ExplorerURL(key string, kind ExplorerKind, value string) string {
	m, ok := Lookup(key)
	if !ok || m.Local {
		return ""
	}
	switch kind {
	case ExplorerAddress:
		if m.AddressTemplate != "" {
			return strings.ReplaceAll(m.AddressTemplate, "{address}", value)
		}
	case ExplorerTx:
		if m.ExplorerURL != "" {
			return m.ExplorerURL + "/tx/" + value
		}
	}
	return ""
}

// FaucetAvailable reports whether the local faucet can serve key.
func FaucetAvailable(key string, localEnabled bool) bool {
	m, ok := Lookup(key)
	return ok && m.Local && localEnabled
}
