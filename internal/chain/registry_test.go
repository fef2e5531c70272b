package chain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeabet/internal/chain"
)

func TestLookup_KnownAndUnknown(t *testing.T) {
	m, ok := chain.Lookup("arbitrum-sepolia")
	require.True(t, ok)
	assert.Equal(t, "421614", m.ChainID)
	assert.Equal(t, chain.TypeEVM, m.Type)

	_, ok = chain.Lookup("mainnet")
	assert.False(t, ok)

	assert.Equal(t, chain.DefaultKey, chain.Resolve("mainnet").Key)
}

func TestScaffoldTargets(t *testing.T) {
	assert.Equal(t,
		[]string{"sepolia", "arbitrum-sepolia", "base-sepolia"},
		chain.ScaffoldTargetKeys())
	assert.True(t, chain.IsScaffoldTarget("base-sepolia"))
	assert.False(t, chain.IsScaffoldTarget(chain.LocalKey))
	assert.False(t, chain.IsScaffoldTarget("solana-devnet"))
}

func TestExplorerURL(t *testing.T) {
	addr := "0x90F79bf6EB2c4f870365E785982E1f101E93b906"

	assert.Equal(t,
		"https://sepolia.etherscan.io/address/"+addr,
		chain.ExplorerURL("sepolia", chain.ExplorerAddress, addr))
	assert.Equal(t,
		"https://sepolia.arbiscan.io/tx/0xabc",
		chain.ExplorerURL("arbitrum-sepolia", chain.ExplorerTx, "0xabc"))
	assert.Equal(t,
		"https://explorer.solana.com/address/abc?cluster=devnet",
		chain.ExplorerURL("solana-devnet", chain.ExplorerAddress, "abc"))

	assert.Empty(t, chain.ExplorerURL(chain.LocalKey, chain.ExplorerTx, "0xabc"))
	assert.Empty(t, chain.ExplorerURL("nope", chain.ExplorerTx, "0xabc"))
}

func TestFaucetAvailable(t *testing.T) {
	assert.True(t, chain.FaucetAvailable(chain.LocalKey, true))
	assert.False(t, chain.FaucetAvailable(chain.LocalKey, false))
	assert.False(t, chain.FaucetAvailable("sepolia", true))
}

func TestParseRegistry_Errors(t *testing.T) {
	cases := map[string]string{
		"missing key": "- name: x\n  chainType: evm\n",
		"duplicate":   "- key: a\n  chainType: evm\n- key: a\n  chainType: evm\n",
		"bad type":    "- key: a\n  chainType: cosmos\n",
		"not yaml":    "{{",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := chain.ParseRegistry([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	all := chain.All()
	require.NotEmpty(t, all)
	all[0].Name = "mutated"
	assert.False(t, strings.EqualFold(chain.All()[0].Name, "mutated"))
}
