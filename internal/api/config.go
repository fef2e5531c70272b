package api

import (
	"makeabet/internal/chain"
	"makeabet/internal/config"
)

// ConfigResponse is the body of GET /api/config.
type ConfigResponse struct {
	PayPalClientID    string  `json:"paypalClientId"`
	PythEndpoint      string  `json:"pythEndpoint"`
	TargetChain       string  `json:"targetChain"`
	ChainType         string  `json:"chainType"`
	PYUSDAddress      *string `json:"pyusdAddress,omitempty"`
	PYUSDMint         *string `json:"pyusdMint,omitempty"`
	RPCURL            string  `json:"rpcUrl"`
	LocalChainEnabled bool    `json:"localChainEnabled"`
	FaucetAvailable   bool    `json:"faucetAvailable"`
	ExplorerURL       string  `json:"explorerUrl,omitempty"`
	MarketAddress     string  `json:"marketAddress,omitempty"`
}

// BuildConfig derives the public client configuration. For the local
// chain, values the environment leaves empty come from the LOCAL_* set.
func BuildConfig(c config.API) ConfigResponse {
	resp := ConfigResponse{
		PayPalClientID:    c.PayPalClientID,
		PythEndpoint:      c.PythEndpoint,
		TargetChain:       c.TargetChain,
		ChainType:         c.ChainType,
		LocalChainEnabled: c.Local.Enabled,
		FaucetAvailable:   chain.FaucetAvailable(c.TargetChain, c.Local.Enabled),
		MarketAddress:     c.MarketAddress,
	}
	if meta, ok := chain.Lookup(c.TargetChain); ok {
		resp.ExplorerURL = meta.ExplorerURL
	}

	local := c.Local.Enabled && c.TargetChain == chain.LocalKey
	if chain.Type(c.ChainType) == chain.TypeSolana {
		mint := c.PYUSDMint
		resp.PYUSDMint = &mint
		resp.RPCURL = c.SolanaRPCURL
		return resp
	}

	addr := c.PYUSDAddress
	resp.RPCURL = c.EVMRPCURL
	if local {
		addr = orDefault(addr, c.Local.PYUSDAddress)
		resp.RPCURL = orDefault(resp.RPCURL, c.Local.RPCURL)
		resp.MarketAddress = orDefault(resp.MarketAddress, c.Local.MarketAddress)
	}
	resp.PYUSDAddress = &addr
	return resp
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
