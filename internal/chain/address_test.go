package chain_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"makeabet/internal/chain"
)

func TestIsHexAddress(t *testing.T) {
	valid := []string{
		"0x1234567890123456789012345678901234567890",
		"0x90F79bf6EB2c4f870365E785982E1f101E93b906",
		"0x" + strings.Repeat("f", 40),
		"0x" + strings.Repeat("A", 40),
	}
	for _, s := range valid {
		assert.True(t, chain.IsHexAddress(s), s)
	}

	invalid := []string{
		"",
		"0x123",
		"1234567890123456789012345678901234567890",
		"0xGGGG567890123456789012345678901234567890",
		"0X1234567890123456789012345678901234567890",
		"0x12345678901234567890123456789012345678901",
		" 0x1234567890123456789012345678901234567890",
	}
	for _, s := range invalid {
		assert.False(t, chain.IsHexAddress(s), s)
	}
}

func TestChecksumAddress(t *testing.T) {
	// Reference vectors from EIP-55.
	vectors := []string{
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
		"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
		"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
		"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
	}
	for _, want := range vectors {
		got, err := chain.ChecksumAddress(strings.ToLower(want))
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := chain.ChecksumAddress("0x123")
	assert.ErrorIs(t, err, chain.ErrInvalidAddress)
}
