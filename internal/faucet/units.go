package faucet

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseUnits converts a decimal amount such as "1.5" into base units with
// the given number of decimals.
func ParseUnits(amount string, decimals int) (*big.Int, error) {
	s := strings.TrimSpace(amount)
	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("parse units %q: empty amount", amount)
	}
	if !digits(whole) || !digits(frac) {
		return nil, fmt.Errorf("parse units %q: not a decimal number", amount)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("parse units %q: more than %d decimals", amount, decimals)
	}
	n, ok := new(big.Int).SetString(whole+frac+strings.Repeat("0", decimals-len(frac)), 10)
	if !ok {
		return nil, fmt.Errorf("parse units %q: not a decimal number", amount)
	}
	return n, nil
}

func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
