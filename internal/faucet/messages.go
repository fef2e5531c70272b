package faucet

import (
	"errors"
	"net"
	"strings"
	"syscall"

	"makeabet/internal/chain"
)

// User-facing faucet messages.
const (
	MsgInvalidAddress = "Invalid address format"
	MsgBusy           = "Faucet is busy, please try again shortly"
	MsgCooldown       = "Please wait before requesting again"
	MsgNonce          = "Nonce conflict, please try again"
	MsgFunds          = "Faucet account has insufficient funds"
	MsgGas            = "Gas estimation failed"
	MsgNetwork        = "Network error, is the local chain running?"
	MsgFailed         = "Transfer failed"
)

var causes = []struct {
	substr string
	msg    string
}{
	{"nonce", MsgNonce},
	{"insufficient funds", MsgFunds},
	{"gas", MsgGas},
	{"network", MsgNetwork},
}

// UserMessage maps a Fund error to the text shown to the caller. Node
// errors are classified by the innermost error text so wrapping context
// does not change the outcome.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, chain.ErrInvalidAddress):
		return MsgInvalidAddress
	case errors.Is(err, ErrBusy):
		return MsgBusy
	case errors.Is(err, ErrCooldown):
		return MsgCooldown
	case isNetworkError(err):
		return MsgNetwork
	}
	text := strings.ToLower(rootCause(err).Error())
	for _, c := range causes {
		if strings.Contains(text, c.substr) {
			return c.msg
		}
	}
	return MsgFailed
}

// isNetworkError reports dial and connection failures, the usual sign of a
// stopped node.
func isNetworkError(err error) bool {
	var op *net.OpError
	return errors.As(err, &op) ||
		errors.Is(err, syscall.ECONNREFUSED) ||
		errors.Is(err, syscall.ECONNRESET)
}

func rootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}
