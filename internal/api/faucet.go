package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"makeabet/internal/chain"
	"makeabet/internal/faucet"
)

// FaucetRequest is the body of POST /api/faucet.
type FaucetRequest struct {
	Address string `json:"address"`
}

// FaucetResponse is returned by POST /api/faucet for every outcome.
type FaucetResponse struct {
	OK           bool     `json:"ok"`
	Transactions []string `json:"transactions,omitempty"`
	Error        string   `json:"error,omitempty"`
}

func (s *Server) handleFaucet(w http.ResponseWriter, r *http.Request) {
	var req FaucetRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&req); err != nil || !chain.IsHexAddress(req.Address) {
		writeJSON(w, http.StatusBadRequest, FaucetResponse{Error: faucet.MsgInvalidAddress})
		return
	}

	txs, err := s.funder.Fund(r.Context(), req.Address)
	if err != nil {
		status := faucetStatus(err)
		if status == http.StatusInternalServerError {
			s.log.Error("faucet transfer failed", zap.String("to", req.Address), zap.Error(err))
		} else {
			s.log.Info("faucet request rejected", zap.String("to", req.Address), zap.Error(err))
		}
		writeJSON(w, status, FaucetResponse{Error: faucet.UserMessage(err)})
		return
	}
	writeJSON(w, http.StatusOK, FaucetResponse{OK: true, Transactions: txs})
}

func faucetStatus(err error) int {
	switch {
	case errors.Is(err, chain.ErrInvalidAddress):
		return http.StatusBadRequest
	case errors.Is(err, faucet.ErrBusy), errors.Is(err, faucet.ErrCooldown):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
