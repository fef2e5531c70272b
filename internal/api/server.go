package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"makeabet/internal/config"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 10 * time.Second
	maxBodyBytes      = 1 << 16
)

// Funder sends test funds to an address. *faucet.Faucet implements it.
type Funder interface {
	Fund(ctx context.Context, to string) ([]string, error)
}

// Server serves the MakeABet API.
type Server struct {
	cfg      config.API
	log      *zap.Logger
	funder   Funder
	response ConfigResponse
}

// New builds a Server. funder may be nil, in which case POST /api/faucet is
// not registered; it is also skipped unless the local chain is enabled.
func New(cfg config.API, funder Funder, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{
		cfg:      cfg,
		log:      log,
		funder:   funder,
		response: BuildConfig(cfg),
	}
}

// Handler returns the routed handler wrapped in logging, CORS and rate
// limiting.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", s.handleHealth)
	mux.HandleFunc("GET /api/config", s.handleConfig)
	if s.FaucetEnabled() {
		mux.HandleFunc("POST /api/faucet", s.handleFaucet)
	}

	limiter := newRateLimiter(s.cfg.RateLimitMax, s.cfg.RateLimitWindow)
	var h http.Handler = mux
	h = limiter.middleware(h)
	h = corsHandler(h)
	h = accessLog(s.log, h)
	return h
}

// FaucetEnabled reports whether POST /api/faucet is served. It agrees with
// the faucetAvailable field of /api/config.
func (s *Server) FaucetEnabled() bool {
	return s.response.FaucetAvailable && s.funder != nil
}

// ListenAndServe runs the HTTP server until ctx ends.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is ListenAndServe on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
		ErrorLog:          zap.NewStdLog(s.log),
	}
	s.log.Info("API listening", zap.String("addr", ln.Addr().String()),
		zap.Bool("faucet", s.FaucetEnabled()))

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ln)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleConfig(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.response)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
