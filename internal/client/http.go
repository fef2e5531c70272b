package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"makeabet/internal/api"
)

// HTTP talks to a running MakeABet API.
type HTTP struct {
	Base string
	HTTP *http.Client
}

func NewHTTP(base string) *HTTP {
	return &HTTP{Base: strings.TrimRight(base, "/"), HTTP: http.DefaultClient}
}

// Health returns the status field of GET /api/health.
func (c *HTTP) Health(ctx context.Context) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/health", nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

// Config fetches GET /api/config.
func (c *HTTP) Config(ctx context.Context) (api.ConfigResponse, error) {
	var out api.ConfigResponse
	if err := c.do(ctx, http.MethodGet, "/api/config", nil, &out); err != nil {
		return api.ConfigResponse{}, err
	}
	return out, nil
}

// Faucet requests test funds for address and returns the transaction
// hashes. A rejected request yields an *APIError.
func (c *HTTP) Faucet(ctx context.Context, address string) ([]string, error) {
	var out api.FaucetResponse
	err := c.do(ctx, http.MethodPost, "/api/faucet", api.FaucetRequest{Address: address}, &out)
	if err != nil {
		return nil, err
	}
	return out.Transactions, nil
}

// APIError is a non-2xx answer whose body carried an error message.
type APIError struct {
	Path    string
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api %s: %d %s", e.Path, e.Status, e.Message)
}

func (c *HTTP) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		buf := new(bytes.Buffer)
		if err := json.NewEncoder(buf).Encode(in); err != nil {
			return err
		}
		body = buf
	}
	req, err := http.NewRequestWithContext(ctx, method, c.Base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		var fr api.FaucetResponse
		if json.NewDecoder(resp.Body).Decode(&fr) == nil && fr.Error != "" {
			return &APIError{Path: path, Status: resp.StatusCode, Message: fr.Error}
		}
		return fmt.Errorf("api %s %s: %s", strings.ToLower(method), path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
