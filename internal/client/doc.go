// Package client is an HTTP client for the MakeABet API.
//
// All requests are JSON over HTTP and accept a context for cancellation and
// deadlines. Non-2xx statuses are returned as errors; when the server sent
// a message (faucet rejections, rate limiting) it is kept in an *APIError.
package client
