package http

import (
	"net"
	"net/http"
	"time"
)

// NewHTTPClient returns an HTTP client tuned for calls to the quote API.
//
// Settings:
//   - Proxy: honours HTTP_PROXY / HTTPS_PROXY
//   - Dialer.Timeout: TCP connect timeout, shorter than the default
//   - Dialer.KeepAlive: how long reusable TCP connections are kept
//   - MaxIdleConns / MaxIdleConnsPerHost: idle pool; every call goes to one host
//   - IdleConnTimeout: how long an idle connection is kept
//   - TLSHandshakeTimeout: upper bound for the HTTPS handshake
//   - Client.Timeout: whole-request timeout, supplied by the caller
//
// http.DefaultClient has no timeout, so always go through this constructor.
func NewHTTPClient(timeout time.Duration) *http.Client {
	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:        20,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &http.Client{Timeout: timeout, Transport: t}
}
