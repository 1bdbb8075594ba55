package app

import (
	"net"
	"net/http"
	"time"
)

// newHTTPClient returns the client shared by the page fetch and the optional
// brief call. Per-request deadlines come from contexts, so the client itself
// has no overall timeout. A zero timeout also leaves the dial and TLS
// handshake unbounded.
func newHTTPClient(timeout time.Duration) *http.Client {
	var stepTimeout time.Duration
	if timeout > 0 {
		stepTimeout = min(timeout, 10*time.Second)
	}
	transport := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   stepTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          4,
		IdleConnTimeout:       90 * time.Second,
		TLSHandshakeTimeout:   stepTimeout,
		ExpectContinueTimeout: 1 * time.Second,
	}
	return &http.Client{Transport: transport}
}
