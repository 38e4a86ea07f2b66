package client

import (
	"crypto/tls"
	"time"
)

const (
	defaultTimeout = 30 * time.Second
)

// Options for talking to the platform API.
type Options struct {
	// Timeout for a single HTTP request (not an overall job).
	// Defaults to 30s.
	Timeout time.Duration

	// TLSConfig (optional) eg. to trust a private CA
	TLSConfig *tls.Config

	// RateLimit is the most requests per second we'll send, 0 means no limit.
	// The platform throttles clients that exceed its own limit.
	RateLimit float64

	// Burst of requests allowed over RateLimit. Defaults to 1.
	Burst int
}

func (o *Options) SetDefaults() {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.Burst <= 0 {
		o.Burst = 1
	}
}
