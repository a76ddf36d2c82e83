package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultClientTimeout caps outbound requests that carry no context deadline.
const DefaultClientTimeout = 5 * time.Second

// userAgent identifies the gateway to downstream dependencies.
const userAgent = "api-gateway"

// HTTPClient embeds *resty.Client so callers get its full request builder.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns an independent client with [DefaultClientTimeout],
// the gateway User-Agent and retries disabled. Probes must fail fast; a
// caller that wants retries configures them explicitly.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().
//	    SetContext(ctx).
//	    Get("https://xyz.supabase.co/rest/v1/health_check")
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetTimeout(DefaultClientTimeout).
		SetRetryCount(0).
		SetHeader("User-Agent", userAgent)

	return &HTTPClient{Client: client}
}
