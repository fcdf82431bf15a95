package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the client to the remote news and enrichment APIs.
const UserAgent = "go-summary-news/1.0"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an independent HTTPClient with its own connection
// pool, the given base URL and request timeout. A non-positive timeout keeps
// resty's default (no timeout).
//
// Example usage:
//
//	client := utils.NewHTTPClient("https://newsapi.org", 15*time.Second)
//	resp, err := client.R().
//	    SetQueryParam("country", "us").
//	    Get("/v2/top-headlines")
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
