package openai

import (
	"net/http"

	"github.com/sashabaranov/go-openai"
)

// NewClient builds a client for the given key. An empty baseURL keeps the
// library default (api.openai.com); a nil httpClient keeps its default transport.
func NewClient(apiKey, baseURL string, httpClient *http.Client) *openai.Client {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return openai.NewClientWithConfig(config)
}
