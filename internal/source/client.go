package source

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appErrors "github.com/unclebandit/customer-pipeline/internal/errors"
	"github.com/unclebandit/customer-pipeline/internal/model"
)

// ClientInterface defines the single-page fetch used by the ingestion service
type ClientInterface interface {
	FetchPage(page, limit int) ([]model.RawCustomer, error)
}

// Client is the concrete HTTP client for the paginated source API
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a source client with a bounded per-fetch timeout
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type pageResponse struct {
	Data  []model.RawCustomer `json:"data"`
	Total int                 `json:"total"`
	Page  int                 `json:"page"`
	Limit int                 `json:"limit"`
}

// FetchPage fetches one page of raw customers. Invalid paging values are
// floored to page 1 / limit 10 before the request goes out. No retries;
// any failure goes straight back to the caller.
func (c *Client) FetchPage(page, limit int) ([]model.RawCustomer, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	url := fmt.Sprintf("%s/api/customers?page=%d&limit=%d", c.BaseURL, page, limit)

	resp, err := c.HTTPClient.Get(url)
	if err != nil {
		return nil, appErrors.NewTransport(url, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, appErrors.NewTransport(url, resp.StatusCode, nil)
	}

	var body pageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, appErrors.NewMalformedResponse(url, err.Error())
	}
	if body.Data == nil {
		return nil, appErrors.NewMalformedResponse(url, "response missing data array")
	}

	return body.Data, nil
}

var _ ClientInterface = (*Client)(nil)
