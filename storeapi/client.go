// Package storeapi is a thin HTTP client for the Store API: placing, reading and deleting
// orders, and querying the inventory.
package storeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/storeqa/store-contract-tests/framework"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	orderPath     = "/order"
	inventoryPath = "/inventory"
)

// Client issues requests against a fixed base URL such as http://host:8080/api/v3/store.
//
// Every method makes exactly one request and returns whatever the service sent back. A status
// code indicating failure is not an error; only transport problems are.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     framework.Logger
}

// Response is the status, headers and raw body of a single response.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Text returns the body as a string.
func (r Response) Text() string {
	return string(r.Body)
}

// JSON parses the body as JSON. It returns a null value if the body is not valid JSON.
func (r Response) JSON() ldvalue.Value {
	return ldvalue.Parse(r.Body)
}

// DecodeJSON unmarshals the body into target.
func (r Response) DecodeJSON(target interface{}) error {
	if err := json.Unmarshal(r.Body, target); err != nil {
		return fmt.Errorf("malformed JSON in response body %q: %w", truncate(r.Text()), err)
	}
	return nil
}

// NewClient creates a Client. If httpClient is nil, http.DefaultClient is used. If logger is
// nil, nothing is logged.
func NewClient(baseURL string, httpClient *http.Client, logger framework.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = framework.NullLogger()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// WithLogger returns a copy of the client that logs to a different logger. This is how each
// test gets its own request log.
func (c *Client) WithLogger(logger framework.Logger) *Client {
	c1 := *c
	if logger == nil {
		logger = framework.NullLogger()
	}
	c1.logger = logger
	return &c1
}

// OrderURL returns the URL of the order resource with the given ID.
func (c *Client) OrderURL(id int64) string {
	return fmt.Sprintf("%s%s/%d", c.baseURL, orderPath, id)
}

// InventoryURL returns the URL of the inventory resource.
func (c *Client) InventoryURL() string {
	return c.baseURL + inventoryPath
}

// CreateOrder sends POST /order with the payload encoded as JSON. The payload is usually an
// Order, but any JSON-encodable value is accepted so that malformed orders can be sent too.
func (c *Client) CreateOrder(payload interface{}) (Response, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Response{}, fmt.Errorf("could not encode order payload: %w", err)
	}
	return c.do(http.MethodPost, c.baseURL+orderPath, data)
}

// GetOrder sends GET /order/{id}.
func (c *Client) GetOrder(id int64) (Response, error) {
	return c.do(http.MethodGet, c.OrderURL(id), nil)
}

// DeleteOrder sends DELETE /order/{id}.
func (c *Client) DeleteOrder(id int64) (Response, error) {
	return c.do(http.MethodDelete, c.OrderURL(id), nil)
}

// GetInventory sends GET /inventory.
func (c *Client) GetInventory() (Response, error) {
	return c.do(http.MethodGet, c.InventoryURL(), nil)
}

func (c *Client) do(method, url string, body []byte) (Response, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequest(method, url, reader)
	if err != nil {
		return Response{}, err
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
		c.logger.Printf("%s %s\n%s", method, url, string(body))
	} else {
		c.logger.Printf("%s %s", method, url)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("%s %s failed: %s", method, url, err)
		return Response{}, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, fmt.Errorf("error reading response body from %s %s: %w", method, url, err)
	}
	if len(data) > 0 {
		c.logger.Printf("Response status %d\n%s", resp.StatusCode, string(data))
	} else {
		c.logger.Printf("Response status %d (no body)", resp.StatusCode)
	}
	return Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func truncate(s string) string {
	const maxLength = 200
	if len(s) > maxLength {
		return s[:maxLength] + "..."
	}
	return s
}
