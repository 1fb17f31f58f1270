// Package httpclient is a thin generic JSON-over-HTTP wrapper, shared by
// proverclient and publish, adapted from the teacher's http package.
package httpclient

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/davidt58/peptide-event-verifier/errors"
)

// Client wraps http.Client with JSON marshaling and structured error
// handling.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a new Client with a 30-second timeout.
func NewClient(baseURL string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    baseURL,
	}
}

// NewClientWithTimeout creates a new Client with a custom timeout.
func NewClientWithTimeout(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Request performs an HTTP request, marshaling body as JSON if present and
// returning the raw response body.
func (c *Client) Request(method, path string, headers map[string]string, body interface{}) ([]byte, error) {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		bodyBytes, err := json.Marshal(body)
		if err != nil {
			return nil, errors.ErrJSONMarshalFailed(err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req, err := http.NewRequest(method, url, bodyReader)
	if err != nil {
		return nil, errors.ErrHTTPRequestFailed(err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.ErrHTTPRequestFailed(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.ErrHTTPRequestFailed(err)
	}

	if resp.StatusCode >= 400 {
		return nil, parseAPIError(resp.StatusCode, respBody)
	}

	return respBody, nil
}

// Get performs a GET request.
func (c *Client) Get(path string, headers map[string]string) ([]byte, error) {
	return c.Request(http.MethodGet, path, headers, nil)
}

// Post performs a POST request.
func (c *Client) Post(path string, headers map[string]string, body interface{}) ([]byte, error) {
	return c.Request(http.MethodPost, path, headers, body)
}

// GetJSON performs a GET request and unmarshals the response into target.
func (c *Client) GetJSON(path string, headers map[string]string, target interface{}) error {
	data, err := c.Get(path, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.ErrJSONUnmarshalFailed(err)
	}
	return nil
}

// PostJSON performs a POST request and unmarshals the response into target.
func (c *Client) PostJSON(path string, headers map[string]string, body interface{}, target interface{}) error {
	data, err := c.Post(path, headers, body)
	if err != nil {
		return err
	}
	if target == nil {
		return nil
	}
	if err := json.Unmarshal(data, target); err != nil {
		return errors.ErrJSONUnmarshalFailed(err)
	}
	return nil
}

// ErrorResponse is the expected shape of a non-2xx JSON error body.
type ErrorResponse struct {
	Error   string      `json:"error"`
	Code    *string     `json:"code,omitempty"`
	Details interface{} `json:"details,omitempty"`
}

func parseAPIError(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		return errors.NewVerifierAPIError(statusCode, string(body))
	}
	if errResp.Code != nil {
		return errors.NewVerifierAPIErrorWithDetails(statusCode, errResp.Error, *errResp.Code, errResp.Details)
	}
	return errors.NewVerifierAPIError(statusCode, errResp.Error)
}

// GetBaseURL returns the client's base URL.
func (c *Client) GetBaseURL() string {
	return c.baseURL
}

// SetTimeout sets the underlying http.Client's timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}
