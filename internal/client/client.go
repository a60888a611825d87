// Package client is the Go consumer of the catalog API. It unwraps the
// response envelope so callers deal with plain values and errors.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	apihttp "github.com/angularstore/catalog/internal/http"
	"github.com/angularstore/catalog/pkg/result"
)

// ErrBackendUnavailable reports that the API could not be reached at all, as
// opposed to the API answering with a failed envelope.
var ErrBackendUnavailable = errors.New("catalog backend unavailable")

// APIError is a failed envelope turned into an error.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// ProductParams carries the fields for create and update calls.
type ProductParams struct {
	Name        string
	Description string
	Price       float64
	Stock       int
}

type Client struct {
	baseURL string
	httpc   *http.Client
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) List(ctx context.Context) ([]apihttp.ProductResponse, error) {
	return decodeData[[]apihttp.ProductResponse](c.do(ctx, http.MethodGet, "/api/products", nil))
}

func (c *Client) Get(ctx context.Context, id int64) (apihttp.ProductResponse, error) {
	return decodeData[apihttp.ProductResponse](c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil))
}

func (c *Client) Create(ctx context.Context, params ProductParams) (apihttp.ProductResponse, error) {
	return decodeData[apihttp.ProductResponse](c.do(ctx, http.MethodPost, "/api/products", requestBody(params)))
}

func (c *Client) Update(ctx context.Context, id int64, params ProductParams) error {
	return decodeVoid(c.do(ctx, http.MethodPut, fmt.Sprintf("/api/products/%d", id), requestBody(params)))
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return decodeVoid(c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/products/%d", id), nil))
}

// Healthy reports whether the API and its store answer the readiness probe.
func (c *Client) Healthy(ctx context.Context) error {
	return decodeVoid(c.do(ctx, http.MethodGet, "/healthz", nil))
}

func requestBody(params ProductParams) any {
	return apihttp.CreateProductRequest{
		Name:        params.Name,
		Description: params.Description,
		Price:       &params.Price,
		Stock:       &params.Stock,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body any) (int, []byte, error) {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return 0, nil, fmt.Errorf("marshal request body: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("new request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: read response: %v", ErrBackendUnavailable, err)
	}

	return resp.StatusCode, raw, nil
}

func decodeData[T any](status int, raw []byte, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}

	var res result.Result[T]
	if jsonErr := json.Unmarshal(raw, &res); jsonErr != nil {
		return zero, fmt.Errorf("%w: unexpected response: %v", ErrBackendUnavailable, jsonErr)
	}

	if !res.Success() {
		return zero, &APIError{StatusCode: status, Message: res.Message()}
	}

	data, ok := res.Data()
	if !ok {
		return zero, fmt.Errorf("%w: success response without data", ErrBackendUnavailable)
	}
	return data, nil
}

func decodeVoid(status int, raw []byte, err error) error {
	if err != nil {
		return err
	}

	var res result.Void
	if jsonErr := json.Unmarshal(raw, &res); jsonErr != nil {
		return fmt.Errorf("%w: unexpected response: %v", ErrBackendUnavailable, jsonErr)
	}

	if !res.Success() {
		return &APIError{StatusCode: status, Message: res.Message()}
	}
	return nil
}
