package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// Client is a typed client for the remote restaurant API. A cookie jar
// on the underlying http.Client keeps the session cookie set by the
// auth endpoints, so later calls are authenticated the same way the
// browser was with withCredentials.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

func (c *Client) Login(ctx context.Context, creds Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/customer/auth/login", creds, nil)
}

func (c *Client) Register(ctx context.Context, creds Credentials) error {
	return c.do(ctx, http.MethodPost, "/api/customer/auth/register", creds, nil)
}

func (c *Client) RefetchUser(ctx context.Context) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodGet, "/api/customer/auth/refetch", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodGet, "/api/customer/auth/logout", nil, nil)
}

// StaffLogin authenticates against the staff endpoint. The response is
// always treated as a staff account regardless of what the server
// echoes back.
func (c *Client) StaffLogin(ctx context.Context, creds Credentials) (*User, error) {
	var u User
	if err := c.do(ctx, http.MethodPost, "/api/staff/auth/login", creds, &u); err != nil {
		return nil, err
	}
	u.IsStaff = true
	return &u, nil
}

func (c *Client) FetchMenu(ctx context.Context) ([]MenuItem, error) {
	var items []MenuItem
	if err := c.do(ctx, http.MethodGet, "/menu", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) CreateOrder(ctx context.Context, req CreateOrderRequest) (*Order, error) {
	var o Order
	if err := c.do(ctx, http.MethodPost, "/order/api/orders", req, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) PendingOrders(ctx context.Context, email string) ([]Order, error) {
	var orders []Order
	path := "/order/pending/" + url.PathEscape(email)
	if err := c.do(ctx, http.MethodGet, path, nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) AllOrders(ctx context.Context) ([]Order, error) {
	var orders []Order
	if err := c.do(ctx, http.MethodGet, "/order/api/allorders", nil, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status OrderStatus) error {
	path := "/order/api/orders/" + url.PathEscape(orderID) + "/status"
	return c.do(ctx, http.MethodPut, path, UpdateStatusRequest{Status: status}, nil)
}

// do runs one request against the remote API. Non-2xx responses become
// *StatusError; a body that fails to decode into out becomes
// ErrMalformedResponse.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s failed: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		log.Debug().Int("status", resp.StatusCode).Str("path", path).Msg("non-success response from API")
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(raw))}
	}

	if out == nil {
		// Тело успешного ответа здесь не нужно, просто дочитываем его.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s %s: %v", ErrMalformedResponse, method, path, err)
	}

	return nil
}
