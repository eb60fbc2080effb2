package mpesa

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// STKPushPath is the initiation endpoint relative to the gateway base URL.
const STKPushPath = "/api/mpesa/stk-push"

// ErrUnexpectedResponse means the gateway answered with a body that is not a JSON object.
var ErrUnexpectedResponse = errors.New("unexpected stk push response")

type STKPushRequest struct {
	Amount      int64  `json:"amount"`
	Phone       string `json:"phone"`
	Description string `json:"description"`
}

type STKPushResponse struct {
	Success Flag `json:"success"`
}

// Flag decodes loosely typed booleans: true, any non-zero number,
// and the strings "true" or "1". Everything else is false, including
// objects and strings like "yes" that JavaScript would treat as truthy.
type Flag bool

func (f *Flag) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch x := v.(type) {
	case bool:
		*f = Flag(x)
	case float64:
		*f = x != 0
	case string:
		*f = Flag(strings.EqualFold(x, "true") || x == "1")
	default:
		*f = false
	}
	return nil
}

// Client talks to the STK push gateway. It never retries and sends no credentials.
type Client struct {
	http *resty.Client
}

// NewClient builds a client for baseURL. A zero timeout leaves requests unbounded
// apart from the caller's context.
func NewClient(baseURL string, timeout time.Duration) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		rc.SetTimeout(timeout)
	}
	return &Client{http: rc}
}

// STKPush sends one initiation request. Transport failures are returned as
// errors; a reply that cannot be decoded wraps ErrUnexpectedResponse.
// The HTTP status is not inspected: only the success field counts.
func (c *Client) STKPush(ctx context.Context, req STKPushRequest) (STKPushResponse, error) {
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		Post(STKPushPath)
	if err != nil {
		return STKPushResponse{}, fmt.Errorf("stk push: %w", err)
	}

	var out STKPushResponse
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return STKPushResponse{}, fmt.Errorf("%w: status %d: %v", ErrUnexpectedResponse, resp.StatusCode(), err)
	}
	return out, nil
}
