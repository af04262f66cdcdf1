package validation

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bingo_backend/internal/domain"
)

// DefaultTimeout bounds every call to the validation authority.
const DefaultTimeout = 5 * time.Second

// CallHook observes every remote call, successful or not.
type CallHook func(op string, elapsed time.Duration, err error)

// Client talks to the validation authority over its JSON API.
// Each call is made exactly once; there is no retry. Any transport error,
// timeout or non-2xx status is reported as domain.ErrRemoteUnavailable.
type Client struct {
	baseURL    string
	httpClient *http.Client
	hook       CallHook
}

// NewClient creates a client with the given per-call timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// WithHook sets the call observer and returns the client.
func (c *Client) WithHook(hook CallHook) *Client {
	c.hook = hook
	return c
}

// RegisterCard forwards a freshly generated card.
func (c *Client) RegisterCard(ctx context.Context, playerID string, numbers []int) error {
	var resp RegisterCardResponse
	err := c.call(ctx, OpRegisterCard, http.MethodPost, PathRegisterCard, RegisterCardRequest{
		PlayerID:    playerID,
		CardNumbers: numbers,
	}, &resp)
	if err != nil {
		return err
	}
	if !resp.Success {
		return fmt.Errorf("%w: %s: rejected", domain.ErrRemoteUnavailable, OpRegisterCard)
	}
	return nil
}

// ValidateNumber asks the validation authority to mark number on the card.
func (c *Client) ValidateNumber(ctx context.Context, playerID string, number int) (bool, error) {
	var resp ValidateNumberResponse
	err := c.call(ctx, OpValidateNumber, http.MethodPost, PathValidateNumber, ValidateNumberRequest{
		PlayerID: playerID,
		Number:   number,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Success, nil
}

// ValidateBingo sends the full draw history and returns the verdict.
func (c *Client) ValidateBingo(ctx context.Context, playerID string, drawn []int) (bool, error) {
	var resp ValidateBingoResponse
	err := c.call(ctx, OpValidateBingo, http.MethodPost, PathValidateBingo, ValidateBingoRequest{
		PlayerID: playerID,
		Numbers:  drawn,
	}, &resp)
	if err != nil {
		return false, err
	}
	return resp.Bingo, nil
}

// GetCard reads a player's card numbers. Unknown players yield an empty slice.
func (c *Client) GetCard(ctx context.Context, playerID string) ([]int, error) {
	var resp GetCardResponse
	if err := c.call(ctx, OpGetCard, http.MethodGet, PathCard+url.PathEscape(playerID), nil, &resp); err != nil {
		return nil, err
	}
	if resp.CardNumbers == nil {
		return []int{}, nil
	}
	return resp.CardNumbers, nil
}

// Ping checks the liveness endpoint; used by readiness probes.
func (c *Client) Ping(ctx context.Context) error {
	return c.call(ctx, "ping", http.MethodGet, PathHealth, nil, nil)
}

func (c *Client) call(ctx context.Context, op, method, path string, in, out any) (err error) {
	start := time.Now()
	defer func() {
		if c.hook != nil {
			c.hook(op, time.Since(start), err)
		}
	}()

	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: encode request: %w", op, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: build request: %w", op, err)
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrRemoteUnavailable, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("%w: %s: %s - %s", domain.ErrRemoteUnavailable, op, resp.Status, strings.TrimSpace(string(msg)))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: %s: decode response: %v", domain.ErrRemoteUnavailable, op, err)
	}
	return nil
}
