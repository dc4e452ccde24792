package guestregistry

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the people registry of the front-desk backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a guest registry client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetGuest fetches a registered person by registry id.
func (c *Client) GetGuest(ctx context.Context, guestID int64) (*Guest, error) {
	url := fmt.Sprintf("%s/internal/people/%d", c.baseURL, guestID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrGuestNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var guest Guest
	if err := json.NewDecoder(resp.Body).Decode(&guest); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &guest, nil
}

// GetGuestWithGracefulDegradation fetches a registered person, degrading
// to ErrServiceDegraded when the registry is unreachable. A missing guest
// is a business error and is passed through; everything else must not
// block reservation creation, the caller falls back to the guest data
// typed in at the desk.
func (c *Client) GetGuestWithGracefulDegradation(ctx context.Context, guestID int64) (*Guest, error) {
	c.log.Info("Fetching guest from registry: guest_id=%d", guestID)

	guest, err := c.GetGuest(ctx, guestID)
	if err != nil {
		if err == ErrGuestNotFound {
			c.log.Info("Guest not registered: guest_id=%d", guestID)
			return nil, err
		}

		c.log.Error("Guest registry unavailable, applying graceful degradation for guest_id=%d: %v", guestID, err)
		return nil, fmt.Errorf("%w: guest_id=%d, error=%v", ErrServiceDegraded, guestID, err)
	}

	c.log.Info("Successfully fetched guest: guest_id=%d, name=%s", guestID, guest.Name)
	return guest, nil
}
