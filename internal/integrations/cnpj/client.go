package cnpj

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the public CNPJ (company tax id) lookup service.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a CNPJ lookup client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Normalize strips formatting ("12.345.678/0001-95" -> "12345678000195")
// and validates the digit count.
func Normalize(cnpj string) (string, error) {
	var digits strings.Builder
	for _, r := range cnpj {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() != 14 {
		return "", fmt.Errorf("%w: %q", ErrInvalidCnpj, cnpj)
	}
	return digits.String(), nil
}

// GetCompany fetches the registered company for a tax id. The id may be
// formatted or bare digits.
func (c *Client) GetCompany(ctx context.Context, rawCnpj string) (*Company, error) {
	normalized, err := Normalize(rawCnpj)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s", c.baseURL, normalized)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decoding
	case http.StatusNotFound:
		return nil, ErrCompanyNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var company Company
	if err := json.NewDecoder(resp.Body).Decode(&company); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &company, nil
}

// GetCompanyWithGracefulDegradation fetches the company, degrading to
// ErrServiceDegraded when the lookup service is unreachable so the desk
// can keep the manually entered company name. Invalid and unknown tax ids
// are business errors and pass through.
func (c *Client) GetCompanyWithGracefulDegradation(ctx context.Context, rawCnpj string) (*Company, error) {
	c.log.Info("Looking up company: cnpj=%s", rawCnpj)

	company, err := c.GetCompany(ctx, rawCnpj)
	if err != nil {
		if err == ErrCompanyNotFound {
			c.log.Info("Company not found: cnpj=%s", rawCnpj)
			return nil, err
		}
		if errors.Is(err, ErrInvalidCnpj) {
			c.log.Warn("Invalid cnpj rejected: %s", rawCnpj)
			return nil, err
		}

		c.log.Error("CNPJ lookup unavailable, applying graceful degradation for cnpj=%s: %v", rawCnpj, err)
		return nil, fmt.Errorf("%w: cnpj=%s, error=%v", ErrServiceDegraded, rawCnpj, err)
	}

	c.log.Info("Successfully looked up company: cnpj=%s, name=%s", rawCnpj, company.DisplayName())
	return company, nil
}
