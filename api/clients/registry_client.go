package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ruteri/fee-recipient-registry/api"
	"github.com/ruteri/fee-recipient-registry/interfaces"
)

// ErrNotFound is returned when the server has no address for a pubkey.
var ErrNotFound = errors.New("payout address not found")

// StatusError carries a non-200 response from the registry server.
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("registry server returned error %d: %s", e.StatusCode, e.Message)
}

// RegistryClient talks to a fee recipient registry server over HTTP.
type RegistryClient struct {
	// ServerAddr is the base URL of the registry server
	ServerAddr string

	// HTTPClient defaults to http.DefaultClient
	HTTPClient *http.Client
}

func NewRegistryClient(serverAddr string) *RegistryClient {
	return &RegistryClient{
		ServerAddr: strings.TrimSuffix(serverAddr, "/"),
	}
}

// GetPayoutAddress fetches the payout address registered for key.
// It returns ErrNotFound when none is registered.
func (c *RegistryClient) GetPayoutAddress(ctx context.Context, key interfaces.ValidatorKey) (interfaces.PayoutAddress, error) {
	body, err := c.do(ctx, http.MethodGet, c.pubkeyURL(key), nil)
	if err != nil {
		return interfaces.PayoutAddress{}, err
	}

	address, err := interfaces.NewPayoutAddress(string(body))
	if err != nil {
		return interfaces.PayoutAddress{}, fmt.Errorf("could not parse payout address response: %w", err)
	}
	return address, nil
}

// SetPayoutAddress registers address for key, replacing any previous one.
func (c *RegistryClient) SetPayoutAddress(ctx context.Context, key interfaces.ValidatorKey, address interfaces.PayoutAddress) error {
	_, err := c.do(ctx, http.MethodPost, c.pubkeyURL(key), strings.NewReader(address.String()))
	return err
}

// ListPayoutAddresses fetches every registered entry.
func (c *RegistryClient) ListPayoutAddresses(ctx context.Context) (api.PayoutMap, error) {
	body, err := c.do(ctx, http.MethodGet, c.ServerAddr+api.ListPath, nil)
	if err != nil {
		return nil, err
	}

	var payouts api.PayoutMap
	if err := json.Unmarshal(body, &payouts); err != nil {
		return nil, fmt.Errorf("could not parse payout list response: %w", err)
	}
	return payouts, nil
}

// Healthcheck returns nil when the server reports itself live.
func (c *RegistryClient) Healthcheck(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, c.ServerAddr+api.HealthcheckPath, nil)
	return err
}

func (c *RegistryClient) pubkeyURL(key interfaces.ValidatorKey) string {
	return c.ServerAddr + strings.Replace(api.PubkeyPath, "{pubkey}", key.String(), 1)
}

func (c *RegistryClient) do(ctx context.Context, method, url string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("could not initialize request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "text/plain")
	}

	httpClient := c.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("could not request %s: %w", url, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("could not read response: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return respBody, nil
	case http.StatusNotFound:
		return nil, ErrNotFound
	default:
		return nil, &StatusError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(respBody))}
	}
}
