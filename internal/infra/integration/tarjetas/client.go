package tarjetas

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client talks to the card lookup service. The contract is minimal: GET with
// the card number appended to the configured URL, and on 200 the raw body is
// the customer id.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetClienteID resolves a card number to the customer id. Any status other
// than 200 is an error; the caller decides how much that matters.
func (c *Client) GetClienteID(ctx context.Context, numTarjeta string) (string, error) {
	url := c.baseURL + numTarjeta

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("error de comunicación con el servicio de tarjetas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("servicio de tarjetas respondió status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error al leer respuesta del servicio de tarjetas: %w", err)
	}

	return string(body), nil
}
