package bravo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

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

// GetDatosCliente fetches the profile for a customer id. An empty id still
// issues the call and lets the service reject it; degrading on that failure
// is the caller's job, not ours.
func (c *Client) GetDatosCliente(ctx context.Context, idCliente string) (*DatosCliente, error) {
	url := c.baseURL + idCliente

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error de comunicación con BRAVO: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("BRAVO respondió status %d", resp.StatusCode)
	}

	var cliente DatosCliente
	if err := json.NewDecoder(resp.Body).Decode(&cliente); err != nil {
		return nil, fmt.Errorf("error al leer respuesta de BRAVO: %w", err)
	}

	return &cliente, nil
}
