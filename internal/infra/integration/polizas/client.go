package polizas

import (
	"bytes"
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
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// RecuperarDetalle posts the structured query and returns the policy detail
// with the holder's personal data.
func (c *Client) RecuperarDetalle(ctx context.Context, consulta ConsultaPoliza) (*DetallePoliza, error) {
	jsonBody, err := json.Marshal(consulta)
	if err != nil {
		return nil, fmt.Errorf("error al serializar la consulta de póliza: %w", err)
	}

	url := fmt.Sprintf("%s/detalle", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error de comunicación con el servicio de pólizas: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("servicio de pólizas respondió status %d", resp.StatusCode)
	}

	var detalle DetallePoliza
	if err := json.NewDecoder(resp.Body).Decode(&detalle); err != nil {
		return nil, fmt.Errorf("error al leer respuesta del servicio de pólizas: %w", err)
	}

	return &detalle, nil
}
