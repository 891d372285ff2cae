package zendesk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client is a short-lived connection to the Zendesk ticket API. The pipeline
// opens one per submission and must Close it on every exit path.
type Client struct {
	baseURL string
	user    string
	token   string
	http    *http.Client
}

func NewClient(baseURL, user, token string) *Client {
	return &Client{
		baseURL: baseURL,
		user:    user,
		token:   token,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *Client) CreateTicket(ctx context.Context, ticket Ticket) error {
	jsonBody, err := json.Marshal(createTicketRequest{Ticket: ticket})
	if err != nil {
		return fmt.Errorf("error al serializar el ticket: %w", err)
	}

	url := fmt.Sprintf("%s/api/v2/tickets.json", c.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	// Zendesk API token auth: user/token as basic-auth username.
	req.SetBasicAuth(c.user+"/token", c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("error de comunicación con zendesk: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("zendesk rechazó el ticket (status %d): %s", resp.StatusCode, string(body))
	}

	return nil
}

// Close releases the underlying connections. Deferred by the caller so the
// connection is returned regardless of how the submission ends.
func (c *Client) Close() {
	c.http.CloseIdleConnections()
}
