// Package relay is the client side of the send-whatsapp endpoint: it
// carries the {phoneNumber, message} payload the relay accepts.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

type Payload struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type Client struct {
	endpoint string
	http     *http.Client
}

func New(endpoint string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{endpoint: endpoint, http: httpClient}
}

// Send posts one message to the relay endpoint. A single attempt is made;
// any non-2xx status or transport failure is an error and the response
// body is not inspected further.
func (c *Client) Send(ctx context.Context, phoneNumber string, message string) error {
	encoded, err := json.Marshal(Payload{PhoneNumber: phoneNumber, Message: message})
	if err != nil {
		return fmt.Errorf("encoding relay payload: %w", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(encoded))
	if err != nil {
		return fmt.Errorf("building relay request: %w", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return fmt.Errorf("calling relay endpoint: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return fmt.Errorf("relay endpoint returned status %d", response.StatusCode)
	}

	return nil
}
