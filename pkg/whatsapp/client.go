// Package whatsapp is a minimal client for the WhatsApp Business Cloud API
// text-message endpoint.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const DefaultBaseURL = "https://graph.facebook.com/v22.0"

// SendTextRequest is the Cloud API payload for a plain text message.
type SendTextRequest struct {
	MessagingProduct string      `json:"messaging_product"`
	RecipientType    string      `json:"recipient_type"`
	To               string      `json:"to"`
	Type             string      `json:"type"`
	Text             TextContent `json:"text"`
}

type TextContent struct {
	PreviewURL bool   `json:"preview_url"`
	Body       string `json:"body"`
}

// APIError is a non-2xx answer from the Cloud API. Body is kept for
// server-side logging only and must never be forwarded to a caller.
type APIError struct {
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("whatsapp api returned status %d", e.StatusCode)
}

type Config struct {
	BaseURL    string // defaults to DefaultBaseURL
	Token      string
	BusinessID string
	HTTPClient *http.Client
}

type Client struct {
	baseURL    string
	token      string
	businessID string
	http       *http.Client
}

func New(config Config) *Client {
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    baseURL,
		token:      config.Token,
		businessID: config.BusinessID,
		http:       httpClient,
	}
}

// SendText posts one text message to the recipient and returns the raw
// provider response body. A non-2xx answer is returned as *APIError; any
// other failure is a transport error. Exactly one upstream call is made.
func (c *Client) SendText(ctx context.Context, to string, body string) (json.RawMessage, error) {
	payload := SendTextRequest{
		MessagingProduct: "whatsapp",
		RecipientType:    "individual",
		To:               to,
		Type:             "text",
		Text: TextContent{
			PreviewURL: false,
			Body:       body,
		},
	}

	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding message payload: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", c.baseURL, c.businessID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	request.Header.Set("Authorization", "Bearer "+c.token)
	request.Header.Set("Content-Type", "application/json")

	response, err := c.http.Do(request)
	if err != nil {
		return nil, fmt.Errorf("calling whatsapp api: %w", err)
	}
	defer response.Body.Close()

	responseBody, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		return nil, &APIError{StatusCode: response.StatusCode, Body: responseBody}
	}

	return json.RawMessage(responseBody), nil
}
