package whatsapp

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSendTextSuccess(t *testing.T) {
	assert := assert.New(t)

	var received SendTextRequest
	var authorization string
	var path string

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path = r.URL.Path
		authorization = r.Header.Get("Authorization")
		err := json.NewDecoder(r.Body).Decode(&received)
		assert.Nil(err)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"messages":[{"id":"wamid.X"}]}`))
	}))
	defer upstream.Close()

	client := New(Config{
		BaseURL:    upstream.URL,
		Token:      "test-token",
		BusinessID: "573042612549118",
	})

	data, err := client.SendText(context.Background(), "573214859572", "hola")
	assert.Nil(err)
	assert.JSONEq(`{"messages":[{"id":"wamid.X"}]}`, string(data))

	assert.Equal("/573042612549118/messages", path)
	assert.Equal("Bearer test-token", authorization)
	assert.Equal("whatsapp", received.MessagingProduct)
	assert.Equal("individual", received.RecipientType)
	assert.Equal("573214859572", received.To)
	assert.Equal("text", received.Type)
	assert.Equal("hola", received.Text.Body)
	assert.False(received.Text.PreviewURL)
}

func TestSendTextUpstreamRejection(t *testing.T) {
	assert := assert.New(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Invalid OAuth access token"}}`))
	}))
	defer upstream.Close()

	client := New(Config{BaseURL: upstream.URL, Token: "bad", BusinessID: "573042612549118"})

	data, err := client.SendText(context.Background(), "573214859572", "hola")
	assert.Nil(data)

	apiError := &APIError{}
	assert.True(errors.As(err, &apiError))
	assert.Equal(http.StatusUnauthorized, apiError.StatusCode)
	assert.Contains(string(apiError.Body), "Invalid OAuth access token")
}

func TestSendTextTransportFailure(t *testing.T) {
	assert := assert.New(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	upstream.Close()

	client := New(Config{BaseURL: upstream.URL, Token: "t", BusinessID: "573042612549118"})

	_, err := client.SendText(context.Background(), "573214859572", "hola")
	assert.NotNil(err)

	apiError := &APIError{}
	assert.False(errors.As(err, &apiError))
}
