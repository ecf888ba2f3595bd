package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"co.com.amazonico.express/internal/relay"
	"co.com.amazonico.express/pkg/whatsapp"
	"github.com/labstack/echo/v4"
)

type MessageSender interface {
	SendText(ctx context.Context, to string, body string) (json.RawMessage, error)
}

type relayResult struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// SendWhatsApp proxies {phoneNumber, message} to the Cloud API. The
// provider token stays server-side and provider error bodies are logged
// here, never returned to the caller.
func SendWhatsApp(sender MessageSender, defaultRecipient string) echo.HandlerFunc {
	return func(c echo.Context) error {
		payload := &relay.Payload{}
		if err := c.Bind(payload); err != nil {
			c.Logger().Errorf("decoding relay payload: %+v", err)
			return c.JSON(http.StatusInternalServerError, relayResult{
				Success: false,
				Error:   "Error interno del servidor",
			})
		}

		if payload.PhoneNumber == "" {
			payload.PhoneNumber = defaultRecipient
		}

		data, err := sender.SendText(c.Request().Context(), payload.PhoneNumber, payload.Message)
		if err != nil {
			apiError := &whatsapp.APIError{}
			if errors.As(err, &apiError) {
				c.Logger().Errorf("whatsapp api error: status=%d body=%s", apiError.StatusCode, apiError.Body)
				return c.JSON(http.StatusInternalServerError, relayResult{
					Success: false,
					Error:   "Error al enviar el mensaje",
				})
			}
			c.Logger().Errorf("sending whatsapp message: %+v", err)
			return c.JSON(http.StatusInternalServerError, relayResult{
				Success: false,
				Error:   "Error interno del servidor",
			})
		}

		return c.JSON(http.StatusOK, relayResult{Success: true, Data: data})
	}
}
