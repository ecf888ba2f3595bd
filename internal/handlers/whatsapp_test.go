package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"co.com.amazonico.express/pkg/whatsapp"
)

type fakeSender struct {
	to   string
	body string
	data json.RawMessage
	err  error
}

func (f *fakeSender) SendText(ctx context.Context, to string, body string) (json.RawMessage, error) {
	f.to = to
	f.body = body
	return f.data, f.err
}

func callSendWhatsApp(sender MessageSender, payload string) *httptest.ResponseRecorder {
	server := echo.New()
	request := httptest.NewRequest(http.MethodPost, "/api/send-whatsapp", strings.NewReader(payload))
	request.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	recorder := httptest.NewRecorder()
	c := server.NewContext(request, recorder)

	_ = SendWhatsApp(sender, "573214859572")(c)
	return recorder
}

func TestSendWhatsAppPassesThroughProviderBody(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{data: json.RawMessage(`{"messages":[{"id":"wamid.X"}]}`)}
	recorder := callSendWhatsApp(sender, `{"phoneNumber":"573001112233","message":"hola"}`)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.JSONEq(`{"success":true,"data":{"messages":[{"id":"wamid.X"}]}}`, recorder.Body.String())
	assert.Equal("573001112233", sender.to)
	assert.Equal("hola", sender.body)
}

func TestSendWhatsAppDefaultsRecipient(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{data: json.RawMessage(`{}`)}
	recorder := callSendWhatsApp(sender, `{"message":"hola"}`)

	assert.Equal(http.StatusOK, recorder.Code)
	assert.Equal("573214859572", sender.to)
}

func TestSendWhatsAppHidesUpstreamRejection(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{err: &whatsapp.APIError{
		StatusCode: http.StatusUnauthorized,
		Body:       []byte(`{"error":{"message":"Invalid OAuth access token"}}`),
	}}
	recorder := callSendWhatsApp(sender, `{"phoneNumber":"573001112233","message":"hola"}`)

	assert.Equal(http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(`{"success":false,"error":"Error al enviar el mensaje"}`, recorder.Body.String())
	assert.NotContains(recorder.Body.String(), "OAuth")
}

func TestSendWhatsAppReportsTransportFault(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
	recorder := callSendWhatsApp(sender, `{"phoneNumber":"573001112233","message":"hola"}`)

	assert.Equal(http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(`{"success":false,"error":"Error interno del servidor"}`, recorder.Body.String())
}

func TestSendWhatsAppRejectsMalformedBody(t *testing.T) {
	assert := assert.New(t)

	sender := &fakeSender{}
	recorder := callSendWhatsApp(sender, `{not json`)

	assert.Equal(http.StatusInternalServerError, recorder.Code)
	assert.JSONEq(`{"success":false,"error":"Error interno del servidor"}`, recorder.Body.String())
	assert.Empty(sender.to)
}
