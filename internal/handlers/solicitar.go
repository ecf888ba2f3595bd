package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"co.com.amazonico.express/internal/model"
	"github.com/labstack/echo/v4"
)

const submitFailedBanner = "No pudimos procesar tu solicitud. Por favor intenta de nuevo o contacta directamente con un agente."

type DeliveryService interface {
	Submit(ctx context.Context, req *model.DeliveryRequest) (int, model.FieldErrors, error)
	Receipt(requestID int) (*model.Receipt, error)
}

type solicitarPage struct {
	Form   *model.DeliveryRequest
	Errors model.FieldErrors
	Banner string
}

func SolicitarForm() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "solicitar.html", solicitarPage{
			Form: &model.DeliveryRequest{},
		})
	}
}

// SubmitSolicitud handles one form submission. Validation failures
// re-render the form with inline errors and make no relay call; relay
// failures re-render with a banner and the entered values intact, so the
// user can simply resubmit.
func SubmitSolicitud(deliveryService DeliveryService) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := &model.DeliveryRequest{}
		if err := c.Bind(req); err != nil {
			return fmt.Errorf("binding form values: %w", err)
		}

		requestID, fieldErrors, err := deliveryService.Submit(c.Request().Context(), req)
		if !fieldErrors.Valid() {
			return c.Render(http.StatusOK, "solicitar.html", solicitarPage{
				Form:   req,
				Errors: fieldErrors,
			})
		}
		if err != nil {
			c.Logger().Errorf("submitting delivery request: %+v", err)
			return c.Render(http.StatusOK, "solicitar.html", solicitarPage{
				Form:   req,
				Banner: submitFailedBanner,
			})
		}

		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/pedido/%d", requestID))
	}
}

type pedidoPage struct {
	RequestID int
	Date      time.Time
}

// Pedido renders the confirmation view for a request id. Submission times
// come from the in-process receipt cache; unknown ids fall back to the
// current date rather than failing, since ids are labels, not records.
func Pedido(deliveryService DeliveryService) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			return echo.ErrNotFound
		}

		date := time.Now().UTC()
		if receipt, err := deliveryService.Receipt(requestID); err == nil {
			date = receipt.CreatedAt
		}

		return c.Render(http.StatusOK, "pedido.html", pedidoPage{
			RequestID: requestID,
			Date:      date,
		})
	}
}
