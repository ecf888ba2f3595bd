// Package message renders delivery requests into the text block the
// dispatch operators read on WhatsApp. The section labels and field order
// are fixed; operators parse the raw text by eye, so the layout must not
// drift.
package message

import (
	"fmt"
	"strings"

	"co.com.amazonico.express/internal/model"
)

// Format builds the outbound message for a request. It is pure: the same
// request and id always produce the same string. The instructions section
// is appended only when the field is non-empty.
func Format(req *model.DeliveryRequest, id int) string {
	var b strings.Builder

	fmt.Fprintf(&b, "*NUEVA SOLICITUD DE DOMICILIO*\nID: %d\n\n", id)

	fmt.Fprintf(&b, "*DATOS DE RECOGIDA:*\n")
	fmt.Fprintf(&b, "Nombre: %s\n", req.SenderName)
	fmt.Fprintf(&b, "Teléfono: %s\n", req.SenderPhone)
	fmt.Fprintf(&b, "Dirección: %s\n\n", req.PickupAddress)

	fmt.Fprintf(&b, "*DATOS DE ENTREGA:*\n")
	fmt.Fprintf(&b, "Nombre: %s\n", req.RecipientName)
	fmt.Fprintf(&b, "Teléfono: %s\n", req.RecipientPhone)
	fmt.Fprintf(&b, "Dirección: %s\n", req.DeliveryAddress)

	if req.Instructions != "" {
		fmt.Fprintf(&b, "*INSTRUCCIONES ADICIONALES:*\n%s", req.Instructions)
	}

	return strings.TrimSpace(b.String())
}
