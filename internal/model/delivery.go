package model

import "unicode/utf8"

const (
	MsgNameTooShort    = "El nombre debe tener al menos 2 caracteres."
	MsgPhoneInvalid    = "Ingresa un número de teléfono válido."
	MsgAddressTooShort = "La dirección debe tener al menos 5 caracteres."
)

// DeliveryRequest holds one request from the solicitar form. It is never
// persisted; it lives for the duration of a single submission.
type DeliveryRequest struct {
	SenderName      string `json:"senderName" form:"senderName"`
	SenderPhone     string `json:"senderPhone" form:"senderPhone"`
	PickupAddress   string `json:"pickupAddress" form:"pickupAddress"`
	RecipientName   string `json:"recipientName" form:"recipientName"`
	RecipientPhone  string `json:"recipientPhone" form:"recipientPhone"`
	DeliveryAddress string `json:"deliveryAddress" form:"deliveryAddress"`
	Instructions    string `json:"instructions" form:"instructions"`
}

// FieldErrors maps a form field name to its validation message.
type FieldErrors map[string]string

func (e FieldErrors) Valid() bool {
	return len(e) == 0
}

// Validate checks every field independently and reports all offending
// fields at once. An empty result means the request may be formatted and
// sent. Instructions carries no constraint.
func (r *DeliveryRequest) Validate() FieldErrors {
	errs := FieldErrors{}
	if utf8.RuneCountInString(r.SenderName) < 2 {
		errs["senderName"] = MsgNameTooShort
	}
	if utf8.RuneCountInString(r.SenderPhone) < 10 {
		errs["senderPhone"] = MsgPhoneInvalid
	}
	if utf8.RuneCountInString(r.PickupAddress) < 5 {
		errs["pickupAddress"] = MsgAddressTooShort
	}
	if utf8.RuneCountInString(r.RecipientName) < 2 {
		errs["recipientName"] = MsgNameTooShort
	}
	if utf8.RuneCountInString(r.RecipientPhone) < 10 {
		errs["recipientPhone"] = MsgPhoneInvalid
	}
	if utf8.RuneCountInString(r.DeliveryAddress) < 5 {
		errs["deliveryAddress"] = MsgAddressTooShort
	}
	return errs
}
