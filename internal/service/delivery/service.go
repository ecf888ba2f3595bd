package delivery

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"co.com.amazonico.express/internal/model"
	"co.com.amazonico.express/internal/store"
	"co.com.amazonico.express/pkg/message"
)

// RequestIDBound caps the id draw; ids are plain random labels for the
// outbound message and the confirmation page, not unique order numbers.
const RequestIDBound = 1_000_000

type RelaySender interface {
	Send(ctx context.Context, phoneNumber string, message string) error
}

type ReceiptCache interface {
	Get(requestID int) (*model.Receipt, error)
	Set(receipt *model.Receipt) error
	Close() error
}

type service struct {
	relay     RelaySender
	recipient string
	receipts  ReceiptCache
}

func New(relay RelaySender, recipient string) (*service, error) {
	cache, err := store.NewReceiptCache()
	if err != nil {
		return nil, fmt.Errorf("creating receipt cache: %w", err)
	}
	return &service{
		relay:     relay,
		recipient: recipient,
		receipts:  cache,
	}, nil
}

func (s *service) Close() error {
	return s.receipts.Close()
}

// Submit runs one end-to-end submission: validate, draw an id, format the
// message and make a single relay call. On validation failure the field
// errors are returned and no network call happens. On relay failure no
// trace of the attempt survives; the caller may simply resubmit.
func (s *service) Submit(ctx context.Context, req *model.DeliveryRequest) (int, model.FieldErrors, error) {
	if errs := req.Validate(); !errs.Valid() {
		return 0, errs, nil
	}

	requestID := rand.Intn(RequestIDBound)
	formatted := message.Format(req, requestID)

	if err := s.relay.Send(ctx, s.recipient, formatted); err != nil {
		return 0, nil, fmt.Errorf("sending message: %w", err)
	}

	receipt := &model.Receipt{RequestID: requestID, CreatedAt: time.Now().UTC()}
	if err := s.receipts.Set(receipt); err != nil {
		// best effort: the confirmation page falls back to the current date
		return requestID, nil, nil
	}

	return requestID, nil, nil
}

// Receipt looks up when a request id was submitted. Only ids relayed by
// this process are known.
func (s *service) Receipt(requestID int) (*model.Receipt, error) {
	return s.receipts.Get(requestID)
}
