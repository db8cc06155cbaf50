package settlement

import (
	"context"
	"fmt"
)

// PaymentEventType classifies inbound gateway callbacks.
type PaymentEventType string

const (
	PaymentCompleted PaymentEventType = "COMPLETED"
	PaymentFailed    PaymentEventType = "FAILED"
)

// PaymentEvent is one inbound event from the opaque payment collaborator.
type PaymentEvent struct {
	Type       PaymentEventType
	ContractID string
	OrderRef   string
}

// HandlePaymentEvent maps gateway callbacks onto the settlement paths. A
// completed payment settles the repayment; a failed one is only logged, the
// contract stays as it is.
func (u *Usecase) HandlePaymentEvent(ctx context.Context, ev PaymentEvent) error {
	switch ev.Type {
	case PaymentCompleted:
		return u.SettleRepayment(ctx, ev.ContractID)
	case PaymentFailed:
		u.log.WithField("order_ref", ev.OrderRef).
			WithField("contract_id", ev.ContractID).
			Warn("payment failed")
		return nil
	default:
		return fmt.Errorf("unknown payment event type %q", ev.Type)
	}
}
