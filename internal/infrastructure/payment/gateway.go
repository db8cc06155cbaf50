// Package payment is the opaque checkout collaborator: the core hands it an
// amount against a contract and gets a redirect reference back. Completion
// arrives later as a callback event.
package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

type Gateway struct {
	// CheckoutBaseURL is where the payer is redirected to complete payment.
	CheckoutBaseURL string
}

func NewGateway(checkoutBaseURL string) *Gateway {
	return &Gateway{CheckoutBaseURL: checkoutBaseURL}
}

// Initiate registers a checkout order and returns the redirect URL. The
// order reference embeds the contract so the callback can be routed back.
func (g *Gateway) Initiate(ctx context.Context, contractID, payerID string, amount float64) (string, error) {
	if amount <= 0 {
		return "", fmt.Errorf("invalid payment amount %.2f", amount)
	}
	orderRef := fmt.Sprintf("CONTR_%s_%s", contractID, uuid.NewString()[:8])
	return fmt.Sprintf("%s/checkout/%s?amount=%.2f&payer=%s",
		g.CheckoutBaseURL, orderRef, amount, payerID), nil
}
