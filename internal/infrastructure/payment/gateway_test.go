package payment

import (
	"context"
	"strings"
	"testing"
)

func TestInitiateBuildsCheckoutURL(t *testing.T) {
	g := NewGateway("https://pay.example.com")
	contractID := "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
	payerID := "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

	url, err := g.Initiate(context.Background(), contractID, payerID, 5500)
	if err != nil {
		t.Fatalf("Initiate: %v", err)
	}
	if !strings.HasPrefix(url, "https://pay.example.com/checkout/CONTR_"+contractID+"_") {
		t.Fatalf("unexpected url: %q", url)
	}
	if !strings.Contains(url, "amount=5500.00") || !strings.Contains(url, "payer="+payerID) {
		t.Fatalf("missing query params: %q", url)
	}
}

func TestInitiateOrderRefsUnique(t *testing.T) {
	g := NewGateway("https://pay.example.com")
	ctx := context.Background()

	a, err := g.Initiate(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "b", 100)
	if err != nil {
		t.Fatal(err)
	}
	b, err := g.Initiate(ctx, "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", "b", 100)
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Fatalf("expected distinct order refs, got %q twice", a)
	}
}

func TestInitiateRejectsNonPositiveAmount(t *testing.T) {
	g := NewGateway("https://pay.example.com")

	for _, amount := range []float64{0, -1} {
		if _, err := g.Initiate(context.Background(), "a", "b", amount); err == nil {
			t.Fatalf("expected error for amount %.2f", amount)
		}
	}
}
