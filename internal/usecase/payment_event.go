package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/kaiunruh/coffee-cart/internal/entity"
	"github.com/kaiunruh/coffee-cart/internal/logging"
)

// HandleCompletedPayment turns a verified, classified payment event into a
// push notification. Dispatch is best-effort: a failed push is logged and
// swallowed so the provider is still acknowledged and does not redeliver.
type HandleCompletedPayment struct {
	notifier Notifier
	title    string
}

func NewHandleCompletedPayment(notifier Notifier, title string) *HandleCompletedPayment {
	return &HandleCompletedPayment{notifier: notifier, title: title}
}

func (uc *HandleCompletedPayment) Execute(ctx context.Context, p entity.CompletedPayment) {
	body := FormatNotification(p)
	if err := uc.notifier.Send(ctx, uc.title, body); err != nil {
		logging.FromCtx(ctx).Error("push dispatch failed", "err", err)
	}
}

// FormatNotification composes the notification body:
//
//	Payment received: 19.99 USD
//	Order: Latte x2, Espresso x1        (only when a summary was attached)
//	This is a pickup order.             (or the shipping destination)
func FormatNotification(p entity.CompletedPayment) string {
	lines := []string{
		fmt.Sprintf("Payment received: %.2f %s",
			float64(p.AmountCents)/100, strings.ToUpper(p.Currency)),
	}
	if p.OrderSummary != "" {
		lines = append(lines, "Order: "+p.OrderSummary)
	}
	switch {
	case p.Delivery == entity.DeliveryShip && p.Address != nil:
		lines = append(lines, "Shipping to: "+p.Address.DestinationLine())
	case p.Delivery == entity.DeliveryShip:
		lines = append(lines, "This order will be shipped.")
	default:
		lines = append(lines, "This is a pickup order.")
	}
	return strings.Join(lines, "\n")
}
