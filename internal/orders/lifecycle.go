// Package orders implements the order lifecycle and the submission composer:
// pure transitions over order values plus the dispatch-message contract for
// the WhatsApp checkout flow. Persistence stays in the handlers.
package orders

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"darpanwears/internal/models"
)

// Payment method identifiers accepted by the checkout flow.
const (
	PaymentCash   = "cash"
	PaymentOnline = "online"
)

// PaymentLabel returns the display label used in the dispatch message.
func PaymentLabel(method string) string {
	if method == PaymentCash {
		return "Cash on Delivery"
	}
	return "Online Payment"
}

// NormalizePaymentMethod validates the chosen payment method against the
// effective cash-on-delivery availability. When COD is unavailable a "cash"
// selection is forced to "online" rather than rejected, mirroring the
// storefront behavior of switching the radio selection out from under the
// user.
func NormalizePaymentMethod(method string, codAvailable bool) (string, error) {
	if method != PaymentCash && method != PaymentOnline {
		return "", ErrInvalidPaymentMethod
	}
	if method == PaymentCash && !codAvailable {
		return PaymentOnline, nil
	}
	return method, nil
}

// MarkCompleted flips an order to completed and stamps the completion date.
// It returns the mutated copy together with the merge-write document for the
// store, so a failed write can be reconciled against the untouched original.
func MarkCompleted(order models.Order, now time.Time) (models.Order, bson.M) {
	order.IsCompleted = true
	order.CompletedDate = now.Format(time.RFC3339)
	return order, bson.M{
		"isCompleted":   true,
		"completedDate": order.CompletedDate,
	}
}

// MarkPending reverts a completed order to pending, clearing the completion
// date back to the literal empty string.
func MarkPending(order models.Order) (models.Order, bson.M) {
	order.IsCompleted = false
	order.CompletedDate = ""
	return order, bson.M{
		"isCompleted":   false,
		"completedDate": "",
	}
}

// CanCancel reports whether the customer-facing cancel action applies.
// Cancellation is a hard delete and is only permitted while the order is
// pending; completed orders can only be removed by an admin.
func CanCancel(order models.Order) bool {
	return !order.IsCompleted
}
