package orders

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"darpanwears/internal/models"
)

// Submission is the result of composing an order: the record to persist and
// the dispatch message for the WhatsApp deep link. The two are deliberately
// independent so a failed persist never blocks message delivery.
type Submission struct {
	Order   models.Order
	Message string
}

// Compose validates the checkout inputs and builds the pending order record
// plus the dispatch message. The payment method is normalized against
// codAvailable inside Compose, so a cash selection with cash on delivery
// unavailable becomes an online order on every path that creates one. The
// returned order has no id; the store assigns one on insert.
func Compose(product models.Product, selectedSize string, session CustomerSession, paymentMethod string, codAvailable bool, now time.Time) (Submission, error) {
	if err := ValidateCustomer(session); err != nil {
		return Submission{}, err
	}
	if !product.HasSize(selectedSize) {
		return Submission{}, ErrInvalidSize
	}
	method, err := NormalizePaymentMethod(paymentMethod, codAvailable)
	if err != nil {
		return Submission{}, err
	}

	order := models.Order{
		ProductID:       product.ID,
		CustomerName:    session.Name,
		CustomerContact: session.Phone,
		CustomerAddress: session.Address,
		OrderDate:       now,
		IsCompleted:     false,
		CompletedDate:   "",
		PaymentMethod:   method,
		ProductDetails: models.ProductSnapshot{
			Name:  product.Name,
			Price: product.SalePrice,
			Size:  selectedSize,
		},
	}

	return Submission{
		Order:   order,
		Message: DispatchMessage(product, selectedSize, session, method),
	}, nil
}

// DispatchMessage renders the merchant notification text. The field order and
// labels are a fixed contract with the merchant's WhatsApp workflow; identical
// inputs always produce byte-identical output.
func DispatchMessage(product models.Product, selectedSize string, session CustomerSession, paymentMethod string) string {
	return fmt.Sprintf(`New Order from Darpan Wears!
-------------------------
Product ID: %s
Product: %s
Size: %s
Price: ₹%d
Payment Method: %s
-------------------------
Customer Details:
Name: %s
Phone: %s
Address: %s`,
		product.ID,
		product.Name,
		selectedSize,
		product.SalePrice,
		PaymentLabel(paymentMethod),
		session.Name,
		session.Phone,
		session.Address,
	)
}

// WhatsAppURL builds the pre-filled deep link that hands the dispatch message
// to the messaging app. No delivery confirmation exists beyond this URL.
func WhatsAppURL(merchantNumber, message string) string {
	// QueryEscape encodes spaces as '+', which wa.me renders literally in the
	// chat box; use %20 instead.
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", merchantNumber, encoded)
}
