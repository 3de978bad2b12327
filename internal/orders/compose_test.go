package orders

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darpanwears/internal/models"
)

var denimJacket = models.Product{
	ID:            "prod_1",
	Name:          "Denim Jacket",
	OriginalPrice: 3499,
	SalePrice:     2999,
	Sizes:         models.SizeList{"S", "M", "L", "XL"},
}

var janeDoe = CustomerSession{
	Name:    "Jane Doe",
	Phone:   "+919876543210",
	Address: "12 MG Road, Pune, MH, 411001",
}

func TestComposeCreatesPendingOrder(t *testing.T) {
	now := time.Date(2026, 8, 28, 10, 30, 0, 0, time.UTC)

	for _, method := range []string{PaymentCash, PaymentOnline} {
		sub, err := Compose(denimJacket, "M", janeDoe, method, true, now)
		require.NoError(t, err)

		assert.False(t, sub.Order.IsCompleted)
		assert.Equal(t, "", sub.Order.CompletedDate)
		assert.Equal(t, now, sub.Order.OrderDate)
		assert.Equal(t, "prod_1", sub.Order.ProductID)
		assert.Equal(t, method, sub.Order.PaymentMethod)
	}
}

func TestComposeSnapshotsProductDetails(t *testing.T) {
	sub, err := Compose(denimJacket, "L", janeDoe, PaymentCash, true, time.Now())
	require.NoError(t, err)

	assert.Equal(t, models.ProductSnapshot{
		Name:  "Denim Jacket",
		Price: 2999,
		Size:  "L",
	}, sub.Order.ProductDetails)
}

func TestComposeRejectsUnknownSize(t *testing.T) {
	_, err := Compose(denimJacket, "XXL", janeDoe, PaymentCash, true, time.Now())
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestComposeRejectsInvalidCustomer(t *testing.T) {
	_, err := Compose(denimJacket, "M", CustomerSession{}, PaymentCash, true, time.Now())
	var verr ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestComposeForcesOnlineWhenCODUnavailable(t *testing.T) {
	codOff := false
	noCODProduct := denimJacket
	noCODProduct.IsCashOnDeliveryAvailable = &codOff

	sub, err := Compose(noCODProduct, "M", janeDoe, PaymentCash, false, time.Now())
	require.NoError(t, err)
	assert.Equal(t, PaymentOnline, sub.Order.PaymentMethod)
	assert.Contains(t, sub.Message, "Payment Method: Online Payment")
	assert.NotContains(t, sub.Message, "Cash on Delivery")
}

func TestComposeRejectsUnknownPaymentMethod(t *testing.T) {
	_, err := Compose(denimJacket, "M", janeDoe, "card", true, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
}

func TestDispatchMessageExactFormat(t *testing.T) {
	got := DispatchMessage(denimJacket, "M", janeDoe, PaymentCash)

	want := strings.Join([]string{
		"New Order from Darpan Wears!",
		"-------------------------",
		"Product ID: prod_1",
		"Product: Denim Jacket",
		"Size: M",
		"Price: ₹2999",
		"Payment Method: Cash on Delivery",
		"-------------------------",
		"Customer Details:",
		"Name: Jane Doe",
		"Phone: +919876543210",
		"Address: 12 MG Road, Pune, MH, 411001",
	}, "\n")

	assert.Equal(t, want, got)
}

func TestDispatchMessageIsDeterministic(t *testing.T) {
	first := DispatchMessage(denimJacket, "M", janeDoe, PaymentOnline)
	second := DispatchMessage(denimJacket, "M", janeDoe, PaymentOnline)
	assert.Equal(t, first, second)
	assert.Contains(t, first, "Payment Method: Online Payment")
}

func TestWhatsAppURL(t *testing.T) {
	got := WhatsAppURL("919332307996", "New Order from Darpan Wears!")
	assert.Equal(t, "https://wa.me/919332307996?text=New%20Order%20from%20Darpan%20Wears%21", got)
}
