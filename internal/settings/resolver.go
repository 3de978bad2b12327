// Package settings resolves effective values for the site's singleton
// settings documents. Every key has a hardcoded default, so resolution never
// fails: an absent document is a valid state.
package settings

import (
	"fmt"
	"time"

	"darpanwears/internal/models"
)

// Keys of the settings collection's singleton documents. The set is closed;
// admin writes to any other key are rejected.
const (
	KeyFooter        = "footer"
	KeyPrivacyPolicy = "privacyPolicy"
	KeyAnnouncement  = "announcement"
	KeyPayment       = "paymentOptions"
	KeyAIPrompt      = "darpanAssistant"
)

// DefaultPrivacyPolicy is shown until the admin saves their own policy text.
const DefaultPrivacyPolicy = "Welcome to Darpan Wears. We are committed to protecting your privacy. This Privacy Policy explains how we collect, use, disclose, and safeguard your information when you visit our website."

// DefaultBasePrompt is the assistant instruction block used when no override
// is stored.
const DefaultBasePrompt = `You are Darpan 2.0, a friendly and helpful AI shopping assistant for an e-commerce store called Darpan Wears.

Your goal is to answer user questions about products, ordering, shipping, or anything related to the store. Be concise and encouraging.

If the user provides an image, your primary task is to identify the product in the image by comparing it to the product catalog. State which product you think it is and why. If it's a screenshot from social media, acknowledge that and still try to find the matching product.

If no image is provided, answer the user's text-based question.

How to order:
1. Browse products and select one.
2. Check details, select a size, and click 'Order Now'.
3. Fill in your details and click 'Send Order on WhatsApp'.
All orders are placed via WhatsApp. Cash on Delivery is available for most products.`

// DefaultFooter returns the fallback footer line for the given year.
func DefaultFooter(year int) string {
	return fmt.Sprintf("© %d Darpan Wears. All rights reserved.", year)
}

// IsKnownKey reports whether key names one of the five settings documents.
func IsKnownKey(key string) bool {
	switch key {
	case KeyFooter, KeyPrivacyPolicy, KeyAnnouncement, KeyPayment, KeyAIPrompt:
		return true
	}
	return false
}

// ResolveFooter returns the stored footer content, or the copyright default
// when the document is absent.
func ResolveFooter(stored *models.SiteSetting, now time.Time) string {
	if stored == nil {
		return DefaultFooter(now.Year())
	}
	return stored.Content
}

// ResolvePrivacyPolicy returns the stored policy text or the boilerplate
// default.
func ResolvePrivacyPolicy(stored *models.SiteSetting) string {
	if stored == nil {
		return DefaultPrivacyPolicy
	}
	return stored.Content
}

// ResolveAnnouncement returns the announcement bar text. The default is
// empty: the bar is hidden when no announcement exists.
func ResolveAnnouncement(stored *models.SiteSetting) string {
	if stored == nil {
		return ""
	}
	return stored.Content
}

// ResolveCashOnDelivery returns the store-wide COD toggle, enabled by
// default.
func ResolveCashOnDelivery(stored *models.PaymentSetting) bool {
	if stored == nil {
		return true
	}
	return stored.IsCashOnDeliveryEnabled
}

// ResolveBasePrompt returns the assistant system prompt, falling back to the
// built-in instruction block.
func ResolveBasePrompt(stored *models.AIPromptSetting) string {
	if stored == nil || stored.BasePrompt == "" {
		return DefaultBasePrompt
	}
	return stored.BasePrompt
}
