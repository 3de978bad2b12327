package settings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"darpanwears/internal/models"
)

func TestResolveFooterDefaultUsesYear(t *testing.T) {
	now := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "© 2026 Darpan Wears. All rights reserved.", ResolveFooter(nil, now))
}

func TestResolveFooterStored(t *testing.T) {
	stored := &models.SiteSetting{ID: KeyFooter, Content: "Custom footer"}
	assert.Equal(t, "Custom footer", ResolveFooter(stored, time.Now()))
}

func TestResolvePrivacyPolicyDefault(t *testing.T) {
	assert.Equal(t, DefaultPrivacyPolicy, ResolvePrivacyPolicy(nil))
	stored := &models.SiteSetting{Content: "Our policy"}
	assert.Equal(t, "Our policy", ResolvePrivacyPolicy(stored))
}

func TestResolveAnnouncementDefaultIsEmpty(t *testing.T) {
	assert.Equal(t, "", ResolveAnnouncement(nil))
	stored := &models.SiteSetting{Content: "Festive sale!"}
	assert.Equal(t, "Festive sale!", ResolveAnnouncement(stored))
}

func TestResolveCashOnDeliveryDefaultsTrue(t *testing.T) {
	assert.True(t, ResolveCashOnDelivery(nil))
	assert.False(t, ResolveCashOnDelivery(&models.PaymentSetting{IsCashOnDeliveryEnabled: false}))
	assert.True(t, ResolveCashOnDelivery(&models.PaymentSetting{IsCashOnDeliveryEnabled: true}))
}

func TestResolveBasePromptDefault(t *testing.T) {
	assert.Equal(t, DefaultBasePrompt, ResolveBasePrompt(nil))
	assert.Equal(t, DefaultBasePrompt, ResolveBasePrompt(&models.AIPromptSetting{}))
	stored := &models.AIPromptSetting{BasePrompt: "You are a terse assistant."}
	assert.Equal(t, "You are a terse assistant.", ResolveBasePrompt(stored))
}

func TestIsKnownKey(t *testing.T) {
	for _, key := range []string{KeyFooter, KeyPrivacyPolicy, KeyAnnouncement, KeyPayment, KeyAIPrompt} {
		assert.True(t, IsKnownKey(key))
	}
	assert.False(t, IsKnownKey("theme"))
	assert.False(t, IsKnownKey(""))
}
