package models

// SiteSetting is a singleton settings document holding a single content
// string (footer, privacyPolicy, announcement).
type SiteSetting struct {
	ID      string `bson:"_id,omitempty" json:"id"`
	Content string `bson:"content" json:"content"`
}

// PaymentSetting is the singleton store-wide payment toggle document.
type PaymentSetting struct {
	ID                      string `bson:"_id,omitempty" json:"id"`
	IsCashOnDeliveryEnabled bool   `bson:"isCashOnDeliveryEnabled" json:"isCashOnDeliveryEnabled"`
}

// AIPromptSetting overrides the assistant's default system prompt.
type AIPromptSetting struct {
	ID         string `bson:"_id,omitempty" json:"id"`
	BasePrompt string `bson:"basePrompt" json:"basePrompt"`
}

// HeroImage is one slide of the homepage carousel. Display order is the
// listing order returned by the store.
type HeroImage struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	ImageURL string `bson:"imageUrl" json:"imageUrl"`
	Title    string `bson:"title,omitempty" json:"title,omitempty"`
	Subtitle string `bson:"subtitle,omitempty" json:"subtitle,omitempty"`
}
