package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"darpanwears/internal/models"
	"darpanwears/internal/settings"
)

// Singleton settings documents live in one collection keyed by well-known
// ids. Absence is a valid state: fetchers return nil and the resolver
// supplies the default.

func fetchSiteSetting(ctx context.Context, db *mongo.Database, key string) (*models.SiteSetting, error) {
	var doc models.SiteSetting
	err := db.Collection("settings").FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func fetchPaymentSetting(ctx context.Context, db *mongo.Database) (*models.PaymentSetting, error) {
	var doc models.PaymentSetting
	err := db.Collection("settings").FindOne(ctx, bson.M{"_id": settings.KeyPayment}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func fetchAIPromptSetting(ctx context.Context, db *mongo.Database) (*models.AIPromptSetting, error) {
	var doc models.AIPromptSetting
	err := db.Collection("settings").FindOne(ctx, bson.M{"_id": settings.KeyAIPrompt}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// codEnabled resolves the store-wide COD toggle. A read failure falls back to
// the default rather than blocking checkout.
func codEnabled(ctx context.Context, db *mongo.Database) bool {
	doc, err := fetchPaymentSetting(ctx, db)
	if err != nil {
		return settings.ResolveCashOnDelivery(nil)
	}
	return settings.ResolveCashOnDelivery(doc)
}
