package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"darpanwears/internal/models"
	"darpanwears/internal/settings"
)

/*
GET /settings/:key
- always succeeds for known keys: absent documents resolve to defaults
*/
func GetSetting(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /settings/:key"
		defer handlePanic(c, route)

		key := c.Param("key")
		if !settings.IsKnownKey(key) {
			respondWithError(c, http.StatusNotFound, route, "unknown setting")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		switch key {
		case settings.KeyPayment:
			doc, err := fetchPaymentSetting(ctx, db)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"id":                      key,
				"isCashOnDeliveryEnabled": settings.ResolveCashOnDelivery(doc),
			})
		case settings.KeyAIPrompt:
			doc, err := fetchAIPromptSetting(ctx, db)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{
				"id":         key,
				"basePrompt": settings.ResolveBasePrompt(doc),
			})
		default:
			doc, err := fetchSiteSetting(ctx, db, key)
			if err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}

			var content string
			switch key {
			case settings.KeyFooter:
				content = settings.ResolveFooter(doc, time.Now())
			case settings.KeyPrivacyPolicy:
				content = settings.ResolvePrivacyPolicy(doc)
			case settings.KeyAnnouncement:
				content = settings.ResolveAnnouncement(doc)
			}
			c.JSON(http.StatusOK, gin.H{"id": key, "content": content})
		}
	}
}

/*
GET /hero-images
- carousel slides in listing order; no ordering field exists beyond it
*/
func GetHeroImages(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /hero-images"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("heroImages").Find(ctx, bson.M{})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		images := make([]models.HeroImage, 0)
		if err := cursor.All(ctx, &images); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, images)
	}
}
