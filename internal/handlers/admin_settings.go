package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"darpanwears/internal/models"
	"darpanwears/internal/settings"
)

/* =======================
   SETTINGS (merge-write)
======================= */

type contentSettingRequest struct {
	Content string `json:"content"`
}

type paymentSettingRequest struct {
	IsCashOnDeliveryEnabled *bool `json:"isCashOnDeliveryEnabled" binding:"required"`
}

type aiPromptSettingRequest struct {
	BasePrompt string `json:"basePrompt"`
}

func upsertSetting(ctx context.Context, db *mongo.Database, key string, set bson.M) error {
	_, err := db.Collection("settings").UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": set},
		options.Update().SetUpsert(true),
	)
	return err
}

// UpdateSetting merge-writes one of the settings documents. The key set is
// closed; anything outside it is rejected before touching the store.
func UpdateSetting(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/settings/:key"
		key := c.Param("key")

		if !settings.IsKnownKey(key) {
			respondWithError(c, http.StatusBadRequest, route, "unknown setting")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		switch key {
		case settings.KeyPayment:
			var req paymentSettingRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "isCashOnDeliveryEnabled is required")
				return
			}
			if err := upsertSetting(ctx, db, key, bson.M{"isCashOnDeliveryEnabled": *req.IsCashOnDeliveryEnabled}); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": key, "isCashOnDeliveryEnabled": *req.IsCashOnDeliveryEnabled})

		case settings.KeyAIPrompt:
			var req aiPromptSettingRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid body")
				return
			}
			if len(strings.TrimSpace(req.BasePrompt)) < 20 {
				respondFieldErrors(c, route, map[string]string{
					"basePrompt": "The AI prompt must be at least 20 characters.",
				})
				return
			}
			if err := upsertSetting(ctx, db, key, bson.M{"basePrompt": req.BasePrompt}); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": key, "basePrompt": req.BasePrompt})

		default:
			var req contentSettingRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				respondWithError(c, http.StatusBadRequest, route, "invalid body")
				return
			}
			// The announcement bar hides on empty content, so empty is a
			// legitimate write for every content setting.
			if err := upsertSetting(ctx, db, key, bson.M{"content": req.Content}); err != nil {
				respondWithError(c, http.StatusInternalServerError, route, "db error")
				return
			}
			c.JSON(http.StatusOK, gin.H{"id": key, "content": req.Content})
		}
	}
}

/* =======================
   HERO IMAGES
======================= */

type heroImageRequest struct {
	ImageURL string `json:"imageUrl" binding:"required"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

func CreateHeroImage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/hero-images"

		var req heroImageRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "imageUrl is required")
			return
		}
		if !isValidURL(req.ImageURL) {
			respondFieldErrors(c, route, map[string]string{
				"imageUrl": "Please enter a valid image URL.",
			})
			return
		}

		image := models.HeroImage{
			ID:       uuid.NewString(),
			ImageURL: req.ImageURL,
			Title:    strings.TrimSpace(req.Title),
			Subtitle: strings.TrimSpace(req.Subtitle),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("heroImages").InsertOne(ctx, image); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		c.JSON(http.StatusCreated, image)
	}
}

func DeleteHeroImage(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("heroImages").DeleteOne(ctx, bson.M{"_id": c.Param("id")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "hero image not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "hero image deleted"})
	}
}
