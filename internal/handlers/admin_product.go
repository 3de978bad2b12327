package handlers

import (
	"context"
	"log"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"darpanwears/internal/database"
	"darpanwears/internal/models"
)

/* =======================
   REQUEST MODELS
======================= */

type ProductUpdateRequest struct {
	Name                      *string              `json:"name"`
	Description               *string              `json:"description"`
	Category                  *string              `json:"category"`
	OriginalPrice             *int                 `json:"originalPrice"`
	SalePrice                 *int                 `json:"salePrice"`
	Images                    *[]productImageInput `json:"images"`
	Sizes                     *[]string            `json:"sizes"`
	IsCashOnDeliveryAvailable *bool                `json:"isCashOnDeliveryAvailable"`
	ProductLink               *string              `json:"productLink"`
	VideoURL                  *string              `json:"videoUrl"`
}

func buildImages(inputs []productImageInput) []models.ProductImage {
	images := make([]models.ProductImage, 0, len(inputs))
	for _, in := range inputs {
		images = append(images, models.ProductImage{
			ID:   uuid.NewString(),
			URL:  strings.TrimSpace(in.URL),
			Alt:  strings.TrimSpace(in.Alt),
			Hint: strings.TrimSpace(in.Hint),
		})
	}
	return images
}

/* =======================
   GET (ADMIN) – LIST
======================= */

func GetAllProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, err := parsePaginationParams(
			c.Query("page"),
			c.Query("limit"),
		)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		filter := bson.M{}

		if category := strings.TrimSpace(c.Query("category")); category != "" {
			filter["category"] = category
		}

		if search := strings.TrimSpace(c.Query("search")); search != "" {
			filter["$or"] = []bson.M{
				{"name": bson.M{"$regex": search, "$options": "i"}},
				{"description": bson.M{"$regex": search, "$options": "i"}},
			}
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		total, err := db.Collection("products").CountDocuments(ctx, filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		totalPages := int64(0)
		if total > 0 {
			totalPages = int64(math.Ceil(float64(total) / float64(limit)))
		}

		opts := options.Find().
			SetSkip((page - 1) * limit).
			SetLimit(limit).
			SetSort(bson.D{{Key: "createdAt", Value: -1}})

		cursor, err := db.Collection("products").Find(ctx, filter, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		defer cursor.Close(ctx)

		products := make([]models.Product, 0)
		if err := cursor.All(ctx, &products); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "decode error"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data": products,
			"pagination": gin.H{
				"page":       page,
				"limit":      limit,
				"total":      total,
				"totalPages": totalPages,
			},
		})
	}
}

/* =======================
   CREATE
======================= */

func CreateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/products"

		var input productInput
		if err := c.ShouldBindJSON(&input); err != nil {
			log.Println("CreateProduct bind error:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		if fields := validateProductInput(input); len(fields) > 0 {
			respondFieldErrors(c, route, fields)
			return
		}

		product := models.Product{
			ID:                        primitive.NewObjectID().Hex(),
			Name:                      strings.TrimSpace(input.Name),
			Description:               strings.TrimSpace(input.Description),
			Category:                  strings.TrimSpace(input.Category),
			OriginalPrice:             input.OriginalPrice,
			SalePrice:                 input.SalePrice,
			Images:                    buildImages(input.Images),
			Sizes:                     normalizeSizes(input.Sizes),
			IsCashOnDeliveryAvailable: input.IsCashOnDeliveryAvailable,
			ProductLink:               strings.TrimSpace(input.ProductLink),
			VideoURL:                  strings.TrimSpace(input.VideoURL),
			CreatedAt:                 time.Now(),
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, err := db.Collection("products").InsertOne(ctx, product); err != nil {
			log.Println("CreateProduct insert error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		log.Println("CreateProduct insert success:", product.ID)
		c.JSON(http.StatusCreated, product)
	}
}

/* =======================
   UPDATE (merge-write)
======================= */

func UpdateProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/products/:id"
		id := c.Param("id")

		var req ProductUpdateRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			log.Println("UpdateProduct bind error:", err)
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var existing models.Product
		err := db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			log.Println("UpdateProduct find error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		// Validate the merged result, not just the patch, so a partial edit
		// cannot leave the document violating the form rules.
		merged := mergeProductUpdate(existing, req)
		if fields := validateProductInput(merged); len(fields) > 0 {
			respondFieldErrors(c, route, fields)
			return
		}

		updateSet := bson.M{}
		if req.Name != nil {
			updateSet["name"] = strings.TrimSpace(*req.Name)
		}
		if req.Description != nil {
			updateSet["description"] = strings.TrimSpace(*req.Description)
		}
		if req.Category != nil {
			updateSet["category"] = strings.TrimSpace(*req.Category)
		}
		if req.OriginalPrice != nil {
			updateSet["originalPrice"] = *req.OriginalPrice
		}
		if req.SalePrice != nil {
			updateSet["salePrice"] = *req.SalePrice
		}
		if req.Images != nil {
			updateSet["images"] = buildImages(*req.Images)
		}
		if req.Sizes != nil {
			updateSet["sizes"] = normalizeSizes(*req.Sizes)
		}
		if req.IsCashOnDeliveryAvailable != nil {
			updateSet["isCashOnDeliveryAvailable"] = *req.IsCashOnDeliveryAvailable
		}
		if req.ProductLink != nil {
			updateSet["productLink"] = strings.TrimSpace(*req.ProductLink)
		}
		if req.VideoURL != nil {
			updateSet["videoUrl"] = strings.TrimSpace(*req.VideoURL)
		}

		if len(updateSet) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no fields to update"})
			return
		}

		result, err := db.Collection("products").UpdateOne(
			ctx,
			bson.M{"_id": id},
			bson.M{"$set": updateSet},
		)
		if err != nil {
			log.Println("UpdateProduct update error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		var updated models.Product
		if err := db.Collection("products").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			log.Println("UpdateProduct reread error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		c.JSON(http.StatusOK, updated)
	}
}

func mergeProductUpdate(existing models.Product, req ProductUpdateRequest) productInput {
	merged := productInput{
		Name:                      existing.Name,
		Description:               existing.Description,
		Category:                  existing.Category,
		OriginalPrice:             existing.OriginalPrice,
		SalePrice:                 existing.SalePrice,
		Sizes:                     existing.Sizes,
		IsCashOnDeliveryAvailable: existing.IsCashOnDeliveryAvailable,
		ProductLink:               existing.ProductLink,
		VideoURL:                  existing.VideoURL,
	}
	for _, img := range existing.Images {
		merged.Images = append(merged.Images, productImageInput{URL: img.URL, Alt: img.Alt, Hint: img.Hint})
	}

	if req.Name != nil {
		merged.Name = *req.Name
	}
	if req.Description != nil {
		merged.Description = *req.Description
	}
	if req.Category != nil {
		merged.Category = *req.Category
	}
	if req.OriginalPrice != nil {
		merged.OriginalPrice = *req.OriginalPrice
	}
	if req.SalePrice != nil {
		merged.SalePrice = *req.SalePrice
	}
	if req.Images != nil {
		merged.Images = *req.Images
	}
	if req.Sizes != nil {
		merged.Sizes = *req.Sizes
	}
	if req.IsCashOnDeliveryAvailable != nil {
		merged.IsCashOnDeliveryAvailable = req.IsCashOnDeliveryAvailable
	}
	if req.ProductLink != nil {
		merged.ProductLink = *req.ProductLink
	}
	if req.VideoURL != nil {
		merged.VideoURL = *req.VideoURL
	}
	return merged
}

/* =======================
   DELETE (hard)
======================= */

// DeleteProduct removes the document permanently. Orders referencing it keep
// displaying through their productDetails snapshot.
func DeleteProduct(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		res, err := db.Collection("products").DeleteOne(ctx, bson.M{"_id": c.Param("id")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}
		if res.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "product deleted"})
	}
}

/* =======================
   SEED
======================= */

func SeedProducts(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		count, err := database.SeedProducts(ctx, db)
		if err != nil {
			log.Println("SeedProducts error:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "seed failed", "seeded": count})
			return
		}
		c.JSON(http.StatusOK, gin.H{"seeded": count})
	}
}
