package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"darpanwears/internal/catalog"
	"darpanwears/internal/models"
	"darpanwears/internal/orders"
)

/* =========================
   LIST
========================= */

func GetOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})

		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Orders could not be fetched"})
			return
		}
		defer cursor.Close(ctx)

		results := make([]models.Order, 0)
		if err := cursor.All(ctx, &results); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse orders"})
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

/* =========================
   MANUAL CREATE
========================= */

// CreateManualOrder lets an admin record an order taken outside the
// storefront (phone, walk-in). It reuses the checkout composer so the record
// matches customer-created orders, but skips the dispatch message.
func CreateManualOrder(db *mongo.Database, feed *OrderFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /admin/api/orders"

		var req createOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "invalid request body")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var product models.Product
		err := db.Collection("products").FindOne(ctx, bson.M{"_id": req.ProductID}).Decode(&product)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		// Manual orders honor the same effective-COD rule as checkout: a cash
		// selection for a COD-disabled product is recorded as online.
		effectiveCOD := catalog.EffectiveCOD(codEnabled(ctx, db), product)
		submission, err := orders.Compose(product, req.Size, req.Customer, req.PaymentMethod, effectiveCOD, time.Now())
		if err != nil {
			var verr orders.ValidationError
			if errors.As(err, &verr) {
				respondFieldErrors(c, route, verr.Fields)
				return
			}
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		order := submission.Order
		order.ID = primitive.NewObjectID().Hex()
		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		feed.Broadcast(order)
		c.JSON(http.StatusCreated, order)
	}
}

/* =========================
   COMPLETED / PENDING TOGGLE
========================= */

type orderStatusRequest struct {
	IsCompleted *bool `json:"isCompleted" binding:"required"`
}

// SetOrderStatus flips an order between completed and pending. The response
// body is the re-read document, so the console can reconcile its optimistic
// state against what the store actually holds.
func SetOrderStatus(db *mongo.Database, feed *OrderFeed) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "PUT /admin/api/orders/:id/status"
		id := c.Param("id")

		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "isCompleted is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		var update bson.M
		if *req.IsCompleted {
			_, update = orders.MarkCompleted(order, time.Now())
		} else {
			_, update = orders.MarkPending(order)
		}

		result, err := db.Collection("orders").UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.MatchedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		var updated models.Order
		if err := db.Collection("orders").FindOne(ctx, bson.M{"_id": id}).Decode(&updated); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		log.Printf("[%s] order %s isCompleted=%t", route, id, updated.IsCompleted)
		feed.Broadcast(updated)
		c.JSON(http.StatusOK, updated)
	}
}

/* =========================
   DELETE (any state)
========================= */

func DeleteOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{"_id": c.Param("id")})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "db error"})
			return
		}

		if result.DeletedCount == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "order deleted"})
	}
}
