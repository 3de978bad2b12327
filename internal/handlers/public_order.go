package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"darpanwears/internal/catalog"
	"darpanwears/internal/models"
	"darpanwears/internal/orders"
)

/* =========================
   REQUEST DTOs
========================= */

type createOrderRequest struct {
	ProductID     string                 `json:"productId" binding:"required"`
	Size          string                 `json:"size" binding:"required"`
	PaymentMethod string                 `json:"paymentMethod" binding:"required"`
	Customer      orders.CustomerSession `json:"customer" binding:"required"`
}

/* =========================
   CREATE ORDER (checkout)
========================= */

// CreateOrder runs the submission composer flow: validate, compose, persist
// best-effort, and always return the dispatch message. A failed persist is
// reported in the response but never blocks the WhatsApp hand-off, which is
// the customer's primary success criterion.
func CreateOrder(db *mongo.Database, feed *OrderFeed, whatsappNumber string) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders"
		defer handlePanic(c, route)

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

		// Best-effort persist: composing already succeeded, so the message is
		// returned even when the write fails.
		order := submission.Order
		order.ID = primitive.NewObjectID().Hex()
		persisted := true
		if _, err := db.Collection("orders").InsertOne(ctx, order); err != nil {
			persisted = false
			log.Printf("[%s] order persist failed, continuing with dispatch: %v", route, err)
		} else {
			feed.Broadcast(order)
		}

		c.JSON(http.StatusCreated, gin.H{
			"orderId":     order.ID,
			"message":     submission.Message,
			"whatsappUrl": orders.WhatsAppURL(whatsappNumber, submission.Message),
			"persisted":   persisted,
		})
	}
}

/* =========================
   ORDER TRACKING
========================= */

// TrackOrders returns every order placed with the given contact number, the
// equality-filtered lookup behind the customer's tracking page.
func TrackOrders(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /orders/track"
		defer handlePanic(c, route)

		contact := strings.TrimSpace(c.Query("contact"))
		if contact == "" {
			respondWithError(c, http.StatusBadRequest, route, "contact is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		cursor, err := db.Collection("orders").Find(ctx, bson.M{"customerContact": contact})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		defer cursor.Close(ctx)

		results := make([]models.Order, 0)
		if err := cursor.All(ctx, &results); err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "decode error")
			return
		}

		c.JSON(http.StatusOK, results)
	}
}

/* =========================
   CUSTOMER CANCEL
========================= */

// CancelOrder is the customer-facing cancellation: permitted only while the
// order is pending, and implemented as a hard delete. The deletion filter
// re-checks isCompleted so a concurrent completion cannot race the cancel.
func CancelOrder(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /orders/:id/cancel"
		defer handlePanic(c, route)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var order models.Order
		err := db.Collection("orders").FindOne(ctx, bson.M{"_id": c.Param("id")}).Decode(&order)
		if err == mongo.ErrNoDocuments {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}

		if !orders.CanCancel(order) {
			respondWithError(c, http.StatusConflict, route, orders.ErrNotCancellable.Error())
			return
		}

		result, err := db.Collection("orders").DeleteOne(ctx, bson.M{
			"_id":         order.ID,
			"isCompleted": false,
		})
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "db error")
			return
		}
		if result.DeletedCount == 0 {
			respondWithError(c, http.StatusConflict, route, orders.ErrNotCancellable.Error())
			return
		}

		log.Printf("[%s] order cancelled: %s", route, order.ID)
		c.JSON(http.StatusOK, gin.H{"message": "order cancelled"})
	}
}
