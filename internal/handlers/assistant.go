package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"darpanwears/internal/assistant"
	"darpanwears/internal/models"
)

type assistantRequest struct {
	Question     string `json:"question" binding:"required"`
	PhotoDataURI string `json:"photoDataUri"`
}

// AskAssistant answers a shopping question. The catalog is fetched fresh for
// every call and serialized into the prompt; no conversation state is kept
// between calls. A 502 tells the storefront to roll back its optimistic user
// message.
func AskAssistant(db *mongo.Database, client *assistant.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /assistant"
		defer handlePanic(c, route)

		var req assistantRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respondWithError(c, http.StatusBadRequest, route, "question is required")
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		products := make([]models.Product, 0)
		cursor, err := db.Collection("products").Find(ctx, bson.M{})
		if err == nil {
			if decodeErr := cursor.All(ctx, &products); decodeErr != nil {
				products = nil
			}
		} else {
			// The assistant can still answer general questions without the
			// catalog.
			log.Printf("[%s] catalog fetch failed: %v", route, err)
		}

		answer, err := client.Ask(c.Request.Context(), req.Question, products, req.PhotoDataURI)
		if err != nil {
			if errors.Is(err, assistant.ErrUnavailable) {
				respondWithError(c, http.StatusBadGateway, route, "assistant unavailable")
				return
			}
			respondWithError(c, http.StatusInternalServerError, route, "assistant error")
			return
		}

		c.JSON(http.StatusOK, gin.H{"answer": answer})
	}
}
