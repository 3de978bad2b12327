package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"darpanwears/internal/assistant"
	"darpanwears/internal/config"
	"darpanwears/internal/database"
	"darpanwears/internal/handlers"
	"darpanwears/internal/middleware"
	"darpanwears/internal/settings"
)

func main() {
	config.Load()

	client, err := database.Connect(config.AppEnv.MongoURI)
	if err != nil {
		log.Fatal(err)
	}

	db := client.Database(config.AppEnv.DBName)

	log.Println("MongoDB connected to:", db.Name())

	if err := database.EnsureProductIndexes(db); err != nil {
		log.Printf("product index warning: %v", err)
	}
	if err := database.EnsureOrderIndexes(db); err != nil {
		log.Printf("order index warning: %v", err)
	}

	assistClient := assistant.New(
		config.AppEnv.AssistantAPIURL,
		config.AppEnv.AssistantAPIKey,
		config.AppEnv.AssistantTimeout,
		basePromptResolver(db),
	)

	orderFeed := handlers.NewOrderFeed()

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/products", handlers.GetProducts(db))
	r.GET("/products/:id", handlers.GetProduct(db))
	r.GET("/settings/:key", handlers.GetSetting(db))
	r.GET("/hero-images", handlers.GetHeroImages(db))

	r.POST("/orders", handlers.CreateOrder(db, orderFeed, config.AppEnv.WhatsAppNumber))
	r.GET("/orders/track", handlers.TrackOrders(db))
	r.POST("/orders/:id/cancel", handlers.CancelOrder(db))

	r.POST("/assistant", handlers.AskAssistant(db, assistClient))

	r.POST("/admin/login", handlers.AdminLogin(
		config.AppEnv.AdminPasswordHash,
		config.AppEnv.JWTSecret,
		config.AppEnv.AccessTokenTTL,
	))

	admin := r.Group("/admin/api")
	admin.Use(middleware.AdminAuth(config.AppEnv.JWTSecret))
	{
		admin.GET("/products", handlers.GetAllProducts(db))
		admin.POST("/products", handlers.CreateProduct(db))
		admin.PUT("/products/:id", handlers.UpdateProduct(db))
		admin.DELETE("/products/:id", handlers.DeleteProduct(db))
		admin.POST("/seed", handlers.SeedProducts(db))

		admin.GET("/orders", handlers.GetOrders(db))
		admin.POST("/orders", handlers.CreateManualOrder(db, orderFeed))
		admin.PUT("/orders/:id/status", handlers.SetOrderStatus(db, orderFeed))
		admin.DELETE("/orders/:id", handlers.DeleteOrder(db))
		admin.GET("/orders/export", handlers.ExportOrdersToExcel(db))
		admin.GET("/orders/feed", orderFeed.Handler())

		admin.PUT("/settings/:key", handlers.UpdateSetting(db))
		admin.POST("/hero-images", handlers.CreateHeroImage(db))
		admin.DELETE("/hero-images/:id", handlers.DeleteHeroImage(db))
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}

// basePromptResolver re-reads the stored assistant prompt on every call so an
// admin override takes effect without a restart.
func basePromptResolver(db *mongo.Database) func() string {
	return func() string {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		defer cancel()

		var doc struct {
			BasePrompt string `bson:"basePrompt"`
		}
		err := db.Collection("settings").
			FindOne(ctx, bson.M{"_id": settings.KeyAIPrompt}).
			Decode(&doc)
		if err != nil || doc.BasePrompt == "" {
			return settings.DefaultBasePrompt
		}
		return doc.BasePrompt
	}
}
