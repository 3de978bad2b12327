package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"darpanwears/internal/models"
	"darpanwears/internal/orders"
)

// ExportOrdersToExcel streams the full order book as an xlsx download.
func ExportOrdersToExcel(db *mongo.Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 15*time.Second)
		defer cancel()

		opts := options.Find().SetSort(bson.D{{Key: "orderDate", Value: -1}})
		cursor, err := db.Collection("orders").Find(ctx, bson.M{}, opts)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		defer cursor.Close(ctx)

		var allOrders []models.Order
		if err := cursor.All(ctx, &allOrders); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse orders"})
			return
		}

		file := xlsx.NewFile()
		sheet, err := file.AddSheet("Orders")
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create Excel sheet"})
			return
		}

		headers := []string{
			"ID", "Product", "Size", "Price", "Payment Method",
			"Customer", "Phone", "Address", "Order Date",
			"Completed", "Completed Date",
		}
		headerRow := sheet.AddRow()
		for _, h := range headers {
			headerRow.AddCell().SetValue(h)
		}

		for _, o := range allOrders {
			row := sheet.AddRow()

			row.AddCell().SetValue(o.ID)
			row.AddCell().SetValue(o.ProductDetails.Name)
			row.AddCell().SetValue(o.ProductDetails.Size)
			row.AddCell().SetValue(o.ProductDetails.Price)
			row.AddCell().SetValue(orders.PaymentLabel(o.PaymentMethod))
			row.AddCell().SetValue(o.CustomerName)
			row.AddCell().SetValue(o.CustomerContact)
			row.AddCell().SetValue(o.CustomerAddress)
			row.AddCell().SetValue(o.OrderDate.Format("2006-01-02 15:04:05"))
			row.AddCell().SetValue(o.IsCompleted)
			row.AddCell().SetValue(o.CompletedDate)
		}

		c.Header("Content-Disposition", "attachment; filename=orders.xlsx")
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		c.Header("Content-Transfer-Encoding", "binary")
		c.Header("Expires", "0")

		if err := file.Write(c.Writer); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to write Excel file"})
			return
		}
	}
}
