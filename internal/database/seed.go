package database

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"darpanwears/internal/models"
)

var seedProducts = []models.Product{
	{
		ID:            "prod_1",
		Name:          "Denim Jacket",
		Description:   "A timeless denim jacket that adds a cool, casual layer to any outfit. Made from 100% durable cotton, it features classic button-front styling, chest pockets, and a comfortable fit that gets better with every wear.",
		Category:      "Jackets",
		OriginalPrice: 3499,
		SalePrice:     2999,
		Images: []models.ProductImage{{
			ID:   "prod_1_img",
			URL:  "https://images.unsplash.com/photo-1495105787522-5334e3ffa0ef?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Alt:  "A stylish denim jacket on a hanger.",
			Hint: "denim jacket",
		}},
		Sizes: models.SizeList{"S", "M", "L", "XL"},
	},
	{
		ID:            "prod_2",
		Name:          "Classic White Tee",
		Description:   "The perfect wardrobe essential. Our Classic White Tee is crafted from ultra-soft premium cotton for a breathable, comfortable feel. Its versatile design makes it ideal for layering or wearing on its own.",
		Category:      "T-Shirts",
		OriginalPrice: 1299,
		SalePrice:     899,
		Images: []models.ProductImage{{
			ID:   "prod_2_img",
			URL:  "https://images.unsplash.com/photo-1643881080033-e67069c5e4df?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Alt:  "A classic white t-shirt folded neatly.",
			Hint: "white t-shirt",
		}},
		Sizes: models.SizeList{"S", "M", "L", "XL", "XXL"},
	},
	{
		ID:            "prod_3",
		Name:          "Black Skinny Jeans",
		Description:   "Elevate your style with our Black Skinny Jeans. Designed to flatter, these jeans offer a sleek, modern silhouette with just the right amount of stretch for all-day comfort. A versatile staple for any wardrobe.",
		Category:      "Jeans",
		OriginalPrice: 2999,
		SalePrice:     2499,
		Images: []models.ProductImage{{
			ID:   "prod_3_img",
			URL:  "https://images.unsplash.com/photo-1531920724711-2e0aeed7aecf?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Alt:  "A pair of black skinny jeans.",
			Hint: "black jeans",
		}},
		Sizes: models.SizeList{"28", "30", "32", "34", "36"},
	},
	{
		ID:            "prod_4",
		Name:          "Floral Summer Dress",
		Description:   "Embrace the sunshine in our beautiful Floral Summer Dress. Featuring a vibrant floral print, a lightweight and breezy fabric, and a flattering A-line cut, this dress is perfect for picnics, parties, or a day out.",
		Category:      "Dresses",
		OriginalPrice: 2499,
		SalePrice:     1999,
		Images: []models.ProductImage{{
			ID:   "prod_4_img",
			URL:  "https://images.unsplash.com/photo-1496747611176-843222e1e57c?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Alt:  "A light and airy floral summer dress.",
			Hint: "floral dress",
		}},
		Sizes: models.SizeList{"S", "M", "L"},
	},
	{
		ID:            "prod_5",
		Name:          "Leather Biker Jacket",
		Description:   "Channel your inner rebel with this classic leather biker jacket. Crafted from genuine leather, it features an asymmetric zip, multiple pockets, and a tailored fit for a sharp, edgy look.",
		Category:      "Jackets",
		OriginalPrice: 5999,
		SalePrice:     4999,
		Images: []models.ProductImage{{
			ID:   "prod_5_img",
			URL:  "https://images.unsplash.com/photo-1521223890158-f9f7c3d5d504?crop=entropy&cs=tinysrgb&fit=max&fm=jpg&q=80&w=1080",
			Alt:  "A stylish black leather jacket.",
			Hint: "leather jacket",
		}},
		Sizes: models.SizeList{"S", "M", "L", "XL"},
	},
}

// SeedProducts upserts the starter catalog. Existing documents with the same
// ids are replaced; everything else is left alone.
func SeedProducts(ctx context.Context, db *mongo.Database) (int, error) {
	seeded := 0
	for _, product := range seedProducts {
		product.CreatedAt = time.Now()
		_, err := db.Collection("products").ReplaceOne(
			ctx,
			bson.M{"_id": product.ID},
			product,
			options.Replace().SetUpsert(true),
		)
		if err != nil {
			return seeded, err
		}
		seeded++
	}
	return seeded, nil
}
