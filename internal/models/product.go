package models

import "time"

// ProductImage is one entry of a product's ordered image gallery. The first
// image is the primary thumbnail.
type ProductImage struct {
	ID   string `bson:"id" json:"id"`
	URL  string `bson:"url" json:"url"`
	Alt  string `bson:"alt,omitempty" json:"alt,omitempty"`
	Hint string `bson:"hint,omitempty" json:"hint,omitempty"`
}

// Product is the persisted catalog document. IDs are opaque strings: seed
// products use "prod_N", admin-created products get a generated id.
type Product struct {
	ID            string         `bson:"_id,omitempty" json:"id"`
	Name          string         `bson:"name" json:"name"`
	Description   string         `bson:"description" json:"description"`
	Category      string         `bson:"category,omitempty" json:"category,omitempty"`
	OriginalPrice int            `bson:"originalPrice" json:"originalPrice"`
	SalePrice     int            `bson:"salePrice" json:"salePrice"`
	Images        []ProductImage `bson:"images" json:"images"`
	Sizes         SizeList       `bson:"sizes" json:"sizes"`
	// Pointer so an absent field can be told apart from an explicit false;
	// absent means COD is available.
	IsCashOnDeliveryAvailable *bool     `bson:"isCashOnDeliveryAvailable,omitempty" json:"isCashOnDeliveryAvailable,omitempty"`
	ProductLink               string    `bson:"productLink,omitempty" json:"productLink,omitempty"`
	VideoURL                  string    `bson:"videoUrl,omitempty" json:"videoUrl,omitempty"`
	CreatedAt                 time.Time `bson:"createdAt,omitempty" json:"createdAt,omitempty"`
}

// CODAvailable reports the product-level cash-on-delivery flag, defaulting to
// true when the document never stored one.
func (p Product) CODAvailable() bool {
	if p.IsCashOnDeliveryAvailable == nil {
		return true
	}
	return *p.IsCashOnDeliveryAvailable
}

// HasSize reports whether label is one of the product's size labels.
func (p Product) HasSize(label string) bool {
	for _, s := range p.Sizes {
		if s == label {
			return true
		}
	}
	return false
}
