package models

import "time"

// ProductSnapshot is the denormalized copy of product fields stored on the
// order at creation time, so the order stays displayable after the product is
// edited or deleted.
type ProductSnapshot struct {
	Name  string `bson:"name" json:"name"`
	Price int    `bson:"price" json:"price"`
	Size  string `bson:"size" json:"size"`
}

// Order defines the persisted order document. CompletedDate is a string so
// the pending state can store the literal empty value rather than a zero
// timestamp.
type Order struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	ProductID       string          `bson:"productId" json:"productId"`
	CustomerName    string          `bson:"customerName" json:"customerName"`
	CustomerContact string          `bson:"customerContact" json:"customerContact"`
	CustomerAddress string          `bson:"customerAddress" json:"customerAddress"`
	OrderDate       time.Time       `bson:"orderDate" json:"orderDate"`
	IsCompleted     bool            `bson:"isCompleted" json:"isCompleted"`
	CompletedDate   string          `bson:"completedDate" json:"completedDate"`
	PaymentMethod   string          `bson:"paymentMethod" json:"paymentMethod"`
	ProductDetails  ProductSnapshot `bson:"productDetails" json:"productDetails"`
}
