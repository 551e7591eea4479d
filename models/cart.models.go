package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Cart is a customer's in-progress order. A customer has at most one cart
// with IsActive set; totals are derived from the cart's items and rewritten
// after every item mutation.
type Cart struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID primitive.ObjectID `bson:"customer_id" json:"customer_id"`
	TotalItem  int                `bson:"total_item" json:"total_item"`
	TotalPrice float64            `bson:"total_price" json:"total_price"`
	IsActive   bool               `bson:"is_active" json:"is_active"`
}

// CartItem is one product line inside a cart. ProductName, ProductImage and
// Price are snapshots taken when the product was first added; later product
// edits do not touch them.
type CartItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CartID       primitive.ObjectID `bson:"cart_id" json:"cart_id"`
	ProductID    primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	ProductImage string             `bson:"product_image" json:"product_image"`
	Qty          int                `bson:"qty" json:"qty"`
	Price        float64            `bson:"price" json:"price"`
	TotalPrice   float64            `bson:"total_price" json:"total_price"`
}
