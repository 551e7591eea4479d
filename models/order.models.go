package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a line item copied out of the cart at checkout
type OrderItem struct {
	ProductID    primitive.ObjectID `bson:"product_id" json:"product_id"`
	ProductName  string             `bson:"product_name" json:"product_name"`
	ProductImage string             `bson:"product_image" json:"product_image"`
	Qty          int                `bson:"qty" json:"qty"`
	Price        float64            `bson:"price" json:"price"`
	TotalPrice   float64            `bson:"total_price" json:"total_price"`
}

// Order represents a placed order. Items are snapshots of the cart items at
// the time of checkout.
type Order struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CustomerID primitive.ObjectID `bson:"customer_id" json:"customer_id"`
	CartID     primitive.ObjectID `bson:"cart_id" json:"cart_id"`
	Items      []OrderItem        `bson:"items" json:"items"`
	TotalItem  int                `bson:"total_item" json:"total_item"`
	TotalPrice float64            `bson:"total_price" json:"total_price"`
	Address    string             `bson:"address" json:"address"`
	Status     string             `bson:"status" json:"status"` // e.g. "Pending", "Delivered"
	CreatedAt  time.Time          `bson:"created_at" json:"created_at"`
}
