package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product represents a food or drink item on the menu
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name"`
	Image       string             `bson:"image" json:"image"`
	Description string             `bson:"description" json:"description"`
	Price       float64            `bson:"price" json:"price"`
	CategoryID  primitive.ObjectID `bson:"category_id,omitempty" json:"category_id,omitempty"`
}
