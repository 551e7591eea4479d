package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category groups products on the menu
type Category struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Image string             `bson:"image" json:"image"`
}
