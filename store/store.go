package store

import (
	"context"
	"errors"

	"go-foodorder/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("document not found")

// CartStore holds the single active cart per customer.
type CartStore interface {
	FindActiveByCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Cart, error)
	Insert(ctx context.Context, cart *models.Cart) error
	Save(ctx context.Context, cart *models.Cart) error
}

// CartItemStore holds line items belonging to a cart.
type CartItemStore interface {
	FindByCartAndProduct(ctx context.Context, cartID, productID primitive.ObjectID) (*models.CartItem, error)
	FindByCart(ctx context.Context, cartID primitive.ObjectID) ([]models.CartItem, error)
	Insert(ctx context.Context, item *models.CartItem) error
	Save(ctx context.Context, item *models.CartItem) error
	// DeleteOne removes the item matching both ids and returns it,
	// or ErrNotFound when nothing matches.
	DeleteOne(ctx context.Context, itemID, cartID primitive.ObjectID) (*models.CartItem, error)
}

// ProductStore provides menu lookups and admin CRUD.
type ProductStore interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Find(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error)
	Insert(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// CustomerStore holds registered customers.
type CustomerStore interface {
	FindByEmail(ctx context.Context, email string) (*models.Customer, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error)
	Insert(ctx context.Context, customer *models.Customer) error
}

// CategoryStore holds menu categories.
type CategoryStore interface {
	Find(ctx context.Context) ([]models.Category, error)
	Insert(ctx context.Context, category *models.Category) error
}

// OrderStore holds placed orders.
type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error)
}
