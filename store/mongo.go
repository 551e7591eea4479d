package store

import (
	"context"
	"errors"
	"fmt"

	"go-foodorder/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStores bundles the collection-backed implementations of the store
// interfaces over a single database.
type MongoStores struct {
	Carts      CartStore
	CartItems  CartItemStore
	Products   ProductStore
	Customers  CustomerStore
	Categories CategoryStore
	Orders     OrderStore
}

// NewMongoStores wires every store to its collection.
func NewMongoStores(db *mongo.Database) *MongoStores {
	return &MongoStores{
		Carts:      &mongoCartStore{collection: db.Collection("carts")},
		CartItems:  &mongoCartItemStore{collection: db.Collection("cart_items")},
		Products:   &mongoProductStore{collection: db.Collection("products")},
		Customers:  &mongoCustomerStore{collection: db.Collection("customers")},
		Categories: &mongoCategoryStore{collection: db.Collection("categories")},
		Orders:     &mongoOrderStore{collection: db.Collection("orders")},
	}
}

// EnsureIndexes creates the indexes the application relies on. The partial
// unique index on (customer_id, is_active) backs the one-active-cart rule at
// the storage level as well as in application logic.
func (s *MongoStores) EnsureIndexes(ctx context.Context) error {
	carts := s.Carts.(*mongoCartStore).collection
	_, err := carts.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "customer_id", Value: 1}, {Key: "is_active", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"is_active": true}),
	})
	if err != nil {
		return fmt.Errorf("create cart index: %w", err)
	}

	items := s.CartItems.(*mongoCartItemStore).collection
	_, err = items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "cart_id", Value: 1}, {Key: "product_id", Value: 1}},
	})
	if err != nil {
		return fmt.Errorf("create cart item index: %w", err)
	}

	customers := s.Customers.(*mongoCustomerStore).collection
	_, err = customers.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create customer index: %w", err)
	}
	return nil
}

type mongoCartStore struct {
	collection *mongo.Collection
}

func (s *mongoCartStore) FindActiveByCustomer(ctx context.Context, customerID primitive.ObjectID) (*models.Cart, error) {
	var cart models.Cart
	err := s.collection.FindOne(ctx, bson.M{"customer_id": customerID, "is_active": true}).Decode(&cart)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find active cart: %w", err)
	}
	return &cart, nil
}

func (s *mongoCartStore) Insert(ctx context.Context, cart *models.Cart) error {
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, cart); err != nil {
		return fmt.Errorf("insert cart: %w", err)
	}
	return nil
}

func (s *mongoCartStore) Save(ctx context.Context, cart *models.Cart) error {
	update := bson.M{"$set": bson.M{
		"total_item":  cart.TotalItem,
		"total_price": cart.TotalPrice,
		"is_active":   cart.IsActive,
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": cart.ID}, update); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

type mongoCartItemStore struct {
	collection *mongo.Collection
}

func (s *mongoCartItemStore) FindByCartAndProduct(ctx context.Context, cartID, productID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.collection.FindOne(ctx, bson.M{"cart_id": cartID, "product_id": productID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find cart item: %w", err)
	}
	return &item, nil
}

func (s *mongoCartItemStore) FindByCart(ctx context.Context, cartID primitive.ObjectID) ([]models.CartItem, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"cart_id": cartID})
	if err != nil {
		return nil, fmt.Errorf("find cart items: %w", err)
	}
	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("read cart items: %w", err)
	}
	return items, nil
}

func (s *mongoCartItemStore) Insert(ctx context.Context, item *models.CartItem) error {
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

func (s *mongoCartItemStore) Save(ctx context.Context, item *models.CartItem) error {
	update := bson.M{"$set": bson.M{
		"qty":         item.Qty,
		"total_price": item.TotalPrice,
	}}
	if _, err := s.collection.UpdateOne(ctx, bson.M{"_id": item.ID}, update); err != nil {
		return fmt.Errorf("save cart item: %w", err)
	}
	return nil
}

func (s *mongoCartItemStore) DeleteOne(ctx context.Context, itemID, cartID primitive.ObjectID) (*models.CartItem, error) {
	var item models.CartItem
	err := s.collection.FindOneAndDelete(ctx, bson.M{"_id": itemID, "cart_id": cartID}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("delete cart item: %w", err)
	}
	return &item, nil
}

type mongoProductStore struct {
	collection *mongo.Collection
}

func (s *mongoProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	var product models.Product
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&product)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &product, nil
}

func (s *mongoProductStore) Find(ctx context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	filter := bson.M{}
	if !categoryID.IsZero() {
		filter["category_id"] = categoryID
	}
	cursor, err := s.collection.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}
	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("read products: %w", err)
	}
	return products, nil
}

func (s *mongoProductStore) Insert(ctx context.Context, product *models.Product) error {
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, product); err != nil {
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (s *mongoProductStore) Update(ctx context.Context, product *models.Product) error {
	update := bson.M{"$set": bson.M{
		"name":        product.Name,
		"image":       product.Image,
		"description": product.Description,
		"price":       product.Price,
		"category_id": product.CategoryID,
	}}
	result, err := s.collection.UpdateOne(ctx, bson.M{"_id": product.ID}, update)
	if err != nil {
		return fmt.Errorf("update product: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoProductStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

type mongoCustomerStore struct {
	collection *mongo.Collection
}

func (s *mongoCustomerStore) FindByEmail(ctx context.Context, email string) (*models.Customer, error) {
	var customer models.Customer
	err := s.collection.FindOne(ctx, bson.M{"email": email}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer by email: %w", err)
	}
	return &customer, nil
}

func (s *mongoCustomerStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Customer, error) {
	var customer models.Customer
	err := s.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&customer)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find customer: %w", err)
	}
	return &customer, nil
}

func (s *mongoCustomerStore) Insert(ctx context.Context, customer *models.Customer) error {
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, customer); err != nil {
		return fmt.Errorf("insert customer: %w", err)
	}
	return nil
}

type mongoCategoryStore struct {
	collection *mongo.Collection
}

func (s *mongoCategoryStore) Find(ctx context.Context) ([]models.Category, error) {
	cursor, err := s.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("read categories: %w", err)
	}
	return categories, nil
}

func (s *mongoCategoryStore) Insert(ctx context.Context, category *models.Category) error {
	if category.ID.IsZero() {
		category.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, category); err != nil {
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

type mongoOrderStore struct {
	collection *mongo.Collection
}

func (s *mongoOrderStore) Insert(ctx context.Context, order *models.Order) error {
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	if _, err := s.collection.InsertOne(ctx, order); err != nil {
		return fmt.Errorf("insert order: %w", err)
	}
	return nil
}

func (s *mongoOrderStore) FindByCustomer(ctx context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	cursor, err := s.collection.Find(ctx, bson.M{"customer_id": customerID})
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("read orders: %w", err)
	}
	return orders, nil
}
