package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"go-foodorder/middleware"
	"go-foodorder/models"
	"go-foodorder/store"
	"go-foodorder/utils"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory store implementations backing the handler tests.

type memCartStore struct {
	mu    sync.Mutex
	carts map[primitive.ObjectID]models.Cart
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: map[primitive.ObjectID]models.Cart{}}
}

func (s *memCartStore) FindActiveByCustomer(_ context.Context, customerID primitive.ObjectID) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.CustomerID == customerID && cart.IsActive {
			c := cart
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCartStore) Insert(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart.ID.IsZero() {
		cart.ID = primitive.NewObjectID()
	}
	s.carts[cart.ID] = *cart
	return nil
}

func (s *memCartStore) Save(_ context.Context, cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[cart.ID] = *cart
	return nil
}

type memCartItemStore struct {
	mu    sync.Mutex
	items map[primitive.ObjectID]models.CartItem
}

func newMemCartItemStore() *memCartItemStore {
	return &memCartItemStore{items: map[primitive.ObjectID]models.CartItem{}}
}

func (s *memCartItemStore) FindByCartAndProduct(_ context.Context, cartID, productID primitive.ObjectID) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.CartID == cartID && item.ProductID == productID {
			i := item
			return &i, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCartItemStore) FindByCart(_ context.Context, cartID primitive.ObjectID) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := []models.CartItem{}
	for _, item := range s.items {
		if item.CartID == cartID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memCartItemStore) Insert(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	s.items[item.ID] = *item
	return nil
}

func (s *memCartItemStore) Save(_ context.Context, item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[item.ID] = *item
	return nil
}

func (s *memCartItemStore) DeleteOne(_ context.Context, itemID, cartID primitive.ObjectID) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[itemID]
	if !ok || item.CartID != cartID {
		return nil, store.ErrNotFound
	}
	delete(s.items, itemID)
	return &item, nil
}

type memProductStore struct {
	mu       sync.Mutex
	products map[primitive.ObjectID]models.Product
}

func newMemProductStore() *memProductStore {
	return &memProductStore{products: map[primitive.ObjectID]models.Product{}}
}

func (s *memProductStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &product, nil
}

func (s *memProductStore) Find(_ context.Context, categoryID primitive.ObjectID) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	products := []models.Product{}
	for _, product := range s.products {
		if categoryID.IsZero() || product.CategoryID == categoryID {
			products = append(products, product)
		}
	}
	return products, nil
}

func (s *memProductStore) Insert(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if product.ID.IsZero() {
		product.ID = primitive.NewObjectID()
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memProductStore) Update(_ context.Context, product *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return store.ErrNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *memProductStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return store.ErrNotFound
	}
	delete(s.products, id)
	return nil
}

type memCustomerStore struct {
	mu        sync.Mutex
	customers map[primitive.ObjectID]models.Customer
}

func newMemCustomerStore() *memCustomerStore {
	return &memCustomerStore{customers: map[primitive.ObjectID]models.Customer{}}
}

func (s *memCustomerStore) FindByEmail(_ context.Context, email string) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, customer := range s.customers {
		if customer.Email == email {
			c := customer
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (s *memCustomerStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	customer, ok := s.customers[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &customer, nil
}

func (s *memCustomerStore) Insert(_ context.Context, customer *models.Customer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if customer.ID.IsZero() {
		customer.ID = primitive.NewObjectID()
	}
	s.customers[customer.ID] = *customer
	return nil
}

type memOrderStore struct {
	mu     sync.Mutex
	orders map[primitive.ObjectID]models.Order
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{orders: map[primitive.ObjectID]models.Order{}}
}

func (s *memOrderStore) Insert(_ context.Context, order *models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if order.ID.IsZero() {
		order.ID = primitive.NewObjectID()
	}
	s.orders[order.ID] = *order
	return nil
}

func (s *memOrderStore) FindByCustomer(_ context.Context, customerID primitive.ObjectID) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := []models.Order{}
	for _, order := range s.orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

// doRequest drives a handler through httptest, optionally injecting verified
// claims the way the auth middleware would and mux path vars the way the
// router would.
func doRequest(t *testing.T, handler http.HandlerFunc, method, target string, body interface{}, claims *utils.Claims, vars map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	if claims != nil {
		ctx := context.WithValue(req.Context(), middleware.CustomerContextKey, claims)
		req = req.WithContext(ctx)
	}
	if vars != nil {
		req = mux.SetURLVars(req, vars)
	}

	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func claimsFor(id primitive.ObjectID) *utils.Claims {
	return &utils.Claims{CustomerID: id.Hex(), Role: "customer"}
}

func decodeCartResponse(t *testing.T, rec *httptest.ResponseRecorder) cartResponse {
	t.Helper()
	var resp cartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
