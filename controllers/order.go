package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"go-foodorder/events"
	"go-foodorder/models"
	"go-foodorder/store"
	"go-foodorder/utils"
)

// OrderController handles checkout and order history requests
type OrderController struct {
	Orders    store.OrderStore
	Carts     store.CartStore
	CartItems store.CartItemStore
	Customers store.CustomerStore
	Events    *events.Publisher
	Email     *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(stores *store.MongoStores, publisher *events.Publisher, email *utils.EmailService) *OrderController {
	return &OrderController{
		Orders:    stores.Orders,
		Carts:     stores.Carts,
		CartItems: stores.CartItems,
		Customers: stores.Customers,
		Events:    publisher,
		Email:     email,
	}
}

// CreateOrder places an order from the customer's active cart. The cart is
// deactivated so the next cart init starts fresh.
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	customer, err := oc.Customers.FindByID(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		log.Printf("createOrder error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cart, err := oc.Carts.FindActiveByCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Printf("createOrder error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cartItems, err := oc.CartItems.FindByCart(ctx, cart.ID)
	if err != nil {
		log.Printf("createOrder error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}
	if len(cartItems) == 0 {
		respondMessage(w, http.StatusBadRequest, "Cart is empty")
		return
	}

	items := make([]models.OrderItem, 0, len(cartItems))
	for _, item := range cartItems {
		items = append(items, models.OrderItem{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Qty:          item.Qty,
			Price:        item.Price,
			TotalPrice:   item.TotalPrice,
		})
	}

	order := &models.Order{
		CustomerID: customerID,
		CartID:     cart.ID,
		Items:      items,
		TotalItem:  cart.TotalItem,
		TotalPrice: cart.TotalPrice,
		Address:    customer.Address,
		Status:     "Pending",
		CreatedAt:  time.Now(),
	}
	if err := oc.Orders.Insert(ctx, order); err != nil {
		log.Printf("createOrder error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cart.IsActive = false
	if err := oc.Carts.Save(ctx, cart); err != nil {
		log.Printf("createOrder error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if err := oc.Events.Publish(ctx, events.TopicOrderCreated, order.ID.Hex(), order); err != nil {
		log.Printf("publish order.created: %v", err)
	}
	if oc.Email != nil {
		if err := oc.Email.SendOrderConfirmationEmail(customer.Email, *order); err != nil {
			log.Printf("order confirmation email: %v", err)
		}
	}

	respondJSON(w, http.StatusCreated, struct {
		Message string        `json:"message"`
		Order   *models.Order `json:"order"`
	}{"Order placed successfully", order})
}

// GetOrders lists the authenticated customer's orders
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	orders, err := oc.Orders.FindByCustomer(ctx, customerID)
	if err != nil {
		log.Printf("getOrders error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message string         `json:"message"`
		Orders  []models.Order `json:"orders"`
	}{"Orders retrieved successfully", orders})
}
