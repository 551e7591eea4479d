package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go-foodorder/events"
	"go-foodorder/models"
	"go-foodorder/store"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"
)

// CartController handles cart-related requests
type CartController struct {
	Carts     store.CartStore
	CartItems store.CartItemStore
	Products  store.ProductStore
	Events    *events.Publisher
}

// NewCartController creates a new CartController
func NewCartController(stores *store.MongoStores, publisher *events.Publisher) *CartController {
	return &CartController{
		Carts:     stores.Carts,
		CartItems: stores.CartItems,
		Products:  stores.Products,
		Events:    publisher,
	}
}

// LineItemResult reports what happened to one entry of a listItem payload.
// Items that reference unknown products are skipped without failing the
// request, so callers need the per-item outcome to notice.
type LineItemResult struct {
	ProductID string `json:"product_id"`
	Status    string `json:"status"` // "added", "updated" or "skipped"
	Reason    string `json:"reason,omitempty"`
}

type cartResponse struct {
	Message   string            `json:"message"`
	Cart      *models.Cart      `json:"cart,omitempty"`
	CartItems []models.CartItem `json:"cartItems,omitempty"`
	Results   []LineItemResult  `json:"results,omitempty"`
}

// InitOrRetrieveCart returns the customer's active cart, creating an empty
// one when none exists yet
func (cc *CartController) InitOrRetrieveCart(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.FindActiveByCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		cart = &models.Cart{
			CustomerID: customerID,
			TotalItem:  0,
			TotalPrice: 0,
			IsActive:   true,
		}
		if err := cc.Carts.Insert(ctx, cart); err != nil {
			log.Printf("initOrRetrieveCart error: %v", err)
			respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
			return
		}
		respondJSON(w, http.StatusOK, cartResponse{Message: "New cart created", Cart: cart})
		return
	}
	if err != nil {
		log.Printf("initOrRetrieveCart error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{Message: "Cart retrieved successfully", Cart: cart})
}

// AddProductToCart adds the listed products to the active cart, merging
// quantities into existing line items
func (cc *CartController) AddProductToCart(w http.ResponseWriter, r *http.Request) {
	cc.applyListItems(w, r, false)
}

// UpdateCartItem replaces quantities of the listed products in the active
// cart. An update for a product that is not in the cart adds it.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	cc.applyListItems(w, r, true)
}

func (cc *CartController) applyListItems(w http.ResponseWriter, r *http.Request, replace bool) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cart, err := cc.Carts.FindActiveByCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Printf("applyListItems error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	var body struct {
		ListItem []LineItem `json:"listItem"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product list provided")
		return
	}
	if !validateListItems(body.ListItem) {
		respondMessage(w, http.StatusBadRequest, "Invalid product list provided")
		return
	}

	results := make([]LineItemResult, len(body.ListItem))
	g, gctx := errgroup.WithContext(ctx)
	for i, item := range body.ListItem {
		i, item := i, item
		g.Go(func() error {
			result, err := cc.upsertLineItem(gctx, cart, item, replace)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Printf("applyListItems error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cartItems, err := cc.recomputeTotals(ctx, cart)
	if err != nil {
		log.Printf("applyListItems error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cc.publishCartUpdated(cart)

	message := "Product(s) added to cart successfully"
	if replace {
		message = "Cart updated successfully"
	}
	respondJSON(w, http.StatusOK, cartResponse{
		Message:   message,
		Cart:      cart,
		CartItems: cartItems,
		Results:   results,
	})
}

// upsertLineItem applies one listItem entry to the cart. Unknown products
// are reported as skipped, not as errors; only storage failures abort the
// request.
func (cc *CartController) upsertLineItem(ctx context.Context, cart *models.Cart, item LineItem, replace bool) (LineItemResult, error) {
	productID, err := primitive.ObjectIDFromHex(item.ID)
	if err != nil {
		log.Printf("invalid product id in listItem: %s", item.ID)
		return LineItemResult{ProductID: item.ID, Status: "skipped", Reason: "invalid product id"}, nil
	}

	product, err := cc.Products.FindByID(ctx, productID)
	if errors.Is(err, store.ErrNotFound) {
		log.Printf("product not found: %s", item.ID)
		return LineItemResult{ProductID: item.ID, Status: "skipped", Reason: "product not found"}, nil
	}
	if err != nil {
		return LineItemResult{}, err
	}

	qty := int(item.Qty)
	cartItem, err := cc.CartItems.FindByCartAndProduct(ctx, cart.ID, productID)
	if err == nil {
		if replace {
			cartItem.Qty = qty
		} else {
			cartItem.Qty += qty
		}
		cartItem.TotalPrice = cartItem.Price * float64(cartItem.Qty)
		if err := cc.CartItems.Save(ctx, cartItem); err != nil {
			return LineItemResult{}, err
		}
		return LineItemResult{ProductID: item.ID, Status: "updated"}, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return LineItemResult{}, err
	}

	newItem := &models.CartItem{
		CartID:       cart.ID,
		ProductID:    productID,
		ProductName:  product.Name,
		ProductImage: product.Image,
		Qty:          qty,
		Price:        product.Price,
		TotalPrice:   product.Price * float64(qty),
	}
	if err := cc.CartItems.Insert(ctx, newItem); err != nil {
		return LineItemResult{}, err
	}
	return LineItemResult{ProductID: item.ID, Status: "added"}, nil
}

// recomputeTotals rereads the cart's items and persists the derived totals.
// Runs after every mutating item operation; not reachable by clients on its
// own. The items-then-totals sequence is not atomic across requests.
func (cc *CartController) recomputeTotals(ctx context.Context, cart *models.Cart) ([]models.CartItem, error) {
	cartItems, err := cc.CartItems.FindByCart(ctx, cart.ID)
	if err != nil {
		return nil, err
	}

	total := 0.0
	for _, item := range cartItems {
		total += item.TotalPrice
	}
	cart.TotalItem = len(cartItems)
	cart.TotalPrice = total

	if err := cc.Carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cartItems, nil
}

// GetCart retrieves the active cart and its items
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.FindActiveByCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Printf("getCart error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cartItems, err := cc.CartItems.FindByCart(ctx, cart.ID)
	if err != nil {
		log.Printf("getCart error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, cartResponse{
		Message:   "Cart retrieved successfully",
		Cart:      cart,
		CartItems: cartItems,
	})
}

// DeleteCartItem removes one line item from the active cart by item id
func (cc *CartController) DeleteCartItem(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	cart, err := cc.Carts.FindActiveByCustomer(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Cart not found")
		return
	}
	if err != nil {
		log.Printf("deleteCartItem error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	params := mux.Vars(r)
	itemID, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondMessage(w, http.StatusNotFound, "Cart item not found")
		return
	}

	// Scoped to the owning cart so one customer cannot delete another's item
	_, err = cc.CartItems.DeleteOne(ctx, itemID, cart.ID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Cart item not found")
		return
	}
	if err != nil {
		log.Printf("deleteCartItem error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cartItems, err := cc.recomputeTotals(ctx, cart)
	if err != nil {
		log.Printf("deleteCartItem error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	cc.publishCartUpdated(cart)

	respondJSON(w, http.StatusOK, cartResponse{
		Message:   "Cart item deleted successfully",
		Cart:      cart,
		CartItems: cartItems,
	})
}

// publishCartUpdated emits a cart.updated event. Best effort: a broker
// failure never fails the request.
func (cc *CartController) publishCartUpdated(cart *models.Cart) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := cc.Events.Publish(ctx, events.TopicCartUpdated, cart.ID.Hex(), cart); err != nil {
		log.Printf("publish cart.updated: %v", err)
	}
}
