package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"go-foodorder/models"
	"go-foodorder/store"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductController handles product-related requests
type ProductController struct {
	Products store.ProductStore
}

// NewProductController creates a new ProductController
func NewProductController(stores *store.MongoStores) *ProductController {
	return &ProductController{Products: stores.Products}
}

// GetProducts retrieves all products, optionally filtered by category
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	categoryID := primitive.NilObjectID
	if raw := r.URL.Query().Get("category"); raw != "" {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			respondMessage(w, http.StatusBadRequest, "Invalid category ID")
			return
		}
		categoryID = id
	}

	products, err := pc.Products.Find(ctx, categoryID)
	if err != nil {
		log.Printf("getProducts error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message  string           `json:"message"`
		Products []models.Product `json:"products"`
	}{"Products retrieved successfully", products})
}

// GetProductByID retrieves a single product by ID
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	product, err := pc.Products.FindByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Printf("getProductByID error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message string          `json:"message"`
		Product *models.Product `json:"product"`
	}{"Product retrieved successfully", product})
}

// CreateProduct handles adding a new product (Admin only)
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if product.Name == "" || product.Price <= 0 {
		respondMessage(w, http.StatusBadRequest, "Name and a positive price are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := pc.Products.Insert(ctx, &product); err != nil {
		log.Printf("createProduct error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Message string          `json:"message"`
		Product *models.Product `json:"product"`
	}{"Product created successfully", &product})
}

// UpdateProduct handles updating a product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	product.ID = id

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = pc.Products.Update(ctx, &product)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Printf("updateProduct error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message string          `json:"message"`
		Product *models.Product `json:"product"`
	}{"Product updated successfully", &product})
}

// DeleteProduct handles deleting a product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := primitive.ObjectIDFromHex(params["id"])
	if err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	err = pc.Products.Delete(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		log.Printf("deleteProduct error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondMessage(w, http.StatusOK, "Product deleted successfully")
}
