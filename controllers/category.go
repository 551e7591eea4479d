package controllers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"go-foodorder/models"
	"go-foodorder/store"
)

// CategoryController handles menu category requests
type CategoryController struct {
	Categories store.CategoryStore
}

// NewCategoryController creates a new CategoryController
func NewCategoryController(stores *store.MongoStores) *CategoryController {
	return &CategoryController{Categories: stores.Categories}
}

// GetCategories retrieves all categories
func (cc *CategoryController) GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	categories, err := cc.Categories.Find(ctx)
	if err != nil {
		log.Printf("getCategories error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message    string            `json:"message"`
		Categories []models.Category `json:"categories"`
	}{"Categories retrieved successfully", categories})
}

// CreateCategory adds a new category (Admin only)
func (cc *CategoryController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if category.Name == "" {
		respondMessage(w, http.StatusBadRequest, "Name is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := cc.Categories.Insert(ctx, &category); err != nil {
		log.Printf("createCategory error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Message  string           `json:"message"`
		Category *models.Category `json:"category"`
	}{"Category created successfully", &category})
}
