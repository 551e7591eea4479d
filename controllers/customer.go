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
	"go-foodorder/utils"

	"golang.org/x/crypto/bcrypt"
)

// CustomerController handles registration, login and profile requests
type CustomerController struct {
	Customers store.CustomerStore
}

// NewCustomerController creates a new CustomerController
func NewCustomerController(stores *store.MongoStores) *CustomerController {
	return &CustomerController{Customers: stores.Customers}
}

// Register creates a new customer account
func (uc *CustomerController) Register(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Phone    string `json:"phone"`
		Address  string `json:"address"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if input.Email == "" || input.Password == "" {
		respondMessage(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if _, err := uc.Customers.FindByEmail(ctx, input.Email); err == nil {
		respondMessage(w, http.StatusBadRequest, "Email already registered")
		return
	} else if !errors.Is(err, store.ErrNotFound) {
		log.Printf("register error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("register error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	customer := &models.Customer{
		Name:     input.Name,
		Email:    input.Email,
		Phone:    input.Phone,
		Address:  input.Address,
		Password: string(hashed),
		Role:     "customer",
	}
	if err := uc.Customers.Insert(ctx, customer); err != nil {
		log.Printf("register error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		Message  string           `json:"message"`
		Customer *models.Customer `json:"customer"`
	}{"Customer registered successfully", customer})
}

// Login verifies credentials and returns a JWT
func (uc *CustomerController) Login(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondMessage(w, http.StatusBadRequest, "Invalid input")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := uc.Customers.FindByEmail(ctx, input.Email)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		log.Printf("login error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(input.Password)); err != nil {
		respondMessage(w, http.StatusUnauthorized, "Invalid email or password")
		return
	}

	token, err := utils.GenerateJWT(customer.ID.Hex(), customer.Role)
	if err != nil {
		log.Printf("login error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message string `json:"message"`
		Token   string `json:"token"`
	}{"Login successful", token})
}

// GetProfile returns the authenticated customer's profile
func (uc *CustomerController) GetProfile(w http.ResponseWriter, r *http.Request) {
	customerID, _, ok := authenticatedCustomer(r)
	if !ok {
		respondMessage(w, http.StatusUnauthorized, "Authentication failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	customer, err := uc.Customers.FindByID(ctx, customerID)
	if errors.Is(err, store.ErrNotFound) {
		respondMessage(w, http.StatusNotFound, "Customer not found")
		return
	}
	if err != nil {
		log.Printf("getProfile error: %v", err)
		respondMessage(w, http.StatusInternalServerError, internalErrorMessage)
		return
	}

	respondJSON(w, http.StatusOK, struct {
		Message  string           `json:"message"`
		Customer *models.Customer `json:"customer"`
	}{"Profile retrieved successfully", customer})
}
