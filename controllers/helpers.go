package controllers

import (
	"encoding/json"
	"net/http"

	"go-foodorder/middleware"
	"go-foodorder/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const internalErrorMessage = "An error occurred while processing your request."

// respondJSON writes the payload as a JSON body with the given status
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// messageResponse is the minimal response envelope; every endpoint returns
// at least a message field
type messageResponse struct {
	Message string `json:"message"`
}

func respondMessage(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, messageResponse{Message: message})
}

// authenticatedCustomer resolves the customer id from the verified claims the
// auth middleware put on the context. The second return is false when the
// request carries no valid identity.
func authenticatedCustomer(r *http.Request) (primitive.ObjectID, *utils.Claims, bool) {
	claims, ok := r.Context().Value(middleware.CustomerContextKey).(*utils.Claims)
	if !ok {
		return primitive.NilObjectID, nil, false
	}
	customerID, err := primitive.ObjectIDFromHex(claims.CustomerID)
	if err != nil {
		return primitive.NilObjectID, nil, false
	}
	return customerID, claims, true
}
