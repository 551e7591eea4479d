// routes/routes.go
package routes

import (
	"go-foodorder/controllers"
	"go-foodorder/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, customerController *controllers.CustomerController, productController *controllers.ProductController, categoryController *controllers.CategoryController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Customer routes
	router.HandleFunc("/api/customer/register", customerController.Register).Methods("POST")
	router.HandleFunc("/api/customer/login", customerController.Login).Methods("POST")
	router.HandleFunc("/api/customer/profile", customerController.GetProfile).Methods("GET")

	// Product routes
	router.HandleFunc("/api/product", productController.GetProducts).Methods("GET")
	router.HandleFunc("/api/product/{id}", productController.GetProductByID).Methods("GET")

	// Category routes
	router.HandleFunc("/api/category", categoryController.GetCategories).Methods("GET")

	// Admin routes
	adminProducts := router.PathPrefix("/api/product").Subrouter()
	adminProducts.Use(middleware.AdminMiddleware)
	adminProducts.HandleFunc("", productController.CreateProduct).Methods("POST")
	adminProducts.HandleFunc("/{id}", productController.UpdateProduct).Methods("PUT")
	adminProducts.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	adminCategories := router.PathPrefix("/api/category").Subrouter()
	adminCategories.Use(middleware.AdminMiddleware)
	adminCategories.HandleFunc("", categoryController.CreateCategory).Methods("POST")

	// Cart routes
	cart := router.PathPrefix("/api/cart").Subrouter()
	cart.HandleFunc("", cartController.InitOrRetrieveCart).Methods("POST")
	cart.HandleFunc("/add", cartController.AddProductToCart).Methods("POST")
	cart.HandleFunc("/update", cartController.UpdateCartItem).Methods("POST")
	cart.HandleFunc("", cartController.GetCart).Methods("GET")
	cart.HandleFunc("/{id}", cartController.DeleteCartItem).Methods("DELETE")

	// Order routes
	router.HandleFunc("/api/order", orderController.CreateOrder).Methods("POST")
	router.HandleFunc("/api/order", orderController.GetOrders).Methods("GET")
}
