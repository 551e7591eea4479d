// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"go-foodorder/controllers"
	"go-foodorder/events"
	"go-foodorder/middleware"
	"go-foodorder/routes"
	"go-foodorder/store"
	"go-foodorder/utils"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	utils.JwtKey = []byte(os.Getenv("JWT_SECRET"))

	// Connect to MongoDB
	client := utils.ConnectDB()
	defer func() {
		if err = client.Disconnect(context.TODO()); err != nil {
			log.Fatal(err)
		}
	}()

	stores := store.NewMongoStores(client.Database(utils.DatabaseName()))
	if err := stores.EnsureIndexes(context.TODO()); err != nil {
		log.Fatal(err)
	}

	// Optional integrations
	publisher := events.NewPublisher(os.Getenv("KAFKA_BROKERS"))
	defer publisher.Close()
	emailService := utils.NewEmailService()

	// Initialize controllers
	customerController := controllers.NewCustomerController(stores)
	productController := controllers.NewProductController(stores)
	categoryController := controllers.NewCategoryController(stores)
	cartController := controllers.NewCartController(stores, publisher)
	orderController := controllers.NewOrderController(stores, publisher, emailService)

	// Set up the router
	router := mux.NewRouter()
	router.Use(middleware.AuthMiddleware)

	// Register routes
	routes.RegisterRoutes(router, customerController, productController, categoryController, cartController, orderController)

	// Static files (product and category images)
	router.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	// CORS for the frontend origin
	origin := os.Getenv("CORS_ORIGIN")
	if origin == "" {
		origin = "http://localhost:8081"
	}
	cors := handlers.CORS(
		handlers.AllowedOrigins([]string{origin}),
		handlers.AllowedMethods([]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}),
		handlers.AllowedHeaders([]string{"Authorization", "Content-Type"}),
	)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, cors(router)))
}
