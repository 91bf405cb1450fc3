// main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"

	"eggshop/controllers"
	"eggshop/routes"
	"eggshop/services"
	"eggshop/storage"
	"eggshop/utils"
	"eggshop/validation"
)

const defaultDeliveryFee = 5.00

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	// Set the JWT secret key
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		utils.JwtKey = []byte(secret)
	}

	// The admin access code is hashed once at boot
	adminName := os.Getenv("ADMIN_NAME")
	if adminName == "" {
		adminName = "admin"
	}
	adminCode := os.Getenv("ADMIN_CODE")
	if adminCode == "" {
		log.Fatal("ADMIN_CODE is not set")
	}
	if err := utils.SetAdminCode(adminCode); err != nil {
		log.Fatal(err)
	}

	deliveryFee := defaultDeliveryFee
	if raw := os.Getenv("DELIVERY_FEE"); raw != "" {
		fee, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			log.Fatalf("Invalid DELIVERY_FEE %q: %v", raw, err)
		}
		deliveryFee = fee
	}

	// Open the local store
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "eggshop.db"
	}
	store, err := storage.Open(dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Fatal(err)
		}
	}()

	// Initialize services
	emailService := utils.NewEmailService(store)
	cartService := services.NewCartService()
	customerService := services.NewCustomerService(store)
	orderService := services.NewOrderService(store, cartService, emailService, deliveryFee)
	validate := validation.New()

	// Initialize controllers
	sessionController := controllers.NewSessionController(store, customerService, validate, adminName)
	productController := controllers.NewProductController(store, validate)
	cartController := controllers.NewCartController(store, cartService, validate)
	orderController := controllers.NewOrderController(store, orderService, validate)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, sessionController, productController, cartController, orderController)

	// Start the server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	fmt.Printf("Server is running on port %s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
