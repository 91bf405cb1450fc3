// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"eggshop/controllers"
	"eggshop/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, sessionController *controllers.SessionController, productController *controllers.ProductController, cartController *controllers.CartController, orderController *controllers.OrderController) {
	// Public routes
	router.HandleFunc("/login", sessionController.CustomerLogin).Methods("POST")
	router.HandleFunc("/admin/login", sessionController.AdminLogin).Methods("POST")
	router.HandleFunc("/products", productController.GetProducts).Methods("GET")

	// Admin catalog routes
	adminProducts := router.PathPrefix("/products").Subrouter()
	adminProducts.Use(middleware.AuthMiddleware)
	adminProducts.Use(middleware.AdminMiddleware)
	adminProducts.HandleFunc("/all", productController.AllProducts).Methods("GET")
	adminProducts.HandleFunc("", productController.SaveProduct).Methods("POST")
	adminProducts.HandleFunc("/{id}", productController.SaveProduct).Methods("PUT")
	adminProducts.HandleFunc("/{id}", productController.DeleteProduct).Methods("DELETE")

	// Admin order routes
	adminOrders := router.PathPrefix("/orders").Subrouter()
	adminOrders.Use(middleware.AuthMiddleware)
	adminOrders.Use(middleware.AdminMiddleware)
	adminOrders.HandleFunc("/{id}/status", orderController.UpdateOrderStatus).Methods("PUT")

	admin := router.PathPrefix("/admin").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.Use(middleware.AdminMiddleware)
	admin.HandleFunc("/summary", orderController.AdminSummary).Methods("GET")

	// Authenticated routes
	protected := router.PathPrefix("/").Subrouter()
	protected.Use(middleware.AuthMiddleware)
	protected.HandleFunc("/session", sessionController.GetSession).Methods("GET")
	protected.HandleFunc("/logout", sessionController.Logout).Methods("POST")
	protected.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	protected.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	protected.HandleFunc("/cart", cartController.UpdateCart).Methods("PATCH")
	protected.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	protected.HandleFunc("/orders", orderController.CreateOrder).Methods("POST")
}
