// routes/routes.go
package routes

import (
	"confetti-orders/controllers"
	"confetti-orders/middleware"

	"github.com/gorilla/mux"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(router *mux.Router, orderController *controllers.OrderController, webhookController *controllers.WebhookController, adminController *controllers.AdminController) {
	// Order intake
	router.HandleFunc("/", orderController.OrderForm).Methods("GET")
	router.HandleFunc("/order/form", orderController.CreateOrderForm).Methods("POST")
	router.HandleFunc("/order/create", orderController.CreateOrder).Methods("POST")

	// Payment notifications
	router.HandleFunc("/webhooks/alchemy", webhookController.HandleAlchemy).Methods("POST")
	router.HandleFunc("/webhooks/alchemy", webhookController.Ping).Methods("GET")

	router.HandleFunc("/health", controllers.Health).Methods("GET")

	// Operator routes
	router.HandleFunc("/admin/login", adminController.Login).Methods("POST")

	admin := router.PathPrefix("/orders").Subrouter()
	admin.Use(middleware.AuthMiddleware)
	admin.HandleFunc("", adminController.GetOrders).Methods("GET")
}
