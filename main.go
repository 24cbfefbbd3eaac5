// main.go
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"confetti-orders/config"
	"confetti-orders/controllers"
	"confetti-orders/notify"
	"confetti-orders/payments"
	"confetti-orders/routes"
	"confetti-orders/store"
	"confetti-orders/utils"
)

func main() {
	// Load environment variables
	cfg := config.Load()

	// Set the JWT secret key
	utils.JwtKey = []byte(cfg.JWTSecret)

	// Pick the order store backend: MongoDB when configured, the flat
	// orders.json file otherwise
	var orders store.Store
	if cfg.MongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := store.Connect(ctx, cfg.MongoURI)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		defer func() {
			if err := client.Disconnect(context.TODO()); err != nil {
				log.Fatal(err)
			}
		}()
		orders = store.NewMongoStore(client)
	} else {
		orders = store.NewFileStore(cfg.OrdersFile)
	}

	// Initialize EmailService (left nil when not configured)
	var emailService controllers.EmailSender
	if es := utils.NewEmailService(cfg.PostmarkToken, cfg.EmailSender); es != nil {
		emailService = es
	}

	// Payment matching configuration
	rules := payments.Rules{
		Receiver: cfg.Receiver,
		Token:    cfg.TokenContract,
		Price:    cfg.Price,
	}

	// Initialize controllers
	orderController := controllers.NewOrderController(orders, emailService, cfg.Price, cfg.Receiver)
	webhookController := controllers.NewWebhookController(orders, notify.NewOpenClaw(cfg.OpenClawBin), rules)
	adminController := controllers.NewAdminController(orders, cfg.AdminPasswordHash)

	// Set up the router
	router := mux.NewRouter()
	routes.RegisterRoutes(router, orderController, webhookController, adminController)

	// Start the server
	fmt.Printf("Server is running on port %s\n", cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, router))
}
