// controllers/admin.go
package controllers

import (
	"encoding/json"
	"net/http"
	"sort"

	"golang.org/x/crypto/bcrypt"

	"confetti-orders/models"
	"confetti-orders/store"
	"confetti-orders/utils"
)

// AdminController handles the operator surface: login and order listing
type AdminController struct {
	Store        store.Store
	PasswordHash string
}

// NewAdminController creates a new AdminController
func NewAdminController(orders store.Store, passwordHash string) *AdminController {
	return &AdminController{
		Store:        orders,
		PasswordHash: passwordHash,
	}
}

// Login authenticates the operator and issues a JWT
func (ac *AdminController) Login(w http.ResponseWriter, r *http.Request) {
	if ac.PasswordHash == "" {
		http.Error(w, "Admin access is not configured", http.StatusServiceUnavailable)
		return
	}

	var creds struct {
		Password string `json:"password"`
	}
	// Decode the request body
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	// Compare against the configured hash
	if err := bcrypt.CompareHashAndPassword([]byte(ac.PasswordHash), []byte(creds.Password)); err != nil {
		http.Error(w, "Invalid password", http.StatusUnauthorized)
		return
	}

	// Generate JWT token
	token, err := utils.GenerateJWT("admin")
	if err != nil {
		http.Error(w, "Error generating token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// GetOrders retrieves every order, newest first
func (ac *AdminController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := ac.Store.Load(r.Context())
	if err != nil {
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}

	list := make([]models.Order, 0, len(orders))
	for _, order := range orders {
		list = append(list, order)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].CreatedAt > list[j].CreatedAt
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(list)
}
