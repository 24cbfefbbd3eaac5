// controllers/order.go
package controllers

import (
	"encoding/json"
	"html/template"
	"log"
	"net/http"

	"confetti-orders/models"
	"confetti-orders/store"
)

// maxBodyBytes caps inbound request bodies at 2 MB.
const maxBodyBytes = 2 << 20

// EmailSender delivers the order-confirmation email. utils.EmailService
// is the real implementation; a nil sender disables confirmations.
type EmailSender interface {
	SendOrderConfirmationEmail(toEmail string, order models.Order) error
}

// OrderController handles the order form and order creation requests
type OrderController struct {
	Store        store.Store
	EmailService EmailSender
	Price        float64
	Receiver     string
}

// NewOrderController creates a new OrderController
func NewOrderController(orders store.Store, emailService EmailSender, price float64, receiver string) *OrderController {
	return &OrderController{
		Store:        orders,
		EmailService: emailService,
		Price:        price,
		Receiver:     receiver,
	}
}

var formPage = template.Must(template.New("form").Parse(`
    <html>
      <body style="font-family: system-ui; max-width: 520px; margin: 40px auto;">
        <h1>Confetti Order</h1>
        <p>Fill shipping info, then you'll get payment instructions ({{.Price}} USDC on Base).</p>
        <form method="POST" action="/order/form">
          <input name="name" placeholder="Full Name" required style="width:100%;padding:10px;margin:6px 0;" />
          <input name="email" placeholder="Email (optional)" style="width:100%;padding:10px;margin:6px 0;" />
          <input name="address1" placeholder="Address Line 1" required style="width:100%;padding:10px;margin:6px 0;" />
          <input name="address2" placeholder="Address Line 2" style="width:100%;padding:10px;margin:6px 0;" />
          <input name="city" placeholder="City" required style="width:100%;padding:10px;margin:6px 0;" />
          <input name="state" placeholder="State" required style="width:100%;padding:10px;margin:6px 0;" />
          <input name="zip" placeholder="ZIP" required style="width:100%;padding:10px;margin:6px 0;" />
          <input name="country" placeholder="Country" value="US" required style="width:100%;padding:10px;margin:6px 0;" />
          <textarea name="confetti_note" placeholder="Confetti note (optional)" style="width:100%;padding:10px;margin:6px 0;height:90px;"></textarea>
          <button type="submit" style="padding:12px 16px;margin-top:10px;">Create Order</button>
        </form>
      </body>
    </html>
`))

var confirmationPage = template.Must(template.New("confirmation").Parse(`
    <html>
      <body style="font-family: system-ui; max-width: 520px; margin: 40px auto;">
        <h2>Order Created ✅</h2>
        <p><b>Order ID:</b> {{.ID}}</p>
        <p>Send exactly <b>{{.Price}} USDC</b> on <b>Base</b> to:</p>
        <code style="display:block;padding:12px;background:#f4f4f4;border-radius:8px;">{{.Receiver}}</code>
        <p>Once payment confirms, your order will process automatically.</p>
      </body>
    </html>
`))

// OrderForm serves the HTML shipping form
func (oc *OrderController) OrderForm(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := formPage.Execute(w, map[string]interface{}{"Price": oc.Price}); err != nil {
		log.Printf("render form: %v", err)
	}
}

// CreateOrderForm handles the HTML form submission
func (oc *OrderController) CreateOrderForm(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form submission.", http.StatusBadRequest)
		return
	}

	shipping := models.Shipping{
		Name:     r.FormValue("name"),
		Email:    r.FormValue("email"),
		Address1: r.FormValue("address1"),
		Address2: r.FormValue("address2"),
		City:     r.FormValue("city"),
		State:    r.FormValue("state"),
		Zip:      r.FormValue("zip"),
		Country:  r.FormValue("country"),
	}
	if err := shipping.Validate(); err != nil {
		http.Error(w, "Missing required shipping fields.", http.StatusBadRequest)
		return
	}

	order, err := oc.createOrder(r, shipping, r.FormValue("confetti_note"))
	if err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = confirmationPage.Execute(w, map[string]interface{}{
		"ID":       order.ID,
		"Price":    oc.Price,
		"Receiver": oc.Receiver,
	})
	if err != nil {
		log.Printf("render confirmation: %v", err)
	}
}

// orderInput is the JSON body accepted by CreateOrder.
type orderInput struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Address1     string `json:"address1"`
	Address2     string `json:"address2"`
	City         string `json:"city"`
	State        string `json:"state"`
	Zip          string `json:"zip"`
	Country      string `json:"country"`
	ConfettiNote string `json:"confetti_note"`
}

// CreateOrder handles the JSON order creation request
func (oc *OrderController) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var input orderInput
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	// A missing, malformed, or oversized body validates the same as an
	// empty one
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		input = orderInput{}
	}

	shipping := models.Shipping{
		Name:     input.Name,
		Email:    input.Email,
		Address1: input.Address1,
		Address2: input.Address2,
		City:     input.City,
		State:    input.State,
		Zip:      input.Zip,
		Country:  input.Country,
	}
	w.Header().Set("Content-Type", "application/json")
	if err := shipping.Validate(); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"ok":    false,
			"error": "Missing required shipping fields.",
		})
		return
	}

	order, err := oc.createOrder(r, shipping, input.ConfettiNote)
	if err != nil {
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	json.NewEncoder(w).Encode(map[string]interface{}{
		"ok":           true,
		"orderId":      order.ID,
		"amountUSDC":   oc.Price,
		"chain":        "Base",
		"payTo":        oc.Receiver,
		"instructions": "Send exactly the amount in USDC on Base to the address above. Keep this Order ID for support.",
	})
}

// createOrder builds and persists a pending order, then sends the
// confirmation email best-effort when an address was given.
func (oc *OrderController) createOrder(r *http.Request, shipping models.Shipping, note string) (models.Order, error) {
	order := models.NewOrder(oc.Price, oc.Receiver, shipping, note)
	if err := oc.Store.Put(r.Context(), order); err != nil {
		log.Printf("create order: %v", err)
		return models.Order{}, err
	}

	if shipping.Email != "" && oc.EmailService != nil {
		go func(email string, order models.Order) {
			if err := oc.EmailService.SendOrderConfirmationEmail(email, order); err != nil {
				log.Printf("Failed to send email to %s: %v", email, err)
			}
		}(shipping.Email, order)
	}
	return order, nil
}
