// Package testutils provides an in-memory fake of the storefront backend
// for service and storefront tests. It speaks the wire format: snake_case
// keys, `{"data": [...]}` list envelopes, language-resolved display strings.
package testutils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
)

const (
	AdminPassword = "letmein"
	AdminToken    = "test-admin-token"
)

type wireCartItem struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"product_id"`
	VariationID *int64 `json:"variation_id"`
	Quantity    int    `json:"quantity"`
	priceCents  int64
}

type wireCart struct {
	token  string
	items  []*wireCartItem
	nextID int64
}

type wireOrder struct {
	ID         string
	Status     string
	Notes      string
	TotalCents int64
	Items      []*wireCartItem
}

// WireProduct seeds the fake catalog. Names are per-language so locale
// isolation is observable in responses.
type WireProduct struct {
	ID         int64
	Names      map[string]string
	Type       string
	PriceCents int64
	TagIDs     []int64
}

type Backend struct {
	mu sync.Mutex

	products []WireProduct

	carts      map[string]*wireCart
	orders     map[string]*wireOrder
	nextCart   int
	nextOrder  int
	validAdmin map[string]bool

	// CartCreates counts POST /api/v1/cart calls; Requests counts every
	// request by method+path+query for dedup and cache assertions.
	CartCreates int
	Requests    map[string]int

	server *httptest.Server
}

func NewBackend() *Backend {
	b := &Backend{
		carts:      map[string]*wireCart{},
		orders:     map[string]*wireOrder{},
		validAdmin: map[string]bool{AdminToken: true},
		Requests:   map[string]int{},
	}

	b.server = httptest.NewServer(b.mux())

	return b
}

func (b *Backend) URL() string {
	return b.server.URL
}

func (b *Backend) Close() {
	b.server.Close()
}

func (b *Backend) SeedProducts(products ...WireProduct) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.products = append(b.products, products...)
}

// DropCart makes the backend forget a cart, simulating expiry.
func (b *Backend) DropCart(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.carts, token)
}

func (b *Backend) RequestCount(methodAndPath string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.Requests[methodAndPath]
}

func (b *Backend) mux() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/cart", b.createCart)
	mux.HandleFunc("GET /api/v1/cart/{token}", b.getCart)
	mux.HandleFunc("POST /api/v1/cart/{token}/items", b.addItem)
	mux.HandleFunc("PUT /api/v1/cart/{token}/items/{id}", b.updateItem)
	mux.HandleFunc("DELETE /api/v1/cart/{token}/items/{id}", b.removeItem)
	mux.HandleFunc("GET /api/v1/products", b.listProducts)
	mux.HandleFunc("POST /api/v1/orders", b.checkout)
	mux.HandleFunc("GET /api/v1/orders/{id}", b.getOrder)
	mux.HandleFunc("POST /api/v1/admin/login", b.adminLogin)
	mux.HandleFunc("GET /api/v1/admin/verify", b.adminVerify)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.Requests[r.Method+" "+r.URL.RequestURI()]++
		b.mu.Unlock()

		mux.ServeHTTP(w, r)
	})
}

func (b *Backend) createCart(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextCart++
	b.CartCreates++

	cart := &wireCart{token: fmt.Sprintf("cart-%d", b.nextCart)}
	b.carts[cart.token] = cart

	writeJSON(w, http.StatusCreated, b.renderCart(cart, "en"))
}

func (b *Backend) getCart(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cart, ok := b.carts[r.PathValue("token")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "cart not found"})

		return
	}

	writeJSON(w, http.StatusOK, b.renderCart(cart, language(r)))
}

func (b *Backend) addItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cart, ok := b.carts[r.PathValue("token")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "cart not found"})

		return
	}

	var req struct {
		ProductID   int64  `json:"product_id"`
		VariationID *int64 `json:"variation_id"`
		Quantity    int    `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error_description": "bad body"})

		return
	}

	// Same (product, variation) pair bumps quantity instead of adding a
	// duplicate line.
	for _, item := range cart.items {
		if item.ProductID == req.ProductID && int64PtrEqual(item.VariationID, req.VariationID) {
			item.Quantity += req.Quantity

			writeJSON(w, http.StatusOK, b.renderCart(cart, language(r)))

			return
		}
	}

	cart.nextID++
	cart.items = append(cart.items, &wireCartItem{
		ID:          cart.nextID,
		ProductID:   req.ProductID,
		VariationID: req.VariationID,
		Quantity:    req.Quantity,
		priceCents:  b.priceCents(req.ProductID),
	})

	writeJSON(w, http.StatusOK, b.renderCart(cart, language(r)))
}

func (b *Backend) updateItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cart, ok := b.carts[r.PathValue("token")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "cart not found"})

		return
	}

	itemID, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	var req struct {
		Quantity int `json:"quantity"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error_description": "bad body"})

		return
	}

	for _, item := range cart.items {
		if item.ID == itemID {
			item.Quantity = req.Quantity

			writeJSON(w, http.StatusOK, b.renderCart(cart, language(r)))

			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "item not found"})
}

func (b *Backend) removeItem(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	cart, ok := b.carts[r.PathValue("token")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "cart not found"})

		return
	}

	itemID, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)

	for i, item := range cart.items {
		if item.ID == itemID {
			cart.items = append(cart.items[:i], cart.items[i+1:]...)

			// Remove intentionally returns no cart body.
			writeJSON(w, http.StatusOK, map[string]any{"status": "success"})

			return
		}
	}

	writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "item not found"})
}

func (b *Backend) listProducts(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	lang := language(r)
	search := strings.ToLower(r.URL.Query().Get("search"))
	ptype := r.URL.Query().Get("type")

	data := []map[string]any{}

	for _, p := range b.products {

		name := p.Names[lang]
		if name == "" {
			name = p.Names["en"]
		}

		if search != "" && !strings.Contains(strings.ToLower(name), search) {
			continue
		}

		if ptype != "" && p.Type != ptype {
			continue
		}

		data = append(data, map[string]any{
			"id":         p.ID,
			"name":       name,
			"price":      cents(p.PriceCents),
			"image_url":  nil,
			"is_active":  true,
			"created_at": "2026-01-01T00:00:00Z",
			"updated_at": "2026-01-01T00:00:00Z",
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"data": data})
}

func (b *Backend) checkout(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	var req struct {
		CartToken string `json:"cart_token"`
		Notes     string `json:"notes"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"error_description": "bad body"})

		return
	}

	cart, ok := b.carts[req.CartToken]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "cart not found"})

		return
	}

	b.nextOrder++

	order := &wireOrder{
		ID:     fmt.Sprintf("order-%d", b.nextOrder),
		Status: "confirmed",
		Notes:  req.Notes,
		Items:  cart.items,
	}

	for _, item := range cart.items {
		order.TotalCents += item.priceCents * int64(item.Quantity)
	}

	b.orders[order.ID] = order

	// The cart has become an order.
	delete(b.carts, req.CartToken)

	writeJSON(w, http.StatusCreated, b.renderOrder(order, language(r)))
}

func (b *Backend) getOrder(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	order, ok := b.orders[r.PathValue("id")]
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]any{"error_description": "order not found"})

		return
	}

	writeJSON(w, http.StatusOK, b.renderOrder(order, language(r)))
}

func (b *Backend) adminLogin(w http.ResponseWriter, r *http.Request) {

	var req struct {
		Password string `json:"password"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Password != AdminPassword {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error_description": "invalid password"})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"token": AdminToken})
}

func (b *Backend) adminVerify(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	defer b.mu.Unlock()

	token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if !b.validAdmin[token] {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"error_description": "invalid token"})

		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"status": "success"})
}

// RevokeAdminToken makes the backend reject a previously valid token.
func (b *Backend) RevokeAdminToken(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.validAdmin, token)
}

func (b *Backend) renderCart(cart *wireCart, lang string) map[string]any {

	items := make([]map[string]any, len(cart.items))

	var totalCents int64

	for i, item := range cart.items {
		subtotal := item.priceCents * int64(item.Quantity)
		totalCents += subtotal

		items[i] = map[string]any{
			"id":             item.ID,
			"product_id":     item.ProductID,
			"product_name":   b.productName(item.ProductID, lang),
			"variation_id":   item.VariationID,
			"variation_name": nil,
			"image_url":      nil,
			"unit_price":     cents(item.priceCents),
			"quantity":       item.Quantity,
			"subtotal":       cents(subtotal),
		}
	}

	return map[string]any{
		"token": cart.token,
		"items": items,
		"total": cents(totalCents),
	}
}

func (b *Backend) renderOrder(order *wireOrder, lang string) map[string]any {

	items := make([]map[string]any, len(order.Items))

	for i, item := range order.Items {
		items[i] = map[string]any{
			"product_id":     item.ProductID,
			"product_name":   b.productName(item.ProductID, lang),
			"variation_id":   item.VariationID,
			"variation_name": nil,
			"image_url":      nil,
			"unit_price":     cents(item.priceCents),
			"quantity":       item.Quantity,
			"subtotal":       cents(item.priceCents * int64(item.Quantity)),
		}
	}

	notes := any(nil)
	if order.Notes != "" {
		notes = order.Notes
	}

	return map[string]any{
		"id":          order.ID,
		"status":      order.Status,
		"total":       cents(order.TotalCents),
		"notes":       notes,
		"items":       items,
		"inserted_at": "2026-01-01T00:00:00Z",
	}
}

func (b *Backend) productName(productID int64, lang string) string {

	for _, p := range b.products {
		if p.ID == productID {
			if name := p.Names[lang]; name != "" {
				return name
			}

			return p.Names["en"]
		}
	}

	return fmt.Sprintf("product-%d", productID)
}

func (b *Backend) priceCents(productID int64) int64 {

	for _, p := range b.products {
		if p.ID == productID {
			return p.PriceCents
		}
	}

	return 0
}

func cents(c int64) string {
	return fmt.Sprintf("%d.%02d", c/100, c%100)
}

func language(r *http.Request) string {

	lang := r.URL.Query().Get("language")
	if lang == "" {
		return "en"
	}

	return lang
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func int64PtrEqual(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}

	return *a == *b
}
