package httpx

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/alorahq/marketplace/internal/orders"
)

type OrdersHandler struct {
	Service *orders.Service
}

type purchaseReq struct {
	ProductID          int64   `json:"product_id"`
	Quantity           int     `json:"quantity"`
	ShippingAddress    string  `json:"shipping_address"`
	ProductName        string  `json:"product_name"`
	ProductDescription string  `json:"product_description"`
	MainImage          string  `json:"main_image"`
	TotalPrice         float64 `json:"total_price"`
}

type statusReq struct {
	Status string `json:"status"`
}

func (h *OrdersHandler) Register(r chi.Router) {
	r.Post("/orders", h.purchase)
	r.Get("/orders/by-user/{userId}", h.listByUser)
	r.Patch("/orders/{id}/status", h.updateStatus)
	r.Patch("/orders/{id}/cancel", h.cancel)
}

func (h *OrdersHandler) purchase(w http.ResponseWriter, r *http.Request) {
	var req purchaseReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	// The buyer is always the token subject, never a body field.
	claims := ClaimsFrom(r.Context())
	id, err := h.Service.Purchase(ctx, orders.PurchaseInput{
		UserID:             claims.UserID,
		ProductID:          req.ProductID,
		Quantity:           req.Quantity,
		ShippingAddress:    req.ShippingAddress,
		ProductName:        req.ProductName,
		ProductDescription: req.ProductDescription,
		MainImage:          req.MainImage,
		TotalPrice:         req.TotalPrice,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"order_id": id})
}

func (h *OrdersHandler) listByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(chi.URLParam(r, "userId"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid user id"})
		return
	}
	if claims := ClaimsFrom(r.Context()); claims.UserID != userID {
		writeJSON(w, http.StatusForbidden, map[string]string{"error": "forbidden"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	list, err := h.Service.ListByUser(ctx, userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if list == nil {
		list = []orders.Order{}
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *OrdersHandler) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}
	var req statusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Service.UpdateStatus(ctx, id, req.Status); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": req.Status})
}

func (h *OrdersHandler) cancel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid order id"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	if err := h.Service.CancelOrder(ctx, id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": string(orders.StatusCancelled)})
}
