package orders

import "time"

// Order links a buyer to a product snapshot taken at purchase time. The
// snapshot columns keep historical orders renderable after the listing
// itself is deleted.
type Order struct {
	ID                 int64     `json:"id"`
	UserID             int64     `json:"user_id"`
	ProductID          int64     `json:"product_id"`
	ProductName        string    `json:"product_name"`
	ProductDescription string    `json:"product_description"`
	MainImage          string    `json:"main_image,omitempty"`
	Quantity           int       `json:"quantity"`
	TotalPrice         float64   `json:"total_price"`
	ShippingAddress    string    `json:"shipping_address"`
	Status             Status    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

// PurchaseInput carries everything needed to place an order.
type PurchaseInput struct {
	UserID             int64
	ProductID          int64
	Quantity           int
	ShippingAddress    string
	ProductName        string
	ProductDescription string
	MainImage          string
	TotalPrice         float64
}
