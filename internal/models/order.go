package models

type OrderStatus string

const (
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusProcessed OrderStatus = "processed"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// OrderItem is an immutable snapshot taken from the cart at checkout time;
// later product edits never change it.
type OrderItem struct {
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	ImageURL      *string `json:"imageUrl"`
	VariationID   *int64  `json:"variationId"`
	VariationName *string `json:"variationName"`
	UnitPrice     string  `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Subtotal      string  `json:"subtotal"`
}

type Order struct {
	ID         string      `json:"id"`
	Status     OrderStatus `json:"status"`
	Label      *string     `json:"label,omitempty"`
	Total      string      `json:"total"`
	Notes      *string     `json:"notes"`
	Items      []OrderItem `json:"items"`
	InsertedAt *string     `json:"insertedAt"`
}

type CheckoutRequest struct {
	CartToken   string `json:"cartToken" validate:"required"`
	ContactInfo string `json:"contactInfo,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

type OrderStatusUpdate struct {
	Status OrderStatus `json:"status" validate:"required,oneof=confirmed processed cancelled"`
}

type OrderLabelUpdate struct {
	Label string `json:"label" validate:"required"`
}
