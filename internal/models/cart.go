package models

type CartItem struct {
	ID            int64   `json:"id"`
	ProductID     int64   `json:"productId"`
	ProductName   string  `json:"productName"`
	VariationID   *int64  `json:"variationId"`
	VariationName *string `json:"variationName"`
	ImageURL      *string `json:"imageUrl"`
	UnitPrice     string  `json:"unitPrice"`
	Quantity      int     `json:"quantity"`
	Subtotal      string  `json:"subtotal"`
}

// Cart is the server-persisted anonymous cart. The token is the only handle
// the client keeps; item arithmetic is performed server-side.
type Cart struct {
	Token string     `json:"token"`
	Items []CartItem `json:"items"`
	Total string     `json:"total"`
}

func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}

	return count
}

// AddItemRequest targets a (product, optional variation) pair. Re-adding the
// same pair increases quantity server-side instead of duplicating the line.
type AddItemRequest struct {
	ProductID   int64  `json:"productId" validate:"required,gt=0"`
	VariationID *int64 `json:"variationId,omitempty"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// UpdateItemRequest sets a line's quantity directly. Quantity below one is a
// caller error; removal is a distinct operation.
type UpdateItemRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}
