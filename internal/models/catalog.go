// Package models defines the domain-format entities exchanged with the
// storefront backend. JSON tags are camelCase: every payload crosses the
// casing transform at the HTTP boundary, so these structs describe the
// post-transform shape, not the wire shape.
package models

// ListResponse is the `{"data": [...]}` envelope every list endpoint uses.
type ListResponse[T any] struct {
	Data []T `json:"data"`
}

type ProductType string

const (
	ProductTypeProduct ProductType = "product"
	ProductTypeService ProductType = "service"
)

// Product is the public, locale-resolved view of a catalog entry. Prices are
// kept as decimal strings exactly as the backend renders them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       string  `json:"price"`
	ImageURL    *string `json:"imageUrl"`
	IsActive    bool    `json:"isActive"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type TagTranslation struct {
	Language string `json:"language"`
	Label    string `json:"label"`
}

type Tag struct {
	ID         int64  `json:"id"`
	Label      string `json:"label"`
	Order      int    `json:"order"`
	InsertedAt string `json:"insertedAt"`
	UpdatedAt  string `json:"updatedAt"`
}

type AdminTag struct {
	Tag

	Translations []TagTranslation `json:"translations"`
}

type TipType string

const (
	TipTypeQuickTip TipType = "quick_tip"
	TipTypeBusiness TipType = "business"
)

type TipTranslation struct {
	Language    string `json:"language"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Tip covers both variants: quick tips surface only title and rich
// description, businesses additionally carry an image and category tags.
type Tip struct {
	ID          int64   `json:"id"`
	Type        TipType `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	ImageURL    *string `json:"imageUrl"`
	Order       int     `json:"order"`
	IsActive    bool    `json:"isActive"`
	Tags        []Tag   `json:"tags,omitempty"`
	InsertedAt  string  `json:"insertedAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type AdminTip struct {
	Tip

	Translations []TipTranslation `json:"translations"`
}
