package models

type ProductTranslation struct {
	Language    string  `json:"language"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type VariationTranslation struct {
	Language string `json:"language"`
	Name     string `json:"name"`
}

type AdminVariation struct {
	ID           int64                  `json:"id"`
	ProductID    int64                  `json:"productId"`
	Name         string                 `json:"name"`
	Price        *string                `json:"price"`
	ImageURL     *string                `json:"imageUrl"`
	Order        int                    `json:"order"`
	IsActive     bool                   `json:"isActive"`
	InsertedAt   string                 `json:"insertedAt"`
	UpdatedAt    string                 `json:"updatedAt"`
	Translations []VariationTranslation `json:"translations"`
}

// AdminProduct is the untranslated management view: all translation rows and
// variations embedded, ordering and active flags exposed.
type AdminProduct struct {
	ID           int64                `json:"id"`
	Name         string               `json:"name"`
	Description  *string              `json:"description"`
	Price        string               `json:"price"`
	ImageURL     *string              `json:"imageUrl"`
	Order        int                  `json:"order"`
	IsActive     bool                 `json:"isActive"`
	Type         ProductType          `json:"type"`
	InsertedAt   string               `json:"insertedAt"`
	UpdatedAt    string               `json:"updatedAt"`
	Translations []ProductTranslation `json:"translations"`
	Variations   []AdminVariation     `json:"variations"`
}

type ProductCreateRequest struct {
	Name        string       `json:"name" validate:"required"`
	Description *string      `json:"description,omitempty"`
	Price       string       `json:"price" validate:"required"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	Order       *int         `json:"order,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
	Type        *ProductType `json:"type,omitempty" validate:"omitempty,oneof=product service"`
}

type ProductUpdateRequest struct {
	Name        *string      `json:"name,omitempty"`
	Description *string      `json:"description,omitempty"`
	Price       *string      `json:"price,omitempty"`
	ImageURL    *string      `json:"imageUrl,omitempty"`
	Order       *int         `json:"order,omitempty"`
	IsActive    *bool        `json:"isActive,omitempty"`
	Type        *ProductType `json:"type,omitempty" validate:"omitempty,oneof=product service"`
}

type TranslationRequest struct {
	Language    string  `json:"language" validate:"required,oneof=en es"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

type VariationCreateRequest struct {
	Name     string  `json:"name" validate:"required"`
	Price    *string `json:"price,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type VariationUpdateRequest struct {
	Name     *string `json:"name,omitempty"`
	Price    *string `json:"price,omitempty"`
	ImageURL *string `json:"imageUrl,omitempty"`
	Order    *int    `json:"order,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type VariationTranslationRequest struct {
	Language string `json:"language" validate:"required,oneof=en es"`
	Name     string `json:"name" validate:"required"`
}

type TagCreateRequest struct {
	Label string `json:"label" validate:"required"`
}

type TagUpdateRequest struct {
	Label *string `json:"label,omitempty"`
}

type TagTranslationRequest struct {
	Language string `json:"language" validate:"required,oneof=en es"`
	Label    string `json:"label" validate:"required"`
}

type EntityTagAddRequest struct {
	TagID int64 `json:"tagId" validate:"required,gt=0"`
}

type TipCreateRequest struct {
	Type        TipType `json:"type" validate:"required,oneof=quick_tip business"`
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description" validate:"required"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type TipUpdateRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Order       *int    `json:"order,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

type TipTranslationRequest struct {
	Language    string `json:"language" validate:"required,oneof=en es"`
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

// ReorderItem carries a drag-and-drop position assignment.
type ReorderItem struct {
	ID    int64 `json:"id" validate:"required,gt=0"`
	Order int   `json:"order" validate:"gte=0"`
}

type ReorderRequest struct {
	Items []ReorderItem `json:"items" validate:"required,min=1,dive"`
}

type LoginRequest struct {
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// SignedUploadURL pairs a short-lived direct-upload URL with the public URL
// the image will be served from afterwards.
type SignedUploadURL struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
}
