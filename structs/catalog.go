package structs

import (
	"time"

	"github.com/google/uuid"
)

// ProductListOptions are the parsed query parameters of the product listing
// endpoints.
type ProductListOptions struct {
	Page     int
	PageSize int

	CategorySlug   string
	TagSlug        string
	SearchTerm     string
	MinPrice       *int64
	MaxPrice       *int64
	IsCustomizable *bool

	CreatedAfter  *time.Time
	CreatedBefore *time.Time

	SortBy        string
	SortDirection string

	IncludeImages   bool
	IncludeVariants bool
}

type CreateProductRequest struct {
	Name                 string                 `json:"name" validate:"required,min=2,max=200"`
	Description          string                 `json:"description" validate:"omitempty,max=5000"`
	Specifications       map[string]any         `json:"specifications"`
	IsCustomizable       bool                   `json:"is_customizable"`
	CustomizationOptions map[string]any         `json:"customization_options"`
	YoutubeVideoURL      string                 `json:"youtube_video_url" validate:"omitempty,url"`
	CategoryIds          []uuid.UUID            `json:"category_ids"`
	TagIds               []uuid.UUID            `json:"tag_ids"`
	Variants             []CreateVariantRequest `json:"variants" validate:"omitempty,dive"`
}

type UpdateProductRequest struct {
	Name                 *string        `json:"name" validate:"omitempty,min=2,max=200"`
	Description          *string        `json:"description" validate:"omitempty,max=5000"`
	Specifications       map[string]any `json:"specifications"`
	IsCustomizable       *bool          `json:"is_customizable"`
	CustomizationOptions map[string]any `json:"customization_options"`
	YoutubeVideoURL      *string        `json:"youtube_video_url" validate:"omitempty,url"`
	CategoryIds          []uuid.UUID    `json:"category_ids"`
	TagIds               []uuid.UUID    `json:"tag_ids"`
}

type CreateVariantRequest struct {
	Name          string         `json:"name" validate:"required,min=1,max=100"`
	Attributes    map[string]any `json:"attributes"`
	Price         int64          `json:"price" validate:"required,gte=0"`
	DiscountPrice *int64         `json:"discount_price" validate:"omitempty,gte=0"`
}

type UpdateVariantRequest struct {
	Name          *string        `json:"name" validate:"omitempty,min=1,max=100"`
	Attributes    map[string]any `json:"attributes"`
	Price         *int64         `json:"price" validate:"omitempty,gte=0"`
	DiscountPrice *int64         `json:"discount_price" validate:"omitempty,gte=0"`
}

type AddStockRequest struct {
	VariantId   uuid.UUID `json:"variant_id" validate:"required"`
	Quantity    int       `json:"quantity" validate:"required"`
	BuyingPrice int64     `json:"buying_price" validate:"gte=0"`
}

type CategoryRequest struct {
	Name        string     `json:"name" validate:"required,min=2,max=100"`
	Description string     `json:"description" validate:"omitempty,max=1000"`
	ParentId    *uuid.UUID `json:"parent_id"`
}

type TagRequest struct {
	Name string `json:"name" validate:"required,min=2,max=50"`
}

type CreateBundleRequest struct {
	Name          string      `json:"name" validate:"required,min=2,max=200"`
	Description   string      `json:"description" validate:"omitempty,max=5000"`
	ProductIds    []uuid.UUID `json:"product_ids" validate:"required,min=1"`
	BundlePrice   int64       `json:"bundle_price" validate:"required,gte=0"`
	DiscountPrice *int64      `json:"discount_price" validate:"omitempty,gte=0"`
}

type ReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=1000"`
}

// UploadImageRequest carries a base64-encoded image for the imgbb hosting
// upload.
type UploadImageRequest struct {
	FileName  string `json:"file_name" validate:"required,max=200"`
	Data      string `json:"data" validate:"required"`
	IsPrimary bool   `json:"is_primary"`
}
