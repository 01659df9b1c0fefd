package tables

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	tableName   struct{}   `bun:"table:categories,alias:c"`
	Id          uuid.UUID  `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string     `bun:"name,notnull,unique" json:"name" validate:"required,min=2,max=100"`
	Slug        string     `bun:"slug,notnull,unique" json:"slug"`
	Description string     `bun:"description" json:"description,omitempty"`
	ParentId    *uuid.UUID `bun:"parent_id,type:uuid" json:"parent_id,omitempty"`
	Parent      *Category  `bun:"rel:belongs-to,join:parent_id=id" json:"parent,omitempty"`
	CreatedAt   time.Time  `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Tag struct {
	tableName struct{}  `bun:"table:tags,alias:t"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull,unique" json:"name" validate:"required,min=2,max=50"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Product struct {
	tableName struct{}  `bun:"table:products,alias:p"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name      string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=200"`
	Slug      string    `bun:"slug,notnull,unique" json:"slug"`

	Description    string         `bun:"description" json:"description,omitempty"`
	Specifications map[string]any `bun:"specifications,type:jsonb" json:"specifications,omitempty"`

	IsCustomizable       bool           `bun:"is_customizable,notnull,default:false" json:"is_customizable"`
	CustomizationOptions map[string]any `bun:"customization_options,type:jsonb" json:"customization_options,omitempty"`

	YoutubeVideoURL string `bun:"youtube_video_url" json:"youtube_video_url,omitempty" validate:"omitempty,url"`

	Categories []*Category     `bun:"m2m:product_categories,join:Product=Category" json:"categories,omitempty"`
	Tags       []*Tag          `bun:"m2m:product_tags,join:Product=Tag" json:"tags,omitempty"`
	Images     []*ProductImage `bun:"rel:has-many,join:id=product_id" json:"images,omitempty"`
	Variants   []*Variant      `bun:"rel:has-many,join:id=product_id" json:"variants,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

type ProductCategory struct {
	tableName  struct{}  `bun:"table:product_categories,alias:pc"`
	ProductId  uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	Product    *Product  `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	CategoryId uuid.UUID `bun:"category_id,pk,type:uuid" json:"category_id"`
	Category   *Category `bun:"rel:belongs-to,join:category_id=id" json:"-"`
}

type ProductTag struct {
	tableName struct{}  `bun:"table:product_tags,alias:pt"`
	ProductId uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	Product   *Product  `bun:"rel:belongs-to,join:product_id=id" json:"-"`
	TagId     uuid.UUID `bun:"tag_id,pk,type:uuid" json:"tag_id"`
	Tag       *Tag      `bun:"rel:belongs-to,join:tag_id=id" json:"-"`
}

type ProductImage struct {
	tableName struct{}  `bun:"table:product_images,alias:pi"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	ImageURL  string    `bun:"image_url,notnull" json:"image_url" validate:"required,url"`
	IsPrimary bool      `bun:"is_primary,notnull,default:false" json:"is_primary"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

// Variant is the sellable unit of a product. Every product has at least one;
// products created without explicit variants get a "Default" placeholder.
type Variant struct {
	tableName struct{}  `bun:"table:variants,alias:v"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	Product   *Product  `bun:"rel:belongs-to,join:product_id=id" json:"product,omitempty"`

	Name       string         `bun:"name,notnull" json:"name" validate:"required,min=1,max=100"`
	Attributes map[string]any `bun:"attributes,type:jsonb" json:"attributes,omitempty"`

	// Prices in cents.
	Price         int64  `bun:"price,notnull" json:"price" validate:"required,gte=0"`
	DiscountPrice *int64 `bun:"discount_price" json:"discount_price,omitempty" validate:"omitempty,gte=0"`

	Stocks []*Stock `bun:"rel:has-many,join:id=variant_id" json:"stocks,omitempty"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// FinalPrice returns the discount price when one is set, the base price
// otherwise.
func (v *Variant) FinalPrice() int64 {
	if v.DiscountPrice != nil {
		return *v.DiscountPrice
	}
	return v.Price
}

// TotalStock sums the quantities of the variant's batches. Negative batch
// quantities from manual corrections do not subtract from availability.
func (v *Variant) TotalStock() int {
	total := 0
	for _, s := range v.Stocks {
		if s.Quantity > 0 {
			total += s.Quantity
		}
	}
	return total
}

// Stock is one purchased batch of a variant. Batches are consumed
// oldest-first when stock is allocated to an order item.
type Stock struct {
	tableName struct{}  `bun:"table:stocks,alias:s"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	VariantId uuid.UUID `bun:"variant_id,notnull,type:uuid" json:"variant_id"`
	Quantity  int       `bun:"quantity,notnull" json:"quantity"`

	// Purchase cost per unit in cents, kept for margin reporting.
	BuyingPrice int64 `bun:"buying_price,notnull" json:"buying_price" validate:"gte=0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}

type Bundle struct {
	tableName   struct{}  `bun:"table:bundles,alias:b"`
	Id          uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	Name        string    `bun:"name,notnull" json:"name" validate:"required,min=2,max=200"`
	Slug        string    `bun:"slug,notnull,unique" json:"slug"`
	Description string    `bun:"description" json:"description,omitempty"`

	Products []*Product `bun:"m2m:bundle_products,join:Bundle=Product" json:"products,omitempty"`

	BundlePrice   int64  `bun:"bundle_price,notnull" json:"bundle_price" validate:"required,gte=0"`
	DiscountPrice *int64 `bun:"discount_price" json:"discount_price,omitempty" validate:"omitempty,gte=0"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

func (b *Bundle) FinalPrice() int64 {
	if b.DiscountPrice != nil {
		return *b.DiscountPrice
	}
	return b.BundlePrice
}

type BundleProduct struct {
	tableName struct{}  `bun:"table:bundle_products,alias:bp"`
	BundleId  uuid.UUID `bun:"bundle_id,pk,type:uuid" json:"bundle_id"`
	Bundle    *Bundle   `bun:"rel:belongs-to,join:bundle_id=id" json:"-"`
	ProductId uuid.UUID `bun:"product_id,pk,type:uuid" json:"product_id"`
	Product   *Product  `bun:"rel:belongs-to,join:product_id=id" json:"-"`
}

// Review holds a customer rating. One review per user per product, enforced
// by a unique index on (product_id, user_id).
type Review struct {
	tableName struct{}  `bun:"table:reviews,alias:r"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	ProductId uuid.UUID `bun:"product_id,notnull,type:uuid" json:"product_id"`
	UserId    uuid.UUID `bun:"user_id,notnull,type:uuid" json:"user_id"`
	User      *User     `bun:"rel:belongs-to,join:user_id=id" json:"user,omitempty"`
	Rating    int       `bun:"rating,notnull" json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `bun:"comment" json:"comment,omitempty" validate:"omitempty,max=1000"`
	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
}
