package services

import (
	"context"
	"fmt"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"strings"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CatalogService owns products, variants, stock batches, categories, tags,
// bundles and reviews.
type CatalogService struct {
	logger       *gecho.Logger
	cfg          *structs.Config
	db           *database.DB
	cacheService *CacheService
	imgbb        *lib.ImgbbClient
}

func NewCatalogService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, cacheService *CacheService) *CatalogService {
	return &CatalogService{
		logger:       logger,
		cfg:          cfg,
		db:           db,
		cacheService: cacheService,
		imgbb:        lib.NewImgbbClient(cfg.Imgbb.ApiKey, cfg.Imgbb.UploadURL),
	}
}

// ListProducts returns a filtered, paginated product listing.
func (cs *CatalogService) ListProducts(ctx context.Context, opts *structs.ProductListOptions) (*database.PaginationResult[tables.Product], error) {
	q := database.Query[tables.Product](cs.db)

	if opts.SearchTerm != "" {
		q = q.WhereRaw("(p.name ILIKE ? OR p.description ILIKE ?)", "%"+opts.SearchTerm+"%", "%"+opts.SearchTerm+"%")
	}

	if opts.CategorySlug != "" {
		q = q.WhereRaw(
			"EXISTS (SELECT 1 FROM product_categories pc JOIN categories c ON c.id = pc.category_id WHERE pc.product_id = p.id AND c.slug = ?)",
			opts.CategorySlug,
		)
	}

	if opts.TagSlug != "" {
		q = q.WhereRaw(
			"EXISTS (SELECT 1 FROM product_tags pt JOIN tags t ON t.id = pt.tag_id WHERE pt.product_id = p.id AND t.slug = ?)",
			opts.TagSlug,
		)
	}

	// Price filters look at the variant final price: discount when present,
	// base price otherwise.
	if opts.MinPrice != nil {
		q = q.WhereRaw(
			"EXISTS (SELECT 1 FROM variants v WHERE v.product_id = p.id AND COALESCE(v.discount_price, v.price) >= ?)",
			*opts.MinPrice,
		)
	}
	if opts.MaxPrice != nil {
		q = q.WhereRaw(
			"EXISTS (SELECT 1 FROM variants v WHERE v.product_id = p.id AND COALESCE(v.discount_price, v.price) <= ?)",
			*opts.MaxPrice,
		)
	}

	if opts.IsCustomizable != nil {
		q = q.Where("is_customizable", *opts.IsCustomizable)
	}
	if opts.CreatedAfter != nil {
		q = q.WhereOp("created_at", ">=", *opts.CreatedAfter)
	}
	if opts.CreatedBefore != nil {
		q = q.WhereOp("created_at", "<=", *opts.CreatedBefore)
	}

	if opts.IncludeImages {
		q = q.With("Images")
	}
	if opts.IncludeVariants {
		q = q.With("Variants").With("Variants.Stocks")
	}

	sortBy := opts.SortBy
	switch sortBy {
	case "name", "created_at", "updated_at":
	default:
		sortBy = "created_at"
	}
	direction := database.DESC
	if strings.EqualFold(opts.SortDirection, "asc") {
		direction = database.ASC
	}
	q = q.OrderBy(sortBy, direction)

	return database.Paginate(q, ctx, opts.Page, opts.PageSize)
}

// GetProductBySlug loads one product with its relations, preferring the cache.
func (cs *CatalogService) GetProductBySlug(ctx context.Context, slug string) (*tables.Product, error) {
	if cached, err := cs.cacheService.GetCachedProduct(slug); err == nil && cached != nil {
		return cached, nil
	}

	product, err := database.Query[tables.Product](cs.db).
		Where("slug", slug).
		With("Images").
		With("Variants").
		With("Variants.Stocks").
		With("Categories").
		With("Tags").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	if err := cs.cacheService.SetCachedProduct(product); err != nil {
		cs.logger.Warn("Failed to cache product", gecho.Field("slug", slug), gecho.Field("error", err))
	}

	return product, nil
}

// CreateProduct inserts a product with its relations. A product submitted
// without variants gets an explicit "Default" placeholder variant so there is
// always something to sell.
func (cs *CatalogService) CreateProduct(ctx context.Context, req *structs.CreateProductRequest) (*tables.Product, error) {
	slug, err := lib.UniqueSlug(req.Name, func(candidate string) (bool, error) {
		return database.Query[tables.Product](cs.db).Where("slug", candidate).Exists(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	now := time.Now()
	product := &tables.Product{
		Id:                   uuid.New(),
		Name:                 req.Name,
		Slug:                 slug,
		Description:          req.Description,
		Specifications:       req.Specifications,
		IsCustomizable:       req.IsCustomizable,
		CustomizationOptions: req.CustomizationOptions,
		YoutubeVideoURL:      req.YoutubeVideoURL,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(product).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		for _, categoryId := range req.CategoryIds {
			link := &tables.ProductCategory{ProductId: product.Id, CategoryId: categoryId}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		for _, tagId := range req.TagIds {
			link := &tables.ProductTag{ProductId: product.Id, TagId: tagId}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}

		variantReqs := req.Variants
		if len(variantReqs) == 0 {
			variantReqs = []structs.CreateVariantRequest{{Name: "Default", Price: 0}}
		}

		for _, vr := range variantReqs {
			variant := &tables.Variant{
				Id:            uuid.New(),
				ProductId:     product.Id,
				Name:          vr.Name,
				Attributes:    vr.Attributes,
				Price:         vr.Price,
				DiscountPrice: vr.DiscountPrice,
				CreatedAt:     now,
				UpdatedAt:     now,
			}
			if _, err := tx.NewInsert().Model(variant).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
			product.Variants = append(product.Variants, variant)
		}

		return nil
	})
	if err != nil {
		cs.logger.Error("Failed to create product", gecho.Field("name", req.Name), gecho.Field("error", err))
		return nil, err
	}

	cs.logger.Info("Product created",
		gecho.Field("product_id", product.Id),
		gecho.Field("slug", product.Slug),
		gecho.Field("variants", len(product.Variants)),
	)

	return product, nil
}

func (cs *CatalogService) UpdateProduct(ctx context.Context, productId uuid.UUID, req *structs.UpdateProductRequest) (*tables.Product, error) {
	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Specifications != nil {
		updates["specifications"] = req.Specifications
	}
	if req.IsCustomizable != nil {
		updates["is_customizable"] = *req.IsCustomizable
	}
	if req.CustomizationOptions != nil {
		updates["customization_options"] = req.CustomizationOptions
	}
	if req.YoutubeVideoURL != nil {
		updates["youtube_video_url"] = *req.YoutubeVideoURL
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		query := tx.NewUpdate().Model((*tables.Product)(nil)).Where("id = ?", productId)
		for column, value := range updates {
			query = query.Set("? = ?", bun.Ident(column), value)
		}
		if _, err := query.Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if req.CategoryIds != nil {
			if _, err := tx.NewDelete().Model((*tables.ProductCategory)(nil)).Where("product_id = ?", productId).Exec(ctx); err != nil {
				return err
			}
			for _, categoryId := range req.CategoryIds {
				link := &tables.ProductCategory{ProductId: productId, CategoryId: categoryId}
				if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
					return lib.MapPgError(err)
				}
			}
		}

		if req.TagIds != nil {
			if _, err := tx.NewDelete().Model((*tables.ProductTag)(nil)).Where("product_id = ?", productId).Exec(ctx); err != nil {
				return err
			}
			for _, tagId := range req.TagIds {
				link := &tables.ProductTag{ProductId: productId, TagId: tagId}
				if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
					return lib.MapPgError(err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := cs.cacheService.InvalidateProduct(product.Slug); err != nil {
		cs.logger.Warn("Failed to invalidate cached product", gecho.Field("slug", product.Slug), gecho.Field("error", err))
	}

	return database.FindByID[tables.Product](cs.db, ctx, productId)
}

func (cs *CatalogService) DeleteProduct(ctx context.Context, productId uuid.UUID) error {
	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return lib.MapPgError(err)
	}
	if product == nil {
		return lib.ErrNotFound
	}

	if _, err := database.DeleteByID[tables.Product](cs.db, ctx, productId); err != nil {
		return lib.MapPgError(err)
	}

	if err := cs.cacheService.InvalidateProduct(product.Slug); err != nil {
		cs.logger.Warn("Failed to invalidate cached product", gecho.Field("slug", product.Slug), gecho.Field("error", err))
	}

	return nil
}

// UploadProductImage pushes the image to the hosting provider and stores the
// resulting URL.
func (cs *CatalogService) UploadProductImage(ctx context.Context, productId uuid.UUID, req *structs.UploadImageRequest) (*tables.ProductImage, error) {
	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	url, err := cs.imgbb.Upload(ctx, req.FileName, req.Data)
	if err != nil {
		cs.logger.Error("Image upload failed", gecho.Field("product_id", productId), gecho.Field("error", err))
		return nil, fmt.Errorf("image upload failed: %w", err)
	}

	image := &tables.ProductImage{
		Id:        uuid.New(),
		ProductId: productId,
		ImageURL:  url,
		IsPrimary: req.IsPrimary,
		CreatedAt: time.Now(),
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if req.IsPrimary {
			if _, err := tx.NewUpdate().Model((*tables.ProductImage)(nil)).
				Set("is_primary = ?", false).
				Where("product_id = ?", productId).
				Exec(ctx); err != nil {
				return err
			}
		}
		_, err := tx.NewInsert().Model(image).Exec(ctx)
		return err
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if err := cs.cacheService.InvalidateProduct(product.Slug); err != nil {
		cs.logger.Warn("Failed to invalidate cached product", gecho.Field("slug", product.Slug), gecho.Field("error", err))
	}

	return image, nil
}

// Variants and stock

func (cs *CatalogService) GetVariantWithStock(ctx context.Context, variantId uuid.UUID) (*tables.Variant, error) {
	variant, err := database.Query[tables.Variant](cs.db).
		Where("id", variantId).
		With("Stocks").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if variant == nil {
		return nil, lib.ErrNotFound
	}
	return variant, nil
}

func (cs *CatalogService) CreateVariant(ctx context.Context, productId uuid.UUID, req *structs.CreateVariantRequest) (*tables.Variant, error) {
	now := time.Now()
	variant := &tables.Variant{
		Id:            uuid.New(),
		ProductId:     productId,
		Name:          req.Name,
		Attributes:    req.Attributes,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := database.Create(cs.db, ctx, variant)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (cs *CatalogService) UpdateVariant(ctx context.Context, variantId uuid.UUID, req *structs.UpdateVariantRequest) (*tables.Variant, error) {
	updates := map[string]any{"updated_at": time.Now()}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Attributes != nil {
		updates["attributes"] = req.Attributes
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DiscountPrice != nil {
		updates["discount_price"] = *req.DiscountPrice
	}

	affected, err := database.UpdateByID[tables.Variant](cs.db, ctx, variantId, updates)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if affected == 0 {
		return nil, lib.ErrNotFound
	}

	return database.FindByID[tables.Variant](cs.db, ctx, variantId)
}

func (cs *CatalogService) DeleteVariant(ctx context.Context, variantId uuid.UUID) error {
	deleted, err := database.DeleteByID[tables.Variant](cs.db, ctx, variantId)
	if err != nil {
		return lib.MapPgError(err)
	}
	if deleted == 0 {
		return lib.ErrNotFound
	}
	return nil
}

// AddStock records a purchased batch for a variant.
func (cs *CatalogService) AddStock(ctx context.Context, req *structs.AddStockRequest) (*tables.Stock, error) {
	variant, err := database.FindByID[tables.Variant](cs.db, ctx, req.VariantId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if variant == nil {
		return nil, lib.ErrNotFound
	}

	stock := &tables.Stock{
		Id:          uuid.New(),
		VariantId:   req.VariantId,
		Quantity:    req.Quantity,
		BuyingPrice: req.BuyingPrice,
		CreatedAt:   time.Now(),
	}

	created, err := database.Create(cs.db, ctx, stock)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	cs.logger.Info("Stock batch added",
		gecho.Field("variant_id", req.VariantId),
		gecho.Field("quantity", req.Quantity),
	)

	return created, nil
}

// Categories and tags

func (cs *CatalogService) ListCategories(ctx context.Context) ([]tables.Category, error) {
	categories, err := database.Query[tables.Category](cs.db).OrderBy("name", database.ASC).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return categories, nil
}

func (cs *CatalogService) CreateCategory(ctx context.Context, req *structs.CategoryRequest) (*tables.Category, error) {
	slug, err := lib.UniqueSlug(req.Name, func(candidate string) (bool, error) {
		return database.Query[tables.Category](cs.db).Where("slug", candidate).Exists(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	category := &tables.Category{
		Id:          uuid.New(),
		Name:        req.Name,
		Slug:        slug,
		Description: req.Description,
		ParentId:    req.ParentId,
		CreatedAt:   time.Now(),
	}

	created, err := database.Create(cs.db, ctx, category)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (cs *CatalogService) ListTags(ctx context.Context) ([]tables.Tag, error) {
	tags, err := database.Query[tables.Tag](cs.db).OrderBy("name", database.ASC).All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return tags, nil
}

func (cs *CatalogService) CreateTag(ctx context.Context, req *structs.TagRequest) (*tables.Tag, error) {
	tag := &tables.Tag{
		Id:        uuid.New(),
		Name:      req.Name,
		Slug:      lib.Slugify(req.Name),
		CreatedAt: time.Now(),
	}

	created, err := database.Create(cs.db, ctx, tag)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

// Bundles

func (cs *CatalogService) ListBundles(ctx context.Context, page, pageSize int) (*database.PaginationResult[tables.Bundle], error) {
	q := database.Query[tables.Bundle](cs.db).
		With("Products").
		OrderBy("created_at", database.DESC)
	return database.Paginate(q, ctx, page, pageSize)
}

func (cs *CatalogService) GetBundleBySlug(ctx context.Context, slug string) (*tables.Bundle, error) {
	bundle, err := database.Query[tables.Bundle](cs.db).
		Where("slug", slug).
		With("Products").
		With("Products.Images").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if bundle == nil {
		return nil, lib.ErrNotFound
	}
	return bundle, nil
}

func (cs *CatalogService) CreateBundle(ctx context.Context, req *structs.CreateBundleRequest) (*tables.Bundle, error) {
	slug, err := lib.UniqueSlug(req.Name, func(candidate string) (bool, error) {
		return database.Query[tables.Bundle](cs.db).Where("slug", candidate).Exists(ctx)
	})
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	now := time.Now()
	bundle := &tables.Bundle{
		Id:            uuid.New(),
		Name:          req.Name,
		Slug:          slug,
		Description:   req.Description,
		BundlePrice:   req.BundlePrice,
		DiscountPrice: req.DiscountPrice,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewInsert().Model(bundle).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		for _, productId := range req.ProductIds {
			link := &tables.BundleProduct{BundleId: bundle.Id, ProductId: productId}
			if _, err := tx.NewInsert().Model(link).Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return bundle, nil
}

// Reviews

// CreateReview stores a rating. The unique index on (product_id, user_id)
// turns a second review into a conflict.
func (cs *CatalogService) CreateReview(ctx context.Context, productId, userId uuid.UUID, req *structs.ReviewRequest) (*tables.Review, error) {
	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	review := &tables.Review{
		Id:        uuid.New(),
		ProductId: productId,
		UserId:    userId,
		Rating:    req.Rating,
		Comment:   req.Comment,
		CreatedAt: time.Now(),
	}

	created, err := database.Create(cs.db, ctx, review)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return created, nil
}

func (cs *CatalogService) ListReviews(ctx context.Context, productId uuid.UUID, page, pageSize int) (*database.PaginationResult[tables.Review], error) {
	q := database.Query[tables.Review](cs.db).
		Where("product_id", productId).
		With("User").
		OrderBy("created_at", database.DESC)
	return database.Paginate(q, ctx, page, pageSize)
}
