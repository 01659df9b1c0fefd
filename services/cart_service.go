package services

import (
	"context"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// CartService owns user carts, guest session carts and wishlists.
type CartService struct {
	logger       *gecho.Logger
	db           *database.DB
	cacheService *CacheService
}

func NewCartService(logger *gecho.Logger, db *database.DB, cacheService *CacheService) *CartService {
	return &CartService{
		logger:       logger,
		db:           db,
		cacheService: cacheService,
	}
}

// GetOrCreateCart loads the user's cart with all item relations. Accounts
// registered before carts existed get one lazily here.
func (cs *CartService) GetOrCreateCart(ctx context.Context, userId uuid.UUID) (*tables.Cart, error) {
	cart, err := database.Query[tables.Cart](cs.db).
		Where("user_id", userId).
		With("Items").
		With("Items.Variant").
		With("Items.Variant.Stocks").
		With("Items.Variant.Product").
		With("Items.Bundle").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	if cart == nil {
		cart = &tables.Cart{
			Id:        uuid.New(),
			UserId:    userId,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if _, err := database.Create(cs.db, ctx, cart); err != nil {
			return nil, lib.MapPgError(err)
		}
	}

	return cart, nil
}

// AddItem puts a variant or bundle into the cart. Variants are checked
// against their batch stock; adding to an existing line increments its
// quantity and re-checks the result. Bundles are not stock-checked.
func (cs *CartService) AddItem(ctx context.Context, userId uuid.UUID, ref tables.ItemRef, quantity int, customization map[string]any) (*tables.CartItem, error) {
	if err := ref.Validate(); err != nil {
		return nil, &lib.ValidationFailure{Field: "variant_id", Message: err.Error()}
	}
	if quantity < 1 {
		return nil, &lib.ValidationFailure{Field: "quantity", Message: "must be at least 1"}
	}

	cart, err := cs.GetOrCreateCart(ctx, userId)
	if err != nil {
		return nil, err
	}

	var existing *tables.CartItem
	for _, item := range cart.Items {
		if ref.IsVariant() && item.VariantId != nil && *item.VariantId == *ref.VariantId {
			existing = item
			break
		}
		if ref.IsBundle() && item.BundleId != nil && *item.BundleId == *ref.BundleId {
			existing = item
			break
		}
	}

	newQuantity := quantity
	if existing != nil {
		newQuantity += existing.Quantity
	}

	if ref.IsVariant() {
		variant, err := database.Query[tables.Variant](cs.db).
			Where("id", *ref.VariantId).
			With("Stocks").
			First(ctx)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if variant == nil {
			return nil, lib.ErrNotFound
		}

		available := variant.TotalStock()
		if available == 0 {
			return nil, lib.ErrOutOfStock
		}
		if newQuantity > available {
			return nil, lib.ErrInsufficientStock
		}
	} else {
		bundle, err := database.FindByID[tables.Bundle](cs.db, ctx, *ref.BundleId)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if bundle == nil {
			return nil, lib.ErrNotFound
		}
	}

	if existing != nil {
		updates := map[string]any{
			"quantity":   newQuantity,
			"updated_at": time.Now(),
		}
		if customization != nil {
			updates["customization"] = customization
		}
		if _, err := database.UpdateByID[tables.CartItem](cs.db, ctx, existing.Id, updates); err != nil {
			return nil, lib.MapPgError(err)
		}
		existing.Quantity = newQuantity
		return existing, nil
	}

	item := &tables.CartItem{
		Id:            uuid.New(),
		CartId:        cart.Id,
		VariantId:     ref.VariantId,
		BundleId:      ref.BundleId,
		Quantity:      quantity,
		Customization: customization,
		CreatedAt:     time.Now(),
		UpdatedAt:     time.Now(),
	}

	created, err := database.Create(cs.db, ctx, item)
	if err != nil {
		return nil, lib.MapPgError(err)
	}

	return created, nil
}

// UpdateQuantity sets the quantity of a cart line, re-checking variant stock.
func (cs *CartService) UpdateQuantity(ctx context.Context, userId, itemId uuid.UUID, quantity int) error {
	if quantity < 1 {
		return &lib.ValidationFailure{Field: "quantity", Message: "must be at least 1"}
	}

	item, err := cs.findOwnedItem(ctx, userId, itemId)
	if err != nil {
		return err
	}

	if item.VariantId != nil {
		variant, err := database.Query[tables.Variant](cs.db).
			Where("id", *item.VariantId).
			With("Stocks").
			First(ctx)
		if err != nil {
			return lib.MapPgError(err)
		}
		if variant == nil {
			return lib.ErrNotFound
		}
		if quantity > variant.TotalStock() {
			return lib.ErrInsufficientStock
		}
	}

	_, err = database.UpdateByID[tables.CartItem](cs.db, ctx, itemId, map[string]any{
		"quantity":   quantity,
		"updated_at": time.Now(),
	})
	return lib.MapPgError(err)
}

// RemoveItem deletes a cart line.
func (cs *CartService) RemoveItem(ctx context.Context, userId, itemId uuid.UUID) error {
	if _, err := cs.findOwnedItem(ctx, userId, itemId); err != nil {
		return err
	}

	_, err := database.DeleteByID[tables.CartItem](cs.db, ctx, itemId)
	return lib.MapPgError(err)
}

// ClearCart removes every line but keeps the cart row.
func (cs *CartService) ClearCart(ctx context.Context, userId uuid.UUID) error {
	cart, err := cs.GetOrCreateCart(ctx, userId)
	if err != nil {
		return err
	}

	_, err = database.Query[tables.CartItem](cs.db).Where("cart_id", cart.Id).Delete(ctx)
	return lib.MapPgError(err)
}

// Total sums the live subtotals of every line.
func (cs *CartService) Total(cart *tables.Cart) int64 {
	var total int64
	for _, item := range cart.Items {
		total += item.Subtotal()
	}
	return total
}

func (cs *CartService) findOwnedItem(ctx context.Context, userId, itemId uuid.UUID) (*tables.CartItem, error) {
	cart, err := database.Query[tables.Cart](cs.db).Where("user_id", userId).First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if cart == nil {
		return nil, lib.ErrNotFound
	}

	item, err := database.Query[tables.CartItem](cs.db).
		Where("id", itemId).
		Where("cart_id", cart.Id).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if item == nil {
		return nil, lib.ErrNotFound
	}

	return item, nil
}

// Guest carts
//
// Guests get a session-scoped product->quantity map in the cache. There is no
// merge into the account cart on login; the guest cart simply expires with
// its session.

func (cs *CartService) AddGuestItem(ctx context.Context, sessionId string, productId uuid.UUID) (map[string]int, error) {
	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if product == nil {
		return nil, lib.ErrNotFound
	}

	cart, err := cs.cacheService.GetGuestCart(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	cart[productId.String()]++

	if err := cs.cacheService.SaveGuestCart(ctx, sessionId, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (cs *CartService) GetGuestCart(ctx context.Context, sessionId string) (map[string]int, error) {
	return cs.cacheService.GetGuestCart(ctx, sessionId)
}

func (cs *CartService) RemoveGuestItem(ctx context.Context, sessionId string, productId uuid.UUID) (map[string]int, error) {
	cart, err := cs.cacheService.GetGuestCart(ctx, sessionId)
	if err != nil {
		return nil, err
	}

	delete(cart, productId.String())

	if err := cs.cacheService.SaveGuestCart(ctx, sessionId, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Wishlists

// ToggleWishlist flips membership of a product on the user's wishlist and
// reports whether the product ended up on it.
func (cs *CartService) ToggleWishlist(ctx context.Context, userId, productId uuid.UUID) (bool, error) {
	wishlist, err := database.Query[tables.Wishlist](cs.db).Where("user_id", userId).First(ctx)
	if err != nil {
		return false, lib.MapPgError(err)
	}
	if wishlist == nil {
		wishlist = &tables.Wishlist{Id: uuid.New(), UserId: userId, CreatedAt: time.Now()}
		if _, err := database.Create(cs.db, ctx, wishlist); err != nil {
			return false, lib.MapPgError(err)
		}
	}

	existing, err := database.Query[tables.WishlistItem](cs.db).
		Where("wishlist_id", wishlist.Id).
		Where("product_id", productId).
		First(ctx)
	if err != nil {
		return false, lib.MapPgError(err)
	}

	if existing != nil {
		if _, err := database.DeleteByID[tables.WishlistItem](cs.db, ctx, existing.Id); err != nil {
			return false, lib.MapPgError(err)
		}
		return false, nil
	}

	product, err := database.FindByID[tables.Product](cs.db, ctx, productId)
	if err != nil {
		return false, lib.MapPgError(err)
	}
	if product == nil {
		return false, lib.ErrNotFound
	}

	item := &tables.WishlistItem{
		Id:         uuid.New(),
		WishlistId: wishlist.Id,
		ProductId:  productId,
		CreatedAt:  time.Now(),
	}
	if _, err := database.Create(cs.db, ctx, item); err != nil {
		return false, lib.MapPgError(err)
	}
	return true, nil
}

func (cs *CartService) GetWishlist(ctx context.Context, userId uuid.UUID) (*tables.Wishlist, error) {
	wishlist, err := database.Query[tables.Wishlist](cs.db).
		Where("user_id", userId).
		With("Items").
		With("Items.Product").
		With("Items.Product.Images").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if wishlist == nil {
		wishlist = &tables.Wishlist{Id: uuid.New(), UserId: userId, CreatedAt: time.Now()}
		if _, err := database.Create(cs.db, ctx, wishlist); err != nil {
			return nil, lib.MapPgError(err)
		}
	}
	return wishlist, nil
}

// ToggleGuestWishlist flips membership on the session wishlist.
func (cs *CartService) ToggleGuestWishlist(ctx context.Context, sessionId string, productId uuid.UUID) (bool, error) {
	list, err := cs.cacheService.GetGuestWishlist(ctx, sessionId)
	if err != nil {
		return false, err
	}

	id := productId.String()
	for i, existing := range list {
		if existing == id {
			list = append(list[:i], list[i+1:]...)
			if err := cs.cacheService.SaveGuestWishlist(ctx, sessionId, list); err != nil {
				return false, err
			}
			return false, nil
		}
	}

	list = append(list, id)
	if err := cs.cacheService.SaveGuestWishlist(ctx, sessionId, list); err != nil {
		return false, err
	}
	return true, nil
}

func (cs *CartService) GetGuestWishlist(ctx context.Context, sessionId string) ([]string, error) {
	return cs.cacheService.GetGuestWishlist(ctx, sessionId)
}
