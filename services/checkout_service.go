package services

import (
	"context"
	"database/sql"
	"errors"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// CheckoutService turns a cart into an order. It does not touch stock; stock
// is allocated to the order later by staff.
type CheckoutService struct {
	logger              *gecho.Logger
	cfg                 *structs.Config
	db                  *database.DB
	cartService         *CartService
	otpService          *OtpService
	notificationService *NotificationService
}

func NewCheckoutService(
	logger *gecho.Logger,
	cfg *structs.Config,
	db *database.DB,
	cartService *CartService,
	otpService *OtpService,
	notificationService *NotificationService,
) *CheckoutService {
	return &CheckoutService{
		logger:              logger,
		cfg:                 cfg,
		db:                  db,
		cartService:         cartService,
		otpService:          otpService,
		notificationService: notificationService,
	}
}

// Checkout validates the request against the user's cart and creates the
// order. Item prices are snapshotted into the order; the cart is emptied on
// success. The customer gets a confirmation email off the request path.
func (s *CheckoutService) Checkout(ctx context.Context, user *tables.User, req *structs.CheckoutRequest) (*tables.Order, error) {
	if !req.TermsAgreed {
		return nil, &lib.ValidationFailure{Field: "terms_agreed", Message: "you must agree to the terms to place an order"}
	}
	if user.Phone == "" {
		return nil, &lib.ValidationFailure{Field: "phone", Message: "add a phone number to your profile before checking out"}
	}

	cart, err := s.cartService.GetOrCreateCart(ctx, user.Id)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, &lib.ValidationFailure{Field: "cart", Message: "cart is empty"}
	}

	for _, item := range cart.Items {
		if item.VariantId == nil {
			continue
		}
		if item.Variant == nil {
			return nil, lib.ErrNotFound
		}
		if item.Quantity > item.Variant.TotalStock() {
			return nil, lib.ErrInsufficientStock
		}
	}

	if err := s.otpService.Verify(ctx, user.Id, req.Otp); err != nil {
		return nil, err
	}

	method, err := database.Query[tables.DeliveryMethod](s.db).
		Where("id", req.DeliveryMethodId).
		Where("is_active", true).
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if method == nil {
		return nil, &lib.ValidationFailure{Field: "delivery_method_id", Message: "unknown or inactive delivery method"}
	}

	if err := s.verifyAddressOwnership(ctx, user.Id, req.DeliveryAddressId); err != nil {
		return nil, err
	}
	if req.BillingAddressId != req.DeliveryAddressId {
		if err := s.verifyAddressOwnership(ctx, user.Id, req.BillingAddressId); err != nil {
			return nil, err
		}
	}

	var coupon *tables.Coupon
	if req.CouponCode != "" {
		coupon, err = database.Query[tables.Coupon](s.db).Where("code", req.CouponCode).First(ctx)
		if err != nil {
			return nil, lib.MapPgError(err)
		}
		if coupon == nil || !coupon.IsValidAt(time.Now()) {
			return nil, lib.ErrInvalidCoupon
		}
	}

	total := s.cartService.Total(cart)
	if coupon != nil {
		total -= coupon.DiscountAmount
	}

	now := time.Now()
	order := &tables.Order{
		Id:                uuid.New(),
		UserId:            user.Id,
		Status:            tables.OrderStatusPending,
		DeliveryMethodId:  method.Id,
		DeliveryAddressId: req.DeliveryAddressId,
		BillingAddressId:  req.BillingAddressId,
		TotalAmount:       total,
		Notes:             req.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if coupon != nil {
		order.CouponId = &coupon.Id
	}

	placeOrder := func(tx bun.Tx) error {
		last, err := s.lastOrderNumberForDay(ctx, tx, now)
		if err != nil {
			return err
		}
		order.OrderNumber = lib.NextOrderNumber(last, now)

		if _, err := tx.NewInsert().Model(order).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		items := make([]*tables.OrderItem, 0, len(cart.Items))
		for _, line := range cart.Items {
			items = append(items, &tables.OrderItem{
				Id:              uuid.New(),
				OrderId:         order.Id,
				VariantId:       line.VariantId,
				BundleId:        line.BundleId,
				Quantity:        line.Quantity,
				PriceAtPurchase: line.UnitPrice(),
				Customization:   line.Customization,
				CreatedAt:       now,
			})
		}
		if _, err := tx.NewInsert().Model(&items).Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}
		order.Items = items

		if _, err := tx.NewDelete().Model((*tables.CartItem)(nil)).
			Where("cart_id = ?", cart.Id).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		return nil
	}

	// The first order of a day has no row to lock, so two concurrent first
	// checkouts can derive the same suffix. The loser hits the unique index
	// on order_number and gets one retry with a fresh read.
	err = database.Transaction(ctx, placeOrder)
	if lib.IsUniqueViolation(err) {
		s.logger.Warn("Order number collision, retrying",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("user_id", user.Id),
		)
		err = database.Transaction(ctx, placeOrder)
	}
	if err != nil {
		s.logger.Error("Checkout transaction failed",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return nil, err
	}

	s.logger.Info("Order placed",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("user_id", user.Id),
		gecho.Field("total_amount", order.TotalAmount),
	)

	go s.notificationService.NotifyOrderPlaced(user, order)

	return order, nil
}

// lastOrderNumberForDay returns the highest existing order number of the day,
// or "" when the day has none yet. The row is locked so concurrent checkouts
// cannot both claim the same suffix.
func (s *CheckoutService) lastOrderNumberForDay(ctx context.Context, tx bun.Tx, at time.Time) (string, error) {
	prefix := lib.OrderNumberPrefix(at)

	var last tables.Order
	err := tx.NewSelect().Model(&last).
		Column("order_number").
		Where("order_number LIKE ?", prefix+"-%").
		OrderExpr("order_number DESC").
		Limit(1).
		For("UPDATE").
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", lib.MapPgError(err)
	}

	return last.OrderNumber, nil
}

func (s *CheckoutService) verifyAddressOwnership(ctx context.Context, userId, addressId uuid.UUID) error {
	exists, err := database.Query[tables.Address](s.db).
		Where("id", addressId).
		Where("user_id", userId).
		Exists(ctx)
	if err != nil {
		return lib.MapPgError(err)
	}
	if !exists {
		return &lib.ValidationFailure{Field: "address_id", Message: "address does not belong to this account"}
	}
	return nil
}

// ListDeliveryMethods returns the active delivery options for the checkout
// page.
func (s *CheckoutService) ListDeliveryMethods(ctx context.Context) ([]tables.DeliveryMethod, error) {
	methods, err := database.Query[tables.DeliveryMethod](s.db).
		Where("is_active", true).
		OrderBy("cost", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return methods, nil
}

// ListPaymentMethods returns the active manual payment channels shown after
// checkout.
func (s *CheckoutService) ListPaymentMethods(ctx context.Context) ([]tables.PaymentMethod, error) {
	methods, err := database.Query[tables.PaymentMethod](s.db).
		Where("is_active", true).
		OrderBy("name", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return methods, nil
}
