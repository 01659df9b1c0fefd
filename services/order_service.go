package services

import (
	"context"
	"fmt"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// OrderService covers the order lifecycle after checkout: listing, status
// transitions, cancellation, delivery tracking and stock allocation.
type OrderService struct {
	logger              *gecho.Logger
	db                  *database.DB
	notificationService *NotificationService
}

func NewOrderService(logger *gecho.Logger, db *database.DB, notificationService *NotificationService) *OrderService {
	return &OrderService{
		logger:              logger,
		db:                  db,
		notificationService: notificationService,
	}
}

// ListForUser returns the user's order history, newest first.
func (os *OrderService) ListForUser(ctx context.Context, userId uuid.UUID) ([]tables.Order, error) {
	orders, err := database.Query[tables.Order](os.db).
		Where("user_id", userId).
		With("Items").
		With("Payment").
		OrderBy("created_at", database.DESC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return orders, nil
}

// GetByID loads an order with all relations. When ownerId is non-nil the
// order must belong to that user; admins pass nil.
func (os *OrderService) GetByID(ctx context.Context, orderId uuid.UUID, ownerId *uuid.UUID) (*tables.Order, error) {
	query := database.Query[tables.Order](os.db).
		Where("id", orderId).
		With("Items").
		With("Items.Variant").
		With("Items.Variant.Product").
		With("Items.Bundle").
		With("Items.StockAllocations").
		With("Payment").
		With("Tracking").
		With("DeliveryMethod").
		With("DeliveryAddress").
		With("BillingAddress").
		With("Coupon").
		With("User")
	if ownerId != nil {
		query = query.Where("user_id", *ownerId)
	}

	order, err := query.First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}
	return order, nil
}

// AdminList pages through all orders with optional filters.
func (os *OrderService) AdminList(ctx context.Context, opts *structs.OrderListOptions) (*database.PaginationResult[tables.Order], error) {
	query := database.Query[tables.Order](os.db).
		With("Items").
		With("Payment").
		With("User")

	if opts.Status != "" {
		query = query.Where("status", opts.Status)
	}
	if opts.UserId != nil {
		query = query.Where("user_id", *opts.UserId)
	}
	if opts.CreatedAfter != nil {
		query = query.WhereOp("created_at", ">=", *opts.CreatedAfter)
	}
	if opts.CreatedBefore != nil {
		query = query.WhereOp("created_at", "<=", *opts.CreatedBefore)
	}

	query = query.OrderBy("created_at", database.DESC)

	result, err := database.Paginate(query, ctx, opts.Page, opts.PageSize)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return result, nil
}

// UpdateStatus moves an order along the status machine. Invalid transitions
// are rejected; shipped and delivered transitions land in the tracking
// history as well.
func (os *OrderService) UpdateStatus(ctx context.Context, orderId uuid.UUID, next tables.OrderStatus) (*tables.Order, error) {
	if !next.Valid() {
		return nil, &lib.ValidationFailure{Field: "status", Message: "unknown order status"}
	}

	order, err := os.GetByID(ctx, orderId, nil)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(next) {
		return nil, &lib.ValidationFailure{
			Field:   "status",
			Message: fmt.Sprintf("cannot move order from %s to %s", order.Status, next),
		}
	}

	now := time.Now()
	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.Order)(nil)).
			Set("status = ?", next).
			Set("updated_at = ?", now).
			Where("id = ?", orderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if next == tables.OrderStatusShipped || next == tables.OrderStatusDelivered {
			return os.appendTrackingTx(ctx, tx, order, string(next), "", now)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order status updated",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("from", order.Status),
		gecho.Field("to", next),
	)

	order.Status = next
	order.UpdatedAt = now
	return order, nil
}

// Cancel handles a customer cancellation. Only orders whose payment has not
// been confirmed can be cancelled; a pending payment submission is cancelled
// along with the order.
func (os *OrderService) Cancel(ctx context.Context, userId, orderId uuid.UUID, reason string) (*tables.Order, error) {
	order, err := os.GetByID(ctx, orderId, &userId)
	if err != nil {
		return nil, err
	}

	if !order.IsCancellable() {
		return nil, lib.ErrOrderNotCancellable
	}

	now := time.Now()
	notes := order.Notes
	if reason != "" {
		if notes != "" {
			notes += "\n"
		}
		notes += "Cancelled by customer: " + reason
	}

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.Order)(nil)).
			Set("status = ?", tables.OrderStatusCancelled).
			Set("notes = ?", notes).
			Set("updated_at = ?", now).
			Where("id = ?", orderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if order.Payment != nil && order.Payment.Status == tables.PaymentStatusPending {
			if _, err := tx.NewUpdate().Model((*tables.Payment)(nil)).
				Set("status = ?", tables.PaymentStatusCancelled).
				Set("updated_at = ?", now).
				Where("id = ?", order.Payment.Id).
				Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	os.logger.Info("Order cancelled by customer",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("user_id", userId),
	)

	order.Status = tables.OrderStatusCancelled
	order.Notes = notes
	order.UpdatedAt = now

	if order.User != nil {
		go os.notificationService.NotifyOrderCancelled(order.User, order)
	}

	return order, nil
}

// batchTake is one slice of a FIFO allocation plan.
type batchTake struct {
	StockId  uuid.UUID
	Quantity int
}

// planFIFOAllocation decides how to serve quantity units from the given
// batches, oldest first. Batches must already be sorted by creation time
// ascending; non-positive batches are skipped.
func planFIFOAllocation(batches []*tables.Stock, quantity int) ([]batchTake, error) {
	var plan []batchTake
	remaining := quantity

	for _, batch := range batches {
		if remaining == 0 {
			break
		}
		if batch.Quantity <= 0 {
			continue
		}

		take := batch.Quantity
		if take > remaining {
			take = remaining
		}

		plan = append(plan, batchTake{StockId: batch.Id, Quantity: take})
		remaining -= take
	}

	if remaining > 0 {
		return nil, lib.ErrInsufficientStock
	}
	return plan, nil
}

// AllocateStock consumes stock batches for every variant line of the order,
// oldest batches first, and records which batch served which line. Bundle
// lines carry no batch stock and are skipped. Already allocated lines are
// skipped, so the operation can be retried after a partial failure.
func (os *OrderService) AllocateStock(ctx context.Context, orderId uuid.UUID) (*tables.Order, error) {
	order, err := os.GetByID(ctx, orderId, nil)
	if err != nil {
		return nil, err
	}

	if order.Status == tables.OrderStatusCancelled {
		return nil, &lib.ValidationFailure{Field: "order_id", Message: "cannot allocate stock for a cancelled order"}
	}

	now := time.Now()
	err = database.Transaction(ctx, func(tx bun.Tx) error {
		for _, item := range order.Items {
			if item.VariantId == nil || len(item.StockAllocations) > 0 {
				continue
			}

			var batches []*tables.Stock
			if err := tx.NewSelect().Model(&batches).
				Where("variant_id = ?", *item.VariantId).
				OrderExpr("created_at ASC").
				For("UPDATE").
				Scan(ctx); err != nil {
				return lib.MapPgError(err)
			}

			plan, err := planFIFOAllocation(batches, item.Quantity)
			if err != nil {
				return err
			}

			for _, take := range plan {
				allocation := &tables.OrderItemStock{
					Id:          uuid.New(),
					OrderItemId: item.Id,
					StockId:     take.StockId,
					Quantity:    take.Quantity,
					CreatedAt:   now,
				}
				if _, err := tx.NewInsert().Model(allocation).Exec(ctx); err != nil {
					return lib.MapPgError(err)
				}

				if _, err := tx.NewUpdate().Model((*tables.Stock)(nil)).
					Set("quantity = quantity - ?", take.Quantity).
					Where("id = ?", take.StockId).
					Exec(ctx); err != nil {
					return lib.MapPgError(err)
				}
			}
		}
		return nil
	})
	if err != nil {
		os.logger.Error("Stock allocation failed",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
		return nil, err
	}

	os.logger.Info("Stock allocated", gecho.Field("order_number", order.OrderNumber))

	return os.GetByID(ctx, orderId, nil)
}

// Delivery tracking

// UpsertTracking creates or updates the tracking record of an order and
// appends the new status to its history.
func (os *OrderService) UpsertTracking(ctx context.Context, orderId uuid.UUID, req *structs.TrackingRequest) (*tables.DeliveryTracking, error) {
	order, err := os.GetByID(ctx, orderId, nil)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	tracking := order.Tracking
	if tracking == nil {
		tracking = &tables.DeliveryTracking{
			Id:        uuid.New(),
			OrderId:   order.Id,
			CreatedAt: now,
		}
	}

	tracking.AppendUpdate(req.Status, req.Note, now)
	if req.TrackingNumber != "" {
		tracking.TrackingNumber = req.TrackingNumber
	}
	if req.Courier != "" {
		tracking.Courier = req.Courier
	}
	if req.EstimatedDelivery != nil {
		tracking.EstimatedDelivery = req.EstimatedDelivery
	}
	tracking.UpdatedAt = now

	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if order.Tracking == nil {
			_, err := tx.NewInsert().Model(tracking).Exec(ctx)
			return lib.MapPgError(err)
		}
		_, err := tx.NewUpdate().Model(tracking).WherePK().Exec(ctx)
		return lib.MapPgError(err)
	})
	if err != nil {
		return nil, err
	}

	return tracking, nil
}

// GetTracking returns the tracking record of one of the user's orders.
func (os *OrderService) GetTracking(ctx context.Context, userId, orderId uuid.UUID) (*tables.DeliveryTracking, error) {
	order, err := os.GetByID(ctx, orderId, &userId)
	if err != nil {
		return nil, err
	}
	if order.Tracking == nil {
		return nil, lib.ErrNotFound
	}
	return order.Tracking, nil
}

// appendTrackingTx records a status transition in the tracking history inside
// an existing transaction, creating the record when the order has none.
func (os *OrderService) appendTrackingTx(ctx context.Context, tx bun.Tx, order *tables.Order, status, note string, at time.Time) error {
	tracking := order.Tracking
	insert := tracking == nil
	if insert {
		tracking = &tables.DeliveryTracking{
			Id:        uuid.New(),
			OrderId:   order.Id,
			CreatedAt: at,
		}
	}

	tracking.AppendUpdate(status, note, at)
	tracking.UpdatedAt = at

	if insert {
		_, err := tx.NewInsert().Model(tracking).Exec(ctx)
		return lib.MapPgError(err)
	}
	_, err := tx.NewUpdate().Model(tracking).WherePK().Exec(ctx)
	return lib.MapPgError(err)
}
