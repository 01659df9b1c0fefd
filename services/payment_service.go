package services

import (
	"context"
	"homifyhub_server/database"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// PaymentService handles manual payment submissions and their review by
// staff. There is no payment gateway; customers transfer money out of band
// and report the transaction here.
type PaymentService struct {
	logger              *gecho.Logger
	cfg                 *structs.Config
	db                  *database.DB
	notificationService *NotificationService
	imgbb               *lib.ImgbbClient
}

func NewPaymentService(logger *gecho.Logger, cfg *structs.Config, db *database.DB, notificationService *NotificationService) *PaymentService {
	return &PaymentService{
		logger:              logger,
		cfg:                 cfg,
		db:                  db,
		notificationService: notificationService,
		imgbb:               lib.NewImgbbClient(cfg.Imgbb.ApiKey, cfg.Imgbb.UploadURL),
	}
}

// Submit records the customer's payment claim for their order. The amount
// must match the order total exactly and an order takes a single submission.
// The proof screenshot upload is best effort; a failed upload does not block
// the submission.
func (ps *PaymentService) Submit(ctx context.Context, userId uuid.UUID, req *structs.SubmitPaymentRequest) (*tables.Payment, error) {
	order, err := database.Query[tables.Order](ps.db).
		Where("id", req.OrderId).
		Where("user_id", userId).
		With("Payment").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if order == nil {
		return nil, lib.ErrNotFound
	}

	if order.Status == tables.OrderStatusCancelled {
		return nil, &lib.ValidationFailure{Field: "order_id", Message: "cannot pay for a cancelled order"}
	}
	if order.Payment != nil {
		return nil, lib.ErrDuplicatePayment
	}
	if req.Amount != order.TotalAmount {
		return nil, lib.ErrAmountMismatch
	}

	proofURL := ""
	if req.ProofData != "" {
		fileName := req.ProofFileName
		if fileName == "" {
			fileName = "payment-proof-" + order.OrderNumber
		}
		url, err := ps.imgbb.Upload(ctx, fileName, req.ProofData)
		if err != nil {
			ps.logger.Warn("Payment proof upload failed",
				gecho.Field("order_number", order.OrderNumber),
				gecho.Field("error", err),
			)
		} else {
			proofURL = url
		}
	}

	now := time.Now()
	payment := &tables.Payment{
		Id:            uuid.New(),
		OrderId:       order.Id,
		FromAccount:   req.FromAccount,
		Method:        req.Method,
		Amount:        req.Amount,
		TransactionId: req.TransactionId,
		Note:          req.Note,
		ProofURL:      proofURL,
		Status:        tables.PaymentStatusPending,
		IsConfirmed:   false,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	created, err := database.Create(ps.db, ctx, payment)
	if err != nil {
		mapped := lib.MapPgError(err)
		if lib.IsUniqueViolation(mapped) {
			return nil, lib.ErrDuplicatePayment
		}
		return nil, mapped
	}

	ps.logger.Info("Payment submitted",
		gecho.Field("order_number", order.OrderNumber),
		gecho.Field("amount", payment.Amount),
		gecho.Field("method", payment.Method),
	)

	return created, nil
}

// Approve confirms a payment and moves its order to processing. Approving an
// already confirmed payment changes nothing and succeeds.
func (ps *PaymentService) Approve(ctx context.Context, paymentId uuid.UUID) (*tables.Payment, error) {
	payment, err := ps.getWithOrder(ctx, paymentId)
	if err != nil {
		return nil, err
	}

	if !payment.NeedsApproval() {
		return payment, nil
	}

	now := time.Now()
	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.Payment)(nil)).
			Set("status = ?", tables.PaymentStatusCompleted).
			Set("is_confirmed = ?", true).
			Set("updated_at = ?", now).
			Where("id = ?", paymentId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if payment.Order.Status == tables.OrderStatusPending {
			if _, err := tx.NewUpdate().Model((*tables.Order)(nil)).
				Set("status = ?", tables.OrderStatusProcessing).
				Set("updated_at = ?", now).
				Where("id = ?", payment.OrderId).
				Exec(ctx); err != nil {
				return lib.MapPgError(err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.logger.Info("Payment approved",
		gecho.Field("payment_id", paymentId),
		gecho.Field("order_number", payment.Order.OrderNumber),
	)

	payment.Status = tables.PaymentStatusCompleted
	payment.IsConfirmed = true
	payment.UpdatedAt = now

	if payment.Order.User != nil {
		go ps.notificationService.NotifyPaymentApproved(payment.Order.User, payment.Order, payment)
	}

	return payment, nil
}

// Reject fails a pending payment and cancels its order.
func (ps *PaymentService) Reject(ctx context.Context, paymentId uuid.UUID) (*tables.Payment, error) {
	payment, err := ps.getWithOrder(ctx, paymentId)
	if err != nil {
		return nil, err
	}

	if !payment.CanReject() {
		return nil, lib.ErrPaymentNotPending
	}

	now := time.Now()
	err = database.Transaction(ctx, func(tx bun.Tx) error {
		if _, err := tx.NewUpdate().Model((*tables.Payment)(nil)).
			Set("status = ?", tables.PaymentStatusFailed).
			Set("updated_at = ?", now).
			Where("id = ?", paymentId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		if _, err := tx.NewUpdate().Model((*tables.Order)(nil)).
			Set("status = ?", tables.OrderStatusCancelled).
			Set("updated_at = ?", now).
			Where("id = ?", payment.OrderId).
			Exec(ctx); err != nil {
			return lib.MapPgError(err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	ps.logger.Info("Payment rejected",
		gecho.Field("payment_id", paymentId),
		gecho.Field("order_number", payment.Order.OrderNumber),
	)

	payment.Status = tables.PaymentStatusFailed
	payment.UpdatedAt = now

	if payment.Order.User != nil {
		go ps.notificationService.NotifyPaymentRejected(payment.Order.User, payment.Order)
	}

	return payment, nil
}

// UpdateStatus moves a confirmed payment into a refund state. Approval and
// rejection have their own operations; this one only covers the bookkeeping
// states staff set after the fact.
func (ps *PaymentService) UpdateStatus(ctx context.Context, paymentId uuid.UUID, status tables.PaymentStatus) (*tables.Payment, error) {
	switch status {
	case tables.PaymentStatusRefunded, tables.PaymentStatusPartiallyRefunded, tables.PaymentStatusCancelled:
	default:
		return nil, &lib.ValidationFailure{Field: "status", Message: "status must be refunded, partially_refunded or cancelled"}
	}

	payment, err := ps.getWithOrder(ctx, paymentId)
	if err != nil {
		return nil, err
	}

	if !payment.IsConfirmed {
		return nil, lib.ErrPaymentNotPending
	}

	now := time.Now()
	if _, err := database.UpdateByID[tables.Payment](ps.db, ctx, paymentId, map[string]any{
		"status":     status,
		"updated_at": now,
	}); err != nil {
		return nil, lib.MapPgError(err)
	}

	payment.Status = status
	payment.UpdatedAt = now
	return payment, nil
}

// ListPending returns payments awaiting review, oldest first.
func (ps *PaymentService) ListPending(ctx context.Context) ([]tables.Payment, error) {
	payments, err := database.Query[tables.Payment](ps.db).
		Where("status", tables.PaymentStatusPending).
		With("Order").
		With("Order.User").
		OrderBy("created_at", database.ASC).
		All(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	return payments, nil
}

func (ps *PaymentService) getWithOrder(ctx context.Context, paymentId uuid.UUID) (*tables.Payment, error) {
	payment, err := database.Query[tables.Payment](ps.db).
		Where("id", paymentId).
		With("Order").
		With("Order.User").
		First(ctx)
	if err != nil {
		return nil, lib.MapPgError(err)
	}
	if payment == nil {
		return nil, lib.ErrNotFound
	}
	if payment.Order == nil {
		return nil, lib.ErrNotFound
	}
	return payment, nil
}
