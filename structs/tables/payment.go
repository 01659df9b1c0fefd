package tables

import (
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusCompleted         PaymentStatus = "completed"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
	PaymentStatusCancelled         PaymentStatus = "cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed,
		PaymentStatusRefunded, PaymentStatusPartiallyRefunded, PaymentStatusCancelled:
		return true
	}
	return false
}

// Payment is the manual payment submission for an order. Customers submit a
// transaction reference, staff approve or reject it by hand.
type Payment struct {
	tableName struct{}  `bun:"table:payments,alias:pay"`
	Id        uuid.UUID `bun:"id,pk,type:uuid,default:gen_random_uuid()" json:"id"`
	OrderId   uuid.UUID `bun:"order_id,notnull,unique,type:uuid" json:"order_id"`
	Order     *Order    `bun:"rel:belongs-to,join:order_id=id" json:"order,omitempty"`

	FromAccount   string `bun:"from_account,notnull" json:"from_account"`
	Method        string `bun:"method,notnull" json:"method"`
	Amount        int64  `bun:"amount,notnull" json:"amount"`
	TransactionId string `bun:"transaction_id,notnull" json:"transaction_id"`
	Note          string `bun:"note" json:"note,omitempty"`
	ProofURL      string `bun:"proof_url" json:"proof_url,omitempty"`

	Status      PaymentStatus `bun:"status,notnull,default:'pending'" json:"status"`
	IsConfirmed bool          `bun:"is_confirmed,notnull,default:false" json:"is_confirmed"`

	CreatedAt time.Time `bun:"created_at,notnull,default:now()" json:"created_at"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:now()" json:"updated_at"`
}

// NeedsApproval reports whether approving this payment would change anything.
// Approval is idempotent: a confirmed payment is left untouched.
func (p *Payment) NeedsApproval() bool {
	return !p.IsConfirmed
}

// CanReject reports whether the payment may still be rejected. Only pending
// submissions can be.
func (p *Payment) CanReject() bool {
	return p.Status == PaymentStatusPending
}
