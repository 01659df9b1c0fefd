package structs

import "github.com/google/uuid"

type SubmitPaymentRequest struct {
	OrderId       uuid.UUID `json:"order_id" validate:"required"`
	FromAccount   string    `json:"from_account" validate:"required,min=3,max=100"`
	Method        string    `json:"method" validate:"required,min=2,max=50"`
	Amount        int64     `json:"amount" validate:"required,gt=0"`
	TransactionId string    `json:"transaction_id" validate:"required,min=3,max=100"`
	Note          string    `json:"note" validate:"omitempty,max=500"`

	// Optional base64-encoded proof screenshot, uploaded to the image host.
	ProofFileName string `json:"proof_file_name" validate:"omitempty,max=200"`
	ProofData     string `json:"proof_data"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=refunded partially_refunded cancelled"`
}
