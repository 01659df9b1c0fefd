package services

import (
	"context"
	"fmt"
	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

// OtpStore keeps one active verification code per user.
type OtpStore interface {
	SetOtpCode(ctx context.Context, userId uuid.UUID, code string, ttl time.Duration) error
	GetOtpCode(ctx context.Context, userId uuid.UUID) (string, error)
}

// SmsSender dispatches a text message to a phone number.
type SmsSender interface {
	SendSMS(ctx context.Context, to, body string) error
}

// OtpService gates checkout behind a phone-delivered one-time code.
type OtpService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	store  OtpStore
	sms    SmsSender
}

func NewOtpService(logger *gecho.Logger, cfg *structs.Config, store OtpStore, sms SmsSender) *OtpService {
	return &OtpService{
		logger: logger,
		cfg:    cfg,
		store:  store,
		sms:    sms,
	}
}

// Send generates a fresh code for the user, stores it and dispatches it over
// SMS. A previously issued code is overwritten.
func (s *OtpService) Send(ctx context.Context, user *tables.User) error {
	if user.Phone == "" {
		return &lib.ValidationFailure{Field: "phone", Message: "add a phone number to your profile before requesting a code"}
	}

	code, err := lib.GenerateOtpCode(s.cfg.Otp.Length)
	if err != nil {
		s.logger.Error("Failed to generate verification code", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return err
	}

	if err := s.store.SetOtpCode(ctx, user.Id, code, s.cfg.Otp.TTL); err != nil {
		s.logger.Error("Failed to store verification code", gecho.Field("error", err), gecho.Field("user_id", user.Id))
		return err
	}

	body := fmt.Sprintf("Your %s verification code is %s. It expires in %.0f minutes.",
		s.cfg.Site.SiteName, code, s.cfg.Otp.TTL.Minutes())

	if err := s.sms.SendSMS(ctx, user.Phone, body); err != nil {
		s.logger.Error("Failed to dispatch verification code",
			gecho.Field("error", err),
			gecho.Field("user_id", user.Id),
		)
		return fmt.Errorf("failed to send verification code: %w", err)
	}

	s.logger.Info("Verification code sent", gecho.Field("user_id", user.Id))
	return nil
}

// Verify checks the submitted code against the stored one. The code stays
// valid for repeat verification until it expires or a new one is issued.
func (s *OtpService) Verify(ctx context.Context, userId uuid.UUID, code string) error {
	stored, err := s.store.GetOtpCode(ctx, userId)
	if err != nil {
		s.logger.Error("Failed to load verification code", gecho.Field("error", err), gecho.Field("user_id", userId))
		return err
	}

	if stored == "" || stored != code {
		return lib.ErrInvalidOTP
	}

	return nil
}
