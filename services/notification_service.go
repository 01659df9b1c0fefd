package services

import (
	"context"
	"fmt"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"
	"sync"

	"github.com/MonkyMars/gecho"
	"github.com/resend/resend-go/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

var (
	emailClient     *resend.Client
	emailClientOnce sync.Once

	smsClient     *twilio.RestClient
	smsClientOnce sync.Once
)

// NotificationService delivers transactional email (resend) and SMS (Twilio)
// to customers. Callers in the request path fire it on a goroutine; delivery
// failures are logged, never retried.
type NotificationService struct {
	logger *gecho.Logger
	cfg    *structs.Config
	email  *resend.Client
	sms    *twilio.RestClient
}

func NewNotificationService(logger *gecho.Logger, cfg *structs.Config) *NotificationService {
	return &NotificationService{
		logger: logger,
		cfg:    cfg,
		email:  getEmailClient(cfg.Email.ApiKey),
		sms:    getSmsClient(cfg.Sms),
	}
}

func getEmailClient(apiKey string) *resend.Client {
	emailClientOnce.Do(func() {
		emailClient = resend.NewClient(apiKey)
	})
	return emailClient
}

func getSmsClient(cfg *structs.SmsConfig) *twilio.RestClient {
	smsClientOnce.Do(func() {
		smsClient = twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken,
		})
	})
	return smsClient
}

func (ns *NotificationService) SendEmail(to []string, subject string, body string) error {
	params := &resend.SendEmailRequest{
		From:    ns.cfg.Email.From,
		To:      to,
		Html:    body,
		Subject: subject,
	}

	_, err := ns.email.Emails.Send(params)
	if err != nil {
		ns.logger.Error("Failed to send email", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// SendSMS dispatches a text message through Twilio.
func (ns *NotificationService) SendSMS(ctx context.Context, to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(ns.cfg.Sms.FromNumber)
	params.SetBody(body)

	_, err := ns.sms.Api.CreateMessage(params)
	if err != nil {
		ns.logger.Error("Failed to send SMS", gecho.Field("error", err), gecho.Field("to", to))
		return err
	}

	return nil
}

// NotifyOrderPlaced emails the customer their order confirmation.
func (ns *NotificationService) NotifyOrderPlaced(user *tables.User, order *tables.Order) {
	body := fmt.Sprintf(`
		<h2>Thank you for your order, %s!</h2>
		<p>Your order <strong>%s</strong> has been received.</p>
		<p>Total: %s</p>
		<p>Submit your payment from your account page to get it moving. You can
		follow the order at <a href="%s/orders/%s">%s/orders/%s</a>.</p>`,
		user.Username, order.OrderNumber, formatCents(order.TotalAmount, ns.cfg.Site.DefaultCurrency),
		ns.cfg.Server.FrontendURL, order.Id, ns.cfg.Server.FrontendURL, order.Id,
	)

	if err := ns.SendEmail([]string{user.Email}, fmt.Sprintf("Order %s received", order.OrderNumber), body); err != nil {
		ns.logger.Warn("Order confirmation email not delivered",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
	}
}

// NotifyPaymentApproved emails the customer that their payment was confirmed.
func (ns *NotificationService) NotifyPaymentApproved(user *tables.User, order *tables.Order, payment *tables.Payment) {
	body := fmt.Sprintf(`
		<h2>Payment confirmed</h2>
		<p>Hi %s, your payment of %s for order <strong>%s</strong> has been
		confirmed. We are now preparing your order.</p>`,
		user.Username, formatCents(payment.Amount, ns.cfg.Site.DefaultCurrency), order.OrderNumber,
	)

	if err := ns.SendEmail([]string{user.Email}, fmt.Sprintf("Payment for %s confirmed", order.OrderNumber), body); err != nil {
		ns.logger.Warn("Payment approval email not delivered",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
	}
}

// NotifyPaymentRejected emails the customer that their payment was rejected
// and the order cancelled.
func (ns *NotificationService) NotifyPaymentRejected(user *tables.User, order *tables.Order) {
	body := fmt.Sprintf(`
		<h2>Payment could not be verified</h2>
		<p>Hi %s, we could not verify your payment for order
		<strong>%s</strong>. The order has been cancelled. Please contact us at
		%s if you believe this is a mistake.</p>`,
		user.Username, order.OrderNumber, ns.cfg.Contact.Email,
	)

	if err := ns.SendEmail([]string{user.Email}, fmt.Sprintf("Payment for %s rejected", order.OrderNumber), body); err != nil {
		ns.logger.Warn("Payment rejection email not delivered",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
	}
}

// NotifyOrderCancelled emails the customer their cancellation confirmation.
func (ns *NotificationService) NotifyOrderCancelled(user *tables.User, order *tables.Order) {
	body := fmt.Sprintf(`
		<h2>Order cancelled</h2>
		<p>Hi %s, your order <strong>%s</strong> has been cancelled.</p>`,
		user.Username, order.OrderNumber,
	)

	if err := ns.SendEmail([]string{user.Email}, fmt.Sprintf("Order %s cancelled", order.OrderNumber), body); err != nil {
		ns.logger.Warn("Cancellation email not delivered",
			gecho.Field("order_number", order.OrderNumber),
			gecho.Field("error", err),
		)
	}
}

// formatCents renders a cent amount as a decimal with its currency code.
func formatCents(amount int64, currency string) string {
	sign := ""
	if amount < 0 {
		sign = "-"
		amount = -amount
	}
	return fmt.Sprintf("%s%d.%02d %s", sign, amount/100, amount%100, currency)
}
