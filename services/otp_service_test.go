package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"homifyhub_server/lib"
	"homifyhub_server/structs"
	"homifyhub_server/structs/tables"

	"github.com/MonkyMars/gecho"
	"github.com/google/uuid"
)

type fakeOtpStore struct {
	codes map[uuid.UUID]string
	err   error
}

func (f *fakeOtpStore) SetOtpCode(ctx context.Context, userId uuid.UUID, code string, ttl time.Duration) error {
	if f.err != nil {
		return f.err
	}
	if f.codes == nil {
		f.codes = make(map[uuid.UUID]string)
	}
	f.codes[userId] = code
	return nil
}

func (f *fakeOtpStore) GetOtpCode(ctx context.Context, userId uuid.UUID) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.codes[userId], nil
}

type fakeSmsSender struct {
	to   string
	body string
	err  error
}

func (f *fakeSmsSender) SendSMS(ctx context.Context, to, body string) error {
	if f.err != nil {
		return f.err
	}
	f.to = to
	f.body = body
	return nil
}

func newOtpTestService(store *fakeOtpStore, sms *fakeSmsSender) *OtpService {
	logger := gecho.NewLogger(gecho.NewConfig(gecho.WithLogLevel(gecho.ParseLogLevel("error"))))
	cfg := &structs.Config{
		Otp:  &structs.OtpConfig{Length: 6, TTL: 5 * time.Minute},
		Site: &structs.SiteConfig{SiteName: "HomifyHub"},
	}
	return NewOtpService(logger, cfg, store, sms)
}

func TestOtpSendStoresAndDispatches(t *testing.T) {
	store := &fakeOtpStore{}
	sms := &fakeSmsSender{}
	svc := newOtpTestService(store, sms)

	user := &tables.User{Id: uuid.New(), Phone: "+8801700000000"}

	if err := svc.Send(context.Background(), user); err != nil {
		t.Fatalf("Send() = %v", err)
	}

	code := store.codes[user.Id]
	if len(code) != 6 {
		t.Fatalf("stored code %q, want 6 digits", code)
	}
	if sms.to != user.Phone {
		t.Fatalf("sms sent to %q, want %q", sms.to, user.Phone)
	}
	if !strings.Contains(sms.body, code) {
		t.Fatalf("sms body %q does not contain code %q", sms.body, code)
	}
}

func TestOtpSendRequiresPhone(t *testing.T) {
	svc := newOtpTestService(&fakeOtpStore{}, &fakeSmsSender{})

	user := &tables.User{Id: uuid.New()}

	err := svc.Send(context.Background(), user)
	var vf *lib.ValidationFailure
	if !errors.As(err, &vf) {
		t.Fatalf("Send() without phone = %v, want validation failure", err)
	}
}

func TestOtpSendPropagatesSmsFailure(t *testing.T) {
	store := &fakeOtpStore{}
	sms := &fakeSmsSender{err: errors.New("carrier down")}
	svc := newOtpTestService(store, sms)

	user := &tables.User{Id: uuid.New(), Phone: "+8801700000000"}

	if err := svc.Send(context.Background(), user); err == nil {
		t.Fatal("Send() = nil, want error when dispatch fails")
	}
}

func TestOtpVerify(t *testing.T) {
	store := &fakeOtpStore{}
	svc := newOtpTestService(store, &fakeSmsSender{})

	userId := uuid.New()
	if err := store.SetOtpCode(context.Background(), userId, "123456", time.Minute); err != nil {
		t.Fatal(err)
	}

	if err := svc.Verify(context.Background(), userId, "123456"); err != nil {
		t.Fatalf("Verify() with matching code = %v", err)
	}

	if err := svc.Verify(context.Background(), userId, "000000"); !errors.Is(err, lib.ErrInvalidOTP) {
		t.Fatalf("Verify() with wrong code = %v, want ErrInvalidOTP", err)
	}

	// No code issued for this user at all.
	if err := svc.Verify(context.Background(), uuid.New(), "123456"); !errors.Is(err, lib.ErrInvalidOTP) {
		t.Fatalf("Verify() without issued code = %v, want ErrInvalidOTP", err)
	}
}

func TestOtpVerifyRemainsValidForRetry(t *testing.T) {
	store := &fakeOtpStore{}
	svc := newOtpTestService(store, &fakeSmsSender{})

	userId := uuid.New()
	if err := store.SetOtpCode(context.Background(), userId, "654321", time.Minute); err != nil {
		t.Fatal(err)
	}

	// The code is not consumed on verification, a failed checkout may retry.
	for i := 0; i < 2; i++ {
		if err := svc.Verify(context.Background(), userId, "654321"); err != nil {
			t.Fatalf("Verify() attempt %d = %v", i+1, err)
		}
	}
}
