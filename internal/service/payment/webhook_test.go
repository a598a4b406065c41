package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"testing"
	"time"
)

func signPayload(payload []byte, secret string, ts int64) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "%d.", ts)
	mac.Write(payload)
	return fmt.Sprintf("t=%d,v1=%s", ts, hex.EncodeToString(mac.Sum(nil)))
}

func TestVerifyWebhook_Valid(t *testing.T) {
	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	now := time.Now()
	header := signPayload(payload, "whsec_test", now.Unix())

	if err := VerifyWebhook(payload, header, "whsec_test", now); err != nil {
		t.Fatalf("verify: %v", err)
	}
}

func TestVerifyWebhook_WrongSecret(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Now()
	header := signPayload(payload, "whsec_other", now.Unix())

	if err := VerifyWebhook(payload, header, "whsec_test", now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature", err)
	}
}

func TestVerifyWebhook_TamperedPayload(t *testing.T) {
	now := time.Now()
	header := signPayload([]byte(`{"amount":100}`), "whsec_test", now.Unix())

	if err := VerifyWebhook([]byte(`{"amount":999}`), header, "whsec_test", now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature", err)
	}
}

func TestVerifyWebhook_StaleTimestamp(t *testing.T) {
	payload := []byte(`{}`)
	now := time.Now()
	header := signPayload(payload, "whsec_test", now.Add(-10*time.Minute).Unix())

	if err := VerifyWebhook(payload, header, "whsec_test", now); !errors.Is(err, ErrBadSignature) {
		t.Fatalf("err = %v, want ErrBadSignature for stale timestamp", err)
	}
}

func TestVerifyWebhook_MalformedHeader(t *testing.T) {
	for _, header := range []string{"", "t=abc,v1=def", "v1=deadbeef", "t=123"} {
		if err := VerifyWebhook([]byte(`{}`), header, "whsec_test", time.Now()); !errors.Is(err, ErrBadSignature) {
			t.Fatalf("header %q: err = %v, want ErrBadSignature", header, err)
		}
	}
}
