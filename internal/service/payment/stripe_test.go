package payment

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/neski321/E-Store-revamp/internal/domain"
)

func TestCharge_FullPipeline(t *testing.T) {
	var sawIdempotencyKey, sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("parse form: %v", err)
			return
		}
		switch r.URL.Path {
		case "/v1/payment_methods":
			if r.PostFormValue("card[number]") != "4242424242424242" {
				t.Errorf("card number not forwarded: %v", r.PostForm)
			}
			fmt.Fprint(w, `{"id":"pm_123"}`)
		case "/v1/payment_intents":
			sawIdempotencyKey = r.Header.Get("Idempotency-Key")
			sawAuth = r.Header.Get("Authorization")
			if r.PostFormValue("amount") != "4068" || r.PostFormValue("currency") != "usd" {
				t.Errorf("unexpected intent form: %v", r.PostForm)
			}
			fmt.Fprint(w, `{"id":"pi_123","status":"requires_confirmation","client_secret":"cs_123","amount":4068,"currency":"usd"}`)
		case "/v1/payment_intents/pi_123/confirm":
			if r.PostFormValue("payment_method") != "pm_123" {
				t.Errorf("method token not forwarded: %v", r.PostForm)
			}
			fmt.Fprint(w, `{"id":"pi_123","status":"succeeded","client_secret":"cs_123","amount":4068,"currency":"usd"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	gw := NewStripe(srv.URL, "sk_test_123", nil)
	card := &CardInput{Number: "4242424242424242", ExpMonth: 12, ExpYear: 2030, CVC: "123"}

	conf, err := Charge(context.Background(), gw, card, "", 4068, "usd", "key-1")
	if err != nil {
		t.Fatalf("charge: %v", err)
	}
	if conf.PaymentRef != "pi_123" || conf.AmountCents != 4068 {
		t.Fatalf("confirmation = %+v", conf)
	}
	if sawIdempotencyKey != "key-1" {
		t.Fatalf("idempotency key = %q, want key-1", sawIdempotencyKey)
	}
	if sawAuth != "Bearer sk_test_123" {
		t.Fatalf("auth header = %q", sawAuth)
	}
}

func TestCharge_SkipsTokenizeWithMethodToken(t *testing.T) {
	var tokenizeCalls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/v1/payment_methods":
			tokenizeCalls++
			fmt.Fprint(w, `{"id":"pm_x"}`)
		case "/v1/payment_intents":
			fmt.Fprint(w, `{"id":"pi_9","status":"requires_confirmation"}`)
		default:
			fmt.Fprint(w, `{"id":"pi_9","status":"succeeded"}`)
		}
	}))
	defer srv.Close()

	gw := NewStripe(srv.URL, "sk_test", nil)
	if _, err := Charge(context.Background(), gw, nil, "pm_existing", 100, "usd", "k"); err != nil {
		t.Fatalf("charge: %v", err)
	}
	if tokenizeCalls != 0 {
		t.Fatal("tokenize called despite pre-tokenized method")
	}
}

func TestConfirmIntent_DeclineBecomesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/payment_intents" {
			fmt.Fprint(w, `{"id":"pi_1","status":"requires_confirmation"}`)
			return
		}
		fmt.Fprint(w, `{"id":"pi_1","status":"requires_payment_method","last_payment_error":{"code":"card_declined","message":"Your card was declined."}}`)
	}))
	defer srv.Close()

	gw := NewStripe(srv.URL, "sk_test", nil)
	_, err := Charge(context.Background(), gw, nil, "pm_1", 100, "usd", "k")
	var gwErr *domain.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("err = %v, want GatewayError", err)
	}
	if gwErr.Code != "card_declined" {
		t.Fatalf("code = %q, want card_declined", gwErr.Code)
	}
}

func TestCreateIntent_HTTPErrorBecomesGatewayError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		fmt.Fprint(w, `{"error":{"code":"amount_too_small","message":"Amount must convert to at least 50 cents."}}`)
	}))
	defer srv.Close()

	gw := NewStripe(srv.URL, "sk_test", nil)
	_, err := gw.CreateIntent(context.Background(), 1, "usd", "k")
	var gwErr *domain.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("err = %v, want GatewayError", err)
	}
	if gwErr.Code != "amount_too_small" {
		t.Fatalf("code = %q", gwErr.Code)
	}
}

func TestCreateIntent_TransportFailureBecomesGatewayError(t *testing.T) {
	gw := NewStripe("http://127.0.0.1:1", "sk_test", nil)
	_, err := gw.CreateIntent(context.Background(), 100, "usd", "k")
	var gwErr *domain.GatewayError
	if !errors.As(err, &gwErr) {
		t.Fatalf("err = %v, want GatewayError for unreachable processor", err)
	}
}
