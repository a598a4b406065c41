package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/neski321/E-Store-revamp/internal/notify"
	"github.com/neski321/E-Store-revamp/internal/pricing"
	cartsvc "github.com/neski321/E-Store-revamp/internal/service/cart"
	ordersvc "github.com/neski321/E-Store-revamp/internal/service/order"
	"github.com/neski321/E-Store-revamp/internal/service/payment"
)

type intentRequest struct {
	Currency string `json:"currency"`
}

type confirmationRequest struct {
	OrderID string `json:"orderId" binding:"required"`
}

// createPaymentIntentHandler prices the live cart server-side and registers
// the intent with the processor. The amount is never taken from the client.
func createPaymentIntentHandler(cart *cartsvc.Service, gateway payment.Gateway, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req intentRequest
		if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
			badRequest(c, "invalid payload")
			return
		}
		if req.Currency == "" {
			req.Currency = "usd"
		}

		items, err := cart.Load(c.Request.Context(), sessionFrom(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		totals := pricing.Calculate(items)
		amount := int64(math.Round(totals.Total * 100))

		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			key = uuid.NewString()
		}
		conf, err := gateway.CreateIntent(c.Request.Context(), amount, req.Currency, key)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"clientSecret": conf.ClientSecret,
			"paymentRef":   conf.PaymentRef,
			"amount":       conf.AmountCents,
			"currency":     conf.Currency,
		})
	}
}

func sendConfirmationHandler(orders *ordersvc.Service, mailer notify.Mailer, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req confirmationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "orderId is required")
			return
		}
		sess := sessionFrom(c)
		o, err := orders.Get(c.Request.Context(), sess, req.OrderID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if err := mailer.SendOrderConfirmation(c.Request.Context(), sess.Email, *o); err != nil {
			// Delivery is best effort; report it without failing the request.
			logger.Printf("http: confirmation email order=%s error=%v", o.ID, err)
			c.JSON(http.StatusAccepted, gin.H{"status": "queued"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "sent"})
	}
}

type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		} `json:"object"`
	} `json:"data"`
}

func stripeWebhookHandler(secret string, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := io.ReadAll(io.LimitReader(c.Request.Body, 1<<20))
		if err != nil {
			badRequest(c, "unreadable payload")
			return
		}
		if err := payment.VerifyWebhook(payload, c.GetHeader("Stripe-Signature"), secret, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "signature verification failed"})
			return
		}

		var event webhookEvent
		if err := json.Unmarshal(payload, &event); err != nil {
			badRequest(c, "malformed event")
			return
		}
		// Capture state is already driven synchronously by checkout; webhook
		// events are an audit trail here.
		logger.Printf("webhook: event=%s intent=%s status=%s", event.Type, event.Data.Object.ID, event.Data.Object.Status)
		c.JSON(http.StatusOK, gin.H{"received": true})
	}
}
