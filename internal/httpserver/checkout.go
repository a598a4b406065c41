package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	checkoutsvc "github.com/neski321/E-Store-revamp/internal/service/checkout"
)

func checkoutHandler(checkout *checkoutsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req checkoutsvc.PlaceOrderInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid checkout payload")
			return
		}
		// The header form wins when both are supplied, matching how the
		// payment processor itself takes the key.
		if key := c.GetHeader("Idempotency-Key"); key != "" {
			req.IdempotencyKey = key
		}

		result, err := checkout.PlaceOrder(c.Request.Context(), sessionFrom(c), req)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, result)
	}
}
