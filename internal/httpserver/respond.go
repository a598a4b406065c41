package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neski321/E-Store-revamp/internal/domain"
	customersvc "github.com/neski321/E-Store-revamp/internal/service/customer"
)

// writeError maps domain errors onto HTTP status codes. Anything not in
// the taxonomy is a 500 with a generic body; the detail goes to the log,
// not the client.
func writeError(c *gin.Context, logger *log.Logger, err error) {
	var vErr *domain.ValidationError
	var gwErr *domain.GatewayError
	var partial *domain.PartialCompletionError

	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "problems": vErr.Problems})
	case errors.Is(err, domain.ErrAccountRequired),
		errors.Is(err, customersvc.ErrInvalidToken),
		errors.Is(err, customersvc.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.As(err, &gwErr):
		c.JSON(http.StatusPaymentRequired, gin.H{"error": gwErr.Message, "code": gwErr.Code})
	case errors.As(err, &partial):
		// Payment was captured; surface the pending order so support can
		// reconcile the charge.
		logger.Printf("http: partial completion order=%s error=%v", partial.OrderID, partial.Err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "order could not be finalized; do not retry payment",
			"orderId": partial.OrderID,
		})
	case errors.Is(err, domain.ErrStorageUnavailable):
		logger.Printf("http: storage unavailable: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "service temporarily unavailable"})
	default:
		logger.Printf("http: internal error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
