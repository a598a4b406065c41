package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	ordersvc "github.com/neski321/E-Store-revamp/internal/service/order"
)

type orderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func listOrdersHandler(orders *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := orders.List(c.Request.Context(), sessionFrom(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": list})
	}
}

func getOrderHandler(orders *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.Get(c.Request.Context(), sessionFrom(c), c.Param("id"))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}

func updateOrderStatusHandler(orders *ordersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req orderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "status is required")
			return
		}
		o, err := orders.UpdateStatus(c.Request.Context(), sessionFrom(c), c.Param("id"), req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
