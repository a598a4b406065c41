package httpserver

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neski321/E-Store-revamp/internal/domain"
	cartsvc "github.com/neski321/E-Store-revamp/internal/service/cart"
)

type addItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
	Quantity  int `json:"quantity"`
}

type quantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

func loadCartHandler(cart *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := cart.Load(c.Request.Context(), sessionFrom(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if items == nil {
			items = []domain.CartItem{}
		}
		c.JSON(http.StatusOK, gin.H{"items": items})
	}
}

func addCartItemHandler(cart *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "productId is required")
			return
		}
		item, err := cart.Add(c.Request.Context(), sessionFrom(c), req.ProductID, req.Quantity)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func setQuantityHandler(quantities quantitySetter, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req quantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "quantity is required")
			return
		}
		item, err := quantities.SetQuantity(c.Request.Context(), sessionFrom(c), c.Param("id"), req.Quantity)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func removeCartItemHandler(cart *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Remove(c.Request.Context(), sessionFrom(c), c.Param("id")); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func clearCartHandler(cart *cartsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cart.Clear(c.Request.Context(), sessionFrom(c)); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
