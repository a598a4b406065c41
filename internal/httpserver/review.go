package httpserver

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	reviewsvc "github.com/neski321/E-Store-revamp/internal/service/review"
)

type moderationRequest struct {
	Status string `json:"status" binding:"required"`
}

func listReviewsHandler(reviews *reviewsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		list, err := reviews.ListApproved(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}

func submitReviewHandler(reviews *reviewsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.Atoi(c.Param("id"))
		if err != nil {
			badRequest(c, "product id must be numeric")
			return
		}
		var req reviewsvc.SubmitInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid review payload")
			return
		}
		rv, err := reviews.Submit(c.Request.Context(), sessionFrom(c), id, req)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, rv)
	}
}

func pendingReviewsHandler(reviews *reviewsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := reviews.ListPending(c.Request.Context(), sessionFrom(c))
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"reviews": list})
	}
}

func moderateReviewHandler(reviews *reviewsvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req moderationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "status is required")
			return
		}
		rv, err := reviews.Moderate(c.Request.Context(), sessionFrom(c), c.Param("id"), req.Status)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, rv)
	}
}
