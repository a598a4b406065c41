package httpserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/neski321/E-Store-revamp/internal/domain"
	customersvc "github.com/neski321/E-Store-revamp/internal/service/customer"
)

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type profileRequest struct {
	Billing  *domain.Address `json:"billingInfo"`
	Shipping *domain.Address `json:"shippingInfo"`
}

func signupHandler(customers *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req customersvc.SignupInput
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid signup payload")
			return
		}
		cust, err := customers.Signup(c.Request.Context(), req)
		if err != nil {
			if errors.Is(err, customersvc.ErrEmailTaken) {
				c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
				return
			}
			// Password/email rule violations read fine as-is.
			badRequest(c, err.Error())
			return
		}
		c.JSON(http.StatusCreated, gin.H{"customer": cust})
	}
}

func loginHandler(customers *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req loginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "email and password are required")
			return
		}
		cust, access, refresh, err := customers.Login(c.Request.Context(), req.Email, req.Password)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"customer":     cust,
			"accessToken":  access,
			"refreshToken": refresh,
			"expiresIn":    customers.AccessTTLSeconds(),
		})
	}
}

func meHandler(customers *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := sessionFrom(c)
		if sess.Anonymous {
			writeError(c, logger, domain.ErrAccountRequired)
			return
		}
		cust, err := customers.GetByID(c.Request.Context(), sess.UserID)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": cust})
	}
}

func updateProfileHandler(customers *customersvc.Service, logger *log.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req profileRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			badRequest(c, "invalid profile payload")
			return
		}
		cust, err := customers.UpdateAddresses(c.Request.Context(), sessionFrom(c), req.Billing, req.Shipping)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"customer": cust})
	}
}
