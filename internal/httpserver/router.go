package httpserver

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/neski321/E-Store-revamp/internal/domain"
	"github.com/neski321/E-Store-revamp/internal/notify"
	cartsvc "github.com/neski321/E-Store-revamp/internal/service/cart"
	checkoutsvc "github.com/neski321/E-Store-revamp/internal/service/checkout"
	customersvc "github.com/neski321/E-Store-revamp/internal/service/customer"
	favoritesvc "github.com/neski321/E-Store-revamp/internal/service/favorite"
	ordersvc "github.com/neski321/E-Store-revamp/internal/service/order"
	"github.com/neski321/E-Store-revamp/internal/service/payment"
	productsvc "github.com/neski321/E-Store-revamp/internal/service/product"
	reviewsvc "github.com/neski321/E-Store-revamp/internal/service/review"
)

// quantitySetter is satisfied by both the cart service and the write
// coalescer; the router does not care which one is plugged in.
type quantitySetter interface {
	SetQuantity(ctx context.Context, sess domain.Session, itemID string, quantity int) (*domain.CartItem, error)
}

// Deps carries the wired services the handlers need.
type Deps struct {
	Customers  *customersvc.Service
	Products   *productsvc.Service
	Cart       *cartsvc.Service
	Quantities quantitySetter
	Checkout   *checkoutsvc.Service
	Orders     *ordersvc.Service
	Favorites  *favoritesvc.Service
	Reviews    *reviewsvc.Service
	Gateway    payment.Gateway
	Mailer     notify.Mailer

	WebhookSecret string
	CORSOrigins   []string
}

// buildRouter wires routes for the API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = deps.CORSOrigins
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"}
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	// The webhook is verified by signature, never by session.
	router.POST("/api/stripe-webhook", stripeWebhookHandler(deps.WebhookSecret, logger))

	authed := router.Group("/")
	authed.Use(authMiddleware(deps.Customers, logger))

	authed.POST("/auth/signup", signupHandler(deps.Customers, logger))
	authed.POST("/auth/login", loginHandler(deps.Customers, logger))
	authed.GET("/auth/me", meHandler(deps.Customers, logger))
	authed.PUT("/auth/profile", updateProfileHandler(deps.Customers, logger))

	authed.GET("/products", listProductsHandler(deps.Products, logger))
	authed.GET("/products/:id", getProductHandler(deps.Products, logger))
	authed.POST("/products", createProductHandler(deps.Products, logger))
	authed.PUT("/products/:id", updateProductHandler(deps.Products, logger))
	authed.DELETE("/products/:id", deleteProductHandler(deps.Products, logger))
	authed.GET("/categories", categoriesHandler(deps.Products, logger))
	authed.GET("/brands", brandsHandler(deps.Products, logger))

	authed.GET("/cart", loadCartHandler(deps.Cart, logger))
	authed.POST("/cart/items", addCartItemHandler(deps.Cart, logger))
	authed.PATCH("/cart/items/:id", setQuantityHandler(deps.Quantities, logger))
	authed.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart, logger))
	authed.DELETE("/cart", clearCartHandler(deps.Cart, logger))

	authed.POST("/checkout", checkoutHandler(deps.Checkout, logger))

	authed.GET("/orders", listOrdersHandler(deps.Orders, logger))
	authed.GET("/orders/:id", getOrderHandler(deps.Orders, logger))
	authed.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.Orders, logger))

	authed.GET("/favorites", listFavoritesHandler(deps.Favorites, logger))
	authed.PUT("/favorites/:productId", addFavoriteHandler(deps.Favorites, logger))
	authed.DELETE("/favorites/:productId", removeFavoriteHandler(deps.Favorites, logger))

	authed.GET("/products/:id/reviews", listReviewsHandler(deps.Reviews, logger))
	authed.POST("/products/:id/reviews", submitReviewHandler(deps.Reviews, logger))
	authed.GET("/reviews/pending", pendingReviewsHandler(deps.Reviews, logger))
	authed.PATCH("/reviews/:id", moderateReviewHandler(deps.Reviews, logger))

	authed.POST("/api/create-payment-intent", createPaymentIntentHandler(deps.Cart, deps.Gateway, logger))
	authed.POST("/api/send-order-confirmation", sendConfirmationHandler(deps.Orders, deps.Mailer, logger))

	return router
}
