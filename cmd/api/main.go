package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/neski321/E-Store-revamp/internal/config"
	"github.com/neski321/E-Store-revamp/internal/db"
	"github.com/neski321/E-Store-revamp/internal/httpserver"
	"github.com/neski321/E-Store-revamp/internal/notify"
	cartrepo "github.com/neski321/E-Store-revamp/internal/repository/cart"
	customerrepo "github.com/neski321/E-Store-revamp/internal/repository/customer"
	favoriterepo "github.com/neski321/E-Store-revamp/internal/repository/favorite"
	orderrepo "github.com/neski321/E-Store-revamp/internal/repository/order"
	productrepo "github.com/neski321/E-Store-revamp/internal/repository/product"
	reviewrepo "github.com/neski321/E-Store-revamp/internal/repository/review"
	tokenrepo "github.com/neski321/E-Store-revamp/internal/repository/token"
	cartsvc "github.com/neski321/E-Store-revamp/internal/service/cart"
	checkoutsvc "github.com/neski321/E-Store-revamp/internal/service/checkout"
	customersvc "github.com/neski321/E-Store-revamp/internal/service/customer"
	favoritesvc "github.com/neski321/E-Store-revamp/internal/service/favorite"
	ordersvc "github.com/neski321/E-Store-revamp/internal/service/order"
	"github.com/neski321/E-Store-revamp/internal/service/payment"
	productsvc "github.com/neski321/E-Store-revamp/internal/service/product"
	reviewsvc "github.com/neski321/E-Store-revamp/internal/service/review"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	dbpool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect to db: %v", err)
	}
	defer dbpool.Close()

	productRepo := productrepo.NewPostgres(dbpool, logger)
	cartRepo := cartrepo.NewPostgres(dbpool)
	orderRepo := orderrepo.NewPostgres(dbpool, logger)
	customerRepo := customerrepo.NewPostgres(dbpool, logger)
	tokenRepo := tokenrepo.NewPostgres(dbpool)
	favoriteRepo := favoriterepo.NewPostgres(dbpool)
	reviewRepo := reviewrepo.NewPostgres(dbpool)

	productService := productsvc.New(productRepo)
	cartService := cartsvc.New(cartRepo, productRepo, logger)
	quantityCoalescer := cartsvc.NewCoalescer(cartService, 400*time.Millisecond)
	customerService := customersvc.New(customerRepo, tokenRepo)
	gateway := payment.NewStripe(cfg.StripeAPIURL, cfg.StripeSecretKey, logger)
	mailer := notify.NewHTTPMailer(cfg.EmailAPIURL, logger)
	checkoutService := checkoutsvc.New(cartService, customerService, orderRepo, gateway, mailer, logger)
	orderService := ordersvc.New(orderRepo)
	favoriteService := favoritesvc.New(favoriteRepo, productRepo)
	reviewService := reviewsvc.New(reviewRepo, productRepo)

	srv := httpserver.New(cfg.HTTPAddr, logger, dbpool, httpserver.Deps{
		Customers:     customerService,
		Products:      productService,
		Cart:          cartService,
		Quantities:    quantityCoalescer,
		Checkout:      checkoutService,
		Orders:        orderService,
		Favorites:     favoriteService,
		Reviews:       reviewService,
		Gateway:       gateway,
		Mailer:        mailer,
		WebhookSecret: cfg.StripeWebhookSecret,
		CORSOrigins:   cfg.CORSOrigins,
	})

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}

	// Debounced quantity writes are flushed after the listener stops so
	// nothing accepted before shutdown is lost.
	quantityCoalescer.Flush()
}
