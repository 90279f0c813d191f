package app

import (
	"context"
	"net/http"
	"time"

	"github.com/SrotDev/bizpilot/internal/auth/handler"
	"github.com/SrotDev/bizpilot/internal/auth/provider"
	"github.com/SrotDev/bizpilot/internal/auth/provider/github"
	"github.com/SrotDev/bizpilot/internal/auth/provider/google"
	"github.com/SrotDev/bizpilot/internal/auth/provider/linkedin"
	"github.com/SrotDev/bizpilot/internal/config"
	"github.com/SrotDev/bizpilot/internal/middleware"
	"github.com/SrotDev/bizpilot/internal/observability"
	"github.com/SrotDev/bizpilot/internal/payment"
	"github.com/SrotDev/bizpilot/internal/verify"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// outboundTimeout is the hard cap on any single call to a provider,
// the verification service, or the payment gateway.
const outboundTimeout = 10 * time.Second

func setupHTTP(_ context.Context, cfg config.Config) (*gin.Engine, error) {

	httpClient := &http.Client{Timeout: outboundTimeout}

	// ----------------------------
	// Dependencies
	// ----------------------------

	registry := provider.NewRegistry(
		google.New(provider.EnvCredentials("GOOGLE"), httpClient),
		github.New(provider.EnvCredentials("GITHUB"), httpClient),
		linkedin.New(provider.EnvCredentials("LINKEDIN"), httpClient),
	)

	authHandler := handler.NewHandler(registry, cfg.ClientAppURL)

	verifyHandler := verify.NewHandler(
		verify.NewVerifier(cfg.RecaptchaSecret, httpClient),
	)

	paymentHandler := payment.NewHandler(
		payment.NewClient(payment.Config{
			StoreID:       cfg.SSLCommerzStoreID,
			StorePassword: cfg.SSLCommerzStorePassword,
			Sandbox:       cfg.SSLCommerzSandbox,
			ClientAppURL:  cfg.ClientAppURL,
		}, httpClient),
	)

	metrics := observability.NewMetrics()

	// ----------------------------
	// Router
	// ----------------------------

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLog())
	router.Use(observability.PrometheusMiddleware(metrics))

	// The SPA runs on a different origin during development; echo any
	// origin with credentials, same posture as the original backend.
	router.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Request-ID"},
		AllowCredentials: true,
	}))

	// ----------------------------
	// Routes
	// ----------------------------

	authHandler.RegisterRoutes(router)
	verifyHandler.RegisterRoutes(router)
	paymentHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.GET("/metrics", gin.WrapH(observability.PrometheusHandler()))

	return router, nil
}
