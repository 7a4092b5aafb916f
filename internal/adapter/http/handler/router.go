package handler

import (
	"net/http"

	"lnurl-gateway/internal/adapter/http/middleware"
	redisStore "lnurl-gateway/internal/adapter/storage/redis"
	"lnurl-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	PayRequestSvc  ports.PayRequestService
	PayCallbackSvc ports.PayCallbackService
	CardSvc        ports.CardService
	RateLimitStore *redisStore.RateLimitStore // nil = rate limiting disabled
	AuditSvc       ports.AuditService         // nil = audit trail disabled
	HealthCheckers []ports.HealthChecker
	Logger         zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// The card/withdraw surface must answer non-GET with 405, not 404.
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"message": "Method not allowed"})
	})

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))

	// Audit trail (after response)
	if deps.AuditSvc != nil {
		r.Use(middleware.AuditTrail(deps.AuditSvc))
	}

	// Health check (deep — verifies configured Redis/PostgreSQL backends)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// LNURL-pay flow (in-band errors, always 200)
	lnurlpHandler := NewLnurlpHandler(deps.PayRequestSvc, deps.PayCallbackSvc)
	lnurlp := r.Group("/lnurlp")
	{
		lnurlp.GET("/:username", rl("payreq"), lnurlpHandler.PayRequest)
		lnurlp.GET("/:username/callback", rl("callback"), lnurlpHandler.Callback)
	}

	// Bolt card surface (status-coded errors)
	boltCardHandler := NewBoltCardHandler(deps.CardSvc)
	api := r.Group("/api")
	{
		api.GET("/bolt-card/:otp", rl("card_pair"), boltCardHandler.Pair)
		api.GET("/lnurl/withdraw/:id", rl("withdraw"), boltCardHandler.Withdraw)
	}

	return r
}
