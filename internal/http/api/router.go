// Package api wires the REST surface: route registration, session
// resolution, and the admin role gate.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/monacap/trading-backend/internal/config"
	"github.com/monacap/trading-backend/internal/http/api/handlers"
	"github.com/monacap/trading-backend/internal/oauth"
)

// NewRouter builds the gin engine with all API routes registered.
func NewRouter(conn *gorm.DB, sessionCfg config.SessionConfig, oauthClient *oauth.Client) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogMiddleware())
	r.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Cookie"},
		AllowCredentials: false,
	}))

	RegisterAPIRoutes(r, conn, sessionCfg, oauthClient)
	return r
}

// RegisterAPIRoutes registers every handler under the /api prefix.
func RegisterAPIRoutes(r *gin.Engine, conn *gorm.DB, sessionCfg config.SessionConfig, oauthClient *oauth.Client) {
	if r == nil || conn == nil {
		return
	}

	apiGroup := r.Group("/api")

	healthHandler := handlers.NewHealthHandler(conn)
	apiGroup.GET("/health", healthHandler.Health)

	authed := apiGroup.Group("")
	authed.Use(sessionAuthMiddleware(conn))

	adminOnly := apiGroup.Group("")
	adminOnly.Use(sessionAuthMiddleware(conn))
	adminOnly.Use(adminOnlyMiddleware())

	authHandler := handlers.NewAuthHandler(conn, sessionCfg, oauthClient)
	apiGroup.POST("/auth/register", authHandler.Register)
	apiGroup.POST("/auth/login", authHandler.Login)
	apiGroup.POST("/auth/google", authHandler.Google)
	apiGroup.POST("/auth/logout", authHandler.Logout)
	authed.GET("/auth/me", authHandler.Me)

	userHandler := handlers.NewUserHandler(conn)
	adminOnly.GET("/users", userHandler.List)
	adminOnly.PUT("/users/:id", userHandler.Update)
	adminOnly.DELETE("/users/:id", userHandler.Delete)

	traderHandler := handlers.NewTraderHandler(conn)
	apiGroup.GET("/traders", traderHandler.List)
	adminOnly.POST("/traders", traderHandler.Create)

	planHandler := handlers.NewPlanHandler(conn)
	apiGroup.GET("/plans", planHandler.List)
	adminOnly.POST("/plans", planHandler.Create)

	copyTradeHandler := handlers.NewCopyTradeHandler(conn)
	authed.GET("/copy-trades", copyTradeHandler.List)
	authed.POST("/copy-trades", copyTradeHandler.Create)
	authed.PUT("/copy-trades/:id/stop", copyTradeHandler.Stop)

	transactionHandler := handlers.NewTransactionHandler(conn)
	adminOnly.GET("/transactions", transactionHandler.List)
	authed.POST("/transactions", transactionHandler.Create)
	adminOnly.PUT("/transactions/:id/approve", transactionHandler.Approve)
	adminOnly.PUT("/transactions/:id/reject", transactionHandler.Reject)

	dashboardHandler := handlers.NewDashboardHandler(conn)
	authed.GET("/dashboard/stats", dashboardHandler.Stats)

	adminStatsHandler := handlers.NewAdminStatsHandler(conn)
	adminOnly.GET("/admin/stats", adminStatsHandler.Stats)

	walletHandler := handlers.NewWalletHandler(conn)
	apiGroup.GET("/wallets", walletHandler.List)
	apiGroup.GET("/wallets/:method", walletHandler.Get)
	adminOnly.PUT("/wallets/:method", walletHandler.Update)
}
