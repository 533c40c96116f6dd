package http

import (
	"context"
	"net/http"
	"time"

	"github.com/MikeRez0/orderdesk/internal/adapter/config"
	"github.com/MikeRez0/orderdesk/internal/core/domain"
	"github.com/MikeRez0/orderdesk/internal/core/port"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Pinger reports whether storage is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Order   *OrderHandler
	Client  *ClientHandler
	Product *ProductHandler
	User    *UserHandler
	Cnpj    *CnpjHandler

	// Metrics is served on /metrics; Middleware wraps every route. Both optional.
	Metrics    http.Handler
	Middleware []gin.HandlerFunc
}

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	storage *config.Storage,
	tokenService port.TokenService,
	pinger Pinger,
	handlers Handlers,
	logger *zap.Logger) (*Router, error) {

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger))
	router.Use(handlers.Middleware...)

	h := NewHandler(logger)

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/healthz", func(ctx *gin.Context) {
		pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := pinger.Ping(pingCtx); err != nil {
			logger.Warn("health check", zap.Error(err))
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	if handlers.Metrics != nil {
		router.GET("/metrics", gin.WrapH(handlers.Metrics))
	}
	if storage != nil && storage.PublicPath != "" {
		router.Static(storage.PublicPath, storage.UploadDir)
	}

	admin := h.roleCheck(domain.RoleAdmin)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.User.RegisterUser)
			auth.POST("/login", handlers.User.LoginUser)
		}

		secured := api.Group("")
		secured.Use(h.authCheck(tokenService))

		secured.GET("/cnpj/:cnpj", handlers.Cnpj.LookupCnpj)

		clients := secured.Group("/clients")
		{
			clients.Use(admin)
			clients.GET("", handlers.Client.ListClients)
			clients.POST("", handlers.Client.CreateClient)
			clients.GET("/:id", handlers.Client.GetClient)
			clients.PATCH("/:id", handlers.Client.UpdateClient)
			clients.DELETE("/:id", handlers.Client.DeleteClient)
		}

		products := secured.Group("/products")
		{
			products.GET("", handlers.Product.ListProducts)
			products.GET("/:id", handlers.Product.GetProduct)
			products.POST("", admin, handlers.Product.CreateProduct)
			products.PATCH("/:id", admin, handlers.Product.UpdateProduct)
			products.DELETE("/:id", admin, handlers.Product.DeleteProduct)
			products.POST("/:id/images", admin, handlers.Product.UploadImages)
			products.DELETE("/:id/images/:imageId", admin, handlers.Product.RemoveImage)
		}

		orders := secured.Group("/orders")
		{
			orders.GET("", handlers.Order.ListOrders)
			orders.GET("/:id", handlers.Order.GetOrder)
			orders.POST("", handlers.Order.PlaceOrder)
			orders.DELETE("/:id", admin, handlers.Order.CancelOrder)
		}
	}

	return &Router{router}, nil
}

// Server wraps the router in an http.Server so it can be shut down gracefully.
func (r *Router) Server(listenAddr string) *http.Server {
	return &http.Server{
		Addr:              listenAddr,
		Handler:           r.Engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
