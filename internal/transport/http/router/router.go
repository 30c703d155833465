package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"go-commerce-api/internal/core/auth"
	"go-commerce-api/internal/core/server"
	"go-commerce-api/internal/domain"
	"go-commerce-api/internal/service"
	"go-commerce-api/internal/transport/http/handler"
	mdw "go-commerce-api/internal/transport/http/middleware"
)

type Deps struct {
	Logger   *zap.Logger
	JWTer    *auth.JWTer
	Register *service.RegisterService
	Auth     *service.AuthService
	Products *service.ProductService
	Carts    *service.CartService
}

// NewEngine wires the full route table. Authenticate runs on every
// request but never rejects; public routes simply ignore the principal,
// protected groups gate on RequireAuth / RequireRole.
func NewEngine(d Deps) *gin.Engine {
	r := server.NewEngine(d.Logger)

	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(d.Logger),
		mdw.Authenticate(d.JWTer),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	registerH := handler.NewRegisterHandler(d.Register)
	authH := handler.NewAuthHandler(d.Auth)
	productH := handler.NewProductHandler(d.Products)
	cartH := handler.NewCartHandler(d.Carts)

	// public
	r.POST("/register/user", registerH.Register)
	r.POST("/auth/user", authH.Authenticate)

	products := r.Group("/api/products")
	{
		products.GET("/", productH.List)
		products.GET("/search", productH.Search)
		products.GET("/:id", productH.Get)
	}

	// any authenticated principal
	cart := r.Group("/api/cart", mdw.RequireAuth())
	{
		cart.GET("/get-items", cartH.GetItems)
		cart.POST("/", cartH.AddItem)
		cart.DELETE("/clear", cartH.Clear)
		cart.DELETE("/:itemId", cartH.RemoveItem)
		cart.PUT("/:itemId/quantity", cartH.UpdateQuantity)
	}

	// admin only
	admin := r.Group("/api/admin/products", mdw.RequireAuth(), mdw.RequireRole(domain.RoleAdmin))
	{
		admin.POST("/create", productH.Create)
		admin.GET("/getAll", productH.GetAll)
		admin.PUT("/update", productH.Update)
		admin.DELETE("/delete", productH.Delete)
	}

	return r
}
