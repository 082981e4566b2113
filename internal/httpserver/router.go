package httpserver

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"storefront-gateway/internal/backend"
	"storefront-gateway/internal/domain"
	"storefront-gateway/internal/session"
)

type authorityService interface {
	Login(ctx context.Context, creds backend.Credentials) (domain.Session, error)
	Logout(ctx context.Context, sessionID string) error
	Current(ctx context.Context, sessionID string) (domain.Session, bool)
	Authorize(role, required domain.Role) session.Decision
}

type cartManager interface {
	Add(sessionID string, p domain.Product)
	Remove(sessionID string, productID int64)
	Snapshot(sessionID string) domain.Cart
	Drop(sessionID string)
}

type checkoutService interface {
	Submit(ctx context.Context, token, sessionID, shippingAddress string) (*domain.Order, error)
}

type backendGateway interface {
	AdminLogin(ctx context.Context, username, password string) (*backend.Credentials, error)
	CustomerLogin(ctx context.Context, username, password string) (*backend.Credentials, error)
	RegisterCustomer(ctx context.Context, in backend.RegistrationInput) error
	ListProducts(ctx context.Context, search, categoryID string) ([]domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
	MyOrders(ctx context.Context, token string) ([]domain.Order, error)
	Forward(ctx context.Context, token string, r *http.Request, path string) (*http.Response, error)
}

// Deps carries the collaborators the router needs.
type Deps struct {
	Authority authorityService
	Carts     cartManager
	Checkout  checkoutService
	Backend   backendGateway
	Cookies   session.CookieOptions
}

// buildRouter wires the gateway routes.
func buildRouter(logger *log.Logger, deps Deps) (*gin.Engine, error) {
	switch {
	case deps.Authority == nil:
		return nil, errors.New("authority service is required")
	case deps.Carts == nil:
		return nil, errors.New("cart manager is required")
	case deps.Checkout == nil:
		return nil, errors.New("checkout service is required")
	case deps.Backend == nil:
		return nil, errors.New("backend client is required")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.Default())
	router.Use(metricsMiddleware())
	router.Use(sessionMiddleware(deps.Authority))

	h := &handlers{
		logger:    logger,
		authority: deps.Authority,
		carts:     deps.Carts,
		checkout:  deps.Checkout,
		backend:   deps.Backend,
		cookies:   deps.Cookies,
	}

	// Public
	router.GET("/", landingHandler)
	router.GET("/healthz", healthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/login", h.adminLogin)
	router.POST("/customer/login", h.customerLogin)
	router.POST("/customer/register", h.register)
	router.POST("/logout", h.logout)
	router.GET("/shop/products", h.listProducts)
	router.GET("/shop/categories", h.listCategories)

	// Customer protected
	customer := router.Group("/", requireRole(deps.Authority, domain.RoleCustomer))
	customer.GET("/shop/cart", h.viewCart)
	customer.POST("/shop/cart/items", h.addToCart)
	customer.DELETE("/shop/cart/items/:productID", h.removeFromCart)
	customer.GET("/checkout", h.checkoutView)
	customer.POST("/checkout", h.submitOrder)
	customer.GET("/my-orders", h.myOrders)

	// Admin protected; every admin screen goes through the generic
	// remote-resource forwarder.
	admin := router.Group("/admin", requireRole(deps.Authority, domain.RoleAdmin))
	admin.Any("/api/*backendPath", h.adminForward)

	// Fallback
	router.NoRoute(func(c *gin.Context) {
		c.Redirect(http.StatusSeeOther, "/")
	})

	return router, nil
}

type handlers struct {
	logger    *log.Logger
	authority authorityService
	carts     cartManager
	checkout  checkoutService
	backend   backendGateway
	cookies   session.CookieOptions
}
