package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"storefront-gateway/internal/cart"
	"storefront-gateway/internal/domain"
)

func (h *handlers) listProducts(c *gin.Context) {
	products, err := h.backend.ListProducts(c.Request.Context(), c.Query("search"), c.Query("category_id"))
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, products)
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.backend.ListCategories(c.Request.Context())
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

// addItemRequest carries the catalog item as the browser saw it in the
// listing. The add is local: the price is snapshotted from these fields and
// no backend call happens here.
type addItemRequest struct {
	ID            int64   `json:"id" binding:"required"`
	Name          string  `json:"name" binding:"required"`
	Price         float64 `json:"price"`
	StockQuantity int     `json:"stock_quantity"`
	CategoryName  string  `json:"category_name"`
	ImageURL      string  `json:"image_url"`
}

func (h *handlers) addToCart(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product id and name are required"})
		return
	}
	if req.Price < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "price must not be negative"})
		return
	}
	// A reported stock of exactly zero disables the add action. Anything
	// above zero is accepted; depletion between add and submission is the
	// backend's rejection to make.
	if req.StockQuantity == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "product is out of stock"})
		return
	}

	sess, _ := currentSession(c)
	h.carts.Add(sess.ID, domain.Product{
		ID:            req.ID,
		Name:          req.Name,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
		CategoryName:  req.CategoryName,
		ImageURL:      req.ImageURL,
	})
	h.renderCart(c, sess.ID)
}

func (h *handlers) removeFromCart(c *gin.Context) {
	productID, err := strconv.ParseInt(c.Param("productID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	sess, _ := currentSession(c)
	h.carts.Remove(sess.ID, productID)
	h.renderCart(c, sess.ID)
}

func (h *handlers) viewCart(c *gin.Context) {
	sess, _ := currentSession(c)
	h.renderCart(c, sess.ID)
}

func (h *handlers) renderCart(c *gin.Context, sessionID string) {
	snapshot := h.carts.Snapshot(sessionID)
	c.JSON(http.StatusOK, gin.H{
		"lines": snapshot.Lines,
		"total": snapshot.Total(),
	})
}

// checkoutView enforces the empty-cart guard: with zero lines the
// submission form is never shown, only a way back to the catalog.
func (h *handlers) checkoutView(c *gin.Context) {
	sess, _ := currentSession(c)
	snapshot := h.carts.Snapshot(sess.ID)
	if snapshot.Empty() {
		c.JSON(http.StatusOK, gin.H{
			"empty":             true,
			"continue_shopping": "/shop/products",
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"lines": snapshot.Lines,
		"total": snapshot.Total(),
	})
}

type submitOrderRequest struct {
	ShippingAddress string `json:"shipping_address"`
}

func (h *handlers) submitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	sess, _ := currentSession(c)
	order, err := h.checkout.Submit(c.Request.Context(), sess.Token, sess.ID, req.ShippingAddress)
	switch {
	case errors.Is(err, cart.ErrEmptyCart):
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             err.Error(),
			"continue_shopping": "/shop/products",
		})
	case errors.Is(err, cart.ErrAddressRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case err != nil:
		h.backendError(c, err)
	default:
		c.JSON(http.StatusCreated, gin.H{
			"order":    order,
			"redirect": "/my-orders",
		})
	}
}

func (h *handlers) myOrders(c *gin.Context) {
	sess, _ := currentSession(c)
	orders, err := h.backend.MyOrders(c.Request.Context(), sess.Token)
	if err != nil {
		h.backendError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
