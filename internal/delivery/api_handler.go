package delivery

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// APIHandler exposes the storefront operations as JSON.
type APIHandler struct {
	useCase usecase.StorefrontUseCase
	log     *logrus.Logger
}

func NewAPIHandler(uc usecase.StorefrontUseCase, logger *logrus.Logger) *APIHandler {
	return &APIHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *APIHandler) RegisterRoutes(router gin.IRouter) {
	api := router.Group("/api")
	{
		api.GET("/products", h.ListProducts)
		api.GET("/categories", h.ListCategories)
		api.GET("/cart", h.GetCart)
		api.POST("/cart/items", h.AddToCart)
		api.DELETE("/cart", h.ClearCart)
		api.GET("/notices", h.DrainNotices)
		api.POST("/reload", h.Reload)
	}
}

func (h *APIHandler) ListProducts(c *gin.Context) {
	var criteria usecase.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		h.log.Warnf("Failed to bind catalog controls: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid query parameters: "+err.Error())
		return
	}

	products := h.useCase.Catalog(criteria)
	SuccessResponse(c, http.StatusOK, "Products retrieved successfully", products)
}

func (h *APIHandler) ListCategories(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Categories retrieved successfully", domain.Categories())
}

func (h *APIHandler) GetCart(c *gin.Context) {
	SuccessResponse(c, http.StatusOK, "Cart retrieved successfully", h.useCase.CartView())
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" binding:"required,gt=0"`
}

type CartChangeResponse struct {
	Notice domain.Notice   `json:"notice"`
	Cart   domain.CartView `json:"cart"`
}

func (h *APIHandler) AddToCart(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "AddToCart")
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handlerLogger.Warnf("Failed to bind request: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	notice, ok := h.useCase.AddToCart(req.ProductID)
	if !ok {
		handlerLogger.Warnf("Product ID %d not in catalog", req.ProductID)
		ErrorResponse(c, mapErrorToStatus(domain.ErrProductNotFound), domain.ErrProductNotFound.Error())
		return
	}

	SuccessResponse(c, http.StatusCreated, "Product added to cart", CartChangeResponse{
		Notice: notice,
		Cart:   h.useCase.CartView(),
	})
}

func (h *APIHandler) ClearCart(c *gin.Context) {
	notice := h.useCase.ClearCart()
	SuccessResponse(c, http.StatusOK, "Cart cleared", CartChangeResponse{
		Notice: notice,
		Cart:   h.useCase.CartView(),
	})
}

func (h *APIHandler) DrainNotices(c *gin.Context) {
	notices := h.useCase.Notices()
	if notices == nil {
		notices = []domain.Notice{}
	}
	SuccessResponse(c, http.StatusOK, "Notices retrieved successfully", notices)
}

func (h *APIHandler) Reload(c *gin.Context) {
	if err := h.useCase.Reload(c.Request.Context()); err != nil {
		h.log.WithField("handler", "Reload").Errorf("Reload failed: %v", err)
		ErrorResponse(c, mapErrorToStatus(err), "Failed to reload catalog: "+err.Error())
		return
	}
	SuccessResponse(c, http.StatusOK, "Catalog reloaded", gin.H{
		"products": len(h.useCase.Products()),
		"cart":     len(h.useCase.Cart()),
	})
}
