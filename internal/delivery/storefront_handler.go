package delivery

import (
	"bytes"
	"net/http"
	"strconv"

	"storefront/internal/domain"
	"storefront/internal/render"
	"storefront/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// StorefrontHandler serves the HTML storefront. Every control is a plain
// form; cart actions redirect back to the filtered page they came from.
type StorefrontHandler struct {
	useCase  usecase.StorefrontUseCase
	renderer *render.Renderer
	log      *logrus.Logger
}

func NewStorefrontHandler(uc usecase.StorefrontUseCase, renderer *render.Renderer, logger *logrus.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		useCase:  uc,
		renderer: renderer,
		log:      logger,
	}
}

func (h *StorefrontHandler) RegisterRoutes(router gin.IRouter) {
	router.GET("/", h.Index)
	router.POST("/reload", h.Reload)

	cart := router.Group("/cart")
	{
		cart.POST("/items/:id", h.AddToCart)
		cart.POST("/clear", h.ClearCart)
		cart.POST("/open", h.OpenCart)
		cart.POST("/close", h.CloseCart)
	}
}

func (h *StorefrontHandler) Index(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "Index")

	var criteria usecase.Criteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		handlerLogger.Warnf("Failed to bind catalog controls: %v", err)
		c.String(http.StatusBadRequest, "Invalid filter parameters")
		return
	}

	data := render.PageData{
		Products:     h.useCase.Catalog(criteria),
		Criteria:     criteria,
		Cart:         h.useCase.CartView(),
		ModalVisible: h.useCase.Modal() == domain.ModalVisible,
		Notices:      h.useCase.Notices(),
	}

	var buf bytes.Buffer
	if err := h.renderer.Page(&buf, data); err != nil {
		handlerLogger.Errorf("Failed to render storefront page: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	handlerLogger := h.log.WithField("handler", "AddToCart")
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil || id <= 0 {
		handlerLogger.Warnf("Invalid product ID parameter: %s", idStr)
		c.String(http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if _, ok := h.useCase.AddToCart(id); !ok {
		handlerLogger.Debugf("Product ID %d not in catalog, nothing added", id)
	}
	h.redirect(c)
}

func (h *StorefrontHandler) ClearCart(c *gin.Context) {
	h.useCase.ClearCart()
	h.redirect(c)
}

func (h *StorefrontHandler) OpenCart(c *gin.Context) {
	h.useCase.HandleModal(domain.ModalOpen)
	h.redirect(c)
}

func (h *StorefrontHandler) CloseCart(c *gin.Context) {
	ev := domain.ModalClose
	if c.Query("via") == "backdrop" {
		ev = domain.ModalBackdropClick
	}
	h.useCase.HandleModal(ev)
	h.redirect(c)
}

// Reload refetches the catalog and the stored cart. A failure is logged and
// the page is shown with whatever state survived.
func (h *StorefrontHandler) Reload(c *gin.Context) {
	if err := h.useCase.Reload(c.Request.Context()); err != nil {
		h.log.WithField("handler", "Reload").Errorf("Reload failed: %v", err)
	}
	h.redirect(c)
}

func (h *StorefrontHandler) redirect(c *gin.Context) {
	var criteria usecase.Criteria
	if err := c.ShouldBind(&criteria); err != nil {
		h.log.Warnf("Failed to bind catalog controls on %s: %v", c.FullPath(), err)
	}
	c.Redirect(http.StatusSeeOther, storefrontURL(criteria))
}
