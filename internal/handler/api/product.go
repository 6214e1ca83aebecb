package api

import (
	"net/http"

	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	catalog usecase.ProductCatalog
}

func NewProductHandler(catalog usecase.ProductCatalog) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// @Summary List products
// @Description List the storefront menu
// @Tags products
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /products [get]
func (h *ProductHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromProducts(h.catalog.Products()))
}
