package api

import (
	"net/http"

	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type FavoriteHandler struct {
	favoriteUseCase usecase.FavoriteUseCase
	catalog         usecase.ProductCatalog
}

func NewFavoriteHandler(favoriteUseCase usecase.FavoriteUseCase, catalog usecase.ProductCatalog) *FavoriteHandler {
	return &FavoriteHandler{favoriteUseCase: favoriteUseCase, catalog: catalog}
}

// @Summary List favorites
// @Tags favorites
// @Produce json
// @Success 200 {array} resdto.ProductResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromProducts(h.favoriteUseCase.Favorites()))
}

// @Summary Add favorite
// @Tags favorites
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} resdto.ProductResponse
// @Failure 404 {object} map[string]string
// @Router /favorites/{productId} [put]
func (h *FavoriteHandler) Add(c *gin.Context) {
	productID, ok := productIDParam(c, "productId")
	if !ok {
		return
	}
	product, err := h.catalog.Product(productID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.favoriteUseCase.AddToFavorites(product)
	c.JSON(http.StatusOK, resdto.FromProducts(h.favoriteUseCase.Favorites()))
}

// @Summary Remove favorite
// @Tags favorites
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {array} resdto.ProductResponse
// @Router /favorites/{productId} [delete]
func (h *FavoriteHandler) Remove(c *gin.Context) {
	productID, ok := productIDParam(c, "productId")
	if !ok {
		return
	}
	h.favoriteUseCase.RemoveFromFavorites(productID)
	c.JSON(http.StatusOK, resdto.FromProducts(h.favoriteUseCase.Favorites()))
}
