package api

import (
	"net/http"

	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	cartUseCase usecase.CartUseCase
}

func NewOrderHandler(cartUseCase usecase.CartUseCase) *OrderHandler {
	return &OrderHandler{cartUseCase: cartUseCase}
}

// @Summary List orders
// @Description Order history, newest first
// @Tags orders
// @Produce json
// @Success 200 {array} resdto.OrderResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromOrders(h.cartUseCase.Orders()))
}

// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} resdto.OrderResponse
// @Failure 404 {object} map[string]string
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.cartUseCase.Order(c.Param("id"))
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromOrder(o))
}
