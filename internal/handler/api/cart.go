package api

import (
	"net/http"

	reqdto "storefront-engine/internal/handler/dto/request"
	resdto "storefront-engine/internal/handler/dto/response"
	"storefront-engine/internal/handler/httperr"
	"storefront-engine/internal/pkg/patch"
	"storefront-engine/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	cartUseCase     usecase.CartUseCase
	checkoutUseCase usecase.CheckoutUseCase
	catalog         usecase.ProductCatalog
}

func NewCartHandler(
	cartUseCase usecase.CartUseCase,
	checkoutUseCase usecase.CheckoutUseCase,
	catalog usecase.ProductCatalog,
) *CartHandler {
	return &CartHandler{
		cartUseCase:     cartUseCase,
		checkoutUseCase: checkoutUseCase,
		catalog:         catalog,
	}
}

// @Summary Get cart
// @Description Current cart lines and totals
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [get]
func (h *CartHandler) Get(c *gin.Context) {
	h.respondCart(c, http.StatusOK)
}

// @Summary Add to cart
// @Description Add one unit of a product; repeated adds increase the quantity
// @Tags cart
// @Accept json
// @Produce json
// @Param request body reqdto.AddToCartRequest true "Product to add"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *gin.Context) {
	var req reqdto.AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	product, err := h.catalog.Product(req.ProductID)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.cartUseCase.AddToCart(product)
	h.respondCart(c, http.StatusOK)
}

// @Summary Set quantity
// @Description Set the absolute quantity of a line; 0 or below removes it
// @Tags cart
// @Accept json
// @Produce json
// @Param productId path int true "Product ID"
// @Param request body reqdto.UpdateQuantityRequest true "New quantity"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /cart/items/{productId} [put]
func (h *CartHandler) UpdateItem(c *gin.Context) {
	productID, ok := productIDParam(c, "productId")
	if !ok {
		return
	}
	var req reqdto.UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.cartUseCase.UpdateQuantity(productID, patch.Coalesce(req.Quantity, 0)); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	h.respondCart(c, http.StatusOK)
}

// @Summary Remove from cart
// @Tags cart
// @Produce json
// @Param productId path int true "Product ID"
// @Success 200 {object} resdto.CartResponse
// @Failure 400 {object} map[string]string
// @Router /cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, ok := productIDParam(c, "productId")
	if !ok {
		return
	}
	h.cartUseCase.RemoveFromCart(productID)
	h.respondCart(c, http.StatusOK)
}

// @Summary Clear cart
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.CartResponse
// @Router /cart [delete]
func (h *CartHandler) Clear(c *gin.Context) {
	h.cartUseCase.ClearCart()
	h.respondCart(c, http.StatusOK)
}

// @Summary Checkout quote
// @Description Subtotal, loyalty discount and points the current cart would earn
// @Tags cart
// @Produce json
// @Success 200 {object} resdto.QuoteResponse
// @Router /cart/quote [get]
func (h *CartHandler) Quote(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromQuote(h.checkoutUseCase.Quote()))
}

// @Summary Checkout
// @Description Place an order from the cart and earn loyalty points
// @Tags cart
// @Produce json
// @Success 201 {object} resdto.CheckoutResponse
// @Failure 409 {object} map[string]string
// @Router /checkout [post]
func (h *CartHandler) Checkout(c *gin.Context) {
	result, ok := h.checkoutUseCase.Checkout()
	if !ok {
		httperr.AbortWithError(c, http.StatusConflict, ErrEmptyCart, "Cart is empty", nil)
		return
	}
	c.Header("Location", "/api/orders/"+result.Order.ID())
	c.JSON(http.StatusCreated, resdto.FromCheckout(result))
}

func (h *CartHandler) respondCart(c *gin.Context, status int) {
	c.JSON(status, resdto.FromCart(
		h.cartUseCase.Lines(),
		h.cartUseCase.TotalItems(),
		h.cartUseCase.TotalPrice(),
	))
}
